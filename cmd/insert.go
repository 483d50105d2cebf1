package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grovetools/notelink/internal/tui/picker"
	"github.com/grovetools/notelink/pkg/editor"
	"github.com/grovetools/notelink/pkg/settings"
	"github.com/grovetools/notelink/pkg/vault"
)

func NewInsertCmd(store **settings.Store, vaultDir *string, dataDir *string) *cobra.Command {
	var (
		trigger string
		cursor  int
	)

	cmd := &cobra.Command{
		Use:   "insert <document>",
		Short: "Insert a link to a vault note into a document",
		Long: `Pick a note from the vault and insert a formatted link at the cursor.

When the trigger sequence immediately precedes the cursor it is replaced by
the link; otherwise the link is inserted at the cursor as-is.

Examples:
  notelink insert draft.md                 # Insert at end of file
  notelink insert draft.md --cursor 120    # Insert at byte offset 120
  notelink insert draft.md --trigger ",,"  # Replace a custom trigger`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docPath := args[0]

			data, err := os.ReadFile(docPath)
			if err != nil {
				return fmt.Errorf("read document: %w", err)
			}

			files, err := vault.Scan(*vaultDir)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no markdown files found in %s", *vaultDir)
			}

			choice, err := picker.New().Pick("Insert link", files)
			if err != nil {
				return err
			}
			if choice == nil {
				// Cancellation is not an error.
				return nil
			}

			at := cursor
			if at < 0 {
				at = len(data)
			}
			buf := editor.NewBuffer(string(data), at)
			inserted := buf.InsertLink(trigger, choice.Basename, (*store).Current())

			if err := os.WriteFile(docPath, []byte(buf.Text()), 0644); err != nil {
				return fmt.Errorf("write document: %w", err)
			}

			fmt.Printf("Inserted %s into %s\n", inserted, docPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&trigger, "trigger", "@@", "Trigger sequence to replace when it precedes the cursor")
	cmd.Flags().IntVar(&cursor, "cursor", -1, "Byte offset of the cursor (-1 for end of document)")

	return cmd
}
