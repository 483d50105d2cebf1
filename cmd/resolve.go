package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grovetools/notelink/internal/tui/picker"
	"github.com/grovetools/notelink/pkg/link"
	"github.com/grovetools/notelink/pkg/models"
	"github.com/grovetools/notelink/pkg/settings"
	"github.com/grovetools/notelink/pkg/vault"
)

func NewResolveCmd(store **settings.Store, vaultDir *string, dataDir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <reference>",
		Short: "Resolve a reference to the note it designates",
		Long: `Resolve a short reference (the text typed inside double brackets) to a
vault file and print its path.

An exact basename match always wins. When partial matching is enabled,
a unique substring match resolves directly and an ambiguous one opens a
picker. No match prints nothing and exits cleanly.

Examples:
  notelink resolve 202512270824
  notelink resolve budget`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reference := args[0]

			files, err := vault.Scan(*vaultDir)
			if err != nil {
				return err
			}

			// Host-native resolution: exact basename lookup.
			var host link.ResolveFunc = func(ref string) *models.NoteFile {
				return lookupExact(ref, *dataDir, files)
			}

			s := (*store).Current()
			if s.EnableLinkResolution {
				resolver := link.NewResolver((*store).Current, picker.New())
				hook := link.Install(&host, resolver, func() []models.NoteFile { return files })
				defer hook.Uninstall()
			}

			result := host(reference)
			if result == nil {
				fmt.Fprintf(os.Stderr, "no note resolves %q\n", reference)
				return nil
			}

			fmt.Println(result.Path)
			return nil
		},
	}

	return cmd
}
