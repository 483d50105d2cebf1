package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grovetools/notelink/pkg/settings"
	"github.com/grovetools/notelink/pkg/vault"
)

func NewListCmd(store **settings.Store, vaultDir *string, dataDir *string) *cobra.Command {
	var showAliases bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List link candidates in the vault",
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := vault.Scan(*vaultDir)
			if err != nil {
				return err
			}

			if len(files) == 0 {
				fmt.Println("No markdown files found.")
				return nil
			}

			for _, f := range files {
				line := fmt.Sprintf("%s\t%s", f.Basename, f.Path)
				if showAliases && len(f.Aliases) > 0 {
					line += "\t(" + strings.Join(f.Aliases, ", ") + ")"
				}
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showAliases, "aliases", false, "Show frontmatter aliases")

	return cmd
}
