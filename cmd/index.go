package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/grovetools/notelink/pkg/settings"
	"github.com/grovetools/notelink/pkg/vault"
)

func NewIndexCmd(store **settings.Store, vaultDir *string, dataDir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Rebuild the candidate index",
		Long: `Scan the vault and rebuild the sqlite index used for fast reference
lookups. The index lives under the data directory and is safe to delete;
resolution falls back to scanning the vault when it is absent.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := vault.Scan(*vaultDir)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(*dataDir, 0755); err != nil {
				return fmt.Errorf("create data dir: %w", err)
			}

			path := indexPath(*dataDir)
			idx, err := vault.NewIndex(path)
			if err != nil {
				return err
			}
			defer func() {
				_ = idx.Close()
			}()

			if err := idx.Rebuild(files); err != nil {
				return fmt.Errorf("rebuild index: %w", err)
			}

			logrus.Debugf("indexed %d files into %s", len(files), path)
			fmt.Printf("Indexed %d files.\n", len(files))
			return nil
		},
	}

	return cmd
}
