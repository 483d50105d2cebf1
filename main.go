package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/grovetools/notelink/cmd"
	"github.com/grovetools/notelink/pkg/settings"
)

var (
	store    *settings.Store
	cfgFile  string
	vaultDir string
	dataDir  string
	verbose  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "notelink",
		Short:         "Insert and resolve wikilinks for a markdown note vault",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/notelink/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&vaultDir, "vault", "V", ".", "Path to the note vault")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Data directory for the candidate index (default is $HOME/.local/share/notelink)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// This runs once before any subcommand
		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(logrus.WarnLevel)
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}

		path := cfgFile
		if path == "" {
			var err error
			path, err = settings.DefaultConfigPath()
			if err != nil {
				return err
			}
		}

		var err error
		store, err = settings.Open(path)
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}

		if dataDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("get home directory: %w", err)
			}
			dataDir = filepath.Join(home, ".local", "share", "notelink")
		}

		return nil
	}

	rootCmd.AddCommand(cmd.NewInsertCmd(&store, &vaultDir, &dataDir))
	rootCmd.AddCommand(cmd.NewResolveCmd(&store, &vaultDir, &dataDir))
	rootCmd.AddCommand(cmd.NewListCmd(&store, &vaultDir, &dataDir))
	rootCmd.AddCommand(cmd.NewIndexCmd(&store, &vaultDir, &dataDir))
	rootCmd.AddCommand(cmd.NewSettingsCmd(&store, &vaultDir, &dataDir))
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
