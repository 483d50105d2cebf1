package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/grovetools/notelink/pkg/models"
	"github.com/grovetools/notelink/pkg/settings"
)

func NewSettingsCmd(store **settings.Store, vaultDir *string, dataDir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change link settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := yaml.Marshal((*store).Current())
			if err != nil {
				return fmt.Errorf("render settings: %w", err)
			}
			fmt.Print(string(out))
			return nil
		},
	}

	cmd.AddCommand(newSettingsSetCmd(store))

	return cmd
}

func newSettingsSetCmd(store **settings.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Update one setting and persist it",
		Long: `Update a setting and write the config file.

Keys:
  extract_timestamps       bool
  timestamp_length         positive integer
  append_file_name         bool
  enable_link_resolution   bool
  enable_partial_matching  bool

Examples:
  notelink settings set timestamp_length 14
  notelink settings set append_file_name false`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			apply, err := settingMutation(key, value)
			if err != nil {
				return err
			}

			if _, err := (*store).Update(apply); err != nil {
				return err
			}

			fmt.Printf("Saved %s to %s\n", key, (*store).Path())
			return nil
		},
	}
}

// settingMutation translates a key/value pair into a mutation of the
// settings record, rejecting unknown keys and unparsable values.
func settingMutation(key, value string) (func(*models.LinkSettings), error) {
	switch key {
	case "timestamp_length":
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", key, err)
		}
		return func(s *models.LinkSettings) { s.TimestampLength = n }, nil
	case "extract_timestamps", "append_file_name", "enable_link_resolution", "enable_partial_matching":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", key, err)
		}
		return func(s *models.LinkSettings) {
			switch key {
			case "extract_timestamps":
				s.ExtractTimestamps = b
			case "append_file_name":
				s.AppendFileName = b
			case "enable_link_resolution":
				s.EnableLinkResolution = b
			case "enable_partial_matching":
				s.EnablePartialMatching = b
			}
		}, nil
	default:
		return nil, fmt.Errorf("unknown setting %q", key)
	}
}
