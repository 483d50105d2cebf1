package models

import "fmt"

// LinkSettings holds the user-configurable link behavior. It is loaded once
// at startup, read by the formatter and resolver, and mutated only through
// the settings store's explicit update path.
type LinkSettings struct {
	// ExtractTimestamps enables splitting a leading timestamp out of the
	// basename when formatting a link.
	ExtractTimestamps bool `yaml:"extract_timestamps" mapstructure:"extract_timestamps"`

	// TimestampLength is the exact number of leading digits that count as a
	// timestamp. Must be positive.
	TimestampLength int `yaml:"timestamp_length" mapstructure:"timestamp_length"`

	// AppendFileName appends the rest of the basename after an extracted
	// timestamp link.
	AppendFileName bool `yaml:"append_file_name" mapstructure:"append_file_name"`

	// EnableLinkResolution installs the resolution override on the host's
	// reference lookup.
	EnableLinkResolution bool `yaml:"enable_link_resolution" mapstructure:"enable_link_resolution"`

	// EnablePartialMatching allows substring matches when no exact match
	// exists for a reference.
	EnablePartialMatching bool `yaml:"enable_partial_matching" mapstructure:"enable_partial_matching"`
}

// DefaultLinkSettings returns the settings used when no config file exists.
func DefaultLinkSettings() LinkSettings {
	return LinkSettings{
		ExtractTimestamps:     true,
		TimestampLength:       12,
		AppendFileName:        true,
		EnableLinkResolution:  true,
		EnablePartialMatching: true,
	}
}

// Validate rejects settings the formatter and resolver must never see.
func (s LinkSettings) Validate() error {
	if s.TimestampLength <= 0 {
		return fmt.Errorf("timestamp_length must be positive, got %d", s.TimestampLength)
	}
	return nil
}
