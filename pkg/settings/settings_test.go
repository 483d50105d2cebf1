package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/notelink/pkg/models"
)

func TestOpenWithoutConfigFileUsesDefaults(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, models.DefaultLinkSettings(), store.Current())
}

func TestOpenMergesMissingFieldsFromDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timestamp_length: 8\nappend_file_name: false\n"), 0644))

	store, err := Open(path)
	require.NoError(t, err)

	got := store.Current()
	assert.Equal(t, 8, got.TimestampLength)
	assert.False(t, got.AppendFileName)
	// Unspecified fields keep their defaults.
	assert.True(t, got.ExtractTimestamps)
	assert.True(t, got.EnableLinkResolution)
	assert.True(t, got.EnablePartialMatching)
}

func TestUpdatePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	store, err := Open(path)
	require.NoError(t, err)

	updated, err := store.Update(func(s *models.LinkSettings) {
		s.TimestampLength = 14
		s.EnablePartialMatching = false
	})
	require.NoError(t, err)
	assert.Equal(t, 14, updated.TimestampLength)

	// A fresh store sees the persisted values.
	reloaded, err := Open(path)
	require.NoError(t, err)
	got := reloaded.Current()
	assert.Equal(t, 14, got.TimestampLength)
	assert.False(t, got.EnablePartialMatching)
	assert.True(t, got.ExtractTimestamps)
}

func TestUpdateRejectsInvalidSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	store, err := Open(path)
	require.NoError(t, err)

	_, err = store.Update(func(s *models.LinkSettings) {
		s.TimestampLength = 0
	})
	require.Error(t, err)

	// Nothing was persisted and the store still serves valid settings.
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
	assert.Equal(t, models.DefaultLinkSettings().TimestampLength, store.Current().TimestampLength)
}
