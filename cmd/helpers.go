package cmd

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/notelink/pkg/models"
	"github.com/grovetools/notelink/pkg/vault"
)

// indexPath returns the location of the sqlite index inside dataDir.
func indexPath(dataDir string) string {
	return filepath.Join(dataDir, "index.db")
}

// lookupExact resolves reference the host-native way: through the index when
// one has been built, otherwise by scanning the candidate list.
func lookupExact(reference, dataDir string, files []models.NoteFile) *models.NoteFile {
	path := indexPath(dataDir)
	if _, err := os.Stat(path); err == nil {
		idx, err := vault.NewIndex(path)
		if err == nil {
			defer func() {
				_ = idx.Close()
			}()
			match, err := idx.LookupExact(reference)
			if err == nil && match != nil {
				return match
			}
			if err != nil {
				logrus.Debugf("index lookup failed, falling back to scan: %v", err)
			}
		}
	}
	return vault.FindExact(reference, files)
}
