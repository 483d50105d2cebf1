// Package vault enumerates and indexes the markdown files a link can target.
package vault

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/notelink/pkg/models"
)

// Scan walks root and returns every markdown file as a link candidate,
// sorted by basename. Dot-directories (.obsidian, .git, ...) are skipped.
// Frontmatter aliases are harvested so they can join resolution; a note that
// fails to parse still counts as a candidate under its basename.
func Scan(root string) ([]models.NoteFile, error) {
	var files []models.NoteFile

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}

		nf := models.NoteFileFromPath(path)
		if data, readErr := os.ReadFile(path); readErr == nil {
			fm, _, parseErr := ParseFrontmatter(string(data))
			if parseErr != nil {
				logrus.Debugf("skipping frontmatter for %s: %v", path, parseErr)
			} else if fm != nil {
				nf.Aliases = fm.Aliases
			}
		}

		files = append(files, nf)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan vault: %w", err)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Basename < files[j].Basename
	})
	return files, nil
}

// FindExact returns the candidate whose basename equals reference, matched
// case-insensitively the way the host resolves typed links, or nil.
func FindExact(reference string, files []models.NoteFile) *models.NoteFile {
	for i := range files {
		if strings.EqualFold(files[i].Basename, reference) {
			return &files[i]
		}
	}
	return nil
}
