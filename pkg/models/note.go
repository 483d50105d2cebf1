package models

import (
	"path/filepath"
	"strings"
)

// NoteFile is a candidate link target enumerated from the vault. The core
// never mutates it; the vault owns enumeration.
type NoteFile struct {
	// Basename is the filename without directory or extension, the form a
	// user types inside double brackets.
	Basename string

	// Path is the full location of the file within the vault.
	Path string

	// Aliases are alternate names from the note's frontmatter that also
	// designate this file during resolution.
	Aliases []string
}

// NoteFileFromPath derives the basename view from a vault-relative or
// absolute path.
func NoteFileFromPath(path string) NoteFile {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return NoteFile{
		Basename: base,
		Path:     path,
	}
}
