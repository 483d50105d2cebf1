package vault

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeNote(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestScan(t *testing.T) {
	root := t.TempDir()

	writeNote(t, root, "202512270824 Christmas Traditions.md", "# Christmas\n")
	writeNote(t, root, filepath.Join("projects", "Project Ideas.md"), "# Ideas\n")
	writeNote(t, root, "notes.txt", "not markdown")
	writeNote(t, root, filepath.Join(".obsidian", "hidden.md"), "plugin state")
	writeNote(t, root, filepath.Join(".git", "config.md"), "not a note")

	files, err := Scan(root)
	require.NoError(t, err)
	require.Len(t, files, 2)

	// Sorted by basename.
	assert.Equal(t, "202512270824 Christmas Traditions", files[0].Basename)
	assert.Equal(t, "Project Ideas", files[1].Basename)
	assert.Equal(t, filepath.Join(root, "projects", "Project Ideas.md"), files[1].Path)
}

func TestScanHarvestsAliases(t *testing.T) {
	root := t.TempDir()

	writeNote(t, root, "202501010800.md", `---
id: 202501010800
title: Yearly Budget
aliases: [budget, "money plan"]
tags: [finance]
---

# Yearly Budget
`)

	files, err := Scan(root)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, []string{"budget", "money plan"}, files[0].Aliases)
}

func TestScanToleratesBrokenFrontmatter(t *testing.T) {
	root := t.TempDir()

	writeNote(t, root, "broken.md", "---\n: [not yaml\n---\nbody\n")

	files, err := Scan(root)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "broken", files[0].Basename)
	assert.Empty(t, files[0].Aliases)
}

func TestFindExact(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "2025-Budget.md", "")
	writeNote(t, root, "2025-plan.md", "")

	files, err := Scan(root)
	require.NoError(t, err)

	got := FindExact("2025-budget", files)
	require.NotNil(t, got)
	assert.Equal(t, "2025-Budget", got.Basename)

	assert.Nil(t, FindExact("2025", files), "substrings are not exact matches")
}
