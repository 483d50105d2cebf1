// Package editor provides the cursor-relative text primitives the link
// inserter needs: trigger detection and range replacement in a document.
package editor

import (
	"fmt"
	"strings"

	"github.com/grovetools/notelink/pkg/link"
	"github.com/grovetools/notelink/pkg/models"
)

// Buffer is a document with a cursor, addressed by byte offset.
type Buffer struct {
	text   string
	cursor int
}

// NewBuffer wraps text with the cursor clamped into [0, len(text)].
func NewBuffer(text string, cursor int) *Buffer {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(text) {
		cursor = len(text)
	}
	return &Buffer{text: text, cursor: cursor}
}

// Text returns the document contents.
func (b *Buffer) Text() string {
	return b.text
}

// Cursor returns the current cursor offset.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// ReplaceRange replaces [from, to) with repl and leaves the cursor at the end
// of the inserted text.
func (b *Buffer) ReplaceRange(from, to int, repl string) error {
	if from < 0 || to > len(b.text) || from > to {
		return fmt.Errorf("replace range [%d, %d) out of bounds for %d bytes", from, to, len(b.text))
	}
	b.text = b.text[:from] + repl + b.text[to:]
	b.cursor = from + len(repl)
	return nil
}

// TriggerSpan reports the span of trigger when it ends exactly at the
// cursor, the position it occupies right after the user types it.
func (b *Buffer) TriggerSpan(trigger string) (from, to int, ok bool) {
	if trigger == "" {
		return 0, 0, false
	}
	if !strings.HasSuffix(b.text[:b.cursor], trigger) {
		return 0, 0, false
	}
	return b.cursor - len(trigger), b.cursor, true
}

// InsertLink replaces the trigger span with the formatted link for basename,
// or inserts the link at the cursor when no trigger precedes it. It returns
// the inserted text.
func (b *Buffer) InsertLink(trigger, basename string, s models.LinkSettings) string {
	text := link.Format(basename, s)

	from, to := b.cursor, b.cursor
	if f, t, ok := b.TriggerSpan(trigger); ok {
		from, to = f, t
	}

	// Bounds hold by construction.
	_ = b.ReplaceRange(from, to, text)
	return text
}
