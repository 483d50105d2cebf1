package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/notelink/pkg/models"
)

func TestNewBufferClampsCursor(t *testing.T) {
	b := NewBuffer("hello", 99)
	assert.Equal(t, 5, b.Cursor())

	b = NewBuffer("hello", -3)
	assert.Equal(t, 0, b.Cursor())
}

func TestReplaceRange(t *testing.T) {
	b := NewBuffer("one two three", 0)

	require.NoError(t, b.ReplaceRange(4, 7, "2"))
	assert.Equal(t, "one 2 three", b.Text())
	assert.Equal(t, 5, b.Cursor())

	assert.Error(t, b.ReplaceRange(-1, 2, "x"))
	assert.Error(t, b.ReplaceRange(3, 999, "x"))
	assert.Error(t, b.ReplaceRange(5, 2, "x"))
}

func TestTriggerSpan(t *testing.T) {
	text := "some text @@"
	b := NewBuffer(text, len(text))

	from, to, ok := b.TriggerSpan("@@")
	require.True(t, ok)
	assert.Equal(t, len(text)-2, from)
	assert.Equal(t, len(text), to)

	// Trigger not adjacent to the cursor does not count.
	b = NewBuffer("some @@ text", 12)
	_, _, ok = b.TriggerSpan("@@")
	assert.False(t, ok)

	_, _, ok = b.TriggerSpan("")
	assert.False(t, ok)
}

func TestInsertLinkReplacesTrigger(t *testing.T) {
	text := "see also @@"
	b := NewBuffer(text, len(text))

	s := models.DefaultLinkSettings()
	inserted := b.InsertLink("@@", "202512270824 Christmas Traditions", s)

	assert.Equal(t, "[[202512270824]] Christmas Traditions", inserted)
	assert.Equal(t, "see also [[202512270824]] Christmas Traditions", b.Text())
	assert.Equal(t, len(b.Text()), b.Cursor())
}

func TestInsertLinkWithoutTriggerInsertsAtCursor(t *testing.T) {
	b := NewBuffer("before  after", 7)

	s := models.DefaultLinkSettings()
	s.ExtractTimestamps = false
	inserted := b.InsertLink("@@", "Project Ideas", s)

	assert.Equal(t, "[[Project Ideas]]", inserted)
	assert.Equal(t, "before [[Project Ideas]] after", b.Text())
}
