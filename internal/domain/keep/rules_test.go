package keep

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFolderLabel(t *testing.T) {
	assert.True(t, IsFolderLabel("Work"))
	assert.True(t, IsFolderLabel("Ideas and plans"))
	assert.False(t, IsFolderLabel("work"))
	assert.False(t, IsFolderLabel("1984"))
	assert.False(t, IsFolderLabel(""))
}

func TestFolderLabelFirstWins(t *testing.T) {
	folder, ok := FolderLabel([]string{"urgent", "Work", "Home"})
	assert.True(t, ok)
	assert.Equal(t, "Work", folder)

	_, ok = FolderLabel([]string{"urgent", "later"})
	assert.False(t, ok)

	_, ok = FolderLabel(nil)
	assert.False(t, ok)
}

func TestTagsKeepOrderAndSkipNonLetters(t *testing.T) {
	tags := Tags([]string{"Work", "urgent", "work", "1984"})
	assert.Equal(t, []string{"urgent", "work"}, tags)

	assert.Empty(t, Tags([]string{"Work", "Home"}))
	assert.Empty(t, Tags(nil))
}

func TestNoteIsFragment(t *testing.T) {
	assert.True(t, Note{}.IsFragment())
	assert.True(t, Note{Labels: []string{"urgent"}}.IsFragment())
	assert.False(t, Note{Labels: []string{"urgent", "Work"}}.IsFragment())
}

func TestNoteIsEmpty(t *testing.T) {
	assert.True(t, Note{}.IsEmpty())
	assert.True(t, Note{Title: "  ", Text: "\n"}.IsEmpty())
	assert.False(t, Note{Title: "x"}.IsEmpty())
	assert.False(t, Note{Text: "x"}.IsEmpty())
}

func TestNoteHasLabel(t *testing.T) {
	note := Note{Labels: []string{"Work", "urgent"}}
	assert.True(t, note.HasLabel("urgent"))
	assert.False(t, note.HasLabel("Urgent"))
	assert.False(t, note.HasLabel("home"))
}
