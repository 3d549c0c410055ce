package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yartemiuk/assistant/internal/validation"
)

func TestNewNoteExtractsTags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantText string
		wantTags []string
	}{
		{
			name:     "tags at the end",
			input:    "Buy milk #shopping #urgent",
			wantText: "Buy milk",
			wantTags: []string{"#shopping", "#urgent"},
		},
		{
			name:     "tag in the middle",
			input:    "call #family mom tomorrow",
			wantText: "call mom tomorrow",
			wantTags: []string{"#family"},
		},
		{
			name:     "no tags",
			input:    "just a plain note",
			wantText: "just a plain note",
			wantTags: nil,
		},
		{
			name:     "only tags",
			input:    "#a #b",
			wantText: "",
			wantTags: []string{"#a", "#b"},
		},
		{
			name:     "duplicate tags preserved in order",
			input:    "x #todo y #todo",
			wantText: "x y",
			wantTags: []string{"#todo", "#todo"},
		},
		{
			name:     "extra whitespace collapses",
			input:    "  spaced   out  #tag  ",
			wantText: "spaced out",
			wantTags: []string{"#tag"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note := NewNote(tt.input)
			assert.Equal(t, tt.wantText, note.Text)
			assert.Equal(t, tt.wantTags, note.Tags)
			assert.Zero(t, note.ID)
			assert.False(t, note.Created.IsZero())
		})
	}
}

func TestNoteSetTextRecomputesTags(t *testing.T) {
	note := NewNote("old text #old")
	created := note.Created

	note.SetText("new text without tags")
	assert.Equal(t, "new text without tags", note.Text)
	assert.Empty(t, note.Tags)
	// Время создания не меняется при редактировании
	assert.Equal(t, created, note.Created)

	note.SetText("#fresh start")
	assert.Equal(t, "start", note.Text)
	assert.Equal(t, []string{"#fresh"}, note.Tags)
}

func TestNoteString(t *testing.T) {
	note := NewNote("Buy milk #shopping")
	note.ID = 3
	note.Created = time.Date(2025, time.January, 2, 15, 4, 5, 0, time.UTC)

	assert.Equal(t, "ID: 3\nDate: 2025-01-02 15:04:05\nTags: #shopping\nText: Buy milk", note.String())

	bare := NewNote("nothing special")
	bare.ID = 4
	bare.Created = note.Created
	assert.Equal(t, "ID: 4\nDate: 2025-01-02 15:04:05\nTags: No tags\nText: nothing special", bare.String())
}

func TestNoteDocRoundTrip(t *testing.T) {
	note := NewNote("Buy milk #shopping #urgent")
	note.ID = 7

	restored, err := NoteFromDoc(note.ToDoc())
	require.NoError(t, err)

	assert.Equal(t, note.ID, restored.ID)
	assert.Equal(t, note.Text, restored.Text)
	assert.Equal(t, note.Tags, restored.Tags)
	// Метка времени хранится с точностью до секунды
	assert.Equal(t, note.Created.Format(CreatedLayout), restored.Created.Format(CreatedLayout))
}

func TestNoteFromDocBadCreated(t *testing.T) {
	_, err := NoteFromDoc(NoteDoc{ID: 1, Text: "x", Created: "02.01.2025"})
	require.Error(t, err)

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
}
