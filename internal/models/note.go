package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/yartemiuk/assistant/internal/validation"
)

// CreatedLayout формат метки времени создания заметки
const CreatedLayout = "2006-01-02 15:04:05"

// Note is one free-text entry. Whitespace-delimited tokens starting
// with '#' are pulled out of the text into the ordered Tags list.
// The id stays zero until the owning NoteBook assigns one.
type Note struct {
	Created time.Time
	Text    string
	Tags    []string
	ID      int
}

// NewNote builds a note from raw input text. The creation time is
// fixed here and never changes on edit.
func NewNote(text string) *Note {
	note := &Note{Created: time.Now()}
	note.SetText(text)
	return note
}

// SetText replaces the note text and recomputes the tag list from
// scratch. Old tags are discarded, not merged.
func (n *Note) SetText(text string) {
	n.Text, n.Tags = splitNoteText(text)
}

// splitNoteText отделяет #-токены от остального текста,
// сохраняя порядок и дубликаты тегов
func splitNoteText(text string) (string, []string) {
	var tags []string
	var words []string
	for _, word := range strings.Fields(text) {
		if strings.HasPrefix(word, "#") {
			tags = append(tags, word)
		} else {
			words = append(words, word)
		}
	}
	return strings.Join(words, " "), tags
}

// String renders the note as a fixed four-line block.
func (n *Note) String() string {
	tags := "No tags"
	if len(n.Tags) > 0 {
		tags = strings.Join(n.Tags, ", ")
	}
	return fmt.Sprintf("ID: %d\nDate: %s\nTags: %s\nText: %s",
		n.ID, n.Created.Format(CreatedLayout), tags, n.Text)
}

// ToDoc converts the note to its persisted document shape.
func (n *Note) ToDoc() NoteDoc {
	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}
	return NoteDoc{
		ID:      n.ID,
		Text:    n.Text,
		Created: n.Created.Format(CreatedLayout),
		Tags:    tags,
	}
}

// NoteFromDoc rebuilds a note from its persisted document. The text
// and tags are taken as stored; the creation timestamp is re-parsed.
func NoteFromDoc(doc NoteDoc) (*Note, error) {
	created, err := time.Parse(CreatedLayout, doc.Created)
	if err != nil {
		return nil, &validation.Error{Field: "note created", Reason: "timestamp must use the YYYY-MM-DD HH:MM:SS format"}
	}
	return &Note{
		ID:      doc.ID,
		Text:    doc.Text,
		Tags:    doc.Tags,
		Created: created,
	}, nil
}
