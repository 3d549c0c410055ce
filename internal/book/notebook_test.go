package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yartemiuk/assistant/internal/models"
)

func TestNoteBookAddAssignsIDs(t *testing.T) {
	book := NewNoteBook()

	msg := book.Add(models.NewNote("first"))
	assert.Equal(t, "Note with ID 1 added.", msg)

	msg = book.Add(models.NewNote("second"))
	assert.Equal(t, "Note with ID 2 added.", msg)

	assert.Equal(t, 2, book.Len())
	assert.Equal(t, 3, book.NextID())
	assert.Equal(t, "first", book.Get(1).Text)
	assert.Equal(t, "second", book.Get(2).Text)
}

func TestNoteBookIDsNeverReused(t *testing.T) {
	book := NewNoteBook()
	book.Add(models.NewNote("one"))
	book.Add(models.NewNote("two"))

	_, err := book.Delete(2)
	require.NoError(t, err)

	book.Add(models.NewNote("three"))
	// Удаленный id 2 не переиспользуется
	assert.Nil(t, book.Get(2))
	assert.Equal(t, "three", book.Get(3).Text)
}

func TestNoteBookFind(t *testing.T) {
	book := NewNoteBook()
	book.Add(models.NewNote("Buy milk #shopping"))
	book.Add(models.NewNote("Call mom #family"))
	book.Add(models.NewNote("Plan the SHOPPING trip"))

	tests := []struct {
		name    string
		query   string
		wantIDs []int
	}{
		{name: "by text", query: "milk", wantIDs: []int{1}},
		{name: "by tag", query: "family", wantIDs: []int{2}},
		{name: "case-insensitive across text and tags", query: "shopping", wantIDs: []int{1, 3}},
		{name: "no match", query: "zzz", wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ids []int
			for _, note := range book.Find(tt.query) {
				ids = append(ids, note.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestNoteBookEdit(t *testing.T) {
	book := NewNoteBook()
	book.Add(models.NewNote("old text #old"))
	created := book.Get(1).Created

	msg, err := book.Edit(1, "new text, no tags")
	require.NoError(t, err)
	assert.Equal(t, "Note with ID 1 updated.", msg)

	note := book.Get(1)
	assert.Equal(t, "new text, no tags", note.Text)
	// Старые теги отбрасываются полностью
	assert.Empty(t, note.Tags)
	assert.Equal(t, created, note.Created)

	_, err = book.Edit(99, "whatever")
	var nferr *models.NotFoundError
	require.ErrorAs(t, err, &nferr)
	assert.Equal(t, "note", nferr.Kind)
}

func TestNoteBookDelete(t *testing.T) {
	book := NewNoteBook()
	book.Add(models.NewNote("x"))

	msg, err := book.Delete(1)
	require.NoError(t, err)
	assert.Equal(t, "Note with ID 1 deleted.", msg)

	_, err = book.Delete(1)
	var nferr *models.NotFoundError
	require.ErrorAs(t, err, &nferr)
}

func TestNoteBookDocRoundTrip(t *testing.T) {
	book := NewNoteBook()
	book.Add(models.NewNote("Buy milk #shopping #urgent"))
	book.Add(models.NewNote("plain"))
	_, err := book.Delete(1)
	require.NoError(t, err)

	restored, err := NoteBookFromDoc(book.ToDoc())
	require.NoError(t, err)

	// next_id переживает round-trip, включая дыру от удаления
	assert.Equal(t, 3, restored.NextID())
	require.Equal(t, 1, restored.Len())

	note := restored.Get(2)
	require.NotNil(t, note)
	assert.Equal(t, "plain", note.Text)
	assert.Equal(t, book.Get(2).Created.Format(models.CreatedLayout), note.Created.Format(models.CreatedLayout))
}

func TestNoteBookFromDocDefaults(t *testing.T) {
	// Пустой документ: счетчик начинается с 1
	book, err := NoteBookFromDoc(models.NotebookDoc{})
	require.NoError(t, err)
	assert.Equal(t, 1, book.NextID())
	assert.Equal(t, 0, book.Len())
}

func TestNoteBookFromDocGuardsNextID(t *testing.T) {
	doc := models.NotebookDoc{
		NextID: 2,
		Notes: map[string]models.NoteDoc{
			"5": {ID: 5, Text: "x", Created: "2025-01-02 15:04:05"},
		},
	}

	book, err := NoteBookFromDoc(doc)
	require.NoError(t, err)

	// Сохраненный счетчик отстал от максимального id — поднимаем,
	// иначе следующий Add перезаписал бы живую заметку
	assert.Equal(t, 6, book.NextID())

	msg := book.Add(models.NewNote("new"))
	assert.Equal(t, "Note with ID 6 added.", msg)
	assert.Equal(t, "x", book.Get(5).Text)
}

func TestNoteBookFromDocBadID(t *testing.T) {
	doc := models.NotebookDoc{
		Notes: map[string]models.NoteDoc{
			"abc": {ID: 1, Text: "x", Created: "2025-01-02 15:04:05"},
		},
	}
	_, err := NoteBookFromDoc(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad note id")
}
