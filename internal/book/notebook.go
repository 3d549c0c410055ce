package book

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/yartemiuk/assistant/internal/models"
)

// NoteBook is the keyed collection of notes with an auto-incrementing
// id counter. Ids are never reused, even after deletion.
type NoteBook struct {
	notes  map[int]*models.Note
	nextID int
}

// NewNoteBook creates an empty note book with the counter at 1.
func NewNoteBook() *NoteBook {
	return &NoteBook{notes: make(map[int]*models.Note), nextID: 1}
}

// Add assigns the next free id to the note, stores it and advances the
// counter. Returns a confirmation referencing the assigned id.
func (b *NoteBook) Add(note *models.Note) string {
	note.ID = b.nextID
	b.notes[note.ID] = note
	b.nextID++
	return fmt.Sprintf("Note with ID %d added.", note.ID)
}

// Get returns the note with the given id, or nil when absent.
func (b *NoteBook) Get(id int) *models.Note {
	return b.notes[id]
}

// Len returns the number of stored notes.
func (b *NoteBook) Len() int {
	return len(b.notes)
}

// NextID returns the current value of the id counter.
func (b *NoteBook) NextID() int {
	return b.nextID
}

// Notes returns all notes ordered by id.
func (b *NoteBook) Notes() []*models.Note {
	notes := make([]*models.Note, 0, len(b.notes))
	for _, note := range b.notes {
		notes = append(notes, note)
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].ID < notes[j].ID })
	return notes
}

// Find returns every note whose text or any tag contains the query as
// a case-insensitive substring, ordered by id.
func (b *NoteBook) Find(query string) []*models.Note {
	q := strings.ToLower(query)
	var found []*models.Note

	for _, note := range b.Notes() {
		if noteMatches(note, q) {
			found = append(found, note)
		}
	}
	return found
}

func noteMatches(note *models.Note, q string) bool {
	if strings.Contains(strings.ToLower(note.Text), q) {
		return true
	}
	for _, tag := range note.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Edit replaces the text of the note with the given id and recomputes
// its tags with the same extraction rule used at construction.
func (b *NoteBook) Edit(id int, newText string) (string, error) {
	note := b.notes[id]
	if note == nil {
		return "", &models.NotFoundError{Kind: "note", Key: strconv.Itoa(id)}
	}
	note.SetText(newText)
	return fmt.Sprintf("Note with ID %d updated.", id), nil
}

// Delete removes the note with the given id. The id is never handed
// out again.
func (b *NoteBook) Delete(id int) (string, error) {
	if _, ok := b.notes[id]; !ok {
		return "", &models.NotFoundError{Kind: "note", Key: strconv.Itoa(id)}
	}
	delete(b.notes, id)
	return fmt.Sprintf("Note with ID %d deleted.", id), nil
}

// ToDoc converts the book to its persisted document: the id counter
// plus the notes keyed by string-encoded id.
func (b *NoteBook) ToDoc() models.NotebookDoc {
	doc := models.NotebookDoc{
		NextID: b.nextID,
		Notes:  make(map[string]models.NoteDoc, len(b.notes)),
	}
	for id, note := range b.notes {
		doc.Notes[strconv.Itoa(id)] = note.ToDoc()
	}
	return doc
}

// NoteBookFromDoc rebuilds a book from its persisted document. The
// stored next_id is restored (defaulting to 1 when absent) but guarded:
// a counter at or below an existing id would eventually overwrite a
// live note, so it is bumped past the maximum stored id.
func NoteBookFromDoc(doc models.NotebookDoc) (*NoteBook, error) {
	book := NewNoteBook()
	if doc.NextID > 0 {
		book.nextID = doc.NextID
	}

	maxID := 0
	for idStr, noteDoc := range doc.Notes {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			return nil, fmt.Errorf("bad note id %q: %w", idStr, err)
		}
		note, err := models.NoteFromDoc(noteDoc)
		if err != nil {
			return nil, err
		}
		note.ID = id
		book.notes[id] = note
		if id > maxID {
			maxID = id
		}
	}

	if book.nextID <= maxID {
		book.nextID = maxID + 1
	}
	return book, nil
}
