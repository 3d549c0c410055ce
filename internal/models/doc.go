package models

// Persisted document shapes. Every storage backend serializes through
// these types, so the wire format is identical everywhere.

// ContactDoc is the persisted shape of a Record. The optional fields
// are pointers so an absent key and a null both load as "not set".
type ContactDoc struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday *string  `json:"birthday"`
	Email    *string  `json:"email"`
	Address  *string  `json:"address"`
}

// NoteDoc is the persisted shape of a Note.
type NoteDoc struct {
	ID      int      `json:"id"`
	Text    string   `json:"text"`
	Created string   `json:"created"`
	Tags    []string `json:"tags"`
}

// NotebookDoc is the persisted shape of a NoteBook: the id counter
// plus the notes keyed by their string-encoded id.
type NotebookDoc struct {
	NextID int                `json:"next_id"`
	Notes  map[string]NoteDoc `json:"notes"`
}

// SnapshotDoc is the combined persisted state: both collections
// written together in one document.
type SnapshotDoc struct {
	Contacts map[string]ContactDoc `json:"contacts"`
	Notes    NotebookDoc           `json:"notes"`
}
