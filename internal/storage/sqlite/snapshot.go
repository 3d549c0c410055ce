package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/yartemiuk/assistant/internal/book"
	"github.com/yartemiuk/assistant/internal/models"
	"github.com/yartemiuk/assistant/internal/storage"
)

// Load restores both collections from the tables. An empty database
// loads as two empty collections.
func (s *Storage) Load(ctx context.Context) (*book.AddressBook, *book.NoteBook, error) {
	contactDocs, err := s.loadContacts(ctx)
	if err != nil {
		return nil, nil, err
	}
	notesDoc, err := s.loadNotes(ctx)
	if err != nil {
		return nil, nil, err
	}

	contacts, err := book.AddressBookFromDoc(contactDocs)
	if err != nil {
		return nil, nil, err
	}
	notes, err := book.NoteBookFromDoc(notesDoc)
	if err != nil {
		return nil, nil, err
	}
	return contacts, notes, nil
}

// Save replaces all rows in one transaction.
func (s *Storage) Save(ctx context.Context, contacts *book.AddressBook, notes *book.NoteBook) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	for _, table := range []string{"contacts", "notes", "meta"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, doc := range contacts.ToDoc() {
		phones, err := json.Marshal(doc.Phones)
		if err != nil {
			return fmt.Errorf("failed to marshal phones: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO contacts (name, phones, birthday, email, address) VALUES (?, ?, ?, ?, ?)`,
			doc.Name, string(phones), doc.Birthday, doc.Email, doc.Address)
		if err != nil {
			return fmt.Errorf("failed to insert contact: %w", err)
		}
	}

	notesDoc := notes.ToDoc()
	for idStr, doc := range notesDoc.Notes {
		tags, err := json.Marshal(doc.Tags)
		if err != nil {
			return fmt.Errorf("failed to marshal tags: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO notes (id, text, created, tags) VALUES (?, ?, ?, ?)`,
			idStr, doc.Text, doc.Created, string(tags))
		if err != nil {
			return fmt.Errorf("failed to insert note: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO meta (key, value) VALUES ('next_id', ?)`,
		strconv.Itoa(notesDoc.NextID))
	if err != nil {
		return fmt.Errorf("failed to save next_id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

func (s *Storage) loadContacts(ctx context.Context) (map[string]models.ContactDoc, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, phones, birthday, email, address FROM contacts`)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	docs := make(map[string]models.ContactDoc)
	for rows.Next() {
		var doc models.ContactDoc
		var phones string
		if err := rows.Scan(&doc.Name, &phones, &doc.Birthday, &doc.Email, &doc.Address); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		if err := json.Unmarshal([]byte(phones), &doc.Phones); err != nil {
			return nil, fmt.Errorf("%w: contact %s phones: %v", storage.ErrCorrupt, doc.Name, err)
		}
		docs[doc.Name] = doc
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contacts: %w", err)
	}
	return docs, nil
}

func (s *Storage) loadNotes(ctx context.Context) (models.NotebookDoc, error) {
	doc := models.NotebookDoc{Notes: make(map[string]models.NoteDoc)}

	rows, err := s.db.QueryContext(ctx, `SELECT id, text, created, tags FROM notes`)
	if err != nil {
		return doc, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var noteDoc models.NoteDoc
		var tags string
		if err := rows.Scan(&noteDoc.ID, &noteDoc.Text, &noteDoc.Created, &tags); err != nil {
			return doc, fmt.Errorf("failed to scan note: %w", err)
		}
		if err := json.Unmarshal([]byte(tags), &noteDoc.Tags); err != nil {
			return doc, fmt.Errorf("%w: note %d tags: %v", storage.ErrCorrupt, noteDoc.ID, err)
		}
		doc.Notes[strconv.Itoa(noteDoc.ID)] = noteDoc
	}
	if err := rows.Err(); err != nil {
		return doc, fmt.Errorf("failed to iterate notes: %w", err)
	}

	var nextID string
	err = s.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = 'next_id'`).Scan(&nextID)
	switch {
	case err == sql.ErrNoRows:
		// Счетчик восстановит NoteBookFromDoc
	case err != nil:
		return doc, fmt.Errorf("failed to query next_id: %w", err)
	default:
		doc.NextID, err = strconv.Atoi(nextID)
		if err != nil {
			return doc, fmt.Errorf("%w: bad next_id %q", storage.ErrCorrupt, nextID)
		}
	}
	return doc, nil
}
