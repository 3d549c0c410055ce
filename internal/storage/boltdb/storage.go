package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"go.etcd.io/bbolt"

	"github.com/yartemiuk/assistant/internal/book"
	"github.com/yartemiuk/assistant/internal/models"
	"github.com/yartemiuk/assistant/internal/storage"
)

var (
	// BoltDB bucket names
	bucketContacts = []byte("contacts")
	bucketNotes    = []byte("notes")
	bucketMeta     = []byte("meta")

	keyNextID = []byte("next_id")
)

// Storage persists both collections in a BoltDB file: one bucket per
// collection holding JSON documents, plus a meta bucket for the note
// id counter.
type Storage struct {
	db *bbolt.DB
}

// New opens (or creates) the BoltDB file at dbPath.
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{db: db}
	if err := s.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}
	return s, nil
}

// Close closes the database file.
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketContacts, bucketNotes, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

// Load restores both collections from the buckets. An empty database
// loads as two empty collections.
func (s *Storage) Load(ctx context.Context) (*book.AddressBook, *book.NoteBook, error) {
	contactDocs := make(map[string]models.ContactDoc)
	notesDoc := models.NotebookDoc{Notes: make(map[string]models.NoteDoc)}

	err := s.db.View(func(tx *bbolt.Tx) error {
		contacts := tx.Bucket(bucketContacts)
		if contacts == nil {
			return fmt.Errorf("contacts bucket not found")
		}
		if err := contacts.ForEach(func(k, v []byte) error {
			var doc models.ContactDoc
			if err := json.Unmarshal(v, &doc); err != nil {
				return fmt.Errorf("%w: contact %s: %v", storage.ErrCorrupt, k, err)
			}
			contactDocs[string(k)] = doc
			return nil
		}); err != nil {
			return err
		}

		notes := tx.Bucket(bucketNotes)
		if notes == nil {
			return fmt.Errorf("notes bucket not found")
		}
		if err := notes.ForEach(func(k, v []byte) error {
			var doc models.NoteDoc
			if err := json.Unmarshal(v, &doc); err != nil {
				return fmt.Errorf("%w: note %s: %v", storage.ErrCorrupt, k, err)
			}
			notesDoc.Notes[string(k)] = doc
			return nil
		}); err != nil {
			return err
		}

		meta := tx.Bucket(bucketMeta)
		if meta == nil {
			return fmt.Errorf("meta bucket not found")
		}
		if raw := meta.Get(keyNextID); raw != nil {
			nextID, err := strconv.Atoi(string(raw))
			if err != nil {
				return fmt.Errorf("%w: bad next_id %q", storage.ErrCorrupt, raw)
			}
			notesDoc.NextID = nextID
		}
		return nil
	})
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

// Save rewrites all three buckets inside a single transaction, so the
// stored snapshot is always either the old state or the new one.
func (s *Storage) Save(ctx context.Context, contacts *book.AddressBook, notes *book.NoteBook) error {
	contactDocs := contacts.ToDoc()
	notesDoc := notes.ToDoc()

	return s.db.Update(func(tx *bbolt.Tx) error {
		// Пересоздаем buckets, чтобы не остались удаленные записи
		for _, name := range [][]byte{bucketContacts, bucketNotes, bucketMeta} {
			if err := tx.DeleteBucket(name); err != nil && err != bbolt.ErrBucketNotFound {
				return fmt.Errorf("failed to reset %s bucket: %w", name, err)
			}
		}

		contactsBucket, err := tx.CreateBucket(bucketContacts)
		if err != nil {
			return fmt.Errorf("failed to create contacts bucket: %w", err)
		}
		for name, doc := range contactDocs {
			data, err := json.Marshal(doc)
			if err != nil {
				return fmt.Errorf("failed to marshal contact: %w", err)
			}
			if err := contactsBucket.Put([]byte(name), data); err != nil {
				return fmt.Errorf("failed to save contact: %w", err)
			}
		}

		notesBucket, err := tx.CreateBucket(bucketNotes)
		if err != nil {
			return fmt.Errorf("failed to create notes bucket: %w", err)
		}
		for id, doc := range notesDoc.Notes {
			data, err := json.Marshal(doc)
			if err != nil {
				return fmt.Errorf("failed to marshal note: %w", err)
			}
			if err := notesBucket.Put([]byte(id), data); err != nil {
				return fmt.Errorf("failed to save note: %w", err)
			}
		}

		metaBucket, err := tx.CreateBucket(bucketMeta)
		if err != nil {
			return fmt.Errorf("failed to create meta bucket: %w", err)
		}
		if err := metaBucket.Put(keyNextID, []byte(strconv.Itoa(notesDoc.NextID))); err != nil {
			return fmt.Errorf("failed to save next_id: %w", err)
		}
		return nil
	})
}
