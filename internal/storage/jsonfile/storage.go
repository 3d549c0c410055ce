package jsonfile

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/yartemiuk/assistant/internal/book"
	"github.com/yartemiuk/assistant/internal/crypto"
	"github.com/yartemiuk/assistant/internal/models"
	"github.com/yartemiuk/assistant/internal/storage"
)

// Storage keeps both collections in a single JSON file:
// {"contacts": {...}, "notes": {"next_id": N, "notes": {...}}}.
// With a passphrase set the document is encrypted at rest.
type Storage struct {
	path       string
	passphrase string
	salt       []byte
}

// envelope оборачивает зашифрованный snapshot вместе с солью
type envelope struct {
	Salt    string `json:"salt"`
	Payload string `json:"payload"`
	Version int    `json:"version"`
}

// New creates a JSON file storage. An empty passphrase means the
// snapshot is written in plain text.
func New(path, passphrase string) *Storage {
	return &Storage{path: path, passphrase: passphrase}
}

// Load reads and decodes the snapshot file. A missing file loads as
// two empty collections.
func (s *Storage) Load(ctx context.Context) (*book.AddressBook, *book.NoteBook, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return book.NewAddressBook(), book.NewNoteBook(), nil
		}
		return nil, nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	// Зашифрованный файл распознаем по envelope с payload
	var env envelope
	if json.Unmarshal(data, &env) == nil && env.Payload != "" {
		data, err = s.decryptEnvelope(env)
		if err != nil {
			return nil, nil, err
		}
	}

	var doc models.SnapshotDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", storage.ErrCorrupt, err)
	}

	contacts, err := book.AddressBookFromDoc(doc.Contacts)
	if err != nil {
		return nil, nil, err
	}
	notes, err := book.NoteBookFromDoc(doc.Notes)
	if err != nil {
		return nil, nil, err
	}
	return contacts, notes, nil
}

// Save serializes both collections and writes them in one atomic step:
// the document goes to a uniquely named temp file first and is renamed
// over the target, so a crash never leaves a truncated snapshot.
func (s *Storage) Save(ctx context.Context, contacts *book.AddressBook, notes *book.NoteBook) error {
	doc := models.SnapshotDoc{
		Contacts: contacts.ToDoc(),
		Notes:    notes.ToDoc(),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if s.passphrase != "" {
		data, err = s.encryptPayload(data)
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	tmp := s.path + ".tmp-" + uuid.NewString()
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// Close is a no-op: the file is only held open during Load and Save.
func (s *Storage) Close() error {
	return nil
}

func (s *Storage) encryptPayload(plaintext []byte) ([]byte, error) {
	if s.salt == nil {
		salt, err := crypto.GenerateSalt()
		if err != nil {
			return nil, err
		}
		s.salt = salt
	}

	key, err := crypto.DeriveKey(s.passphrase, s.salt)
	if err != nil {
		return nil, err
	}
	encrypted, err := crypto.Encrypt(plaintext, key)
	if err != nil {
		return nil, err
	}

	env := envelope{
		Version: 1,
		Salt:    base64.StdEncoding.EncodeToString(s.salt),
		Payload: base64.StdEncoding.EncodeToString(encrypted),
	}
	return json.MarshalIndent(env, "", "  ")
}

func (s *Storage) decryptEnvelope(env envelope) ([]byte, error) {
	if s.passphrase == "" {
		return nil, storage.ErrPassphraseRequired
	}

	salt, err := base64.StdEncoding.DecodeString(env.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: bad salt encoding", storage.ErrCorrupt)
	}
	payload, err := base64.StdEncoding.DecodeString(env.Payload)
	if err != nil {
		return nil, fmt.Errorf("%w: bad payload encoding", storage.ErrCorrupt)
	}

	key, err := crypto.DeriveKey(s.passphrase, salt)
	if err != nil {
		return nil, err
	}
	plaintext, err := crypto.Decrypt(payload, key)
	if err != nil {
		return nil, err
	}

	// Соль переиспользуется при следующем сохранении
	s.salt = salt
	return plaintext, nil
}
