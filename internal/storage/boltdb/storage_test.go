package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yartemiuk/assistant/internal/book"
	"github.com/yartemiuk/assistant/internal/models"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	store, err := New(context.Background(), filepath.Join(t.TempDir(), "assistant.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestLoadEmptyDatabase(t *testing.T) {
	store := newTestStorage(t)

	contacts, notes, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, contacts.Len())
	assert.Equal(t, 0, notes.Len())
	assert.Equal(t, 1, notes.NextID())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	contacts := book.NewAddressBook()
	anna := models.NewRecord("Anna")
	require.NoError(t, anna.AddPhone("0501234567"))
	require.NoError(t, anna.SetAddress("Kyiv"))
	contacts.Add(anna)

	notes := book.NewNoteBook()
	notes.Add(models.NewNote("Buy milk #shopping"))
	notes.Add(models.NewNote("plain"))
	_, err := notes.Delete(1)
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, contacts, notes))

	gotContacts, gotNotes, err := store.Load(ctx)
	require.NoError(t, err)

	gotAnna := gotContacts.Find("Anna")
	require.NotNil(t, gotAnna)
	assert.Equal(t, []models.Phone{"0501234567"}, gotAnna.Phones)
	assert.Equal(t, models.Address("Kyiv"), *gotAnna.Address)

	// Дыра от удаленной заметки и счетчик переживают round-trip
	require.Equal(t, 1, gotNotes.Len())
	assert.Nil(t, gotNotes.Get(1))
	assert.Equal(t, "plain", gotNotes.Get(2).Text)
	assert.Equal(t, 3, gotNotes.NextID())
}

func TestSaveOverwritesPreviousSnapshot(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	contacts := book.NewAddressBook()
	contacts.Add(models.NewRecord("Anna"))
	contacts.Add(models.NewRecord("Bob"))
	notes := book.NewNoteBook()
	require.NoError(t, store.Save(ctx, contacts, notes))

	// Второй Save с меньшим набором не должен оставить старые записи
	contacts.Delete("Bob")
	require.NoError(t, store.Save(ctx, contacts, notes))

	gotContacts, _, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, gotContacts.Len())
	assert.Nil(t, gotContacts.Find("Bob"))
}
