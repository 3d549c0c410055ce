package cli

import (
	"errors"
	"strings"

	"github.com/yartemiuk/assistant/internal/book"
	"github.com/yartemiuk/assistant/internal/models"
)

// ErrInvalidArguments reports command arguments that are structurally
// insufficient, as opposed to present but invalid.
var ErrInvalidArguments = errors.New("invalid number of arguments")

// Cli executes parsed commands against the two collections. Handlers
// return human-readable confirmations; the caller renders them. The
// collections themselves never print or read.
type Cli struct {
	contacts *book.AddressBook
	notes    *book.NoteBook
}

// New creates a command executor over the given collections.
func New(contacts *book.AddressBook, notes *book.NoteBook) *Cli {
	return &Cli{contacts: contacts, notes: notes}
}

// ParseInput splits one command line into a lower-cased verb and its
// arguments.
func ParseInput(line string) (string, []string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "", nil
	}
	return strings.ToLower(parts[0]), parts[1:]
}

// Execute dispatches one command. Every mutating operation returns a
// short confirmation string or fails with a typed error.
func (c *Cli) Execute(command string, args []string) (string, error) {
	switch command {
	case "hello":
		return "Welcome to the assistant bot! Enter help to see commands", nil
	case "add":
		return c.addContact(args)
	case "change":
		return c.changeContact(args)
	case "phone":
		return c.showPhone(args)
	case "all":
		return c.showAll(), nil
	case "add-birthday":
		return c.addBirthday(args)
	case "show-birthday":
		return c.showBirthday(args)
	case "birthdays":
		return c.birthdays(args)
	case "add-email":
		return c.addEmail(args)
	case "add-address":
		return c.addAddress(args)
	case "delete-contact":
		return c.deleteContact(args)
	case "find-contact":
		return c.findContact(args)
	case "add-note":
		return c.addNote(args)
	case "show-notes":
		return c.showNotes(), nil
	case "find-notes":
		return c.findNotes(args)
	case "edit-note":
		return c.editNote(args)
	case "delete-note":
		return c.deleteNote(args)
	case "help":
		return helpText, nil
	default:
		return "Invalid command.", nil
	}
}

// findRecord возвращает запись или NotFoundError для write-path команд
func (c *Cli) findRecord(name string) (*models.Record, error) {
	record := c.contacts.Find(name)
	if record == nil {
		return nil, &models.NotFoundError{Kind: "contact", Key: name}
	}
	return record, nil
}
