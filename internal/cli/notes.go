package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yartemiuk/assistant/internal/models"
)

func (c *Cli) addNote(args []string) (string, error) {
	text := strings.Join(args, " ")
	if text == "" {
		return "", fmt.Errorf("%w: provide text for the note", ErrInvalidArguments)
	}
	return c.notes.Add(models.NewNote(text)), nil
}

func (c *Cli) showNotes() string {
	if c.notes.Len() == 0 {
		return "No notes found."
	}
	var blocks []string
	for _, note := range c.notes.Notes() {
		blocks = append(blocks, note.String())
	}
	return strings.Join(blocks, "\n\n")
}

func (c *Cli) findNotes(args []string) (string, error) {
	query := strings.Join(args, " ")
	if query == "" {
		return "", fmt.Errorf("%w: provide search text", ErrInvalidArguments)
	}
	found := c.notes.Find(query)
	if len(found) == 0 {
		return "No notes found matching your query.", nil
	}
	var blocks []string
	for _, note := range found {
		blocks = append(blocks, note.String())
	}
	return strings.Join(blocks, "\n\n"), nil
}

func (c *Cli) editNote(args []string) (string, error) {
	if len(args) < 2 {
		return "", fmt.Errorf("%w: provide note ID and new text", ErrInvalidArguments)
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return "", fmt.Errorf("%w: note ID must be a number", ErrInvalidArguments)
	}
	return c.notes.Edit(id, strings.Join(args[1:], " "))
}

func (c *Cli) deleteNote(args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("%w: provide a note ID", ErrInvalidArguments)
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return "", fmt.Errorf("%w: note ID must be a number", ErrInvalidArguments)
	}
	return c.notes.Delete(id)
}
