package cli

import (
	"fmt"
	"strings"

	"github.com/yartemiuk/assistant/internal/models"
	"github.com/yartemiuk/assistant/internal/validation"
)

// addContact creates or supplements a contact. Tokens after the name
// are classified heuristically: the first 10-digit token is a phone,
// the first token with '@' and '.' is an email, everything else joins
// into an address.
func (c *Cli) addContact(args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("%w: provide at least a name", ErrInvalidArguments)
	}
	name := args[0]

	var phone, email string
	var addrParts []string
	for _, token := range args[1:] {
		if phone == "" && validation.ValidatePhone(token) == nil {
			phone = token
			continue
		}
		if email == "" && strings.Contains(token, "@") && strings.Contains(token, ".") {
			email = token
			continue
		}
		addrParts = append(addrParts, token)
	}

	record := c.contacts.Find(name)
	message := "Contact updated."
	if record == nil {
		record = models.NewRecord(name)
		c.contacts.Add(record)
		message = "Contact added."
	}

	if phone != "" {
		if err := record.AddPhone(phone); err != nil {
			return "", err
		}
	}
	if email != "" {
		if err := record.SetEmail(email); err != nil {
			return "", err
		}
	}
	if len(addrParts) > 0 {
		if err := record.SetAddress(strings.Join(addrParts, " ")); err != nil {
			return "", err
		}
	}
	return message, nil
}

// changeContact edits one field of an existing contact:
// change <name> phone <old> <new> | email <new> | address <new...>
func (c *Cli) changeContact(args []string) (string, error) {
	if len(args) < 3 {
		return "", fmt.Errorf("%w: not enough arguments for change", ErrInvalidArguments)
	}
	record, err := c.findRecord(args[0])
	if err != nil {
		return "", err
	}

	switch strings.ToLower(args[1]) {
	case "phone":
		if len(args) < 4 {
			return "", fmt.Errorf("%w: phone change requires old and new numbers", ErrInvalidArguments)
		}
		if err := record.EditPhone(args[2], args[3]); err != nil {
			return "", err
		}
		return "Phone updated.", nil
	case "email":
		if err := record.SetEmail(args[2]); err != nil {
			return "", err
		}
		return "Email updated.", nil
	case "address":
		if err := record.SetAddress(strings.Join(args[2:], " ")); err != nil {
			return "", err
		}
		return "Address updated.", nil
	default:
		return "", fmt.Errorf("unknown field %q: use 'phone', 'email' or 'address'", args[1])
	}
}

func (c *Cli) showPhone(args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("%w: provide a contact name", ErrInvalidArguments)
	}
	record, err := c.findRecord(args[0])
	if err != nil {
		return "", err
	}

	numbers := make([]string, len(record.Phones))
	for i, p := range record.Phones {
		numbers[i] = string(p)
	}
	return strings.Join(numbers, "; "), nil
}

func (c *Cli) showAll() string {
	if c.contacts.Len() == 0 {
		return "No contacts found."
	}
	var lines []string
	for _, record := range c.contacts.Records() {
		lines = append(lines, record.String())
	}
	return strings.Join(lines, "\n")
}

func (c *Cli) addEmail(args []string) (string, error) {
	if len(args) < 2 {
		return "", fmt.Errorf("%w: provide name and email", ErrInvalidArguments)
	}
	record, err := c.findRecord(args[0])
	if err != nil {
		return "", err
	}
	if err := record.SetEmail(args[1]); err != nil {
		return "", err
	}
	return "Email set.", nil
}

func (c *Cli) addAddress(args []string) (string, error) {
	if len(args) < 2 {
		return "", fmt.Errorf("%w: provide name and address", ErrInvalidArguments)
	}
	record, err := c.findRecord(args[0])
	if err != nil {
		return "", err
	}
	if err := record.SetAddress(strings.Join(args[1:], " ")); err != nil {
		return "", err
	}
	return "Address set.", nil
}

// deleteContact removes a contact; deleting an absent name is still
// reported as done, matching the idempotent collection delete.
func (c *Cli) deleteContact(args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("%w: provide a contact name", ErrInvalidArguments)
	}
	c.contacts.Delete(args[0])
	return "Contact deleted.", nil
}

func (c *Cli) findContact(args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("%w: provide search query", ErrInvalidArguments)
	}
	results := c.contacts.Search(strings.Join(args, " "))
	if len(results) == 0 {
		return "No contacts found.", nil
	}
	var lines []string
	for _, record := range results {
		lines = append(lines, record.String())
	}
	return strings.Join(lines, "\n"), nil
}
