package models

import "fmt"

// NotFoundError reports a lookup that was required to succeed:
// a contact name, a note id or a phone value that is not present.
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.Key)
}
