package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/yartemiuk/assistant/internal/validation"
)

// Phone is a validated 10-digit phone number.
type Phone string

// NewPhone validates a raw number and returns it as a Phone value.
func NewPhone(number string) (Phone, error) {
	if err := validation.ValidatePhone(number); err != nil {
		return "", err
	}
	return Phone(number), nil
}

// Email is a validated email address.
type Email string

// NewEmail validates a raw address and returns it as an Email value.
func NewEmail(addr string) (Email, error) {
	if err := validation.ValidateEmail(addr); err != nil {
		return "", err
	}
	return Email(addr), nil
}

// Address is a validated non-empty postal address.
type Address string

// NewAddress validates a raw address and returns it as an Address value.
func NewAddress(addr string) (Address, error) {
	if err := validation.ValidateAddress(addr); err != nil {
		return "", err
	}
	return Address(addr), nil
}

// Birthday is a calendar date parsed from DD.MM.YYYY.
type Birthday struct {
	time.Time
}

// NewBirthday parses a raw DD.MM.YYYY value into a Birthday.
func NewBirthday(value string) (Birthday, error) {
	date, err := validation.ParseBirthday(value)
	if err != nil {
		return Birthday{}, err
	}
	return Birthday{date}, nil
}

// String renders the date back to the DD.MM.YYYY wire format.
func (b Birthday) String() string {
	return b.Format(validation.BirthdayLayout)
}

// Record is one contact: a unique name, a list of phones and
// optional email, address and birthday.
type Record struct {
	Name     string
	Phones   []Phone
	Birthday *Birthday
	Email    *Email
	Address  *Address
}

// NewRecord creates an empty contact with the given name.
// The name is the AddressBook key and never changes.
func NewRecord(name string) *Record {
	return &Record{Name: name}
}

// AddPhone validates a number and appends it to the phone list.
// Duplicates are allowed.
func (r *Record) AddPhone(number string) error {
	phone, err := NewPhone(number)
	if err != nil {
		return err
	}
	r.Phones = append(r.Phones, phone)
	return nil
}

// EditPhone replaces the first phone equal to oldNumber with newNumber.
// The slot keeps its position, only the value changes.
func (r *Record) EditPhone(oldNumber, newNumber string) error {
	i := r.findPhone(oldNumber)
	if i < 0 {
		return &NotFoundError{Kind: "phone", Key: oldNumber}
	}
	phone, err := NewPhone(newNumber)
	if err != nil {
		return err
	}
	r.Phones[i] = phone
	return nil
}

// RemovePhone deletes the first phone equal to number.
func (r *Record) RemovePhone(number string) error {
	i := r.findPhone(number)
	if i < 0 {
		return &NotFoundError{Kind: "phone", Key: number}
	}
	r.Phones = append(r.Phones[:i], r.Phones[i+1:]...)
	return nil
}

// findPhone возвращает индекс первого телефона с точно таким значением
func (r *Record) findPhone(number string) int {
	for i, p := range r.Phones {
		if string(p) == number {
			return i
		}
	}
	return -1
}

// SetEmail validates and overwrites the contact email.
func (r *Record) SetEmail(addr string) error {
	email, err := NewEmail(addr)
	if err != nil {
		return err
	}
	r.Email = &email
	return nil
}

// SetAddress validates and overwrites the contact address.
func (r *Record) SetAddress(addr string) error {
	address, err := NewAddress(addr)
	if err != nil {
		return err
	}
	r.Address = &address
	return nil
}

// SetBirthday parses and overwrites the contact birthday.
func (r *Record) SetBirthday(value string) error {
	birthday, err := NewBirthday(value)
	if err != nil {
		return err
	}
	r.Birthday = &birthday
	return nil
}

// String renders the contact as a single human-readable line.
// Field order is fixed: phones, birthday, email, address.
func (r *Record) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Contact name: %s, ", r.Name)
	if len(r.Phones) == 0 {
		sb.WriteString("phones: none")
	} else {
		numbers := make([]string, len(r.Phones))
		for i, p := range r.Phones {
			numbers[i] = string(p)
		}
		fmt.Fprintf(&sb, "phones: %s", strings.Join(numbers, "; "))
	}
	if r.Birthday != nil {
		fmt.Fprintf(&sb, ", birthday: %s", r.Birthday)
	}
	if r.Email != nil {
		fmt.Fprintf(&sb, ", email: %s", *r.Email)
	}
	if r.Address != nil {
		fmt.Fprintf(&sb, ", address: %s", *r.Address)
	}

	return sb.String()
}

// ToDoc converts the record to its persisted document shape.
func (r *Record) ToDoc() ContactDoc {
	doc := ContactDoc{
		Name:   r.Name,
		Phones: make([]string, len(r.Phones)),
	}
	for i, p := range r.Phones {
		doc.Phones[i] = string(p)
	}
	if r.Birthday != nil {
		s := r.Birthday.String()
		doc.Birthday = &s
	}
	if r.Email != nil {
		s := string(*r.Email)
		doc.Email = &s
	}
	if r.Address != nil {
		s := string(*r.Address)
		doc.Address = &s
	}
	return doc
}

// RecordFromDoc rebuilds a record from its persisted document.
// Every field is re-validated, so a corrupted stored value fails
// exactly the way fresh input would.
func RecordFromDoc(doc ContactDoc) (*Record, error) {
	record := NewRecord(doc.Name)

	for _, number := range doc.Phones {
		if err := record.AddPhone(number); err != nil {
			return nil, fmt.Errorf("contact %q: %w", doc.Name, err)
		}
	}
	if doc.Birthday != nil {
		if err := record.SetBirthday(*doc.Birthday); err != nil {
			return nil, fmt.Errorf("contact %q: %w", doc.Name, err)
		}
	}
	if doc.Email != nil {
		if err := record.SetEmail(*doc.Email); err != nil {
			return nil, fmt.Errorf("contact %q: %w", doc.Name, err)
		}
	}
	if doc.Address != nil {
		if err := record.SetAddress(*doc.Address); err != nil {
			return nil, fmt.Errorf("contact %q: %w", doc.Name, err)
		}
	}

	return record, nil
}
