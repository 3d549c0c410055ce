package book

import (
	"sort"
	"strings"
	"time"

	"github.com/yartemiuk/assistant/internal/models"
	"github.com/yartemiuk/assistant/internal/validation"
)

// AddressBook is the keyed collection of contact records. Records are
// owned exclusively by the book and keyed by their case-sensitive name.
type AddressBook struct {
	records map[string]*models.Record
}

// NewAddressBook creates an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*models.Record)}
}

// Add inserts a record keyed by its name. An existing record with the
// same name is fully replaced, not merged.
func (b *AddressBook) Add(record *models.Record) {
	b.records[record.Name] = record
}

// Find returns the record with the exact name, or nil when absent.
// Absence in a read path is not an error.
func (b *AddressBook) Find(name string) *models.Record {
	return b.records[name]
}

// Delete removes the record with the given name. Deleting an absent
// name is a no-op.
func (b *AddressBook) Delete(name string) {
	delete(b.records, name)
}

// Len returns the number of stored records.
func (b *AddressBook) Len() int {
	return len(b.records)
}

// Records returns all records ordered by name.
func (b *AddressBook) Records() []*models.Record {
	records := make([]*models.Record, 0, len(b.records))
	for _, record := range b.records {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Name < records[j].Name })
	return records
}

// Search returns every record whose name, email, address or any phone
// contains the query as a case-insensitive substring. Results are
// ordered by name so repeated calls on an unchanged book agree.
func (b *AddressBook) Search(query string) []*models.Record {
	q := strings.ToLower(query)
	var results []*models.Record

	for _, record := range b.Records() {
		if recordMatches(record, q) {
			results = append(results, record)
		}
	}
	return results
}

// recordMatches проверяет запись по имени, email, адресу и телефонам
func recordMatches(record *models.Record, q string) bool {
	if strings.Contains(strings.ToLower(record.Name), q) {
		return true
	}
	if record.Email != nil && strings.Contains(strings.ToLower(string(*record.Email)), q) {
		return true
	}
	if record.Address != nil && strings.Contains(strings.ToLower(string(*record.Address)), q) {
		return true
	}
	for _, phone := range record.Phones {
		if strings.Contains(string(phone), q) {
			return true
		}
	}
	return false
}

// Congratulation is one upcoming-birthday entry: the contact name and
// the weekend-adjusted date on which to congratulate them.
type Congratulation struct {
	Name string
	Date string
}

// UpcomingBirthdays returns the contacts whose birthday occurs within
// the next windowDays days, today included. A greeting date falling on
// a weekend is shifted to the following Monday; the shift affects only
// the reported date, never the window check.
func (b *AddressBook) UpcomingBirthdays(windowDays int) []Congratulation {
	return b.upcomingFrom(time.Now(), windowDays)
}

func (b *AddressBook) upcomingFrom(now time.Time, windowDays int) []Congratulation {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	var upcoming []Congratulation

	for _, record := range b.Records() {
		if record.Birthday == nil {
			continue
		}
		bday := record.Birthday

		// Годовщина в текущем году. time.Date нормализует
		// 29 февраля в невисокосном году до 1 марта.
		occurrence := time.Date(today.Year(), bday.Month(), bday.Day(), 0, 0, 0, 0, time.UTC)

		delta := int(occurrence.Sub(today).Hours() / 24)
		if delta < 0 || delta > windowDays {
			continue
		}

		congrats := occurrence
		switch congrats.Weekday() {
		case time.Saturday:
			congrats = congrats.AddDate(0, 0, 2)
		case time.Sunday:
			congrats = congrats.AddDate(0, 0, 1)
		}

		upcoming = append(upcoming, Congratulation{
			Name: record.Name,
			Date: congrats.Format(validation.BirthdayLayout),
		})
	}
	return upcoming
}

// ToDoc converts the book to its persisted document: a mapping from
// contact name to contact document.
func (b *AddressBook) ToDoc() map[string]models.ContactDoc {
	doc := make(map[string]models.ContactDoc, len(b.records))
	for name, record := range b.records {
		doc[name] = record.ToDoc()
	}
	return doc
}

// AddressBookFromDoc rebuilds a book from its persisted document,
// re-validating every record on the way in.
func AddressBookFromDoc(doc map[string]models.ContactDoc) (*AddressBook, error) {
	book := NewAddressBook()
	for _, contactDoc := range doc {
		record, err := models.RecordFromDoc(contactDoc)
		if err != nil {
			return nil, err
		}
		book.Add(record)
	}
	return book, nil
}
