package cli

import (
	"fmt"
	"strconv"
	"strings"
)

func (c *Cli) addBirthday(args []string) (string, error) {
	if len(args) < 2 {
		return "", fmt.Errorf("%w: provide name and date (DD.MM.YYYY)", ErrInvalidArguments)
	}
	record, err := c.findRecord(args[0])
	if err != nil {
		return "", err
	}
	if err := record.SetBirthday(args[1]); err != nil {
		return "", err
	}
	return "Birthday added.", nil
}

func (c *Cli) showBirthday(args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("%w: provide a contact name", ErrInvalidArguments)
	}
	record, err := c.findRecord(args[0])
	if err != nil {
		return "", err
	}
	if record.Birthday == nil {
		return "Birthday not set for this contact.", nil
	}
	return record.Birthday.String(), nil
}

// birthdays lists upcoming congratulation dates for the next N days
// (default 7).
func (c *Cli) birthdays(args []string) (string, error) {
	days := 7
	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil || parsed <= 0 {
			return "", fmt.Errorf("%w: days must be a positive integer", ErrInvalidArguments)
		}
		days = parsed
	}

	upcoming := c.contacts.UpcomingBirthdays(days)
	if len(upcoming) == 0 {
		return fmt.Sprintf("No upcoming birthdays in the next %d days.", days), nil
	}

	lines := []string{fmt.Sprintf("Upcoming birthdays in the next %d days:", days)}
	for _, entry := range upcoming {
		lines = append(lines, fmt.Sprintf("Congratulate %s on %s", entry.Name, entry.Date))
	}
	return strings.Join(lines, "\n"), nil
}
