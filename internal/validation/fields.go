package validation

import (
	"fmt"
	"regexp"
	"time"
)

// EmailPattern определяет допустимый формат email адреса:
// локальная часть, @, домен и точка с TLD
var EmailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)

// Error описывает значение поля, не прошедшее проверку формата
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// BirthdayLayout формат даты рождения в пользовательском вводе и в хранилище
const BirthdayLayout = "02.01.2006"

// PhoneLen требуемая длина телефонного номера
const PhoneLen = 10

// ValidatePhone проверяет, что номер состоит ровно из 10 десятичных цифр
func ValidatePhone(number string) error {
	if len(number) != PhoneLen {
		return &Error{Field: "phone", Reason: fmt.Sprintf("number must be a %d-digit string of numbers", PhoneLen)}
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return &Error{Field: "phone", Reason: fmt.Sprintf("number must be a %d-digit string of numbers", PhoneLen)}
		}
	}
	return nil
}

// ValidateEmail проверяет адрес по простому шаблону local@domain.tld
func ValidateEmail(addr string) error {
	if !EmailPattern.MatchString(addr) {
		return &Error{Field: "email", Reason: "must look like local@domain.tld"}
	}
	return nil
}

// ValidateAddress проверяет, что адрес не пустой
func ValidateAddress(addr string) error {
	if addr == "" {
		return &Error{Field: "address", Reason: "must be a non-empty string"}
	}
	return nil
}

// ParseBirthday разбирает дату рождения в формате DD.MM.YYYY
func ParseBirthday(value string) (time.Time, error) {
	date, err := time.Parse(BirthdayLayout, value)
	if err != nil {
		return time.Time{}, &Error{Field: "birthday", Reason: "date must use the DD.MM.YYYY format"}
	}
	return date, nil
}
