package types

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the birthday wire and display format (DD.MM.YYYY).
const DateLayout = "02.01.2006"

// Field validation errors.
var (
	ErrInvalidPhone    = errors.New("invalid phone number: should contain 10 digits")
	ErrInvalidBirthday = errors.New("invalid date format: use DD.MM.YYYY")
	ErrInvalidDate     = errors.New("invalid date")
)

// Phone is a validated phone number: exactly ten ASCII digits, no
// separators or prefixes.
type Phone string

// ValidPhone reports whether s consists of exactly ten ASCII digits.
func ValidPhone(s string) bool {
	if len(s) != 10 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// NewPhone validates s and returns it as a Phone.
// Returns ErrInvalidPhone when s is not exactly ten ASCII digits.
func NewPhone(s string) (Phone, error) {
	if !ValidPhone(s) {
		return "", ErrInvalidPhone
	}
	return Phone(s), nil
}

func (p Phone) String() string { return string(p) }

// Birthday is a validated calendar date in DD.MM.YYYY form. The zero value
// means no birthday is set. The validated input string is kept verbatim for
// storage and display.
type Birthday string

// ValidBirthday reports whether s parses as a real calendar date in
// DD.MM.YYYY form. Impossible dates (February 30, month 13) are rejected.
func ValidBirthday(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// NewBirthday validates s and returns it as a Birthday.
// Returns ErrInvalidBirthday when s is not a DD.MM.YYYY calendar date.
func NewBirthday(s string) (Birthday, error) {
	if !ValidBirthday(s) {
		return "", ErrInvalidBirthday
	}
	return Birthday(s), nil
}

func (b Birthday) String() string { return string(b) }

// IsZero reports whether no birthday is set.
func (b Birthday) IsZero() bool { return b == "" }

// Date returns the stored date at midnight UTC.
func (b Birthday) Date() (time.Time, error) {
	t, err := time.Parse(DateLayout, string(b))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse birthday: %w", err)
	}
	return t, nil
}

// OccurrenceIn returns the birthday's occurrence in the given year, keeping
// the stored day and month. Returns ErrInvalidDate when that combination
// does not exist in the year (February 29 outside leap years). Detected by
// checking whether time.Date normalized the day away.
func (b Birthday) OccurrenceIn(year int) (time.Time, error) {
	t, err := b.Date()
	if err != nil {
		return time.Time{}, err
	}
	occ := time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	if occ.Day() != t.Day() || occ.Month() != t.Month() {
		return time.Time{}, fmt.Errorf("%s has no occurrence in %d: %w", b, year, ErrInvalidDate)
	}
	return occ, nil
}
