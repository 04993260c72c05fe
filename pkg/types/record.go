package types

import (
	"fmt"
	"strings"
)

// BirthdayNotSet is displayed in place of a date for records without a
// birthday.
const BirthdayNotSet = "Birthday not set."

// Record is a single contact: an immutable name, an ordered sequence of
// phone numbers, and an optional birthday.
//
// The phone sequence keeps insertion order and may contain duplicates;
// nothing deduplicates it. Each successful AddBirthday overwrites the
// previous value.
type Record struct {
	name     string
	phones   []Phone
	birthday Birthday
}

// NewRecord creates a record with the given name and no phone numbers.
func NewRecord(name string) *Record {
	return &Record{name: name}
}

// Name returns the contact name.
func (r *Record) Name() string { return r.name }

// Phones returns a copy of the phone sequence in insertion order.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// AddPhone validates the number and appends it to the sequence.
// Duplicates are kept. Returns ErrInvalidPhone for a malformed number.
func (r *Record) AddPhone(number string) error {
	p, err := NewPhone(number)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes the first occurrence of the number from the sequence.
// Returns ErrNotFound, wrapped with the number, when it is absent.
func (r *Record) RemovePhone(number string) error {
	for i, p := range r.phones {
		if string(p) == number {
			r.phones = append(r.phones[:i], r.phones[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("phone number %s %w", number, ErrNotFound)
}

// EditPhone replaces the first occurrence of oldNumber with newNumber.
// The new number is validated before anything else, so an invalid value
// leaves the sequence untouched. The old occurrence is removed and the new
// number appended; the sequence length never changes. Returns the
// confirmation message shown to the user.
func (r *Record) EditPhone(oldNumber, newNumber string) (string, error) {
	if !ValidPhone(newNumber) {
		return "", ErrInvalidPhone
	}
	if err := r.RemovePhone(oldNumber); err != nil {
		return "", err
	}
	if err := r.AddPhone(newNumber); err != nil {
		return "", err
	}
	return fmt.Sprintf("Phone number updated: %s -> %s", oldNumber, newNumber), nil
}

// FindPhone returns the first phone equal to number and whether one exists.
func (r *Record) FindPhone(number string) (Phone, bool) {
	for _, p := range r.phones {
		if string(p) == number {
			return p, true
		}
	}
	return "", false
}

// AddBirthday validates the date and sets it, replacing any prior value.
// Returns ErrInvalidBirthday for a malformed or impossible date.
func (r *Record) AddBirthday(date string) error {
	b, err := NewBirthday(date)
	if err != nil {
		return err
	}
	r.birthday = b
	return nil
}

// Birthday returns the stored birthday; it is zero when not set.
func (r *Record) Birthday() Birthday { return r.birthday }

// ShowBirthday returns the stored date or the not-set sentinel.
func (r *Record) ShowBirthday() string {
	if r.birthday.IsZero() {
		return BirthdayNotSet
	}
	return r.birthday.String()
}

// PhoneList returns the phone sequence joined by ", ", empty when the
// record has no phones.
func (r *Record) PhoneList() string {
	parts := make([]string, len(r.phones))
	for i, p := range r.phones {
		parts[i] = string(p)
	}
	return strings.Join(parts, ", ")
}

// String renders the one-line display form:
//
//	<name>: <phone1, phone2, ...>; Birthday: <date or sentinel>
//
// A record without phones renders an empty phone segment.
func (r *Record) String() string {
	return fmt.Sprintf("%s: %s; Birthday: %s", r.name, r.PhoneList(), r.ShowBirthday())
}
