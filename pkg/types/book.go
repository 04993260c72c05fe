package types

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// Lookup errors.
var (
	ErrNotFound   = errors.New("not found")
	ErrNoContacts = errors.New("no contacts found")
)

// upcomingWindowDays bounds the birthday window: today through seven days
// out, inclusive on both ends.
const upcomingWindowDays = 7

// AddressBook is a name-keyed, insertion-ordered collection of records.
// It notifies its View of additions and renders lists and help through the
// same view. Not safe for concurrent use.
type AddressBook struct {
	view    View
	names   []string
	records map[string]*Record
}

// NewAddressBook creates an empty book. A nil view defaults to the console
// view.
func NewAddressBook(view View) *AddressBook {
	if view == nil {
		view = ConsoleView{}
	}
	return &AddressBook{
		view:    view,
		records: make(map[string]*Record),
	}
}

// View returns the display collaborator.
func (b *AddressBook) View() View { return b.view }

// Len returns the number of records in the book.
func (b *AddressBook) Len() int { return len(b.records) }

// AddRecord inserts the record under its name. An existing record with the
// same name is replaced but keeps its position in the book order. The view
// is notified on every call, replacements included.
func (b *AddressBook) AddRecord(r *Record) {
	b.Restore(r)
	b.view.DisplayMessage(fmt.Sprintf("Contact %s added successfully!", r.Name()))
}

// Restore inserts the record without notifying the view. Persistence and
// import use it when rebuilding a book from stored data.
func (b *AddressBook) Restore(r *Record) {
	if _, exists := b.records[r.Name()]; !exists {
		b.names = append(b.names, r.Name())
	}
	b.records[r.Name()] = r
}

// Find returns the record with the given name, or nil when the book has no
// such contact. Callers turn the nil into a contact-not-found report.
func (b *AddressBook) Find(name string) *Record {
	return b.records[name]
}

// Remove deletes the record with the given name.
// Returns ErrNotFound, wrapped with the name, when it is absent.
func (b *AddressBook) Remove(name string) error {
	if _, ok := b.records[name]; !ok {
		return fmt.Errorf("contact '%s' %w", name, ErrNotFound)
	}
	delete(b.records, name)
	for i, n := range b.names {
		if n == name {
			b.names = append(b.names[:i], b.names[i+1:]...)
			break
		}
	}
	return nil
}

// Records returns the records in book order.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(b.names))
	for _, name := range b.names {
		out = append(out, b.records[name])
	}
	return out
}

// All returns the display line of every record in book order.
// Returns ErrNoContacts when the book is empty.
func (b *AddressBook) All() ([]string, error) {
	if len(b.records) == 0 {
		return nil, ErrNoContacts
	}
	lines := make([]string, 0, len(b.names))
	for _, name := range b.names {
		lines = append(lines, b.records[name].String())
	}
	return lines, nil
}

// ShowAll renders every record through the view, or the no-contacts message
// for an empty book.
func (b *AddressBook) ShowAll() {
	lines, err := b.All()
	if err != nil {
		b.view.DisplayMessage("No contacts found.")
		return
	}
	b.view.DisplayContacts(lines)
}

// ShowHelp renders the command reference through the view.
func (b *AddressBook) ShowHelp(commands []Command) {
	b.view.DisplayHelp(commands)
}

// FindMatching returns the display lines of records whose name matches the
// glob pattern (doublestar syntax, case-sensitive), in book order.
// Returns ErrNoContacts when nothing matches and a wrapped
// doublestar.ErrBadPattern for a malformed pattern.
func (b *AddressBook) FindMatching(pattern string) ([]string, error) {
	var lines []string
	for _, name := range b.names {
		ok, err := doublestar.Match(pattern, name)
		if err != nil {
			return nil, fmt.Errorf("pattern '%s': %w", pattern, err)
		}
		if ok {
			lines = append(lines, b.records[name].String())
		}
	}
	if len(lines) == 0 {
		return nil, ErrNoContacts
	}
	return lines, nil
}

// UpcomingBirthdays lists the contacts whose birthday occurrence in the
// reference year falls within the closed window [ref, ref+7 days]. Both
// dates are compared at midnight, so the reference time of day is
// irrelevant. A birthday with no occurrence in the reference year
// (February 29 outside leap years) skips that record only; the scan never
// aborts. Output is one "<name>: <DD.MM.YYYY>" line per match in book
// order, or the no-birthdays sentinel.
func (b *AddressBook) UpcomingBirthdays(ref time.Time) string {
	refDay := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	var lines []string
	for _, name := range b.names {
		rec := b.records[name]
		if rec.Birthday().IsZero() {
			continue
		}
		occ, err := rec.Birthday().OccurrenceIn(refDay.Year())
		if err != nil {
			continue
		}
		days := int(occ.Sub(refDay).Hours() / 24)
		if days >= 0 && days <= upcomingWindowDays {
			lines = append(lines, fmt.Sprintf("%s: %s", name, occ.Format(DateLayout)))
		}
	}
	if len(lines) == 0 {
		return "No birthdays in the next week."
	}
	return strings.Join(lines, "\n")
}
