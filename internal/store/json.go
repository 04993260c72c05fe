// JSON record structures for address book persistence.
// These structures define the on-disk format of the json backend.
package store

import (
	"fmt"

	"github.com/inkdrift/blackbook/pkg/types"
)

// bookFormatVersion is written into every envelope; loads reject any other
// version as corrupt.
const bookFormatVersion = 1

// bookJSON is the versioned envelope around the contact list.
type bookJSON struct {
	Version  int          `json:"version"`
	Contacts []recordJSON `json:"contacts"`
}

// recordJSON represents one contact in the file.
type recordJSON struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday string   `json:"birthday,omitempty"`
}

// recordToJSON converts a record to its file representation.
func recordToJSON(r *types.Record) recordJSON {
	phones := r.Phones()
	out := recordJSON{
		Name:     r.Name(),
		Phones:   make([]string, 0, len(phones)),
		Birthday: string(r.Birthday()),
	}
	for _, p := range phones {
		out.Phones = append(out.Phones, string(p))
	}
	return out
}

// contactsJSON converts the whole book in book order.
func contactsJSON(book *types.AddressBook) []recordJSON {
	contacts := make([]recordJSON, 0, book.Len())
	for _, r := range book.Records() {
		contacts = append(contacts, recordToJSON(r))
	}
	return contacts
}

// hydrateRecord rebuilds a record through the validating constructors, so
// stored data that no longer passes validation is reported as corrupt.
func hydrateRecord(rec recordJSON) (*types.Record, error) {
	if rec.Name == "" {
		return nil, fmt.Errorf("contact with empty name: %w", ErrCorrupt)
	}
	r := types.NewRecord(rec.Name)
	for _, p := range rec.Phones {
		if err := r.AddPhone(p); err != nil {
			return nil, fmt.Errorf("contact %s: phone %q: %w: %w", rec.Name, p, ErrCorrupt, err)
		}
	}
	if rec.Birthday != "" {
		if err := r.AddBirthday(rec.Birthday); err != nil {
			return nil, fmt.Errorf("contact %s: birthday %q: %w: %w", rec.Name, rec.Birthday, ErrCorrupt, err)
		}
	}
	return r, nil
}
