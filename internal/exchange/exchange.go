// Package exchange moves contacts across file formats: JSON and xlsx
// export, schema-validated JSON import.
package exchange

import (
	"github.com/inkdrift/blackbook/pkg/types"
)

// Contact is the interchange representation of one record. Export writes it
// and import reads it; the CLI also uses it for --json output.
type Contact struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday string   `json:"birthday,omitempty"`
}

// Contacts converts the whole book to interchange form in book order.
func Contacts(book *types.AddressBook) []Contact {
	out := make([]Contact, 0, book.Len())
	for _, r := range book.Records() {
		out = append(out, FromRecord(r))
	}
	return out
}

// FromRecord converts one record to interchange form.
func FromRecord(r *types.Record) Contact {
	phones := r.Phones()
	c := Contact{
		Name:     r.Name(),
		Phones:   make([]string, 0, len(phones)),
		Birthday: string(r.Birthday()),
	}
	for _, p := range phones {
		c.Phones = append(c.Phones, string(p))
	}
	return c
}
