// Contact import from schema-validated JSON files.
package exchange

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/inkdrift/blackbook/pkg/types"
)

//go:embed schema.json
var contactSchema string

// ErrInvalidPayload marks an import file that fails schema validation.
var ErrInvalidPayload = errors.New("invalid import payload")

// Report summarizes an import: how many contacts merged, how many were
// skipped, and why each skip happened.
type Report struct {
	Imported int
	Skipped  int
	Failures []string
}

// String renders the one-line summary shown after an import.
func (r Report) String() string {
	return fmt.Sprintf("Imported %d contacts, skipped %d.", r.Imported, r.Skipped)
}

// Import reads a JSON contact array from path and merges it into the book.
// The whole payload is checked against the embedded schema before any
// contact is touched; a failing payload merges nothing. Merging follows the
// add command: find-or-create by name, append phones, overwrite the
// birthday. A contact whose fields fail validation is skipped and reported;
// the rest of the payload still merges.
func Import(book *types.AddressBook, path string) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := validatePayload(data); err != nil {
		return Report{}, fmt.Errorf("%s: %w", path, err)
	}

	var contacts []Contact
	if err := json.Unmarshal(data, &contacts); err != nil {
		return Report{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	var report Report
	for _, c := range contacts {
		if err := merge(book, c); err != nil {
			report.Skipped++
			report.Failures = append(report.Failures, fmt.Sprintf("%s: %s", c.Name, err))
			continue
		}
		report.Imported++
	}
	return report, nil
}

// validatePayload checks the raw payload against the embedded contact
// schema. Violations are collected into one ErrInvalidPayload.
func validatePayload(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(contactSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	if result.Valid() {
		return nil
	}
	var details []string
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidPayload, strings.Join(details, "; "))
}

// merge applies one imported contact with add semantics. Field validation
// runs before the book is touched, so a skipped contact leaves no trace.
func merge(book *types.AddressBook, c Contact) error {
	for _, p := range c.Phones {
		if !types.ValidPhone(p) {
			return fmt.Errorf("phone %q: %w", p, types.ErrInvalidPhone)
		}
	}
	if c.Birthday != "" && !types.ValidBirthday(c.Birthday) {
		return fmt.Errorf("birthday %q: %w", c.Birthday, types.ErrInvalidBirthday)
	}

	rec := book.Find(c.Name)
	if rec == nil {
		rec = types.NewRecord(c.Name)
		book.AddRecord(rec)
	}
	for _, p := range c.Phones {
		if err := rec.AddPhone(p); err != nil {
			return err
		}
	}
	if c.Birthday != "" {
		if err := rec.AddBirthday(c.Birthday); err != nil {
			return err
		}
	}
	return nil
}
