// Contact export to JSON and xlsx files.
package exchange

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/inkdrift/blackbook/pkg/types"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatXLSX = "xlsx"
)

// sheetName is the xlsx worksheet holding the contact rows.
const sheetName = "Contacts"

// Export writes the book to path in the given format.
func Export(book *types.AddressBook, format, path string) error {
	switch format {
	case FormatJSON:
		return ExportJSON(book, path)
	case FormatXLSX:
		return ExportXLSX(book, path)
	default:
		return fmt.Errorf("unknown export format %q (valid: %s, %s)", format, FormatJSON, FormatXLSX)
	}
}

// ExportJSON writes the book as a JSON contact array, the same shape the
// import command reads back.
func ExportJSON(book *types.AddressBook, path string) error {
	data, err := json.MarshalIndent(Contacts(book), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling contacts: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ExportXLSX writes the book as a spreadsheet with a header row and one
// contact per row. Phones are comma-joined into a single cell.
func ExportXLSX(book *types.AddressBook, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}

	headers := []string{"Name", "Phones", "Birthday"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("resolving header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return fmt.Errorf("writing header %s: %w", h, err)
		}
	}

	for row, c := range Contacts(book) {
		values := []string{c.Name, strings.Join(c.Phones, ", "), c.Birthday}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return fmt.Errorf("resolving cell for %s: %w", c.Name, err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("writing row for %s: %w", c.Name, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
