// SQLite backend. The database holds one address book; saves replace its
// whole content inside a single transaction.
package store

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/inkdrift/blackbook/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// SQLiteStore persists the book in a SQLite database file.
type SQLiteStore struct {
	dataDir string
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore creates a store writing addressbook.db under dataDir.
func NewSQLiteStore(dataDir string) *SQLiteStore {
	return &SQLiteStore{dataDir: dataDir}
}

// Path returns the database file location.
func (s *SQLiteStore) Path() string {
	return filepath.Join(s.dataDir, BookFileName+".db")
}

// open opens the database and applies the schema. Schema statements use
// IF NOT EXISTS, so opening an existing book is a no-op.
func (s *SQLiteStore) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.Path())
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", s.Path(), err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema for %s: %w: %w", s.Path(), ErrCorrupt, err)
	}
	return db, nil
}

// Load rebuilds the book from the contacts and phones tables in stored
// position order. A missing database file yields an empty book.
func (s *SQLiteStore) Load(view types.View) (*types.AddressBook, error) {
	book := types.NewAddressBook(view)

	if _, err := os.Stat(s.Path()); errors.Is(err, os.ErrNotExist) {
		return book, nil
	}

	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	type contactRow struct {
		id       string
		name     string
		birthday sql.NullString
	}

	rows, err := db.Query("SELECT contact_id, name, birthday FROM contacts ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("querying contacts: %w: %w", ErrCorrupt, err)
	}
	var contacts []contactRow
	for rows.Next() {
		var c contactRow
		if err := rows.Scan(&c.id, &c.name, &c.birthday); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning contact: %w: %w", ErrCorrupt, err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("reading contacts: %w: %w", ErrCorrupt, err)
	}
	rows.Close()

	for _, c := range contacts {
		rec := recordJSON{Name: c.name, Birthday: c.birthday.String}

		phoneRows, err := db.Query(
			"SELECT number FROM phones WHERE contact_id = ? ORDER BY position", c.id,
		)
		if err != nil {
			return nil, fmt.Errorf("querying phones for %s: %w: %w", c.name, ErrCorrupt, err)
		}
		for phoneRows.Next() {
			var number string
			if err := phoneRows.Scan(&number); err != nil {
				phoneRows.Close()
				return nil, fmt.Errorf("scanning phone for %s: %w: %w", c.name, ErrCorrupt, err)
			}
			rec.Phones = append(rec.Phones, number)
		}
		if err := phoneRows.Err(); err != nil {
			phoneRows.Close()
			return nil, fmt.Errorf("reading phones for %s: %w: %w", c.name, ErrCorrupt, err)
		}
		phoneRows.Close()

		r, err := hydrateRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Path(), err)
		}
		book.Restore(r)
	}
	return book, nil
}

// Save replaces the stored book with the given one inside a single
// transaction, so a failed save leaves the previous snapshot untouched.
func (s *SQLiteStore) Save(book *types.AddressBook) error {
	if err := os.MkdirAll(s.dataDir, 0755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM phones"); err != nil {
		return fmt.Errorf("clearing phones: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM contacts"); err != nil {
		return fmt.Errorf("clearing contacts: %w", err)
	}

	for pos, r := range book.Records() {
		contactID := generateUUID()
		var birthday any
		if !r.Birthday().IsZero() {
			birthday = string(r.Birthday())
		}
		if _, err := tx.Exec(
			"INSERT INTO contacts (contact_id, name, birthday, position) VALUES (?, ?, ?, ?)",
			contactID, r.Name(), birthday, pos,
		); err != nil {
			return fmt.Errorf("persisting contact %s: %w", r.Name(), err)
		}
		for i, p := range r.Phones() {
			if _, err := tx.Exec(
				"INSERT INTO phones (phone_id, contact_id, number, position) VALUES (?, ?, ?, ?)",
				generateUUID(), contactID, string(p), i,
			); err != nil {
				return fmt.Errorf("persisting phone %s for %s: %w", p, r.Name(), err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing address book: %w", err)
	}
	return nil
}
