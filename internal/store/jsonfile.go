// JSON file backend with atomic persistence via the temp-file, fsync,
// rename pattern.
package store

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/inkdrift/blackbook/pkg/types"
)

// FileStore persists the book as a single versioned JSON file.
type FileStore struct {
	dataDir string
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates a store writing addressbook.json under dataDir.
func NewFileStore(dataDir string) *FileStore {
	return &FileStore{dataDir: dataDir}
}

// Path returns the address book file location.
func (s *FileStore) Path() string {
	return filepath.Join(s.dataDir, BookFileName+".json")
}

// Load reads the book file and rebuilds the book. A missing file yields an
// empty book; anything unreadable or invalid fails with ErrCorrupt.
func (s *FileStore) Load(view types.View) (*types.AddressBook, error) {
	book := types.NewAddressBook(view)

	data, err := os.ReadFile(s.Path())
	if errors.Is(err, os.ErrNotExist) {
		return book, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.Path(), err)
	}

	var envelope bookJSON
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("parsing %s: %w: %w", s.Path(), ErrCorrupt, err)
	}
	if envelope.Version != bookFormatVersion {
		return nil, fmt.Errorf("%s: unsupported format version %d: %w", s.Path(), envelope.Version, ErrCorrupt)
	}

	for _, rec := range envelope.Contacts {
		r, err := hydrateRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Path(), err)
		}
		book.Restore(r)
	}
	return book, nil
}

// Save writes the whole book atomically: marshal, write to a temp file in
// the destination directory, flush, fsync, close, rename. The temp file is
// removed on every error path so a failed save leaves the previous
// snapshot untouched.
func (s *FileStore) Save(book *types.AddressBook) error {
	if err := os.MkdirAll(s.dataDir, 0755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	envelope := bookJSON{
		Version:  bookFormatVersion,
		Contacts: contactsJSON(book),
	}
	data, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling address book: %w", err)
	}

	tmp, err := os.CreateTemp(s.dataDir, ".addressbook-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	if _, err := w.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing address book: %w", err)
	}
	if err := w.WriteByte('\n'); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing newline: %w", err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.Path()); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
