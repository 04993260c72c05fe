package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/inkdrift/blackbook/pkg/types"
)

func TestFileStoreLoadMissingFile(t *testing.T) {
	s := NewFileStore(t.TempDir())

	book, err := s.Load(&quietView{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if book.Len() != 0 {
		t.Errorf("expected empty book, got %d contacts", book.Len())
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	s := NewFileStore(t.TempDir())

	if err := s.Save(seedBook(t)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := s.Load(&quietView{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	assertSeedBook(t, loaded)
}

func TestFileStoreLoadDoesNotNotifyView(t *testing.T) {
	s := NewFileStore(t.TempDir())
	if err := s.Save(seedBook(t)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	view := &quietView{}
	if _, err := s.Load(view); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(view.messages) != 0 {
		t.Errorf("expected no view notifications during load, got %v", view.messages)
	}
}

func TestFileStoreSaveOverwrites(t *testing.T) {
	s := NewFileStore(t.TempDir())

	book := seedBook(t)
	if err := s.Save(book); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := book.Remove("Alice"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if err := s.Save(book); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	loaded, err := s.Load(&quietView{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Len() != 1 {
		t.Fatalf("expected 1 contact after overwrite, got %d", loaded.Len())
	}
	if loaded.Find("Bob") == nil {
		t.Error("expected Bob to survive the overwrite")
	}
}

func TestFileStoreSaveCreatesDataDir(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "nested", "data")
	s := NewFileStore(dataDir)

	if err := s.Save(seedBook(t)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(s.Path()); err != nil {
		t.Errorf("expected %s to exist: %v", s.Path(), err)
	}
}

func TestFileStoreSaveLeavesNoTempFiles(t *testing.T) {
	dataDir := t.TempDir()
	s := NewFileStore(dataDir)

	if err := s.Save(seedBook(t)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	entries, err := os.ReadDir(dataDir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
	if len(entries) != 1 {
		t.Errorf("expected only the book file, got %d entries", len(entries))
	}
}

func TestFileStoreLoadCorruptFile(t *testing.T) {
	dataDir := t.TempDir()
	s := NewFileStore(dataDir)

	if err := os.WriteFile(s.Path(), []byte("not json at all"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	_, err := s.Load(&quietView{})
	if err == nil {
		t.Fatal("expected error for corrupt file, got nil")
	}
	if !errors.Is(err, ErrCorrupt) {
		t.Errorf("expected ErrCorrupt, got %v", err)
	}
}

func TestFileStoreLoadUnsupportedVersion(t *testing.T) {
	dataDir := t.TempDir()
	s := NewFileStore(dataDir)

	payload := `{"version": 99, "contacts": []}`
	if err := os.WriteFile(s.Path(), []byte(payload), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	_, err := s.Load(&quietView{})
	if !errors.Is(err, ErrCorrupt) {
		t.Errorf("expected ErrCorrupt for version 99, got %v", err)
	}
}

func TestFileStoreLoadInvalidStoredPhone(t *testing.T) {
	dataDir := t.TempDir()
	s := NewFileStore(dataDir)

	payload := `{"version": 1, "contacts": [{"name": "Alice", "phones": ["123"]}]}`
	if err := os.WriteFile(s.Path(), []byte(payload), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	_, err := s.Load(&quietView{})
	if !errors.Is(err, ErrCorrupt) {
		t.Errorf("expected ErrCorrupt for invalid stored phone, got %v", err)
	}
	if !errors.Is(err, types.ErrInvalidPhone) {
		t.Errorf("expected ErrInvalidPhone in the chain, got %v", err)
	}
}

func TestFileStoreLoadEmptyName(t *testing.T) {
	dataDir := t.TempDir()
	s := NewFileStore(dataDir)

	payload := `{"version": 1, "contacts": [{"name": "", "phones": []}]}`
	if err := os.WriteFile(s.Path(), []byte(payload), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	_, err := s.Load(&quietView{})
	if !errors.Is(err, ErrCorrupt) {
		t.Errorf("expected ErrCorrupt for empty contact name, got %v", err)
	}
}

func TestOpenSelectsBackend(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(types.Config{Backend: types.BackendJSON, DataDir: dir})
	if err != nil {
		t.Fatalf("Open json failed: %v", err)
	}
	if _, ok := s.(*FileStore); !ok {
		t.Errorf("expected *FileStore, got %T", s)
	}

	s, err = Open(types.Config{Backend: types.BackendSQLite, DataDir: dir})
	if err != nil {
		t.Fatalf("Open sqlite failed: %v", err)
	}
	if _, ok := s.(*SQLiteStore); !ok {
		t.Errorf("expected *SQLiteStore, got %T", s)
	}

	if _, err := Open(types.Config{Backend: "postgres", DataDir: dir}); !errors.Is(err, types.ErrBackendUnknown) {
		t.Errorf("expected ErrBackendUnknown, got %v", err)
	}
}
