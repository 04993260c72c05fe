package store

import (
	"testing"

	"github.com/inkdrift/blackbook/pkg/types"
)

// quietView swallows all output; store tests only care about data.
type quietView struct {
	messages []string
}

func (v *quietView) DisplayMessage(message string) { v.messages = append(v.messages, message) }

func (v *quietView) DisplayContacts(contacts []string) {}

func (v *quietView) DisplayHelp(commands []types.Command) {}

// seedBook builds a two-contact book with phone duplicates and one birthday,
// enough shape to catch ordering and field loss.
func seedBook(t *testing.T) *types.AddressBook {
	t.Helper()

	book := types.NewAddressBook(&quietView{})

	alice := types.NewRecord("Alice")
	for _, p := range []string{"0501234567", "0667654321", "0501234567"} {
		if err := alice.AddPhone(p); err != nil {
			t.Fatalf("AddPhone failed: %v", err)
		}
	}
	if err := alice.AddBirthday("15.06.1990"); err != nil {
		t.Fatalf("AddBirthday failed: %v", err)
	}
	book.Restore(alice)

	bob := types.NewRecord("Bob")
	if err := bob.AddPhone("0731112233"); err != nil {
		t.Fatalf("AddPhone failed: %v", err)
	}
	book.Restore(bob)

	return book
}

// bookLines renders the book for comparison.
func bookLines(t *testing.T, book *types.AddressBook) []string {
	t.Helper()
	lines, err := book.All()
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	return lines
}

// assertSeedBook checks that a loaded book matches what seedBook built.
func assertSeedBook(t *testing.T, book *types.AddressBook) {
	t.Helper()

	want := []string{
		"Alice: 0501234567, 0667654321, 0501234567; Birthday: 15.06.1990",
		"Bob: 0731112233; Birthday: Birthday not set.",
	}
	got := bookLines(t, book)
	if len(got) != len(want) {
		t.Fatalf("expected %d contacts, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("contact %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
