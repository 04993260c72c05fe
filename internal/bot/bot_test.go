package bot

import (
	"strings"
	"testing"

	"github.com/inkdrift/blackbook/pkg/types"
)

// captureView records everything the book renders through it.
type captureView struct {
	messages []string
	contacts [][]string
	help     [][]types.Command
}

func (v *captureView) DisplayMessage(message string) {
	v.messages = append(v.messages, message)
}

func (v *captureView) DisplayContacts(contacts []string) {
	v.contacts = append(v.contacts, contacts)
}

func (v *captureView) DisplayHelp(commands []types.Command) {
	v.help = append(v.help, commands)
}

func newBook() (*types.AddressBook, *captureView) {
	view := &captureView{}
	return types.NewAddressBook(view), view
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantCmd  string
		wantArgs []string
	}{
		{"simple command", "hello", "hello", nil},
		{"command with args", "add Alice 0501234567", "add", []string{"Alice", "0501234567"}},
		{"verb lowercased", "ADD Alice 0501234567", "add", []string{"Alice", "0501234567"}},
		{"argument case preserved", "phone Alice", "phone", []string{"Alice"}},
		{"extra whitespace collapsed", "  add   Alice   0501234567  ", "add", []string{"Alice", "0501234567"}},
		{"blank line", "   ", "", nil},
		{"empty line", "", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args := Parse(tt.line)
			if cmd != tt.wantCmd {
				t.Errorf("command = %q, want %q", cmd, tt.wantCmd)
			}
			if len(args) != len(tt.wantArgs) {
				t.Fatalf("args = %v, want %v", args, tt.wantArgs)
			}
			for i := range args {
				if args[i] != tt.wantArgs[i] {
					t.Errorf("args[%d] = %q, want %q", i, args[i], tt.wantArgs[i])
				}
			}
		})
	}
}

func TestIsExit(t *testing.T) {
	for _, verb := range []string{"close", "exit"} {
		if !IsExit(verb) {
			t.Errorf("IsExit(%q) = false, want true", verb)
		}
	}
	for _, verb := range []string{"hello", "add", "quit", ""} {
		if IsExit(verb) {
			t.Errorf("IsExit(%q) = true, want false", verb)
		}
	}
}

func TestDispatchBlankLine(t *testing.T) {
	book, _ := newBook()
	if got := Dispatch("   ", book); got != "" {
		t.Errorf("Dispatch(blank) = %q, want empty", got)
	}
}

func TestDispatchUnknownCommand(t *testing.T) {
	book, _ := newBook()
	if got := Dispatch("frobnicate Alice", book); got != "Invalid command." {
		t.Errorf("Dispatch = %q, want %q", got, "Invalid command.")
	}
}

func TestHello(t *testing.T) {
	book, _ := newBook()
	if got := Dispatch("hello", book); got != "How can I help you?" {
		t.Errorf("Dispatch = %q, want %q", got, "How can I help you?")
	}
}

func TestAddContactNewThenUpdate(t *testing.T) {
	book, view := newBook()

	if got := Dispatch("add Alice 0501234567", book); got != "Contact added." {
		t.Errorf("first add = %q, want %q", got, "Contact added.")
	}
	if got := Dispatch("add Alice 0509999999", book); got != "Contact updated." {
		t.Errorf("second add = %q, want %q", got, "Contact updated.")
	}

	rec := book.Find("Alice")
	if rec == nil {
		t.Fatal("Alice not in book")
	}
	if len(rec.Phones()) != 2 {
		t.Errorf("expected 2 phones, got %d", len(rec.Phones()))
	}
	// Only record creation notifies the view, not the phone append.
	if len(view.messages) != 1 {
		t.Errorf("expected 1 view notification, got %v", view.messages)
	}
}

func TestAddContactInvalidPhoneKeepsRecord(t *testing.T) {
	book, _ := newBook()

	got := Dispatch("add Alice 12345", book)
	if !strings.HasPrefix(got, "Error:") {
		t.Errorf("expected error message, got %q", got)
	}
	// The record is registered before the phone is validated.
	rec := book.Find("Alice")
	if rec == nil {
		t.Fatal("Alice should remain in the book after a failed phone add")
	}
	if len(rec.Phones()) != 0 {
		t.Errorf("expected no phones, got %v", rec.Phones())
	}
}

func TestAddContactMissingArgs(t *testing.T) {
	book, _ := newBook()
	if got := Dispatch("add Alice", book); got != "Error: not enough arguments." {
		t.Errorf("Dispatch = %q, want %q", got, "Error: not enough arguments.")
	}
}

func TestChangeContact(t *testing.T) {
	book, _ := newBook()
	Dispatch("add Alice 0501234567", book)

	got := Dispatch("change Alice 0501234567 0507654321", book)
	want := "Phone number updated: 0501234567 -> 0507654321"
	if got != want {
		t.Errorf("Dispatch = %q, want %q", got, want)
	}

	rec := book.Find("Alice")
	if _, ok := rec.FindPhone("0507654321"); !ok {
		t.Error("new phone missing after change")
	}
	if _, ok := rec.FindPhone("0501234567"); ok {
		t.Error("old phone still present after change")
	}
}

func TestChangeContactNotFound(t *testing.T) {
	book, _ := newBook()
	got := Dispatch("change Bob 0501234567 0507654321", book)
	want := "Error: contact 'Bob' not found."
	if got != want {
		t.Errorf("Dispatch = %q, want %q", got, want)
	}
}

func TestChangeContactInvalidNewPhone(t *testing.T) {
	book, _ := newBook()
	Dispatch("add Alice 0501234567", book)

	got := Dispatch("change Alice 0501234567 nope", book)
	if !strings.HasPrefix(got, "Error:") {
		t.Errorf("expected error message, got %q", got)
	}
	// Failed edit leaves the sequence untouched.
	rec := book.Find("Alice")
	if _, ok := rec.FindPhone("0501234567"); !ok {
		t.Error("original phone lost after failed change")
	}
}

func TestShowPhone(t *testing.T) {
	book, _ := newBook()
	Dispatch("add Alice 0501234567", book)
	Dispatch("add Alice 0509999999", book)

	got := Dispatch("phone Alice", book)
	want := "Alice: 0501234567, 0509999999"
	if got != want {
		t.Errorf("Dispatch = %q, want %q", got, want)
	}
}

func TestShowPhoneNotFound(t *testing.T) {
	book, _ := newBook()
	got := Dispatch("phone Ghost", book)
	if got != "Error: contact 'Ghost' not found." {
		t.Errorf("Dispatch = %q", got)
	}
}

func TestShowAllRendersThroughView(t *testing.T) {
	book, view := newBook()
	Dispatch("add Alice 0501234567", book)

	if got := Dispatch("all", book); got != "" {
		t.Errorf("all should render through the view, got result %q", got)
	}
	if len(view.contacts) != 1 {
		t.Fatalf("expected 1 contact render, got %d", len(view.contacts))
	}
	want := "Alice: 0501234567; Birthday: Birthday not set."
	if view.contacts[0][0] != want {
		t.Errorf("rendered %q, want %q", view.contacts[0][0], want)
	}
}

func TestShowAllEmptyBook(t *testing.T) {
	book, view := newBook()
	Dispatch("all", book)
	if len(view.messages) != 1 || view.messages[0] != "No contacts found." {
		t.Errorf("expected no-contacts message, got %v", view.messages)
	}
}

func TestBirthdayLifecycle(t *testing.T) {
	book, _ := newBook()
	Dispatch("add Bob 0501234567", book)

	if got := Dispatch("show-birthday Bob", book); got != "Bob: Birthday not set." {
		t.Errorf("unset birthday = %q, want %q", got, "Bob: Birthday not set.")
	}
	if got := Dispatch("add-birthday Bob 15.05.1990", book); got != "Birthday added." {
		t.Errorf("add-birthday = %q, want %q", got, "Birthday added.")
	}
	if got := Dispatch("show-birthday Bob", book); got != "Bob: 15.05.1990" {
		t.Errorf("set birthday = %q, want %q", got, "Bob: 15.05.1990")
	}
}

func TestAddBirthdayInvalidDate(t *testing.T) {
	book, _ := newBook()
	Dispatch("add Bob 0501234567", book)

	got := Dispatch("add-birthday Bob 30.02.1990", book)
	want := "Error: invalid date format: use DD.MM.YYYY."
	if got != want {
		t.Errorf("Dispatch = %q, want %q", got, want)
	}
}

func TestBirthdaysEmptyBook(t *testing.T) {
	book, _ := newBook()
	got := Dispatch("birthdays", book)
	if got != "No birthdays in the next week." {
		t.Errorf("Dispatch = %q, want the no-birthdays sentinel", got)
	}
}

func TestDeleteContact(t *testing.T) {
	book, _ := newBook()
	Dispatch("add Alice 0501234567", book)

	if got := Dispatch("delete Alice", book); got != "Contact deleted." {
		t.Errorf("delete = %q, want %q", got, "Contact deleted.")
	}
	if book.Find("Alice") != nil {
		t.Error("Alice still in book after delete")
	}
	if got := Dispatch("delete Alice", book); got != "Error: contact 'Alice' not found." {
		t.Errorf("second delete = %q", got)
	}
}

func TestFindContacts(t *testing.T) {
	book, _ := newBook()
	Dispatch("add Alice 0501234567", book)
	Dispatch("add Albert 0502222222", book)
	Dispatch("add Bob 0503333333", book)

	got := Dispatch("find Al*", book)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 matches, got %q", got)
	}
	if !strings.HasPrefix(lines[0], "Alice:") || !strings.HasPrefix(lines[1], "Albert:") {
		t.Errorf("unexpected match order: %q", got)
	}

	if got := Dispatch("find Z*", book); got != "No contacts found." {
		t.Errorf("no-match find = %q, want %q", got, "No contacts found.")
	}
}

func TestHelpRendersThroughView(t *testing.T) {
	book, view := newBook()
	Dispatch("help", book)
	if len(view.help) != 1 {
		t.Fatalf("expected 1 help render, got %d", len(view.help))
	}
	if len(view.help[0]) != len(Commands()) {
		t.Errorf("help rendered %d commands, want %d", len(view.help[0]), len(Commands()))
	}
	if view.help[0][0].Name != "add" {
		t.Errorf("first help entry = %q, want add", view.help[0][0].Name)
	}
}
