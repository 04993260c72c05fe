// Package bot implements the assistant command layer: parsing input lines,
// executing command handlers against the address book, and converting
// handler errors into the messages shown to the user.
package bot

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/inkdrift/blackbook/pkg/types"
)

// Dispatch errors.
var (
	ErrNotEnoughArgs = errors.New("not enough arguments")
)

// HandlerFunc executes one command against the book and returns the
// message to display. Handlers never print; side-effect output goes
// through the book's view.
type HandlerFunc func(args []string, book *types.AddressBook) (string, error)

// handlers maps command verbs to their implementations. The close and exit
// verbs are session-level and handled by the caller, not dispatched here.
var handlers = map[string]HandlerFunc{
	"hello":         Hello,
	"add":           AddContact,
	"change":        ChangeContact,
	"phone":         ShowPhone,
	"all":           ShowAllContacts,
	"add-birthday":  AddBirthday,
	"show-birthday": ShowBirthday,
	"birthdays":     Birthdays,
	"delete":        DeleteContact,
	"find":          FindContacts,
	"help":          Help,
}

// Commands returns the command reference in display order.
func Commands() []types.Command {
	return []types.Command{
		{Name: "add", Description: "Add a new contact"},
		{Name: "change", Description: "Change an existing contact"},
		{Name: "phone", Description: "Show phones of a contact"},
		{Name: "all", Description: "Show all contacts"},
		{Name: "add-birthday", Description: "Add a birthday to a contact"},
		{Name: "show-birthday", Description: "Show the birthday of a contact"},
		{Name: "birthdays", Description: "Show upcoming birthdays"},
		{Name: "delete", Description: "Delete a contact"},
		{Name: "find", Description: "Find contacts by name pattern"},
	}
}

// Dispatch parses and executes one input line. Blank input produces no
// output.
func Dispatch(line string, book *types.AddressBook) string {
	command, args := Parse(line)
	if command == "" {
		return ""
	}
	return Execute(command, args, book)
}

// Execute runs a single command. Unknown verbs and handler errors are
// converted to display text; callers print the result as-is.
func Execute(command string, args []string, book *types.AddressBook) string {
	h, ok := handlers[command]
	if !ok {
		return "Invalid command."
	}
	result, err := h(args, book)
	if err != nil {
		return ErrorText(err)
	}
	return result
}

// ErrorText converts a handler error into the message shown to the user.
func ErrorText(err error) string {
	if errors.Is(err, ErrNotEnoughArgs) {
		return "Error: not enough arguments."
	}
	return fmt.Sprintf("Error: %s.", err)
}

// notFound wraps ErrNotFound with the contact name, so the rendered
// message reads "contact '<name>' not found".
func notFound(name string) error {
	return fmt.Errorf("contact '%s' %w", name, types.ErrNotFound)
}

// Hello greets the user.
func Hello(args []string, book *types.AddressBook) (string, error) {
	return "How can I help you?", nil
}

// AddContact finds or creates the named record, then adds the phone
// number. The record is created and registered before the number is
// validated, so an invalid number still leaves the contact in the book.
func AddContact(args []string, book *types.AddressBook) (string, error) {
	if len(args) < 2 {
		return "", ErrNotEnoughArgs
	}
	name, phone := args[0], args[1]

	message := "Contact updated."
	rec := book.Find(name)
	if rec == nil {
		rec = types.NewRecord(name)
		book.AddRecord(rec)
		message = "Contact added."
	}
	if err := rec.AddPhone(phone); err != nil {
		return "", err
	}
	return message, nil
}

// ChangeContact replaces one phone number on an existing contact.
func ChangeContact(args []string, book *types.AddressBook) (string, error) {
	if len(args) < 3 {
		return "", ErrNotEnoughArgs
	}
	name, oldNumber, newNumber := args[0], args[1], args[2]

	rec := book.Find(name)
	if rec == nil {
		return "", notFound(name)
	}
	return rec.EditPhone(oldNumber, newNumber)
}

// ShowPhone lists the contact's phone numbers on one line.
func ShowPhone(args []string, book *types.AddressBook) (string, error) {
	if len(args) < 1 {
		return "", ErrNotEnoughArgs
	}
	name := args[0]

	rec := book.Find(name)
	if rec == nil {
		return "", notFound(name)
	}
	return fmt.Sprintf("%s: %s", name, rec.PhoneList()), nil
}

// ShowAllContacts renders the whole book through the view.
func ShowAllContacts(args []string, book *types.AddressBook) (string, error) {
	book.ShowAll()
	return "", nil
}

// AddBirthday sets the contact's birthday, replacing any prior value.
func AddBirthday(args []string, book *types.AddressBook) (string, error) {
	if len(args) < 2 {
		return "", ErrNotEnoughArgs
	}
	name, date := args[0], args[1]

	rec := book.Find(name)
	if rec == nil {
		return "", notFound(name)
	}
	if err := rec.AddBirthday(date); err != nil {
		return "", err
	}
	return "Birthday added.", nil
}

// ShowBirthday shows the contact's birthday or the not-set sentinel.
func ShowBirthday(args []string, book *types.AddressBook) (string, error) {
	if len(args) < 1 {
		return "", ErrNotEnoughArgs
	}
	name := args[0]

	rec := book.Find(name)
	if rec == nil {
		return "", notFound(name)
	}
	return fmt.Sprintf("%s: %s", name, rec.ShowBirthday()), nil
}

// Birthdays lists contacts with a birthday in the next week.
func Birthdays(args []string, book *types.AddressBook) (string, error) {
	return book.UpcomingBirthdays(time.Now()), nil
}

// DeleteContact removes the named contact from the book.
func DeleteContact(args []string, book *types.AddressBook) (string, error) {
	if len(args) < 1 {
		return "", ErrNotEnoughArgs
	}
	if err := book.Remove(args[0]); err != nil {
		return "", err
	}
	return "Contact deleted.", nil
}

// FindContacts lists contacts whose name matches the glob pattern. An
// empty result is reported as a plain message, not an error.
func FindContacts(args []string, book *types.AddressBook) (string, error) {
	if len(args) < 1 {
		return "", ErrNotEnoughArgs
	}
	lines, err := book.FindMatching(args[0])
	if errors.Is(err, types.ErrNoContacts) {
		return "No contacts found.", nil
	}
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// Help renders the command reference through the view.
func Help(args []string, book *types.AddressBook) (string, error) {
	book.ShowHelp(Commands())
	return "", nil
}
