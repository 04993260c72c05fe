package types

import "fmt"

// Command pairs a dispatcher verb with its help description.
type Command struct {
	Name        string
	Description string
}

// View renders user-facing output. The address book notifies it of
// additions; handlers render contact lists and the command reference
// through it. Implementations decide where the lines go (console, session
// transcript).
type View interface {
	// DisplayMessage shows a single message line.
	DisplayMessage(message string)

	// DisplayContacts shows one line per contact.
	DisplayContacts(contacts []string)

	// DisplayHelp shows the command reference in the given order.
	DisplayHelp(commands []Command)
}

// ConsoleView writes everything to standard output.
type ConsoleView struct{}

var _ View = ConsoleView{}

// DisplayMessage prints the message on its own line.
func (ConsoleView) DisplayMessage(message string) {
	fmt.Println(message)
}

// DisplayContacts prints one contact per line, or the no-contacts message
// for an empty list.
func (ConsoleView) DisplayContacts(contacts []string) {
	if len(contacts) == 0 {
		fmt.Println("No contacts found.")
		return
	}
	for _, c := range contacts {
		fmt.Println(c)
	}
}

// DisplayHelp prints the command reference.
func (ConsoleView) DisplayHelp(commands []Command) {
	fmt.Println("Available commands:")
	for _, c := range commands {
		fmt.Printf("%s: %s\n", c.Name, c.Description)
	}
}
