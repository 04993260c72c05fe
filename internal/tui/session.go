// Package tui runs the interactive assistant session: a Bubble Tea loop
// that feeds typed lines to the bot dispatcher and renders the transcript.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/inkdrift/blackbook/internal/bot"
	"github.com/inkdrift/blackbook/internal/store"
	"github.com/inkdrift/blackbook/pkg/types"
)

const (
	greeting = "Welcome to the assistant bot!"
	farewell = "Good bye!"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	hintStyle   = lipgloss.NewStyle().Faint(true)
)

// transcript collects the session output. Handlers write into it through
// the session view, the model through appendLine; sharing the pointer keeps
// both sides of the Bubble Tea value-copy in sync.
type transcript struct {
	lines []string
}

func (t *transcript) append(line string) {
	t.lines = append(t.lines, line)
}

// sessionView renders book output into the transcript instead of stdout.
type sessionView struct {
	t *transcript
}

var _ types.View = sessionView{}

func (v sessionView) DisplayMessage(message string) {
	v.t.append(message)
}

func (v sessionView) DisplayContacts(contacts []string) {
	if len(contacts) == 0 {
		v.t.append("No contacts found.")
		return
	}
	for _, c := range contacts {
		v.t.append(c)
	}
}

func (v sessionView) DisplayHelp(commands []types.Command) {
	v.t.append("Available commands:")
	for _, c := range commands {
		v.t.append(fmt.Sprintf("%s: %s", c.Name, c.Description))
	}
}

// Model is the Bubble Tea model for one assistant session. The book is
// loaded once at session start and saved when the session ends.
type Model struct {
	input      textinput.Model
	transcript *transcript
	book       *types.AddressBook
	store      store.Store
	saveErr    error
	quitting   bool
}

// NewModel loads the address book from st and prepares the session.
func NewModel(st store.Store) (Model, error) {
	t := &transcript{}
	book, err := st.Load(sessionView{t: t})
	if err != nil {
		return Model{}, fmt.Errorf("load address book: %w", err)
	}

	input := textinput.New()
	input.Placeholder = "Enter a command"
	input.Prompt = promptStyle.Render("> ")
	input.Focus()

	t.append(greeting)
	return Model{
		input:      input,
		transcript: t,
		book:       book,
		store:      st,
	}, nil
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles one message. Enter dispatches the typed line; the exit
// verbs and ctrl+c save the book and end the session.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m.endSession()

	case tea.KeyEnter:
		line := m.input.Value()
		m.input.Reset()

		command, args := bot.Parse(line)
		if command == "" {
			return m, nil
		}
		m.transcript.append("> " + line)

		if bot.IsExit(command) {
			return m.endSession()
		}
		if result := bot.Execute(command, args, m.book); result != "" {
			m.transcript.append(result)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// endSession saves the book and quits. A failed save is carried out of the
// session via SaveErr; the transcript still says goodbye so the terminal is
// left in a clean state.
func (m Model) endSession() (tea.Model, tea.Cmd) {
	if err := m.store.Save(m.book); err != nil {
		m.saveErr = fmt.Errorf("save address book: %w", err)
	}
	m.transcript.append(farewell)
	m.quitting = true
	return m, tea.Quit
}

// SaveErr reports the save failure from session end, if any.
func (m Model) SaveErr() error {
	return m.saveErr
}

// View renders the transcript above the input line.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.transcript.lines[0]))
	b.WriteString("\n\n")
	for _, line := range m.transcript.lines[1:] {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if m.quitting {
		return b.String()
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("type 'help' for commands, 'close' or 'exit' to leave"))
	b.WriteString("\n")
	return b.String()
}

// Run drives a full assistant session against the given store.
func Run(st store.Store) error {
	m, err := NewModel(st)
	if err != nil {
		return err
	}
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return fmt.Errorf("assistant session: %w", err)
	}
	if fm, ok := final.(Model); ok && fm.SaveErr() != nil {
		return fm.SaveErr()
	}
	return nil
}
