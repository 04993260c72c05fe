// Shared helpers for blackbook CLI commands.
package main

import (
	"fmt"
	"os"

	"github.com/inkdrift/blackbook/internal/bot"
	"github.com/inkdrift/blackbook/internal/store"
	"github.com/inkdrift/blackbook/pkg/types"
)

// openStore resolves the data directory and opens the configured backend.
func openStore() (store.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: configBackend,
		DataDir: dataDir,
	}
	return store.Open(cfg)
}

// loadBook opens the store and loads the address book with the console
// view attached.
func loadBook() (*types.AddressBook, store.Store, error) {
	st, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	book, err := st.Load(types.ConsoleView{})
	if err != nil {
		return nil, nil, err
	}
	return book, st, nil
}

// runHandler loads the book, executes one bot handler, and saves the book
// back when the handler mutates it. Handler failures (bad input, lookup
// misses) print the bot's error message and exit with the user error code;
// store failures are system errors.
func runHandler(name string, h bot.HandlerFunc, args []string, mutating bool) {
	book, st, err := loadBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", name, err)
		os.Exit(exitSysError)
	}

	result, err := h(args, book)
	if err != nil {
		fmt.Fprintln(os.Stderr, bot.ErrorText(err))
		os.Exit(exitUserError)
	}

	if mutating {
		if err := st.Save(book); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", name, err)
			os.Exit(exitSysError)
		}
	}
	if result != "" {
		fmt.Println(result)
	}
}
