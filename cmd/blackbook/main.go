// Package main provides the blackbook CLI: a contact book with validated
// phone numbers and birthdays, one-shot subcommands, and an interactive
// assistant session.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
