// Import command for the blackbook CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inkdrift/blackbook/internal/exchange"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import contacts from a JSON file",
	Long: `Import merges a JSON contact array into the address book.

The payload is validated against the contact schema before anything is
merged. Contacts with invalid phone numbers or birthdays are skipped and
reported; the rest still merge.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		book, st, err := loadBook()
		if err != nil {
			fmt.Fprintln(os.Stderr, "import:", err)
			os.Exit(exitSysError)
		}

		report, err := exchange.Import(book, args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "import:", err)
			if errors.Is(err, exchange.ErrInvalidPayload) {
				os.Exit(exitUserError)
			}
			os.Exit(exitSysError)
		}

		if err := st.Save(book); err != nil {
			fmt.Fprintln(os.Stderr, "import:", err)
			os.Exit(exitSysError)
		}

		for _, f := range report.Failures {
			fmt.Fprintln(os.Stderr, "skipped", f)
		}
		fmt.Println(report)
	},
}
