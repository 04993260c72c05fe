// All command for the blackbook CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inkdrift/blackbook/internal/exchange"
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Show all contacts",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		book, _, err := loadBook()
		if err != nil {
			fmt.Fprintln(os.Stderr, "all:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			out, err := json.MarshalIndent(exchange.Contacts(book), "", "  ")
			if err != nil {
				fmt.Fprintln(os.Stderr, "marshal JSON:", err)
				os.Exit(exitSysError)
			}
			fmt.Println(string(out))
			return
		}

		book.ShowAll()
	},
}
