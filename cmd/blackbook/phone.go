// Phone command for the blackbook CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inkdrift/blackbook/internal/bot"
	"github.com/inkdrift/blackbook/internal/exchange"
)

var phoneCmd = &cobra.Command{
	Use:   "phone <name>",
	Short: "Show a contact's phone numbers",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !flagJSON {
			runHandler("phone", bot.ShowPhone, args, false)
			return
		}

		book, _, err := loadBook()
		if err != nil {
			fmt.Fprintln(os.Stderr, "phone:", err)
			os.Exit(exitSysError)
		}
		rec := book.Find(args[0])
		if rec == nil {
			fmt.Fprintf(os.Stderr, "contact %q not found\n", args[0])
			os.Exit(exitUserError)
		}

		out, err := json.MarshalIndent(exchange.FromRecord(rec), "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "marshal JSON:", err)
			os.Exit(exitSysError)
		}
		fmt.Println(string(out))
	},
}
