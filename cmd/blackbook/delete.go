// Delete command for the blackbook CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/inkdrift/blackbook/internal/bot"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Remove a contact from the address book",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runHandler("delete", bot.DeleteContact, args, true)
	},
}
