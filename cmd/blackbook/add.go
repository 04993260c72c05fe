// Add command for the blackbook CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/inkdrift/blackbook/internal/bot"
)

var addCmd = &cobra.Command{
	Use:   "add <name> <phone>",
	Short: "Add a contact or append a phone number to an existing one",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runHandler("add", bot.AddContact, args, true)
	},
}
