// Change command for the blackbook CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/inkdrift/blackbook/internal/bot"
)

var changeCmd = &cobra.Command{
	Use:   "change <name> <old-phone> <new-phone>",
	Short: "Replace a phone number on an existing contact",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		runHandler("change", bot.ChangeContact, args, true)
	},
}
