// Birthdays command for the blackbook CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/inkdrift/blackbook/internal/bot"
)

var birthdaysCmd = &cobra.Command{
	Use:   "birthdays",
	Short: "Show birthdays in the next week",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runHandler("birthdays", bot.Birthdays, args, false)
	},
}
