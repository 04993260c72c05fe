// Show-birthday command for the blackbook CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/inkdrift/blackbook/internal/bot"
)

var showBirthdayCmd = &cobra.Command{
	Use:   "show-birthday <name>",
	Short: "Show a contact's birthday",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runHandler("show-birthday", bot.ShowBirthday, args, false)
	},
}
