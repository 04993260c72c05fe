// Add-birthday command for the blackbook CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/inkdrift/blackbook/internal/bot"
)

var addBirthdayCmd = &cobra.Command{
	Use:   "add-birthday <name> <DD.MM.YYYY>",
	Short: "Set a contact's birthday",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runHandler("add-birthday", bot.AddBirthday, args, true)
	},
}
