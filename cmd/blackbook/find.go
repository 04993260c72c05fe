// Find command for the blackbook CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/inkdrift/blackbook/internal/bot"
)

var findCmd = &cobra.Command{
	Use:   "find <pattern>",
	Short: "Find contacts by name glob pattern",
	Long: `Find lists contacts whose name matches a glob pattern.

Example:
  blackbook find 'A*'
  blackbook find '*son'`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runHandler("find", bot.FindContacts, args, false)
	},
}
