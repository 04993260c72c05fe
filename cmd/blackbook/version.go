// Version command for the blackbook CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is the CLI version string.
const version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the blackbook version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("blackbook v" + version)
	},
}
