// Export command for the blackbook CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inkdrift/blackbook/internal/exchange"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export contacts to a JSON or xlsx file",
	Long: `Export writes the whole address book to a file.

Example:
  blackbook export --out contacts.json
  blackbook export --format xlsx --out contacts.xlsx`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		book, _, err := loadBook()
		if err != nil {
			fmt.Fprintln(os.Stderr, "export:", err)
			os.Exit(exitSysError)
		}

		if err := exchange.Export(book, exportFormat, exportOut); err != nil {
			fmt.Fprintln(os.Stderr, "export:", err)
			os.Exit(exitUserError)
		}
		fmt.Printf("Exported %d contacts to %s\n", book.Len(), exportOut)
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", exchange.FormatJSON, "output format (json, xlsx)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (required)")

	exportCmd.MarkFlagRequired("out")
}
