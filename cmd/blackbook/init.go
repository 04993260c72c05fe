// Init command for the blackbook CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize blackbook storage",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		// Resolve config directory (flag > env > default) and ensure it
		// exists with a default config.yaml.
		configDir, err := resolveConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}
		if err := ensureConfigDir(configDir); err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}
		if err := ensureDefaultConfigFile(configDir); err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}

		// Load whatever exists (an empty book on first run) and save it
		// back so the data file is in place.
		book, st, err := loadBook()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}
		if err := st.Save(book); err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}

		dataDir, err := resolveDataDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}

		fmt.Println("Blackbook initialized successfully")
		fmt.Println("  config:", configDir)
		fmt.Println("  data:  ", dataDir)
	},
}
