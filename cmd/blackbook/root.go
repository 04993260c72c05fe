// Root command for the blackbook CLI. Running blackbook without a
// subcommand starts the interactive assistant session.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inkdrift/blackbook/internal/paths"
	"github.com/inkdrift/blackbook/internal/tui"
)

// Exit codes: 0 success, 1 user error, 2 system error.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// Config values loaded by PersistentPreRunE so all subcommands can use
// them.
var (
	configBackend string
	configDataDir string
)

var rootCmd = &cobra.Command{
	Use:          "blackbook",
	Short:        "Blackbook is a contact book with an assistant bot",
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configBackend = cfg.GetString(cfgKeyBackend)
		configDataDir = cfg.GetString(cfgKeyDataDir)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "blackbook:", err)
			os.Exit(exitSysError)
		}
		if err := tui.Run(st); err != nil {
			fmt.Fprintln(os.Stderr, "blackbook:", err)
			os.Exit(exitSysError)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.blackbook-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(changeCmd)
	rootCmd.AddCommand(phoneCmd)
	rootCmd.AddCommand(allCmd)
	rootCmd.AddCommand(addBirthdayCmd)
	rootCmd.AddCommand(showBirthdayCmd)
	rootCmd.AddCommand(birthdaysCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

// resolveDataDir returns the data directory following the precedence:
// --data-dir flag > config.yaml data_dir > BLACKBOOK_DATA_DIR env >
// default $(CWD)/.blackbook-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > BLACKBOOK_CONFIG_DIR env >
// DefaultConfigDir().
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
