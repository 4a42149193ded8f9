package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/reoring/ulna/i18n"
)

// errReported marks failures whose messages were already written by the
// command; Execute only maps them to the exit status.
var errReported = errors.New("reported")

var langFlag string

var rootCmd = &cobra.Command{
	Use:           "ulna",
	Short:         "ulna builds small C projects from a declarative TOML configuration",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		i18n.SetLanguage(langFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "en", "diagnostic message language (en, ja)")
	rootCmd.AddCommand(newBuildCmd())
}

// Execute runs the CLI, mapping any command failure to exit status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
