// Package cli provides the sylcal command-line interface.
package cli

import (
	"fmt"
	"os"
	"sylcal/src-server/utils"

	"github.com/spf13/cobra"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand(utils.NewAppState)
	if err := rootCmd.Execute(); err != nil {
		// SilenceErrors keeps cobra from printing it twice
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// NewRootCommand creates the root cobra command. newAppState is called once
// per command run.
func NewRootCommand(newAppState func() *utils.AppState) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sylcal",
		Short: "Turn syllabus lines into calendar events",
		Long: `sylcal extracts a calendar event from one line of syllabus text.

  sylcal parse "Exam 2: March 15, 2–3:30pm, Stevenson 432"
  sylcal delimited "Meeting with A, Sep 11, 9 - 11 AM, Office, Bring documents"
  sylcal serve

Configuration is read from the environment (and .env): PORT, TIMEZONE,
DEFAULT_DURATION, RATE_LIMIT, RATE_BURST, LOG_LEVEL.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newParseCommand(newAppState))
	rootCmd.AddCommand(newDelimitedCommand(newAppState))
	rootCmd.AddCommand(newServeCommand(newAppState))

	return rootCmd
}
