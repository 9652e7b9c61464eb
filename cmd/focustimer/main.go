// Package main implements the focustimer CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "focustimer",
	Short: "Tiny Pomodoro timer for the terminal",
	Long: `focustimer runs work/break cycles in the terminal and logs every
finished session.

During a run: type 'p' + ENTER to pause/resume, 'q' + ENTER to quit.`,
	Example: "focustimer --work 25 --break 5 --cycles 4",
	Args:    cobra.NoArgs,
	RunE:    runSession,
}

var (
	workMin  int
	breakMin int
	cycles   int
)

func init() {
	rootCmd.Flags().IntVar(&workMin, "work", 25, "work interval length in minutes")
	rootCmd.Flags().IntVar(&breakMin, "break", 5, "break length in minutes")
	rootCmd.Flags().IntVar(&cycles, "cycles", 4, "number of work intervals in the session")
}
