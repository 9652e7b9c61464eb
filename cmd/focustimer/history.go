package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	txStdLib "github.com/Thiht/transactor/stdlib"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"focustimer"
	"focustimer/sqlite"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past sessions, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

var historyLimit int

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of sessions to show")
}

var (
	historyHeaderStyle = lipgloss.NewStyle().Bold(true)
	historyReasonStyle = lipgloss.NewStyle().Faint(true)
)

func runHistory(cmd *cobra.Command, args []string) error {
	if historyLimit <= 0 {
		return fmt.Errorf("limit must be > 0")
	}

	cfg := focustimer.LoadConfig()
	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open session history: %w", err)
	}
	defer db.Close() //nolint

	_, dbGetter := txStdLib.NewTransactor(db, txStdLib.NestedTransactionsSavepoints)
	repo := sqlite.NewHistoryRepo(dbGetter, *log.Default())

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()
	sessions, err := repo.List(ctx, historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	fmt.Print(formatHistoryTable(sessions))
	return nil
}

func formatHistoryTable(sessions []focustimer.ExistingSessionRecord) string {
	if len(sessions) == 0 {
		return "No sessions recorded yet.\n"
	}

	var builder strings.Builder
	header := fmt.Sprintf("%-19s  %7s  %6s  %s", "STARTED", "MINUTES", "CYCLES", "REASON")
	builder.WriteString(historyHeaderStyle.Render(header))
	builder.WriteString("\n")

	for _, s := range sessions {
		builder.WriteString(fmt.Sprintf("%-19s  %7d  %6d  %s\n",
			s.StartedAt.Format("2006-01-02 15:04:05"),
			s.FocusMinutes,
			s.CompletedCycles,
			historyReasonStyle.Render(s.Reason),
		))
	}
	return builder.String()
}
