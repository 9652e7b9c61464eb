package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Thiht/transactor"
	txStdLib "github.com/Thiht/transactor/stdlib"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"focustimer"
	"focustimer/csvlog"
	"focustimer/engine"
	"focustimer/sqlite"
)

func runSession(cmd *cobra.Command, args []string) error {
	if workMin <= 0 || breakMin <= 0 || cycles <= 0 {
		return fmt.Errorf("work, break, and cycles must all be > 0")
	}

	cfg := focustimer.LoadConfig()
	recorder := sessionRecorder{csv: csvlog.New(cfg.CSVPath)}

	// history is best effort: without it the CSV log still gets the record
	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		log.Warn("session history unavailable", "path", cfg.DBPath, "err", err)
	} else {
		defer db.Close() //nolint
		tx, dbGetter := txStdLib.NewTransactor(db, txStdLib.NestedTransactionsSavepoints)
		recorder.tx = tx
		recorder.history = sqlite.NewHistoryRepo(dbGetter, *log.Default())
	}

	eng := engine.New(
		time.Duration(workMin)*time.Minute,
		time.Duration(breakMin)*time.Minute,
		cycles,
		recorder,
		engine.Options{},
	)

	// on Ctrl-C, stop cleanly so the session record still gets written
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sc
		eng.Stop("Interrupted")
	}()

	fmt.Println("Starting focustimer. Type 'p' + ENTER to pause/resume, 'q' + ENTER to quit.")
	go readCommands(eng, os.Stdin)

	eng.Start()
	eng.AwaitFinish()
	return nil
}

// readCommands drives the engine from line-oriented user input. End of input
// ends the reader without ending the session.
func readCommands(eng *engine.Engine, r io.Reader) {
	scanner := bufio.NewScanner(r)
	for eng.IsRunning() && scanner.Scan() {
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "p":
			eng.TogglePause()
		case "q":
			eng.Stop("Quit by user")
			return
		}
	}
}

// sessionRecorder fans the finished session out to the CSV log and, when
// available, the history database.
type sessionRecorder struct {
	csv     *csvlog.Logger
	tx      transactor.Transactor
	history focustimer.HistoryRepo
}

func (r sessionRecorder) Append(rec focustimer.SessionRecord) {
	r.csv.Append(rec)
	if r.history == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := r.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		_, err := r.history.Insert(ctx, rec)
		return err
	})
	if err != nil {
		log.Error("failed to record session history", "err", err)
	}
}
