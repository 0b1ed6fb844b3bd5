package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajitpratap0/roster/internal/config"
	"github.com/ajitpratap0/roster/internal/logging"
	"github.com/ajitpratap0/roster/internal/models"
	"github.com/ajitpratap0/roster/internal/store"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

var cfg *config.Config

// seedFunc supplies the initial persons for a run.
type seedFunc func() []models.Person

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	rootCmd := newRootCmd(store.DefaultPersons)
	rootCmd.SetContext(ctx)

	err := rootCmd.Execute()
	stop()
	os.Exit(exitCode(err, os.Stdout, os.Stderr))
}

func newRootCmd(seed seedFunc) *cobra.Command {
	rootCmd := reportCmd(seed)
	rootCmd.Use = "roster"
	rootCmd.Short = "Annotate, filter and sort a fixed list of persons"
	rootCmd.Long = "Roster seeds an in-memory list of persons, stamps each with the run date, " +
		"then prints the active persons and the list sorted by name and by status."
	rootCmd.Version = version
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	}

	rootCmd.AddCommand(
		listCmd(seed),
		exportCmd(seed),
		mcpCmd(seed),
	)
	return rootCmd
}

// exitCode reports err and maps it to a process exit status.
// An empty seed prints the fixed notice on stdout rather than an error.
func exitCode(err error, stdout, stderr io.Writer) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, store.ErrEmptyStore):
		fmt.Fprintln(stdout, "Invalid initial data.")
		fmt.Fprintln(stdout, "Program execution stopped!")
		return 1
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
}

func newLogger(cmd *cobra.Command) (*slog.Logger, io.Closer) {
	var lc config.LoggingConfig
	if cfg != nil {
		lc = cfg.Logging
	}
	return logging.New(lc, cmd.ErrOrStderr())
}

// openStore seeds a store and stamps every person with the current time.
// An empty seed stops before annotation with store.ErrEmptyStore.
func openStore(seed seedFunc, logger *slog.Logger, opts ...store.Option) (*store.MemoryStore, error) {
	st, err := store.New(seed(), opts...)
	if err != nil {
		return nil, fmt.Errorf("initializing store: %w", err)
	}
	logger.Debug("store seeded", "persons", st.Len())

	if err := st.AnnotateRunDate(time.Now()); err != nil {
		return nil, fmt.Errorf("annotating run date: %w", err)
	}
	logger.Debug("run date annotated", "persons", st.Len())
	return st, nil
}
