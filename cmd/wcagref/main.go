package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/wcagref"
	"github.com/fwojciec/wcagref/bundled"
	"github.com/fwojciec/wcagref/fs"
	wcagslog "github.com/fwojciec/wcagref/slog"
	"github.com/fwojciec/wcagref/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database used when the dataset is loaded with --db.
	DB *sqlite.DB

	// Dataset for end-to-end testing. When set, no dataset is loaded.
	Dataset *wcagref.Dataset

	// Time the SQLite dataset was exported, if loaded with --db.
	savedAt time.Time
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wcagref"),
		kong.Description("Look up WCAG 2.0, 2.1 and 2.2 success criteria and techniques."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'wcagref --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Format = cli.Format

	ds, source, err := m.loadDataset(ctx, cli)
	if err != nil {
		switch {
		case cli.DB != "":
			fmt.Fprintln(stderr, "Hint: Unset WCAGREF_DB to use the bundled dataset")
		case cli.Data != "":
			fmt.Fprintln(stderr, "Hint: Unset WCAGREF_DATA to use the bundled dataset")
		}
		return fmt.Errorf("failed to load dataset from %s: %w", source, err)
	}
	defer m.Close()

	deps.Dataset = ds
	deps.Source = source
	deps.SavedAt = m.savedAt
	deps.Reference = wcagslog.NewLoggingReference(wcagref.NewReference(ds), deps.Logger)
	deps.Logger.Debug("dataset loaded", "source", source, "versions", ds.Versions())

	return kongCtx.Run(deps)
}

// loadDataset picks the dataset source: an explicit dataset, a SQLite
// database, a directory of JSON partitions, or the bundled data, in that
// order. It returns a description of the source for diagnostics.
func (m *Main) loadDataset(ctx context.Context, cli *CLI) (*wcagref.Dataset, string, error) {
	if m.Dataset != nil {
		return m.Dataset, "memory", nil
	}

	if cli.DB != "" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			return nil, cli.DB, err
		}
		store := sqlite.NewDatasetStore(m.DB)
		ds, err := store.LoadDataset(ctx)
		if err != nil {
			return nil, cli.DB, err
		}
		m.savedAt, err = store.SavedAt(ctx)
		return ds, cli.DB, err
	}

	if cli.Data != "" {
		ds, err := fs.NewLoader(os.DirFS(cli.Data), ".").LoadDataset(ctx)
		return ds, cli.Data, err
	}

	ds, err := bundled.Dataset()
	return ds, "bundled", err
}
