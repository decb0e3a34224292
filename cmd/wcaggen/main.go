package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/wcagref"
	"github.com/fwojciec/wcagref/fs"
	"github.com/fwojciec/wcagref/goquery"
	wcaghttp "github.com/fwojciec/wcagref/http"
	"github.com/fwojciec/wcagref/scrape"
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
	// Fetcher for end-to-end testing. When nil, an HTTP fetcher is used.
	Fetcher wcagref.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wcaggen"),
		kong.Description("Generate the WCAG reference dataset from the published W3C pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	versions, err := parseVersions(cli.Versions)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = wcaghttp.NewFetcher(wcaghttp.WithTimeout(cli.Timeout))
	}
	fetcher = wcagslog.NewLoggingFetcher(fetcher, logger)
	defer fetcher.Close()

	deps.Generator = &scrape.Generator{
		Fetcher:     fetcher,
		Parser:      goquery.NewParser(),
		RateLimiter: scrape.NewDomainLimiter(cli.RPS),
		Concurrency: cli.Concurrency,
		RetryDelays: retryDelays(cli.Retries),
		Logger:      logger,
	}

	if !cli.Preview {
		out := filepath.Clean(cli.Output)
		deps.Writers = append(deps.Writers, fs.NewWriter(filepath.Dir(out), filepath.Base(out)))

		if cli.DB != "" {
			db := sqlite.NewDB(cli.DB)
			if err := db.Open(); err != nil {
				return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
			}
			defer db.Close()
			deps.Writers = append(deps.Writers, sqlite.NewDatasetStore(db))
		}
	}

	cmd := &GenerateCmd{
		Versions: versions,
		Preview:  cli.Preview,
	}

	return cmd.Run(deps)
}

// retryDelays returns n delays doubling from one second.
func retryDelays(n int) []time.Duration {
	delays := make([]time.Duration, 0, max(n, 0))
	for i := range max(n, 0) {
		delays = append(delays, time.Second<<i)
	}
	return delays
}

func parseVersions(raw []string) ([]wcagref.Version, error) {
	versions := make([]wcagref.Version, 0, len(raw))
	for _, s := range raw {
		v, err := wcagref.ParseVersion(s)
		if err != nil {
			return nil, fmt.Errorf("version %q: %w", s, err)
		}
		versions = append(versions, v)
	}
	return versions, nil
}
