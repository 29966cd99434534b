package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/flixsearch"
	"github.com/fwojciec/flixsearch/alfred"
	"github.com/fwojciec/flixsearch/discover"
	"github.com/fwojciec/flixsearch/extract"
	"github.com/fwojciec/flixsearch/fs"
	"github.com/fwojciec/flixsearch/goquery"
	flixhttp "github.com/fwojciec/flixsearch/http"
	"github.com/fwojciec/flixsearch/lipgloss"
	"github.com/fwojciec/flixsearch/search"
	flixslog "github.com/fwojciec/flixsearch/slog"
	"github.com/fwojciec/flixsearch/sqlite"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	// A missing .env file is fine.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Data directory. Overrides the --data-dir flag when set.
	DataDir string

	// SQLite database backing the result cache.
	DB *sqlite.DB

	// Services for end-to-end testing.
	Fetcher  flixsearch.Fetcher
	Notifier flixsearch.Notifier
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
		kong.Name("flixsearch"),
		kong.Description("Find out where a title is streaming on Netflix"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'flixsearch --help' to see available commands")
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

	deps.Logger = newLogger(stderr, cli.Verbose)
	deps.Renderer = newRenderer(cli.Format)

	if kongCtx.Command() == "version" {
		return kongCtx.Run(deps)
	}

	dataDir := m.DataDir
	if dataDir == "" {
		dataDir = cli.DataDir
	}
	if dataDir == "" {
		dataDir = defaultDataDir()
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		fmt.Fprintf(stderr, "Hint: Set FLIXSEARCH_DATA_DIR to use a different directory\n")
		return fmt.Errorf("failed to create data directory %q: %w", dataDir, err)
	}

	m.DB = sqlite.NewDB(filepath.Join(dataDir, "cache.db"))
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set FLIXSEARCH_DATA_DIR to use a different directory\n")
		return fmt.Errorf("failed to open cache in %q: %w", dataDir, err)
	}
	defer m.Close()

	var fetcher flixsearch.Fetcher = m.Fetcher
	if fetcher == nil {
		fetcher = flixhttp.NewFetcher(
			flixhttp.WithTimeout(cli.Timeout),
			flixhttp.WithBaseURL(cli.BaseURL),
			flixhttp.WithLimiter(flixhttp.NewDomainLimiter(flixhttp.DefaultRequestsPerSecond)),
		)
	}
	defer fetcher.Close()
	fetcher = flixslog.NewLoggingFetcher(fetcher, deps.Logger)

	extractor := flixslog.NewLoggingExtractor(
		extract.NewExtractor(goquery.NewParser(), deps.Logger),
		deps.Logger,
	)

	notifier := m.Notifier
	if notifier == nil {
		notifier = newNotifier(cli.Format)
	}

	deps.Search = &search.Service{
		Fetcher:     fetcher,
		Extractor:   extractor,
		Cache:       flixslog.NewLoggingResultCache(sqlite.NewResultCache(m.DB), deps.Logger),
		Preferences: fs.NewPreferenceStore(filepath.Join(dataDir, "settings.json")),
		Notifier:    notifier,
		Logger:      deps.Logger,
	}

	deps.Discoverer = &discover.Discoverer{
		Fetcher:     fetcher,
		Extractor:   extractor,
		Concurrency: cli.Discover.Concurrency,
		Logger:      deps.Logger,
	}

	return kongCtx.Run(deps)
}

// newLogger returns a text logger on w tagged with a per-run ID.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("run", uuid.NewString())
}

func newRenderer(format string) flixsearch.Renderer {
	if format == FormatAlfred {
		return alfred.NewRenderer()
	}
	return lipgloss.NewRenderer()
}

func newNotifier(format string) flixsearch.Notifier {
	if format == FormatAlfred {
		return alfred.NewNotifier(os.Getenv("alfred_workflow_bundleid"), nil)
	}
	return flixsearch.NopNotifier{}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".flixsearch"
	}
	return filepath.Join(home, ".flixsearch")
}
