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
	"github.com/joshuabenuck/markup"
	"github.com/joshuabenuck/markup/goquery"
	"github.com/joshuabenuck/markup/htmltomarkdown"
	markuphttp "github.com/joshuabenuck/markup/http"
	"github.com/joshuabenuck/markup/shell"
	markupslog "github.com/joshuabenuck/markup/slog"
	"github.com/joshuabenuck/markup/sqlite"
	"github.com/joshuabenuck/markup/trafilatura"
)

// CLI defines the flag surface for Kong. There are no subcommands: the
// tool is interactive, and a zero-flag invocation drops straight into
// the prompt.
type CLI struct {
	DB      string        `help:"Path to the saved-page database."`
	History string        `help:"Path to the line-history file."`
	Timeout time.Duration `default:"10s" help:"HTTP fetch timeout."`
	RPS     float64       `default:"2" help:"Maximum fetch requests per second."`
	Verbose bool          `short:"v" help:"Log fetches to stderr."`
}

func main() {
	m := NewMain()

	if err := m.Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database and history paths. Set before calling Run().
	DBPath      string
	HistoryPath string

	// SQLite database backing the saved-page store.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:      defaultDBPath(),
		HistoryPath: defaultHistoryPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run parses flags, wires the collaborators, and drives the REPL.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("me"),
		kong.Description("Interactive markup explorer."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}
	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if cli.DB != "" {
		m.DBPath = cli.DB
	}
	if cli.History != "" {
		m.HistoryPath = cli.History
	}

	// Logs go to stderr so they never interleave with command output.
	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set ME_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	var fetcher markup.Fetcher = markuphttp.NewFetcher(
		markuphttp.WithTimeout(cli.Timeout),
		markuphttp.WithRateLimit(cli.RPS),
	)
	fetcher = markupslog.NewFetcher(fetcher, logger)
	defer fetcher.Close()

	sh := shell.New(fetcher, goquery.NewParser(), stdout,
		shell.WithConverter(htmltomarkdown.NewConverter()),
		shell.WithExtractor(trafilatura.NewExtractor()),
		shell.WithPages(sqlite.NewPageService(m.DB)),
	)

	return NewREPL(sh, m.HistoryPath, stdout, stderr).Run(ctx)
}

func defaultDBPath() string {
	if path := os.Getenv("ME_DB"); path != "" {
		return path
	}
	return filepath.Join(configDir(), "pages.db")
}

func defaultHistoryPath() string {
	if path := os.Getenv("ME_HISTORY"); path != "" {
		return path
	}
	return filepath.Join(configDir(), "history")
}

// configDir returns the per-user state directory (~/.me), creating it
// if needed.
func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	dir := filepath.Join(home, ".me")
	_ = os.MkdirAll(dir, 0755)
	return dir
}
