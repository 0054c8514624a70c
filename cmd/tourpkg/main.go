package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	tpslog "github.com/fwojciec/tourpkg/slog"
	"github.com/fwojciec/tourpkg/sqlite"
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
	// SQLite database, opened only when a database path is configured.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main.
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
		kong.Name("tourpkg"),
		kong.Description("Assemble travel package records from captured product artifacts."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'tourpkg --help' to see available commands")
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

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if kongCtx.Command() == "parse" && cli.Parse.DB != "" {
		m.DB = sqlite.NewDB(cli.Parse.DB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set TOURPKG_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", cli.Parse.DB, err)
		}
		defer m.Close()

		deps.Packages = tpslog.NewLoggingPackageService(sqlite.NewPackageService(m.DB), deps.Logger)
	}

	return kongCtx.Run(deps)
}
