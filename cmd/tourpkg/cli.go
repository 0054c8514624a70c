package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/tourpkg"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	// Packages is nil unless a database path was given.
	Packages tourpkg.PackageService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log every artifact read and assembly outcome"`

	Parse   ParseCmd   `cmd:"" help:"Assemble package records from an artifacts directory"`
	Nations NationsCmd `cmd:"" help:"Print the nation classification table"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	Details     string `type:"path" help:"Artifacts directory (default: details)"`
	Codes       string `type:"existingfile" help:"Product code list (base,variant per line); defaults to every product in the artifacts directory"`
	Nations     string `type:"existingfile" help:"YAML nation table overriding the built-in one"`
	Concurrency int    `short:"c" help:"Products assembled at once (default: number of CPUs)"`
	JSON        string `name:"json" type:"path" help:"Write records to this JSON file"`
	DB          string `name:"db" env:"TOURPKG_DB" type:"path" help:"Import records into this SQLite database"`
	Progress    int    `default:"500" help:"Report progress every N products"`
}

// NationsCmd is the "nations" subcommand.
type NationsCmd struct {
	Nations string `type:"existingfile" help:"YAML nation table overriding the built-in one"`
}
