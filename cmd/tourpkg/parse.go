package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/tourpkg"
	"github.com/fwojciec/tourpkg/fs"
	"github.com/fwojciec/tourpkg/goquery"
	"github.com/fwojciec/tourpkg/nation"
	"github.com/fwojciec/tourpkg/pipeline"
	tpslog "github.com/fwojciec/tourpkg/slog"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	dir := c.Details
	if dir == "" {
		dir = fs.DefaultArtifactDir
	}
	store := fs.NewArtifactStore(dir)

	ids, err := c.productIDs(deps, store)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tourpkg.ErrorMessage(err))
		return err
	}

	nations, err := loadNations(c.Nations)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tourpkg.ErrorMessage(err))
		return err
	}

	runner := &pipeline.Runner{
		Assembler: tpslog.NewLoggingAssembler(&pipeline.Assembler{
			Artifacts: tpslog.NewLoggingArtifactStore(store, deps.Logger),
			Page:      goquery.NewPageExtractor(),
			Nations:   nations,
		}, deps.Logger),
		Logger:           deps.Logger,
		Concurrency:      c.Concurrency,
		ProgressInterval: c.Progress,
	}

	pkgs, err := runner.Run(deps.Ctx, ids, nil)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tourpkg.ErrorMessage(err))
		return err
	}

	// Without a sink the records go to stdout and the summary to stderr.
	summary := deps.Stdout
	if c.JSON == "" && deps.Packages == nil {
		summary = deps.Stderr
		enc := json.NewEncoder(deps.Stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if pkgs == nil {
			pkgs = []*tourpkg.Package{}
		}
		if err := enc.Encode(pkgs); err != nil {
			return err
		}
	}

	fmt.Fprintf(summary, "Parsed %d of %d products (%d rejected)\n", len(pkgs), len(ids), len(ids)-len(pkgs))

	if c.JSON != "" {
		w := tpslog.NewLoggingPackageWriter(fs.NewWriter(c.JSON), deps.Logger)
		if err := w.WritePackages(deps.Ctx, pkgs); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", tourpkg.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(summary, "Wrote %s\n", c.JSON)
	}

	if deps.Packages != nil {
		imp, err := deps.Packages.ImportPackages(deps.Ctx, pkgs)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", tourpkg.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(summary, "Imported %d packages, %d changed (%s)\n", imp.Count, imp.Changed, imp.ID)
	}

	return nil
}

// productIDs reads the code list when one is given and otherwise lists the
// products present in the artifacts directory.
func (c *ParseCmd) productIDs(deps *Dependencies, store *fs.ArtifactStore) ([]tourpkg.ProductID, error) {
	if c.Codes != "" {
		return fs.ReadProductIDsFile(c.Codes)
	}
	return store.ProductIDs(deps.Ctx)
}

func loadNations(path string) (*nation.Table, error) {
	if path == "" {
		return nation.Default()
	}
	return nation.LoadFile(path)
}
