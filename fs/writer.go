package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/tourpkg"
)

// Ensure Writer implements tourpkg.PackageWriter at compile time.
var _ tourpkg.PackageWriter = (*Writer)(nil)

// Writer exports packages as a JSON array with atomic replace semantics.
// The array is written to path.tmp and renamed over path once complete.
type Writer struct {
	path string
}

// NewWriter creates a new Writer targeting path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

func (w *Writer) tempPath() string {
	return w.path + ".tmp"
}

// WritePackages validates and writes all packages in order.
func (w *Writer) WritePackages(ctx context.Context, pkgs []*tourpkg.Package) error {
	for _, p := range pkgs {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	if pkgs == nil {
		pkgs = []*tourpkg.Package{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(pkgs); err != nil {
		return err
	}

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(w.tempPath(), buf.Bytes(), 0644); err != nil {
		return err
	}
	if err := os.Rename(w.tempPath(), w.path); err != nil {
		_ = os.Remove(w.tempPath())
		return err
	}
	return nil
}
