package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/tourpkg"
)

// Compile-time interface verification.
var (
	_ tourpkg.PackageService = (*LoggingPackageService)(nil)
	_ tourpkg.PackageWriter  = (*LoggingPackageWriter)(nil)
)

// LoggingPackageService wraps a PackageService with logging.
type LoggingPackageService struct {
	next   tourpkg.PackageService
	logger *slog.Logger
}

// NewLoggingPackageService creates a new LoggingPackageService.
func NewLoggingPackageService(next tourpkg.PackageService, logger *slog.Logger) *LoggingPackageService {
	return &LoggingPackageService{next: next, logger: logger}
}

// ImportPackages delegates to the wrapped service and logs the import run.
func (s *LoggingPackageService) ImportPackages(ctx context.Context, pkgs []*tourpkg.Package) (imp *tourpkg.Import, err error) {
	defer func(begin time.Time) {
		var id string
		if imp != nil {
			id = imp.ID
		}
		s.logger.Info("import packages",
			"import", id,
			"count", len(pkgs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ImportPackages(ctx, pkgs)
}

// FindPackages delegates to the wrapped service.
func (s *LoggingPackageService) FindPackages(ctx context.Context, filter tourpkg.PackageFilter) (pkgs []*tourpkg.Package, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find packages",
			"count", len(pkgs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindPackages(ctx, filter)
}

// LoggingPackageWriter wraps a PackageWriter with logging.
type LoggingPackageWriter struct {
	next   tourpkg.PackageWriter
	logger *slog.Logger
}

// NewLoggingPackageWriter creates a new LoggingPackageWriter.
func NewLoggingPackageWriter(next tourpkg.PackageWriter, logger *slog.Logger) *LoggingPackageWriter {
	return &LoggingPackageWriter{next: next, logger: logger}
}

// WritePackages delegates to the wrapped writer and logs the export.
func (w *LoggingPackageWriter) WritePackages(ctx context.Context, pkgs []*tourpkg.Package) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write packages",
			"count", len(pkgs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WritePackages(ctx, pkgs)
}
