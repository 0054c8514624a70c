package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/tourpkg"
)

// Ensure LoggingAssembler implements tourpkg.Assembler.
var _ tourpkg.Assembler = (*LoggingAssembler)(nil)

// LoggingAssembler wraps an Assembler with debug logging of each outcome.
type LoggingAssembler struct {
	next   tourpkg.Assembler
	logger *slog.Logger
}

// NewLoggingAssembler creates a new LoggingAssembler.
func NewLoggingAssembler(next tourpkg.Assembler, logger *slog.Logger) *LoggingAssembler {
	return &LoggingAssembler{next: next, logger: logger}
}

// Assemble delegates to the wrapped assembler and logs whether the product
// was assembled or rejected.
func (a *LoggingAssembler) Assemble(ctx context.Context, id tourpkg.ProductID) (pkg *tourpkg.Package, err error) {
	defer func(begin time.Time) {
		outcome := "assembled"
		switch {
		case err != nil:
			outcome = "failed"
		case pkg == nil:
			outcome = "rejected"
		}
		a.logger.Debug("assemble",
			"product", id.String(),
			"outcome", outcome,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Assemble(ctx, id)
}
