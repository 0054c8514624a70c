// Package slog provides logging decorators for tourpkg services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/tourpkg"
)

// Ensure LoggingArtifactStore implements tourpkg.ArtifactStore.
var _ tourpkg.ArtifactStore = (*LoggingArtifactStore)(nil)

// LoggingArtifactStore wraps an ArtifactStore with debug logging.
type LoggingArtifactStore struct {
	next   tourpkg.ArtifactStore
	logger *slog.Logger
}

// NewLoggingArtifactStore creates a new LoggingArtifactStore.
func NewLoggingArtifactStore(next tourpkg.ArtifactStore, logger *slog.Logger) *LoggingArtifactStore {
	return &LoggingArtifactStore{next: next, logger: logger}
}

// Load delegates to the wrapped store and logs the read.
func (s *LoggingArtifactStore) Load(ctx context.Context, id tourpkg.ProductID, kind tourpkg.ArtifactKind) (text string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("load artifact",
			"product", id.String(),
			"kind", string(kind),
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Load(ctx, id, kind)
}
