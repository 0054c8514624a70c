package mock

import (
	"context"

	"github.com/fwojciec/tourpkg"
)

var _ tourpkg.ArtifactStore = (*ArtifactStore)(nil)

// ArtifactStore is a mock implementation of tourpkg.ArtifactStore.
type ArtifactStore struct {
	LoadFn func(ctx context.Context, id tourpkg.ProductID, kind tourpkg.ArtifactKind) (string, error)
}

func (s *ArtifactStore) Load(ctx context.Context, id tourpkg.ProductID, kind tourpkg.ArtifactKind) (string, error) {
	return s.LoadFn(ctx, id, kind)
}

var _ tourpkg.PageExtractor = (*PageExtractor)(nil)

// PageExtractor is a mock implementation of tourpkg.PageExtractor.
type PageExtractor struct {
	ExtractFn func(html string) (*tourpkg.PageFields, error)
}

func (e *PageExtractor) Extract(html string) (*tourpkg.PageFields, error) {
	return e.ExtractFn(html)
}
