package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/tourpkg"
	"github.com/fwojciec/tourpkg/mock"
	tpslog "github.com/fwojciec/tourpkg/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

var testID = tourpkg.ProductID{BaseCode: "24021317796", VariantCode: "24021317796"}

func TestLoggingArtifactStore_Load(t *testing.T) {
	t.Parallel()

	t.Run("logs load with kind and bytes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.ArtifactStore{
			LoadFn: func(_ context.Context, _ tourpkg.ProductID, _ tourpkg.ArtifactKind) (string, error) {
				return `{"data":{}}`, nil
			},
		}

		store := tpslog.NewLoggingArtifactStore(inner, debugLogger(&buf))
		text, err := store.Load(context.Background(), testID, tourpkg.ArtifactInfo)

		require.NoError(t, err)
		assert.Equal(t, `{"data":{}}`, text)
		output := buf.String()
		assert.Contains(t, output, "load artifact")
		assert.Contains(t, output, "product=24021317796,24021317796")
		assert.Contains(t, output, "kind=infoResponse")
		assert.Contains(t, output, "bytes=11")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.ArtifactStore{
			LoadFn: func(_ context.Context, _ tourpkg.ProductID, _ tourpkg.ArtifactKind) (string, error) {
				return "", tourpkg.Errorf(tourpkg.ENOTFOUND, "artifact missing")
			},
		}

		store := tpslog.NewLoggingArtifactStore(inner, debugLogger(&buf))
		_, err := store.Load(context.Background(), testID, tourpkg.ArtifactPage)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=")
		assert.Contains(t, buf.String(), "artifact missing")
	})

	t.Run("is silent above debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.ArtifactStore{
			LoadFn: func(_ context.Context, _ tourpkg.ProductID, _ tourpkg.ArtifactKind) (string, error) {
				return "x", nil
			},
		}

		store := tpslog.NewLoggingArtifactStore(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		_, err := store.Load(context.Background(), testID, tourpkg.ArtifactPage)

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}
