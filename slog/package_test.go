package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/tourpkg"
	"github.com/fwojciec/tourpkg/mock"
	tpslog "github.com/fwojciec/tourpkg/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingPackageService_ImportPackages(t *testing.T) {
	t.Parallel()

	t.Run("logs import id and count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.PackageService{
			ImportPackagesFn: func(_ context.Context, pkgs []*tourpkg.Package) (*tourpkg.Import, error) {
				return &tourpkg.Import{ID: "run-1", Count: len(pkgs)}, nil
			},
		}

		svc := tpslog.NewLoggingPackageService(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		imp, err := svc.ImportPackages(context.Background(), []*tourpkg.Package{{}, {}})

		require.NoError(t, err)
		assert.Equal(t, 2, imp.Count)
		output := buf.String()
		assert.Contains(t, output, "import packages")
		assert.Contains(t, output, "import=run-1")
		assert.Contains(t, output, "count=2")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.PackageService{
			ImportPackagesFn: func(_ context.Context, _ []*tourpkg.Package) (*tourpkg.Import, error) {
				return nil, errors.New("disk full")
			},
		}

		svc := tpslog.NewLoggingPackageService(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		_, err := svc.ImportPackages(context.Background(), nil)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"disk full\"")
	})
}

func TestLoggingPackageService_FindPackages(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.PackageService{
		FindPackagesFn: func(_ context.Context, _ tourpkg.PackageFilter) ([]*tourpkg.Package, error) {
			return []*tourpkg.Package{{}}, nil
		},
	}

	svc := tpslog.NewLoggingPackageService(inner, debugLogger(&buf))
	pkgs, err := svc.FindPackages(context.Background(), tourpkg.PackageFilter{})

	require.NoError(t, err)
	assert.Len(t, pkgs, 1)
	assert.Contains(t, buf.String(), "find packages")
	assert.Contains(t, buf.String(), "count=1")
}

func TestLoggingPackageWriter_WritePackages(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	var written []*tourpkg.Package
	inner := &mock.PackageWriter{
		WritePackagesFn: func(_ context.Context, pkgs []*tourpkg.Package) error {
			written = pkgs
			return nil
		},
	}

	w := tpslog.NewLoggingPackageWriter(inner, slog.New(slog.NewTextHandler(&buf, nil)))
	err := w.WritePackages(context.Background(), []*tourpkg.Package{{}, {}, {}})

	require.NoError(t, err)
	assert.Len(t, written, 3)
	assert.Contains(t, buf.String(), "write packages")
	assert.Contains(t, buf.String(), "count=3")
}
