package slog_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/tourpkg"
	"github.com/fwojciec/tourpkg/mock"
	tpslog "github.com/fwojciec/tourpkg/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingAssembler_Assemble(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pkg     *tourpkg.Package
		err     error
		outcome string
	}{
		{"assembled", &tourpkg.Package{ID: testID}, nil, "outcome=assembled"},
		{"rejected", nil, nil, "outcome=rejected"},
		{"failed", nil, errors.New("bad schedule"), "outcome=failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			inner := &mock.Assembler{
				AssembleFn: func(_ context.Context, _ tourpkg.ProductID) (*tourpkg.Package, error) {
					return tt.pkg, tt.err
				},
			}

			a := tpslog.NewLoggingAssembler(inner, debugLogger(&buf))
			pkg, err := a.Assemble(context.Background(), testID)

			assert.Equal(t, tt.pkg, pkg)
			assert.Equal(t, tt.err, err)
			output := buf.String()
			assert.Contains(t, output, "msg=assemble")
			assert.Contains(t, output, tt.outcome)
			assert.Contains(t, output, "product=24021317796,24021317796")
		})
	}

	t.Run("passes context through", func(t *testing.T) {
		t.Parallel()

		type key struct{}
		ctx := context.WithValue(context.Background(), key{}, "v")
		inner := &mock.Assembler{
			AssembleFn: func(ctx context.Context, _ tourpkg.ProductID) (*tourpkg.Package, error) {
				require.Equal(t, "v", ctx.Value(key{}))
				return nil, nil
			},
		}

		var buf bytes.Buffer
		_, err := tpslog.NewLoggingAssembler(inner, debugLogger(&buf)).Assemble(ctx, testID)

		require.NoError(t, err)
	})
}
