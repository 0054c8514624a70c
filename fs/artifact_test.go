package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/tourpkg"
	"github.com/fwojciec/tourpkg/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureDir = "../testdata/details"

var maldives = tourpkg.ProductID{BaseCode: "24021317796", VariantCode: "24021317796"}

func TestArtifactPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		id      tourpkg.ProductID
		kind    tourpkg.ArtifactKind
		want    string
		wantErr bool
	}{
		{
			name: "joins codes and kind",
			id:   tourpkg.ProductID{BaseCode: "1", VariantCode: "2"},
			kind: tourpkg.ArtifactCalendar,
			want: "1,2_calendarResponse.txt",
		},
		{
			name: "page kind is html",
			id:   maldives,
			kind: tourpkg.ArtifactPage,
			want: "24021317796,24021317796_html.txt",
		},
		{
			name:    "rejects missing variant",
			id:      tourpkg.ProductID{BaseCode: "1"},
			kind:    tourpkg.ArtifactPage,
			wantErr: true,
		},
		{
			name:    "rejects path separators",
			id:      tourpkg.ProductID{BaseCode: "../etc", VariantCode: "passwd"},
			kind:    tourpkg.ArtifactPage,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.ArtifactPath(tt.id, tt.kind)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tourpkg.EINVALID, tourpkg.ErrorCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArtifactStore_Load(t *testing.T) {
	t.Parallel()

	t.Run("reads artifact by naming convention", func(t *testing.T) {
		t.Parallel()

		store := fs.NewArtifactStore(fixtureDir)

		text, err := store.Load(context.Background(), maldives, tourpkg.ArtifactInfo)

		require.NoError(t, err)
		assert.Contains(t, text, `"GoodsName":"[몰디브] 리조트 5일"`)
	})

	t.Run("normalizes CRLF and terminates every line", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		id := tourpkg.ProductID{BaseCode: "1", VariantCode: "2"}
		require.NoError(t, os.WriteFile(filepath.Join(dir, "1,2_html.txt"), []byte("a\r\nb\r\nc"), 0644))

		text, err := fs.NewArtifactStore(dir).Load(context.Background(), id, tourpkg.ArtifactPage)

		require.NoError(t, err)
		assert.Equal(t, "a\nb\nc\n", text)
	})

	t.Run("ends lines at a lone carriage return", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name string
			data string
			want string
		}{
			{"lone CR between lines", "a\rb\nc", "a\nb\nc\n"},
			{"trailing lone CR", "a\r", "a\n"},
			{"CR before CRLF", "a\r\r\nb", "a\n\nb\n"},
			{"byte order mark then CR", "\ufeffa\rb", "a\nb\n"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				// Given an artifact written with old Mac line endings
				dir := t.TempDir()
				id := tourpkg.ProductID{BaseCode: "1", VariantCode: "2"}
				require.NoError(t, os.WriteFile(filepath.Join(dir, "1,2_scheduleResponse.txt"), []byte(tt.data), 0644))

				// When I load it
				text, err := fs.NewArtifactStore(dir).Load(context.Background(), id, tourpkg.ArtifactSchedule)

				// Then every line ends in a single newline
				require.NoError(t, err)
				assert.Equal(t, tt.want, text)
			})
		}
	})

	t.Run("strips byte order mark", func(t *testing.T) {
		t.Parallel()

		store := fs.NewArtifactStore(fixtureDir)
		id := tourpkg.ProductID{BaseCode: "24060310100", VariantCode: "24060310182"}

		text, err := store.Load(context.Background(), id, tourpkg.ArtifactInfo)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(text, `{"data"`), "got %q", text[:10])
	})

	t.Run("empty file yields empty text", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		id := tourpkg.ProductID{BaseCode: "1", VariantCode: "2"}
		require.NoError(t, os.WriteFile(filepath.Join(dir, "1,2_reviewResponse.txt"), nil, 0644))

		text, err := fs.NewArtifactStore(dir).Load(context.Background(), id, tourpkg.ArtifactReview)

		require.NoError(t, err)
		assert.Empty(t, text)
	})

	t.Run("missing artifact is not found", func(t *testing.T) {
		t.Parallel()

		store := fs.NewArtifactStore(fixtureDir)
		id := tourpkg.ProductID{BaseCode: "24011617570", VariantCode: "24011617576"}

		_, err := store.Load(context.Background(), id, tourpkg.ArtifactInfo)

		require.Error(t, err)
		assert.Equal(t, tourpkg.ENOTFOUND, tourpkg.ErrorCode(err))
		assert.Contains(t, tourpkg.ErrorMessage(err), "24011617570,24011617576_infoResponse.txt")
	})
}

func TestArtifactStore_ProductIDs(t *testing.T) {
	t.Parallel()

	t.Run("lists products with a page artifact in name order", func(t *testing.T) {
		t.Parallel()

		ids, err := fs.NewArtifactStore(fixtureDir).ProductIDs(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []tourpkg.ProductID{
			{BaseCode: "24011617570", VariantCode: "24011617576"},
			{BaseCode: "24021317796", VariantCode: "24021317796"},
			{BaseCode: "24031320100", VariantCode: "24031320107"},
			{BaseCode: "24060310100", VariantCode: "24060310182"},
		}, ids)
	})

	t.Run("skips unrelated files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		for _, name := range []string{"1,2_html.txt", "1,2_infoResponse.txt", "notes.txt", "broken_html.txt"} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
		}

		ids, err := fs.NewArtifactStore(dir).ProductIDs(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []tourpkg.ProductID{{BaseCode: "1", VariantCode: "2"}}, ids)
	})

	t.Run("missing directory is not found", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewArtifactStore(filepath.Join(t.TempDir(), "nope")).ProductIDs(context.Background())

		assert.Equal(t, tourpkg.ENOTFOUND, tourpkg.ErrorCode(err))
	})
}
