// Package fs provides file-based artifact loading and package export.
package fs

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/tourpkg"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultArtifactDir is the artifacts directory relative to the working directory.
const DefaultArtifactDir = "details"

// Ensure ArtifactStore implements tourpkg.ArtifactStore at compile time.
var _ tourpkg.ArtifactStore = (*ArtifactStore)(nil)

// ArtifactStore reads artifacts named {base},{variant}_{kind}.txt from a
// single directory.
type ArtifactStore struct {
	root string
}

// NewArtifactStore creates a new ArtifactStore rooted at dir.
func NewArtifactStore(dir string) *ArtifactStore {
	return &ArtifactStore{root: dir}
}

// ArtifactPath returns the relative file name of an artifact.
func ArtifactPath(id tourpkg.ProductID, kind tourpkg.ArtifactKind) (string, error) {
	if err := id.Validate(); err != nil {
		return "", err
	}
	if strings.ContainsAny(id.BaseCode+id.VariantCode, `/\`) || strings.Contains(id.String(), "..") {
		return "", tourpkg.Errorf(tourpkg.EINVALID, "product %s: path traversal in product code", id)
	}
	return id.String() + "_" + string(kind) + ".txt", nil
}

// Load returns the artifact text. A leading byte order mark is dropped and
// every line, including the last, is terminated by a single "\n". Lines end
// at "\n", "\r\n", or a lone "\r".
func (s *ArtifactStore) Load(ctx context.Context, id tourpkg.ProductID, kind tourpkg.ArtifactKind) (string, error) {
	name, err := ArtifactPath(id, kind)
	if err != nil {
		return "", err
	}

	f, err := os.Open(filepath.Join(s.root, name))
	if os.IsNotExist(err) {
		return "", tourpkg.Errorf(tourpkg.ENOTFOUND, "artifact %s not found", name)
	} else if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(transform.NewReader(f, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	if err != nil {
		return "", err
	}
	return lineEndings.Replace(string(data)) + trailingNewline(data), nil
}

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

func trailingNewline(data []byte) string {
	if len(data) == 0 || data[len(data)-1] == '\n' || data[len(data)-1] == '\r' {
		return ""
	}
	return "\n"
}

// ProductIDs lists every product that has a page artifact, in file name order.
func (s *ArtifactStore) ProductIDs(ctx context.Context) ([]tourpkg.ProductID, error) {
	entries, err := os.ReadDir(s.root)
	if os.IsNotExist(err) {
		return nil, tourpkg.Errorf(tourpkg.ENOTFOUND, "artifact directory %s not found", s.root)
	} else if err != nil {
		return nil, err
	}

	suffix := "_" + string(tourpkg.ArtifactPage) + ".txt"
	var ids []tourpkg.ProductID
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, suffix) {
			continue
		}
		base, variant, ok := strings.Cut(strings.TrimSuffix(name, suffix), ",")
		if !ok || base == "" || variant == "" {
			continue
		}
		ids = append(ids, tourpkg.ProductID{BaseCode: base, VariantCode: variant})
	}
	return ids, nil
}
