package fs

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/tourpkg"
)

// ReadProductIDs parses a code list with one "base,variant" pair per line.
// Blank lines and lines starting with # are skipped.
func ReadProductIDs(r io.Reader) ([]tourpkg.ProductID, error) {
	var ids []tourpkg.ProductID
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		base, variant, ok := strings.Cut(line, ",")
		id := tourpkg.ProductID{BaseCode: strings.TrimSpace(base), VariantCode: strings.TrimSpace(variant)}
		if !ok || strings.Contains(variant, ",") || id.Validate() != nil {
			return nil, tourpkg.Errorf(tourpkg.EINVALID, "code list line %d: want base,variant, got %q", n, line)
		}
		ids = append(ids, id)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

// ReadProductIDsFile parses the code list at path.
func ReadProductIDsFile(path string) ([]tourpkg.ProductID, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, tourpkg.Errorf(tourpkg.ENOTFOUND, "code list %q not found", path)
	} else if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadProductIDs(f)
}
