// Package nation resolves nation names for product variants from a
// configurable lookup table.
package nation

import (
	_ "embed"
	"io"
	"os"
	"sort"

	"github.com/fwojciec/tourpkg"
	"gopkg.in/yaml.v3"
)

//go:embed nations.yaml
var defaultTable []byte

// Ensure Table implements tourpkg.NationResolver at compile time.
var _ tourpkg.NationResolver = (*Table)(nil)

// Table maps variant codes to nation names.
type Table struct {
	nations map[string]string
	groups  []Group
}

// Group is one nation and the variant codes mapped to it.
type Group struct {
	Nation string
	Codes  []string
}

// NewTable builds a table from nation → codes groups.
// A code listed under more than one nation is EINVALID.
func NewTable(groups map[string][]string) (*Table, error) {
	t := &Table{nations: make(map[string]string)}
	for nation, codes := range groups {
		if nation == "" {
			return nil, tourpkg.Errorf(tourpkg.EINVALID, "nation table: empty nation name")
		}
		for _, code := range codes {
			if prev, ok := t.nations[code]; ok && prev != nation {
				return nil, tourpkg.Errorf(tourpkg.EINVALID, "nation table: code %q listed under %s and %s", code, prev, nation)
			}
			t.nations[code] = nation
		}
		sorted := append([]string(nil), codes...)
		sort.Strings(sorted)
		t.groups = append(t.groups, Group{Nation: nation, Codes: sorted})
	}
	sort.Slice(t.groups, func(i, j int) bool { return t.groups[i].Nation < t.groups[j].Nation })
	return t, nil
}

// Load reads a YAML table of the form `nation: [code, ...]`.
func Load(r io.Reader) (*Table, error) {
	var groups map[string][]string
	if err := yaml.NewDecoder(r).Decode(&groups); err != nil && err != io.EOF {
		return nil, tourpkg.Errorf(tourpkg.EINVALID, "nation table: %v", err)
	}
	return NewTable(groups)
}

// LoadFile reads a YAML table from path.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, tourpkg.Errorf(tourpkg.ENOTFOUND, "nation table %q not found", path)
	} else if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Default returns the built-in table.
func Default() (*Table, error) {
	var groups map[string][]string
	if err := yaml.Unmarshal(defaultTable, &groups); err != nil {
		return nil, tourpkg.Errorf(tourpkg.EINVALID, "nation table: %v", err)
	}
	return NewTable(groups)
}

// ResolveNation returns the nation for a variant code.
// Returns EUNCLASSIFIED if the table has no entry, which means the table
// needs maintenance; callers treat it as fatal.
func (t *Table) ResolveNation(variantCode string) (string, error) {
	nation, ok := t.nations[variantCode]
	if !ok {
		return "", tourpkg.Errorf(tourpkg.EUNCLASSIFIED, "no nation classified for product code %s", variantCode)
	}
	return nation, nil
}

// Groups returns the table contents sorted by nation name.
func (t *Table) Groups() []Group {
	return t.groups
}

// Len returns the number of mapped codes.
func (t *Table) Len() int {
	return len(t.nations)
}
