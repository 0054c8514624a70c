// Package marker locates fields inside semi-structured text by literal
// delimiter search. Artifacts that mix JSON and escaped HTML cannot be parsed
// as either, so each field is described by the text surrounding it.
package marker

import (
	"strconv"
	"strings"

	"github.com/fwojciec/tourpkg"
)

// Span names a field and the literal markers around it.
//
// The captured segment starts after the first occurrence of Open and ends at
// whichever comes first: the next occurrence of Open, or the first Close
// after the start. An empty Close, or a Close that never appears, keeps the
// rest of the segment.
type Span struct {
	Name  string
	Open  string
	Close string
}

// Find returns the segment and whether Open was present.
func (s Span) Find(text string) (string, bool) {
	i := strings.Index(text, s.Open)
	if i < 0 {
		return "", false
	}
	rest := text[i+len(s.Open):]
	if j := strings.Index(rest, s.Open); j >= 0 {
		rest = rest[:j]
	}
	if s.Close != "" {
		if j := strings.Index(rest, s.Close); j >= 0 {
			rest = rest[:j]
		}
	}
	return rest, true
}

// Require returns the segment or EINVALID if Open is absent. Open counts as
// absent when nothing but further copies of Open follows it.
func (s Span) Require(text string) (string, error) {
	seg, ok := s.Find(text)
	if !ok || trailing(text, s.Open) {
		return "", tourpkg.Errorf(tourpkg.EINVALID, "%s: marker %q not found", s.Name, s.Open)
	}
	return seg, nil
}

// trailing reports whether the text after the first open is only repeats of
// open.
func trailing(text, open string) bool {
	i := strings.Index(text, open)
	return strings.ReplaceAll(text[i+len(open):], open, "") == ""
}

// Int parses the required segment as a base-10 integer.
func (s Span) Int(text string) (int, error) {
	seg, err := s.Require(text)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(seg))
	if err != nil {
		return 0, tourpkg.Errorf(tourpkg.EINVALID, "%s: %q is not an integer", s.Name, seg)
	}
	return n, nil
}

// Segments splits text on sep and returns every piece after the first,
// each cut at the first occurrence of end. The piece before the first sep
// is never part of the result.
func Segments(text, sep, end string) []string {
	parts := strings.Split(text, sep)
	if len(parts) < 2 {
		return nil
	}
	out := make([]string, 0, len(parts)-1)
	for _, p := range parts[1:] {
		if end != "" {
			if j := strings.Index(p, end); j >= 0 {
				p = p[:j]
			}
		}
		out = append(out, p)
	}
	return out
}
