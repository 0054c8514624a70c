// Package goquery reads presentation fields out of the rendered product page.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/tourpkg"
	"github.com/fwojciec/tourpkg/extract"
	"github.com/fwojciec/tourpkg/marker"
)

// Page selectors and labels.
const (
	detailSelector    = "section.packageDetail"
	pictogramSelector = "ul.pictogram"
	pictogramText     = "span.text"
	maxThumbnails     = 10
)

// transportSpan captures the raw markup between the transport label and the
// end of its dd. Whitespace between </dt> and <dd> does not match.
var transportSpan = marker.Span{Name: "transportation", Open: "교통편</dt><dd>", Close: "</dd>"}

// Ensure PageExtractor implements tourpkg.PageExtractor at compile time.
var _ tourpkg.PageExtractor = (*PageExtractor)(nil)

// PageExtractor implements tourpkg.PageExtractor using goquery.
type PageExtractor struct{}

// NewPageExtractor creates a new PageExtractor.
func NewPageExtractor() *PageExtractor {
	return &PageExtractor{}
}

// Extract reads thumbnails, transportation, the pictogram summary, and the
// trip duration from the page.
func (e *PageExtractor) Extract(html string) (*tourpkg.PageFields, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, tourpkg.Errorf(tourpkg.EINVALID, "failed to parse HTML: %v", err)
	}

	thumbnails, err := Thumbnails(doc)
	if err != nil {
		return nil, err
	}

	info, nights, days, err := Pictogram(doc)
	if err != nil {
		return nil, err
	}

	return &tourpkg.PageFields{
		ImageURLs:      thumbnails,
		Transportation: Transportation(html),
		Info:           info,
		LodgeDays:      nights,
		TripDays:       days,
	}, nil
}

// Thumbnails returns up to ten image sources from the product detail
// section in document order. Only images whose first attribute is src
// count. Protocol-relative URLs get an https scheme.
func Thumbnails(doc *goquery.Document) ([]string, error) {
	section := doc.Find(detailSelector).First()
	if section.Length() == 0 {
		return nil, tourpkg.Errorf(tourpkg.EINVALID, "thumbnails: %s not found", detailSelector)
	}

	urls := []string{}
	section.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		attrs := img.Nodes[0].Attr
		if len(attrs) == 0 || attrs[0].Key != "src" {
			return true
		}
		src := attrs[0].Val
		if strings.HasPrefix(src, "//") {
			src = "https:" + src
		}
		urls = append(urls, src)
		return len(urls) < maxThumbnails
	})
	return urls, nil
}

// Transportation returns the trimmed raw markup of the dd that directly
// follows the transport dt, or tourpkg.DefaultTransportation if the page
// has none. Entities and nested tags are kept as written.
func Transportation(html string) string {
	seg, ok := transportSpan.Find(html)
	if !ok {
		return tourpkg.DefaultTransportation
	}
	return strings.TrimSpace(seg)
}

// Pictogram reads the labeled spans of the pictogram list. Spans 0, 1, 3,
// and 4 form the newline-joined summary; span 2 is the "N박M일" duration.
func Pictogram(doc *goquery.Document) (info string, nights, days int, err error) {
	list := doc.Find(pictogramSelector).First()
	if list.Length() == 0 {
		return "", 0, 0, tourpkg.Errorf(tourpkg.EINVALID, "pictogram: %s not found", pictogramSelector)
	}

	spans := list.Find(pictogramText).Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
	if len(spans) < 5 {
		return "", 0, 0, tourpkg.Errorf(tourpkg.EINVALID, "pictogram: want 5 spans, got %d", len(spans))
	}

	nights, days, err = extract.Duration(spans[2])
	if err != nil {
		return "", 0, 0, err
	}
	info = strings.Join([]string{spans[0], spans[1], spans[3], spans[4]}, "\n")
	return info, nights, days, nil
}
