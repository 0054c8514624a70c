// Package extract reads package fields out of captured API-response
// artifacts. Hybrid artifacts that embed escaped HTML inside JSON are read
// with marker spans; pure JSON artifacts are decoded and walked.
package extract

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/fwojciec/tourpkg"
	"github.com/fwojciec/tourpkg/marker"
)

// Goods artifact markers.
var (
	productFeatureSpan = marker.Span{Name: "product feature", Open: `"ProductFeature":"`, Close: "ProductPriviledge"}
	inclusionSpan      = marker.Span{Name: "inclusion list", Open: `"InclusionList":`, Close: `,"InfantPrice"`}
	exclusionSpan      = marker.Span{Name: "exclusion list", Open: `"ExclusionList":`, Close: `,"FamilyPack"`}
	reserveCountSpan   = marker.Span{Name: "reserve count", Open: `"ReserveCnt":"`, Close: `"`}
	remainSeatSpan     = marker.Span{Name: "remaining seats", Open: `"RemainSeat":"`, Close: `"`}
	minStartSpan       = marker.Span{Name: "minimum start count", Open: `"MinStartNum":"`, Close: `"`}
)

// Escaped image tag delimiters inside the ProductFeature HTML string.
const (
	introImageOpen  = `img src=\"`
	introImageClose = `\"`
)

// IntroImages returns the intro image URLs embedded in the ProductFeature
// HTML. ok is false when the product must be rejected: no images, or an
// inline placeholder image among them.
func IntroImages(goods string) (urls []string, ok bool, err error) {
	feature, err := productFeatureSpan.Require(goods)
	if err != nil {
		return nil, false, err
	}
	urls = marker.Segments(feature, introImageOpen, introImageClose)
	for _, u := range urls {
		if strings.HasPrefix(u, tourpkg.PlaceholderImagePrefix) {
			return nil, false, nil
		}
	}
	if len(urls) == 0 {
		return nil, false, nil
	}
	return urls, true, nil
}

// Inclusions returns the reshaped inclusion list as JSON text.
func Inclusions(goods string) (string, error) {
	raw, err := inclusionSpan.Require(goods)
	if err != nil {
		return "", err
	}
	return ReshapeClusions(raw)
}

// Exclusions returns the reshaped exclusion list as JSON text.
func Exclusions(goods string) (string, error) {
	raw, err := exclusionSpan.Require(goods)
	if err != nil {
		return "", err
	}
	return ReshapeClusions(raw)
}

// Source keys of an inclusion/exclusion element.
const (
	clusionTypeKey   = "TravelCondTypeCD"
	clusionNameKey   = "CodeKRNM"
	clusionRemarkKey = "Remark"
)

// ReshapeClusions renames CodeKRNM to title and Remark to description in
// every element of a JSON array, drops the source keys, and renders the
// array back to JSON with keys sorted. Other keys are kept as-is.
func ReshapeClusions(raw string) (string, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var items []map[string]any
	if err := dec.Decode(&items); err != nil {
		return "", tourpkg.Errorf(tourpkg.EINVALID, "item list: %v", err)
	}
	if items == nil {
		return "", tourpkg.Errorf(tourpkg.EINVALID, "item list: not an array")
	}

	for i, item := range items {
		if item == nil {
			return "", tourpkg.Errorf(tourpkg.EINVALID, "item list: element %d is not an object", i)
		}
		name, ok := item[clusionNameKey]
		if !ok {
			return "", tourpkg.Errorf(tourpkg.EINVALID, "item list: element %d has no %s", i, clusionNameKey)
		}
		remark, ok := item[clusionRemarkKey]
		if !ok {
			return "", tourpkg.Errorf(tourpkg.EINVALID, "item list: element %d has no %s", i, clusionRemarkKey)
		}
		item["title"] = name
		item["description"] = remark
		delete(item, clusionTypeKey)
		delete(item, clusionNameKey)
		delete(item, clusionRemarkKey)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(items); err != nil {
		return "", tourpkg.Errorf(tourpkg.EINVALID, "item list: %v", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Reservations holds the seat counts of a package.
type Reservations struct {
	Count int
	Min   int
	Max   int
}

// ReservationCounts reads the current reservations, the minimum needed to
// depart, and the capacity (current plus remaining seats).
func ReservationCounts(goods string) (Reservations, error) {
	var r Reservations
	var err error
	if r.Count, err = reserveCountSpan.Int(goods); err != nil {
		return Reservations{}, err
	}
	remain, err := remainSeatSpan.Int(goods)
	if err != nil {
		return Reservations{}, err
	}
	r.Max = r.Count + remain
	if r.Min, err = minStartSpan.Int(goods); err != nil {
		return Reservations{}, err
	}
	return r, nil
}
