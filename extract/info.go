package extract

import (
	"strconv"
	"strings"

	"github.com/fwojciec/tourpkg"
	"github.com/fwojciec/tourpkg/marker"
)

// Info artifact markers.
var (
	nationSpan   = marker.Span{Name: "nation", Open: `"NationInfo":[{"Name":"`, Close: `"`}
	titleSpan    = marker.Span{Name: "title", Open: `GoodsName":"`, Close: `"`}
	shoppingSpan = marker.Span{Name: "shopping count", Open: `"ShoppingCnt":`, Close: ","}

	// Prices are read from the Total block only; Local prices follow it.
	totalPriceSpan = marker.Span{Name: "total price", Open: "Total", Close: "Local"}
	adultSpan      = marker.Span{Name: "adult price", Open: `"Adult":`, Close: ","}
	infantSpan     = marker.Span{Name: "infant price", Open: `"Infant":`, Close: ","}
	babySpan       = marker.Span{Name: "baby price", Open: `"Baby":`, Close: "}"}
)

// Nation returns the first nation name, or "" if the artifact has none.
func Nation(info string) string {
	name, _ := nationSpan.Find(info)
	return name
}

// Title returns the package title.
func Title(info string) (string, error) {
	return titleSpan.Require(info)
}

// ShoppingCount returns the number of shopping stops.
func ShoppingCount(info string) (int, error) {
	return shoppingSpan.Int(info)
}

// Prices holds per-traveler package prices.
type Prices struct {
	Adult  int
	Infant int
	Baby   int
}

// TotalPrices reads adult, infant, and baby prices from the Total block.
func TotalPrices(info string) (Prices, error) {
	total, err := totalPriceSpan.Require(info)
	if err != nil {
		return Prices{}, err
	}
	var p Prices
	if p.Adult, err = adultSpan.Int(total); err != nil {
		return Prices{}, err
	}
	if p.Infant, err = infantSpan.Int(total); err != nil {
		return Prices{}, err
	}
	if p.Baby, err = babySpan.Int(total); err != nil {
		return Prices{}, err
	}
	return p, nil
}

// Duration parses an "N박M일" token into lodging nights and trip days.
func Duration(token string) (nights, days int, err error) {
	before, after, ok := strings.Cut(token, "박")
	if !ok {
		return 0, 0, tourpkg.Errorf(tourpkg.EINVALID, "duration: %q has no nights marker", token)
	}
	daysText, _, ok := strings.Cut(after, "일")
	if !ok {
		return 0, 0, tourpkg.Errorf(tourpkg.EINVALID, "duration: %q has no days marker", token)
	}
	if nights, err = strconv.Atoi(strings.TrimSpace(before)); err != nil || nights < 0 {
		return 0, 0, tourpkg.Errorf(tourpkg.EINVALID, "duration: invalid nights in %q", token)
	}
	if days, err = strconv.Atoi(strings.TrimSpace(daysText)); err != nil || days < 0 {
		return 0, 0, tourpkg.Errorf(tourpkg.EINVALID, "duration: invalid days in %q", token)
	}
	return nights, days, nil
}
