// Package pipeline assembles package records from product artifacts and
// runs assembly across a batch of products.
package pipeline

import (
	"context"
	"fmt"

	"github.com/fwojciec/tourpkg"
	"github.com/fwojciec/tourpkg/extract"
)

// Ensure Assembler implements tourpkg.Assembler at compile time.
var _ tourpkg.Assembler = (*Assembler)(nil)

// Assembler builds one Package from the seven artifacts of a product.
type Assembler struct {
	Artifacts tourpkg.ArtifactStore
	Page      tourpkg.PageExtractor
	Nations   tourpkg.NationResolver
}

// Assemble loads and extracts every artifact of the product.
//
// Artifacts are consumed in a fixed order: page, goods, info, other goods,
// calendar, review, schedule. A product whose intro images are missing or
// contain a placeholder is rejected as soon as the goods artifact is read;
// one with an empty schedule is rejected after all artifacts are read.
// Rejection returns (nil, nil). The nation table is consulted last, only
// for products that were not rejected.
func (a *Assembler) Assemble(ctx context.Context, id tourpkg.ProductID) (*tourpkg.Package, error) {
	pkg, err := a.assemble(ctx, id)
	if err == nil {
		return pkg, nil
	}
	// Keep the application error code so callers can still classify it.
	if code := tourpkg.ErrorCode(err); code != tourpkg.EINTERNAL {
		return nil, tourpkg.Errorf(code, "product %s: %s", id, tourpkg.ErrorMessage(err))
	}
	return nil, fmt.Errorf("product %s: %w", id, err)
}

func (a *Assembler) assemble(ctx context.Context, id tourpkg.ProductID) (*tourpkg.Package, error) {
	load := func(kind tourpkg.ArtifactKind) (string, error) {
		return a.Artifacts.Load(ctx, id, kind)
	}

	html, err := load(tourpkg.ArtifactPage)
	if err != nil {
		return nil, err
	}
	page, err := a.Page.Extract(html)
	if err != nil {
		return nil, err
	}

	goods, err := load(tourpkg.ArtifactGoods)
	if err != nil {
		return nil, err
	}
	introImages, ok, err := extract.IntroImages(goods)
	if err != nil {
		return nil, err
	} else if !ok {
		return nil, nil
	}
	inclusions, err := extract.Inclusions(goods)
	if err != nil {
		return nil, err
	}
	exclusions, err := extract.Exclusions(goods)
	if err != nil {
		return nil, err
	}
	reservations, err := extract.ReservationCounts(goods)
	if err != nil {
		return nil, err
	}

	info, err := load(tourpkg.ArtifactInfo)
	if err != nil {
		return nil, err
	}
	nation := extract.Nation(info)
	title, err := extract.Title(info)
	if err != nil {
		return nil, err
	}
	shopping, err := extract.ShoppingCount(info)
	if err != nil {
		return nil, err
	}
	prices, err := extract.TotalPrices(info)
	if err != nil {
		return nil, err
	}

	otherGoods, err := load(tourpkg.ArtifactOtherGoods)
	if err != nil {
		return nil, err
	}
	times, err := extract.DepartureTimes(otherGoods)
	if err != nil {
		return nil, err
	}

	calendar, err := load(tourpkg.ArtifactCalendar)
	if err != nil {
		return nil, err
	}
	departures, err := extract.Departures(calendar, prices.Adult)
	if err != nil {
		return nil, err
	}

	review, err := load(tourpkg.ArtifactReview)
	if err != nil {
		return nil, err
	}
	reviews, err := extract.Reviews(review)
	if err != nil {
		return nil, err
	}

	schedule, err := load(tourpkg.ArtifactSchedule)
	if err != nil {
		return nil, err
	}
	itinerary, err := extract.Schedule(schedule)
	if err != nil {
		return nil, err
	}
	if len(itinerary.Days) == 0 {
		return nil, nil
	}

	if nation == "" {
		if nation, err = a.Nations.ResolveNation(id.VariantCode); err != nil {
			return nil, err
		}
	}

	pkg := &tourpkg.Package{
		ID:                  id,
		DepartureDate:       times.DepartureDate,
		DepartureTime:       times.DepartureTime,
		EndTime:             times.EndTime,
		Nation:              nation,
		Title:               title,
		ImageURLs:           page.ImageURLs,
		IntroImageURLs:      introImages,
		Info:                page.Info,
		Transportation:      page.Transportation,
		LodgeDays:           page.LodgeDays,
		TripDays:            page.TripDays,
		InclusionList:       inclusions,
		ExclusionList:       exclusions,
		ShoppingCount:       shopping,
		OptionalTourCount:   itinerary.OptionalTours,
		AdultPrice:          prices.Adult,
		InfantPrice:         prices.Infant,
		BabyPrice:           prices.Baby,
		ReservationCount:    reservations.Count,
		MinReservationCount: reservations.Min,
		MaxReservationCount: reservations.Max,
		Departures:          departures,
		Schedules:           itinerary.Days,
		Reviews:             reviews,
	}
	if err := pkg.Validate(); err != nil {
		return nil, err
	}
	return pkg, nil
}
