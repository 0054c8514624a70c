package tourpkg

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DefaultTransportation is used when the page does not describe transport.
const DefaultTransportation = "항공불포함"

// PlaceholderImagePrefix marks an embedded image inlined in place of a real
// intro image URL. A package carrying one is incomplete.
const PlaceholderImagePrefix = "data:image/png"

// Package is the assembled record for one travel product.
type Package struct {
	ID ProductID `json:"id"`

	DepartureDate *time.Time `json:"departureDate"`
	DepartureTime *Clock     `json:"departureTime"`
	EndTime       *Clock     `json:"endTime"`

	Nation         string   `json:"nation"`
	Title          string   `json:"title"`
	ImageURLs      []string `json:"imageUrls"`
	IntroImageURLs []string `json:"introImageUrls"`
	Info           string   `json:"info"`
	Transportation string   `json:"transportation"`

	LodgeDays int `json:"lodgeDays"`
	TripDays  int `json:"tripDays"`

	// InclusionList and ExclusionList hold JSON arrays of reshaped items.
	InclusionList string `json:"inclusionList"`
	ExclusionList string `json:"exclusionList"`

	ShoppingCount     int `json:"shoppingCount"`
	OptionalTourCount int `json:"optionalTourCount"`
	AdultPrice        int `json:"adultPrice"`
	InfantPrice       int `json:"infantPrice"`
	BabyPrice         int `json:"babyPrice"`

	ReservationCount    int `json:"reservationCount"`
	MinReservationCount int `json:"minReservationCount"`
	MaxReservationCount int `json:"maxReservationCount"`

	Departures []Departure   `json:"departures"`
	Schedules  []ScheduleDay `json:"schedules"`
	Reviews    []Review      `json:"reviews"`
}

// Validate returns an error if the package breaks a record invariant.
func (p *Package) Validate() error {
	if err := p.ID.Validate(); err != nil {
		return err
	}
	if p.Nation == "" {
		return Errorf(EINVALID, "package %s: nation required", p.ID)
	}
	if len(p.Schedules) == 0 {
		return Errorf(EINVALID, "package %s: schedule required", p.ID)
	}
	if len(p.IntroImageURLs) == 0 {
		return Errorf(EINVALID, "package %s: intro image required", p.ID)
	}
	for _, u := range p.IntroImageURLs {
		if strings.HasPrefix(u, PlaceholderImagePrefix) {
			return Errorf(EINVALID, "package %s: placeholder intro image", p.ID)
		}
	}
	if p.LodgeDays < 0 || p.TripDays < 0 {
		return Errorf(EINVALID, "package %s: negative duration %d/%d", p.ID, p.LodgeDays, p.TripDays)
	}
	return nil
}

// Inclusions decodes InclusionList.
func (p *Package) Inclusions() ([]Clusion, error) {
	return decodeClusions(p.InclusionList)
}

// Exclusions decodes ExclusionList.
func (p *Package) Exclusions() ([]Clusion, error) {
	return decodeClusions(p.ExclusionList)
}

func decodeClusions(s string) ([]Clusion, error) {
	if s == "" {
		return nil, nil
	}
	var items []Clusion
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return nil, Errorf(EINVALID, "decode item list: %v", err)
	}
	return items, nil
}

// Clusion is one included or excluded item of a package.
type Clusion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Departure is one bookable departure day.
type Departure struct {
	Date time.Time `json:"date"`
	// PriceDiff is the day's price minus the package adult price.
	PriceDiff int `json:"priceDiff"`
}

// ScheduleDay is the itinerary of one trip day.
// Meal fields carry the source text unmodified.
type ScheduleDay struct {
	Day       int      `json:"day"`
	Summaries []string `json:"summaries"`
	Breakfast string   `json:"breakfast"`
	Lunch     string   `json:"lunch"`
	Dinner    string   `json:"dinner"`
}

// Review is one customer review.
type Review struct {
	Content          string    `json:"content"`
	ProductScore     int       `json:"productScore"`
	ScheduleScore    int       `json:"scheduleScore"`
	GuideScore       int       `json:"guideScore"`
	AppointmentScore int       `json:"appointmentScore"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Clock is a time of day with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

// String returns the clock as HH:MM.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// MarshalText implements encoding.TextMarshaler.
func (c Clock) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Clock) UnmarshalText(b []byte) error {
	t, err := time.Parse("15:04", string(b))
	if err != nil {
		return Errorf(EINVALID, "invalid clock %q", b)
	}
	c.Hour, c.Minute = t.Hour(), t.Minute()
	return nil
}

// PageFields holds the fields read from the rendered page artifact.
type PageFields struct {
	ImageURLs      []string
	Transportation string
	Info           string
	LodgeDays      int
	TripDays       int
}

// PageExtractor reads presentation fields out of rendered page HTML.
type PageExtractor interface {
	Extract(html string) (*PageFields, error)
}

// NationResolver supplies a nation name for a product variant whose info
// artifact does not name one.
type NationResolver interface {
	// ResolveNation returns EUNCLASSIFIED if the code has no mapping.
	ResolveNation(variantCode string) (string, error)
}

// Assembler builds the package record for one product.
type Assembler interface {
	// Assemble returns (nil, nil) when the product is rejected as incomplete.
	// Any returned error is fatal for the whole batch.
	Assemble(ctx context.Context, id ProductID) (*Package, error)
}

// PackageWriter writes assembled packages to an export destination.
type PackageWriter interface {
	WritePackages(ctx context.Context, pkgs []*Package) error
}

// PackageService persists assembled packages.
type PackageService interface {
	// ImportPackages stores packages as one import run and returns the run.
	ImportPackages(ctx context.Context, pkgs []*Package) (*Import, error)

	// FindPackages retrieves stored packages matching the filter.
	FindPackages(ctx context.Context, filter PackageFilter) ([]*Package, error)
}

// Import describes one stored batch of packages.
type Import struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
	// Changed counts packages that were new or differed from the stored copy.
	Changed    int       `json:"changed"`
	ImportedAt time.Time `json:"importedAt"`
}

// PackageFilter represents a filter for FindPackages.
type PackageFilter struct {
	VariantCode *string `json:"variantCode"`
	Nation      *string `json:"nation"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
