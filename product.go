package tourpkg

import "context"

// ProductID identifies one sellable package variant within a package family.
type ProductID struct {
	BaseCode    string `json:"baseCode"`
	VariantCode string `json:"variantCode"`
}

// String returns the "base,variant" form used as the artifact filename prefix.
func (id ProductID) String() string {
	return id.BaseCode + "," + id.VariantCode
}

// Validate returns an error if either code is missing.
func (id ProductID) Validate() error {
	if id.BaseCode == "" {
		return Errorf(EINVALID, "product base code required")
	}
	if id.VariantCode == "" {
		return Errorf(EINVALID, "product variant code required")
	}
	return nil
}

// ArtifactKind names one of the captured snapshots stored per product.
type ArtifactKind string

// ArtifactKind constants. The values are the filename suffixes on disk.
const (
	ArtifactPage       ArtifactKind = "html"
	ArtifactGoods      ArtifactKind = "goodsResponse"
	ArtifactInfo       ArtifactKind = "infoResponse"
	ArtifactOtherGoods ArtifactKind = "otherGoodsResponse"
	ArtifactCalendar   ArtifactKind = "calendarResponse"
	ArtifactReview     ArtifactKind = "reviewResponse"
	ArtifactSchedule   ArtifactKind = "scheduleResponse"
)

// ArtifactKinds lists every kind in the order the assembler consumes them.
var ArtifactKinds = []ArtifactKind{
	ArtifactPage,
	ArtifactGoods,
	ArtifactInfo,
	ArtifactOtherGoods,
	ArtifactCalendar,
	ArtifactReview,
	ArtifactSchedule,
}

// ArtifactStore loads raw artifact text for a product.
type ArtifactStore interface {
	// Load returns the full text of one artifact.
	// Returns ENOTFOUND if the artifact does not exist.
	Load(ctx context.Context, id ProductID, kind ArtifactKind) (string, error)
}
