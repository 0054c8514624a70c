package extract

import (
	"strings"
	"time"

	"github.com/fwojciec/tourpkg"
)

// reviewTimeLayout matches registration times such as "2024-02-15 오후 3:04:05"
// once the Korean meridiem markers are replaced.
const reviewTimeLayout = "2006-01-02 PM 3:04:05"

var meridiemReplacer = strings.NewReplacer("오전", "AM", "오후", "PM")

type reviewResponse struct {
	Data *struct {
		EvalList *[]reviewEntry `json:"EvalList"`
	} `json:"data"`
}

type reviewEntry struct {
	Title *string  `json:"Title"`
	Item2 *flexInt `json:"Item2"`
	Item4 *flexInt `json:"Item4"`
	Item5 *flexInt `json:"Item5"`
	Item6 *flexInt `json:"Item6"`
	RegDT *string  `json:"RegDT"`
}

// Reviews walks data.EvalList of the review artifact.
// Item2, Item4, Item5, and Item6 are the product, schedule, guide, and
// appointment scores.
func Reviews(review string) ([]tourpkg.Review, error) {
	var resp reviewResponse
	if err := decodeJSON("review", review, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil || resp.Data.EvalList == nil {
		return nil, missing("review", "data.EvalList")
	}

	reviews := make([]tourpkg.Review, 0, len(*resp.Data.EvalList))
	for _, e := range *resp.Data.EvalList {
		if e.Title == nil {
			return nil, missing("review", "Title")
		}
		if e.Item2 == nil || e.Item4 == nil || e.Item5 == nil || e.Item6 == nil {
			return nil, missing("review", "score item")
		}
		if e.RegDT == nil {
			return nil, missing("review", "RegDT")
		}
		createdAt, err := ParseReviewTime(*e.RegDT)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, tourpkg.Review{
			Content:          *e.Title,
			ProductScore:     int(*e.Item2),
			ScheduleScore:    int(*e.Item4),
			GuideScore:       int(*e.Item5),
			AppointmentScore: int(*e.Item6),
			CreatedAt:        createdAt,
		})
	}
	return reviews, nil
}

// ParseReviewTime parses a "yyyy-MM-dd 오전|오후 h:mm:ss" timestamp as wall
// clock time in UTC.
func ParseReviewTime(s string) (time.Time, error) {
	t, err := time.Parse(reviewTimeLayout, meridiemReplacer.Replace(s))
	if err != nil {
		return time.Time{}, tourpkg.Errorf(tourpkg.EINVALID, "review: invalid registration time %q", s)
	}
	return t, nil
}
