package extract

import (
	"encoding/json"

	"github.com/fwojciec/tourpkg"
)

type scheduleResponse struct {
	Data *struct {
		ScheduleDaysList *[]scheduleDay `json:"ScheduleDaysList"`
	} `json:"data"`
}

type scheduleDay struct {
	DaySeq      *flexInt           `json:"DaySeq"`
	Breakfast   *string            `json:"Breakfast"`
	Lunch       *string            `json:"Lunch"`
	Dinner      *string            `json:"Dinner"`
	Details     *[]scheduleDetail  `json:"GoodsScheduleDaysDetailList"`
	SelTourList *[]json.RawMessage `json:"SelTourList"`
}

type scheduleDetail struct {
	SimpleDesc *string `json:"SimpleDesc"`
}

// Itinerary is the day-by-day schedule of a package.
type Itinerary struct {
	Days []tourpkg.ScheduleDay
	// OptionalTours counts selectable tours across all days.
	OptionalTours int
}

// Schedule walks data.ScheduleDaysList of the schedule artifact.
func Schedule(schedule string) (Itinerary, error) {
	var resp scheduleResponse
	if err := decodeJSON("schedule", schedule, &resp); err != nil {
		return Itinerary{}, err
	}
	if resp.Data == nil || resp.Data.ScheduleDaysList == nil {
		return Itinerary{}, missing("schedule", "data.ScheduleDaysList")
	}

	var it Itinerary
	for _, d := range *resp.Data.ScheduleDaysList {
		if d.DaySeq == nil {
			return Itinerary{}, missing("schedule", "DaySeq")
		}
		if d.Breakfast == nil || d.Lunch == nil || d.Dinner == nil {
			return Itinerary{}, missing("schedule", "meal")
		}
		if d.Details == nil {
			return Itinerary{}, missing("schedule", "GoodsScheduleDaysDetailList")
		}
		summaries := make([]string, 0, len(*d.Details))
		for _, detail := range *d.Details {
			if detail.SimpleDesc == nil {
				return Itinerary{}, missing("schedule", "SimpleDesc")
			}
			summaries = append(summaries, *detail.SimpleDesc)
		}
		if d.SelTourList == nil {
			return Itinerary{}, missing("schedule", "SelTourList")
		}

		it.Days = append(it.Days, tourpkg.ScheduleDay{
			Day:       int(*d.DaySeq),
			Summaries: summaries,
			Breakfast: *d.Breakfast,
			Lunch:     *d.Lunch,
			Dinner:    *d.Dinner,
		})
		it.OptionalTours += len(*d.SelTourList)
	}
	return it, nil
}
