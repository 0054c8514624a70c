package extract

import (
	"time"

	"github.com/fwojciec/tourpkg"
)

type calendarResponse struct {
	Data *[]calendarMonth `json:"data"`
}

type calendarMonth struct {
	Days *[]calendarDay `json:"days"`
}

type calendarDay struct {
	Price *flexInt `json:"price"`
	Year  *flexInt `json:"year"`
	Month *flexInt `json:"month"`
	Day   *flexInt `json:"day"`
}

// Departures walks data[].days[] of the calendar artifact and returns one
// departure per day with a nonzero price. A zero price marks a day that
// cannot be booked; such days are skipped.
func Departures(calendar string, adultPrice int) ([]tourpkg.Departure, error) {
	var resp calendarResponse
	if err := decodeJSON("calendar", calendar, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, missing("calendar", "data")
	}

	var departures []tourpkg.Departure
	for i, month := range *resp.Data {
		if month.Days == nil {
			return nil, missing("calendar", "data[].days")
		}
		for j, day := range *month.Days {
			if day.Price == nil {
				return nil, missing("calendar", "price")
			}
			price := int(*day.Price)
			if price == 0 {
				continue
			}
			if day.Year == nil || day.Month == nil || day.Day == nil {
				return nil, missing("calendar", "year/month/day")
			}
			date, ok := calendarDate(int(*day.Year), int(*day.Month), int(*day.Day))
			if !ok {
				return nil, tourpkg.Errorf(tourpkg.EINVALID, "calendar: month %d day %d: invalid date %d-%d-%d",
					i, j, *day.Year, *day.Month, *day.Day)
			}
			departures = append(departures, tourpkg.Departure{
				Date:      date,
				PriceDiff: price - adultPrice,
			})
		}
	}
	return departures, nil
}

// calendarDate builds a UTC date, rejecting values time.Date would normalize.
func calendarDate(year, month, day int) (time.Time, bool) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}
