package extract

import (
	"strings"
	"time"

	"github.com/fwojciec/tourpkg"
	"github.com/fwojciec/tourpkg/marker"
)

// OtherGoods artifact markers.
var (
	departureDateSpan = marker.Span{Name: "departure date", Open: `DepartureDT":"`, Close: `"`}
	departureTimeSpan = marker.Span{Name: "departure time", Open: `DepartTime":"`, Close: `"`}
	endTimeSpan       = marker.Span{Name: "end time", Open: `LocalArrivalTime":"`, Close: `"`}
)

const (
	dateLayout  = "20060102"
	clockLayout = "1504"
)

// Times holds the departure and arrival times of a package.
// Absent values are nil.
type Times struct {
	DepartureDate *time.Time
	DepartureTime *tourpkg.Clock
	EndTime       *tourpkg.Clock
}

// DepartureTimes reads the departure date, departure time, and local
// arrival time. Each marker is required; a blank value means absent.
func DepartureTimes(otherGoods string) (Times, error) {
	var t Times

	s, err := departureDateSpan.Require(otherGoods)
	if err != nil {
		return Times{}, err
	}
	if strings.TrimSpace(s) != "" {
		d, err := time.Parse(dateLayout, s)
		if err != nil {
			return Times{}, tourpkg.Errorf(tourpkg.EINVALID, "%s: %q is not yyyyMMdd", departureDateSpan.Name, s)
		}
		t.DepartureDate = &d
	}

	if t.DepartureTime, err = clock(departureTimeSpan, otherGoods); err != nil {
		return Times{}, err
	}
	if t.EndTime, err = clock(endTimeSpan, otherGoods); err != nil {
		return Times{}, err
	}
	return t, nil
}

func clock(span marker.Span, text string) (*tourpkg.Clock, error) {
	s, err := span.Require(text)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	v, err := time.Parse(clockLayout, s)
	if err != nil {
		return nil, tourpkg.Errorf(tourpkg.EINVALID, "%s: %q is not HHmm", span.Name, s)
	}
	return &tourpkg.Clock{Hour: v.Hour(), Minute: v.Minute()}, nil
}
