package types

import (
	"net/url"
	"time"
)

// DateLayout is the wire format for date-range bounds.
const DateLayout = "2006-01-02"

// DateRange is an inclusive start/end bound for the aggregate query, both
// ends formatted as yyyy-MM-dd.
type DateRange struct {
	Start string
	End   string
}

// LastNDays returns a range starting exactly n days before now and ending
// today. Both bounds are derived from the same instant so quick selects
// update atomically.
func LastNDays(now time.Time, n int) DateRange {
	return DateRange{
		Start: now.AddDate(0, 0, -n).Format(DateLayout),
		End:   now.Format(DateLayout),
	}
}

// DefaultRange is the initial window: the last 30 days through today.
func DefaultRange(now time.Time) DateRange {
	return LastNDays(now, 30)
}

// IsZero reports whether neither bound is set.
func (r DateRange) IsZero() bool {
	return r.Start == "" && r.End == ""
}

// Values encodes the range as startDate/endDate query parameters. Empty
// bounds are omitted.
func (r DateRange) Values() url.Values {
	v := url.Values{}
	if r.Start != "" {
		v.Set("startDate", r.Start)
	}
	if r.End != "" {
		v.Set("endDate", r.End)
	}
	return v
}

// RangeFromValues reads startDate/endDate back out of query parameters,
// round-tripping the active filter between views. ok is false when neither
// parameter is present.
func RangeFromValues(v url.Values) (r DateRange, ok bool) {
	r.Start = v.Get("startDate")
	r.End = v.Get("endDate")
	return r, !r.IsZero()
}
