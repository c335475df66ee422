package types

import (
	"net/url"
	"testing"
	"time"
)

func TestLastNDays(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		days      int
		wantStart string
		wantEnd   string
	}{
		{name: "last 7 days", days: 7, wantStart: "2025-06-08", wantEnd: "2025-06-15"},
		{name: "last 30 days", days: 30, wantStart: "2025-05-16", wantEnd: "2025-06-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := LastNDays(now, tt.days)
			if r.Start != tt.wantStart {
				t.Errorf("expected start %s, got %s", tt.wantStart, r.Start)
			}
			if r.End != tt.wantEnd {
				t.Errorf("expected end %s, got %s", tt.wantEnd, r.End)
			}
		})
	}
}

func TestDefaultRange(t *testing.T) {
	now := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	r := DefaultRange(now)

	if r.Start != "2025-01-01" {
		t.Errorf("expected start 2025-01-01, got %s", r.Start)
	}
	if r.End != "2025-01-31" {
		t.Errorf("expected end 2025-01-31, got %s", r.End)
	}
}

func TestRangeValuesRoundTrip(t *testing.T) {
	r := DateRange{Start: "2025-03-01", End: "2025-03-31"}

	got, ok := RangeFromValues(r.Values())
	if !ok {
		t.Fatal("expected ok for populated range")
	}
	if got != r {
		t.Errorf("expected %+v, got %+v", r, got)
	}
}

func TestRangeFromValuesEmpty(t *testing.T) {
	_, ok := RangeFromValues(url.Values{})
	if ok {
		t.Error("expected ok false for empty values")
	}
}

func TestRangeValuesOmitsEmptyBounds(t *testing.T) {
	v := DateRange{Start: "2025-03-01"}.Values()
	if v.Get("startDate") != "2025-03-01" {
		t.Errorf("expected startDate 2025-03-01, got %s", v.Get("startDate"))
	}
	if _, present := v["endDate"]; present {
		t.Error("expected endDate to be omitted")
	}
}

func TestFindQueue(t *testing.T) {
	rows := []QueueSummaryRow{
		{QueueID: "sales_inbound"},
		{QueueID: "support_general"},
	}

	if got := FindQueue(rows, "support_general"); got == nil || got.QueueID != "support_general" {
		t.Errorf("expected support_general, got %+v", got)
	}
	if got := FindQueue(rows, "missing"); got != nil {
		t.Errorf("expected nil for missing queue, got %+v", got)
	}
	// Match is exact, not substring
	if got := FindQueue(rows, "sales"); got != nil {
		t.Errorf("expected nil for partial identifier, got %+v", got)
	}
}
