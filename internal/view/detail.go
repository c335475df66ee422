package view

import (
	"context"
	"net/url"
	"sync"

	"github.com/queueboard/backend/internal/types"
)

// DetailFetcher covers both requests the detail view issues.
type DetailFetcher interface {
	SummaryFetcher
	QueueRecords(ctx context.Context, queueID string) ([]types.QueueDetailRecord, error)
}

// SummarySection is the detail page's tile section: the single aggregate
// row matching the queue identifier. NotFound is a normal empty state, not
// an error.
type SummarySection struct {
	Queue    *types.QueueSummaryRow
	NotFound bool
	Loading  bool
	Err      error
}

// RecordsSection is the detail page's call record table.
type RecordsSection struct {
	Records []types.QueueDetailRecord
	Loading bool
	Err     error
}

// DetailView owns the state of one queue's drill-down page. Its two
// fetches run concurrently and settle independently: a failure in one
// section never touches the other.
type DetailView struct {
	mu        sync.Mutex
	queueID   string
	dateRange *types.DateRange
	summary   SummarySection
	records   RecordsSection
}

// NewDetailView creates a DetailView for the given queue identifier. The
// date range is optional and only bounds the aggregate fetch.
func NewDetailView(queueID string, dateRange *types.DateRange) *DetailView {
	return &DetailView{queueID: queueID, dateRange: dateRange}
}

// QueueID returns the queue identifier this view was opened for.
func (v *DetailView) QueueID() string {
	return v.queueID
}

// Load issues the aggregate and record fetches concurrently and blocks
// until both settle. With an empty queue identifier no fetch is issued at
// all.
func (v *DetailView) Load(ctx context.Context, f DetailFetcher) {
	if v.queueID == "" {
		return
	}

	v.mu.Lock()
	v.summary.Loading = true
	v.records.Loading = true
	v.mu.Unlock()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		rows, err := f.QueueSummary(ctx, v.dateRange)
		v.completeSummary(rows, err)
	}()

	go func() {
		defer wg.Done()
		records, err := f.QueueRecords(ctx, v.queueID)
		v.completeRecords(records, err)
	}()

	wg.Wait()
}

func (v *DetailView) completeSummary(rows []types.QueueSummaryRow, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.summary.Loading = false
	if err != nil {
		v.summary.Err = err
		return
	}
	v.summary.Err = nil
	v.summary.Queue = types.FindQueue(rows, v.queueID)
	v.summary.NotFound = v.summary.Queue == nil
}

func (v *DetailView) completeRecords(records []types.QueueDetailRecord, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.records.Loading = false
	if err != nil {
		v.records.Err = err
		return
	}
	v.records.Err = nil
	v.records.Records = records
}

// Summary returns the tile section's current state.
func (v *DetailView) Summary() SummarySection {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.summary
}

// Records returns the record section's current state.
func (v *DetailView) Records() RecordsSection {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.records
}

// DetailPath builds the detail page address for a queue: the identifier is
// URL-escaped as the final path segment and an active date range rides
// along as query parameters.
func DetailPath(queueID string, dateRange *types.DateRange) string {
	path := "/ui/queues/" + url.PathEscape(queueID)
	if dateRange != nil && !dateRange.IsZero() {
		path += "?" + dateRange.Values().Encode()
	}
	return path
}
