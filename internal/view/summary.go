package view

import (
	"context"
	"strings"
	"sync"

	"github.com/queueboard/backend/internal/types"
)

// SummaryFetcher fetches the aggregate row-per-queue dataset.
type SummaryFetcher interface {
	QueueSummary(ctx context.Context, dateRange *types.DateRange) ([]types.QueueSummaryRow, error)
}

// SummaryView owns the queue summary table's state: the held row
// collection, the free-text search term, the active date range and the
// loading flag. A failed refresh leaves the previously held rows untouched.
//
// Overlapping refreshes are sequenced: each fetch gets a monotonically
// increasing number and a response older than the latest applied one is
// discarded, so a slow first fetch can never overwrite the result of a
// fast second one.
type SummaryView struct {
	mu        sync.Mutex
	rows      []types.QueueSummaryRow
	search    string
	dateRange types.DateRange

	nextSeq    uint64
	latestSeq  uint64 // most recently issued fetch
	appliedSeq uint64 // most recently applied (or discarded-on-error) fetch
	settled    bool   // whether latestSeq has settled
	lastErr    error
}

// NewSummaryView creates a SummaryView with the given initial date range.
func NewSummaryView(dateRange types.DateRange) *SummaryView {
	return &SummaryView{dateRange: dateRange, settled: true}
}

// BeginFetch registers a new fetch and returns its sequence number. The
// loading flag is raised until this fetch (or a newer one) settles.
func (v *SummaryView) BeginFetch() uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.nextSeq++
	v.latestSeq = v.nextSeq
	v.settled = false
	return v.nextSeq
}

// Complete settles the fetch with the given sequence number. A successful
// response replaces the whole row collection unless a newer response
// already landed; a failed one records the error and leaves the rows
// alone. Loading always drops once the newest fetch settles, success or
// failure.
func (v *SummaryView) Complete(seq uint64, rows []types.QueueSummaryRow, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if seq == v.latestSeq {
		v.settled = true
	}
	if seq <= v.appliedSeq {
		return // a newer response already resolved; stale result discarded
	}
	v.appliedSeq = seq

	if err != nil {
		v.lastErr = err
		return
	}
	v.lastErr = nil
	v.rows = rows
}

// Refresh issues one fetch against f and settles it. The view's current
// date range bounds the query; a zero range sends no bounds.
func (v *SummaryView) Refresh(ctx context.Context, f SummaryFetcher) error {
	v.mu.Lock()
	dateRange := v.dateRange
	v.mu.Unlock()

	var bounds *types.DateRange
	if !dateRange.IsZero() {
		bounds = &dateRange
	}

	seq := v.BeginFetch()
	rows, err := f.QueueSummary(ctx, bounds)
	v.Complete(seq, rows, err)
	return err
}

// Loading reports whether the most recently issued fetch is still in
// flight.
func (v *SummaryView) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return !v.settled
}

// Err returns the error from the last settled fetch, or nil after a
// success.
func (v *SummaryView) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastErr
}

// SetSearch updates the free-text search term. Filtering is purely local;
// it never triggers a fetch.
func (v *SummaryView) SetSearch(term string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.search = term
}

// Search returns the current search term.
func (v *SummaryView) Search() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.search
}

// Rows returns the full held collection.
func (v *SummaryView) Rows() []types.QueueSummaryRow {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.rows
}

// Visible returns the held rows filtered by the current search term.
func (v *SummaryView) Visible() []types.QueueSummaryRow {
	v.mu.Lock()
	defer v.mu.Unlock()
	return FilterQueues(v.rows, v.search)
}

// SetRange replaces both date bounds atomically. The next Refresh uses
// them; changing the range does not itself fetch.
func (v *SummaryView) SetRange(r types.DateRange) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.dateRange = r
}

// Range returns the active date range.
func (v *SummaryView) Range() types.DateRange {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.dateRange
}

// FilterQueues returns the rows whose identifier contains term as a
// case-insensitive substring. An empty term yields the full set.
func FilterQueues(rows []types.QueueSummaryRow, term string) []types.QueueSummaryRow {
	if term == "" {
		return rows
	}
	needle := strings.ToLower(term)
	filtered := make([]types.QueueSummaryRow, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.QueueID), needle) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}
