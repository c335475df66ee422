package api

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/queueboard/backend/internal/types"
	"github.com/queueboard/backend/internal/view"
	"github.com/rs/zerolog"
)

// QueueHandler provides REST endpoints for queue performance data
type QueueHandler struct {
	fetcher view.DetailFetcher
	logger  zerolog.Logger
}

// NewQueueHandler creates a new QueueHandler
func NewQueueHandler(fetcher view.DetailFetcher, logger zerolog.Logger) *QueueHandler {
	return &QueueHandler{
		fetcher: fetcher,
		logger:  logger.With().Str("component", "queue_handler").Logger(),
	}
}

// QueueDetailResponse carries the detail page's two sections. Each section
// has its own error field so a failure in one never hides the other's
// data.
type QueueDetailResponse struct {
	Summary      *types.QueueSummaryRow    `json:"summary"`
	NotFound     bool                      `json:"notFound"`
	SummaryError string                    `json:"summaryError,omitempty"`
	Records      []types.QueueDetailRecord `json:"records"`
	RecordsError string                    `json:"recordsError,omitempty"`
}

// ListQueues returns the aggregate dataset, filtered by an optional search
// term and bounded by an optional date range.
// GET /api/queues?search=&startDate=YYYY-MM-DD&endDate=YYYY-MM-DD
func (h *QueueHandler) ListQueues(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var bounds *types.DateRange
	if dateRange, ok := types.RangeFromValues(query); ok {
		bounds = &dateRange
	}

	rows, err := h.fetcher.QueueSummary(r.Context(), bounds)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to fetch queue summary")
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	rows = view.FilterQueues(rows, query.Get("search"))
	if rows == nil {
		rows = []types.QueueSummaryRow{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rows)
}

// GetQueue returns one queue's summary tile data and its call records. The
// two upstream fetches run concurrently; a missing queue is reported as
// notFound with status 200.
// GET /api/queues/{queueId}?startDate=YYYY-MM-DD&endDate=YYYY-MM-DD
func (h *QueueHandler) GetQueue(w http.ResponseWriter, r *http.Request) {
	queueID := chi.URLParam(r, "queueId")
	if queueID == "" {
		writeError(w, http.StatusBadRequest, "queueId is required")
		return
	}
	if unescaped, err := url.PathUnescape(queueID); err == nil {
		queueID = unescaped
	}

	var bounds *types.DateRange
	if dateRange, ok := types.RangeFromValues(r.URL.Query()); ok {
		bounds = &dateRange
	}

	detail := view.NewDetailView(queueID, bounds)
	detail.Load(r.Context(), h.fetcher)

	summary := detail.Summary()
	records := detail.Records()

	resp := QueueDetailResponse{
		Summary:  summary.Queue,
		NotFound: summary.NotFound,
		Records:  records.Records,
	}
	if resp.Records == nil {
		resp.Records = []types.QueueDetailRecord{}
	}
	if summary.Err != nil {
		h.logger.Error().Err(summary.Err).Str("queue_id", queueID).Msg("failed to fetch queue summary")
		resp.SummaryError = summary.Err.Error()
	}
	if records.Err != nil {
		h.logger.Error().Err(records.Err).Str("queue_id", queueID).Msg("failed to fetch queue records")
		resp.RecordsError = records.Err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// writeError writes a JSON error body with the given status
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
