package ui

import (
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/queueboard/backend/internal/types"
	"github.com/queueboard/backend/internal/view"
	"github.com/rs/zerolog"

	gomponents "maragu.dev/gomponents"
)

// Handler serves the server-rendered dashboard pages
type Handler struct {
	fetcher view.DetailFetcher
	logger  zerolog.Logger
	now     func() time.Time
}

// NewHandler creates a new Handler
func NewHandler(fetcher view.DetailFetcher, logger zerolog.Logger) *Handler {
	return &Handler{
		fetcher: fetcher,
		logger:  logger.With().Str("component", "ui_handler").Logger(),
		now:     time.Now,
	}
}

// MountRoutes registers the dashboard routes on r
func MountRoutes(r chi.Router, h *Handler) {
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/ui/queues", http.StatusFound)
	})
	r.Get("/queues", h.QueuesPage)
	r.Get("/queues/{queueId}", h.QueueDetailPage)
}

// QueuesPage renders the summary table. The date range defaults to the
// last 30 days; explicit bounds in the query string override it and the
// Apply/Reset/quick-select controls round-trip through here.
func (h *Handler) QueuesPage(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	dateRange, ok := types.RangeFromValues(r.URL.Query())
	if !ok {
		dateRange = types.DefaultRange(now)
	}

	summary := view.NewSummaryView(dateRange)
	err := summary.Refresh(r.Context(), h.fetcher)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to fetch queue summary")
	}

	d := queuesPageData{
		Rows:      summary.Rows(),
		DateRange: dateRange,
		Quick7:    types.LastNDays(now, 7),
		Quick30:   types.LastNDays(now, 30),
	}
	if err != nil {
		d.FetchErr = err.Error()
	}
	renderHTML(w, http.StatusOK, queuesPage(d))
}

// QueueDetailPage renders one queue's drill-down: summary tiles and the
// call record table, fetched concurrently and failing independently.
func (h *Handler) QueueDetailPage(w http.ResponseWriter, r *http.Request) {
	queueID := chi.URLParam(r, "queueId")
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
	if summary.Err != nil {
		h.logger.Error().Err(summary.Err).Str("queue_id", queueID).Msg("failed to fetch queue summary")
	}
	if records.Err != nil {
		h.logger.Error().Err(records.Err).Str("queue_id", queueID).Msg("failed to fetch call records")
	}

	renderHTML(w, http.StatusOK, queueDetailPage(queueDetailPageData{
		QueueID: queueID,
		Summary: summary,
		Records: records,
	}))
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}
