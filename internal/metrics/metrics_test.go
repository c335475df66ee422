package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/queueboard/backend/internal/types"
)

func TestRecordQueryAndHandler(t *testing.T) {
	m := Get()

	before := m.QueryCount(types.StatementQueueSummary)
	m.RecordQuery(types.StatementQueueSummary, true, 50*time.Millisecond)
	m.RecordQuery(types.StatementQueueSummary, false, 10*time.Millisecond)

	if got := m.QueryCount(types.StatementQueueSummary); got != before+2 {
		t.Errorf("expected count %d, got %d", before+2, got)
	}

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	m.Handler()(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, "queueboard_queries_total") {
		t.Error("expected queries total in exposition")
	}
	if !strings.Contains(body, `queueboard_queries_by_statement{statement="prep_distbyqueue"}`) {
		t.Error("expected per-statement counter in exposition")
	}
}

func TestMiddlewareRecordsStatus(t *testing.T) {
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	rec := httptest.NewRecorder()
	Get().Handler()(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if !strings.Contains(rec.Body.String(), `queueboard_http_requests_total{endpoint="/missing",status="404"}`) {
		t.Error("expected HTTP request counter for /missing")
	}
}
