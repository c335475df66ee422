package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/queueboard/backend/internal/types"
)

// Metrics holds all application metrics
type Metrics struct {
	mu sync.RWMutex

	// Query metrics
	QueriesTotal      int64
	QueryErrorsTotal  int64
	queriesByStmt     map[types.Statement]int64
	queryErrorsByStmt map[types.Statement]int64
	queryDurations    []float64 // last 100, seconds
	lastQueryDuration time.Duration

	// HTTP metrics
	httpRequestsTotal map[string]map[int]int64 // endpoint -> status -> count

	// Timing
	startTime time.Time
}

// Global metrics instance
var instance *Metrics
var once sync.Once

// Get returns the singleton metrics instance
func Get() *Metrics {
	once.Do(func() {
		instance = &Metrics{
			queriesByStmt:     make(map[types.Statement]int64),
			queryErrorsByStmt: make(map[types.Statement]int64),
			httpRequestsTotal: make(map[string]map[int]int64),
			startTime:         time.Now(),
		}
	})
	return instance
}

// RecordQuery records one outbound analytics query and its outcome
func (m *Metrics) RecordQuery(stmt types.Statement, ok bool, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.QueriesTotal++
	m.queriesByStmt[stmt]++
	if !ok {
		m.QueryErrorsTotal++
		m.queryErrorsByStmt[stmt]++
	}
	m.lastQueryDuration = duration

	// Keep last 100 durations
	if len(m.queryDurations) >= 100 {
		m.queryDurations = m.queryDurations[1:]
	}
	m.queryDurations = append(m.queryDurations, duration.Seconds())
}

// RecordHTTPRequest records an inbound HTTP request
func (m *Metrics) RecordHTTPRequest(endpoint string, statusCode int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.httpRequestsTotal[endpoint] == nil {
		m.httpRequestsTotal[endpoint] = make(map[int]int64)
	}
	m.httpRequestsTotal[endpoint][statusCode]++
}

// QueryCount returns the number of recorded queries for a statement
func (m *Metrics) QueryCount(stmt types.Statement) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.queriesByStmt[stmt]
}

// Handler returns an HTTP handler for the /metrics endpoint
func (m *Metrics) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.mu.RLock()
		defer m.mu.RUnlock()

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")

		// Helper to write metric
		write := func(name string, value interface{}, labels ...string) {
			labelStr := ""
			if len(labels) > 0 {
				labelStr = "{"
				for i := 0; i < len(labels); i += 2 {
					if i > 0 {
						labelStr += ","
					}
					labelStr += labels[i] + "=\"" + labels[i+1] + "\""
				}
				labelStr += "}"
			}

			switch v := value.(type) {
			case int:
				w.Write([]byte(name + labelStr + " " + strconv.Itoa(v) + "\n"))
			case int64:
				w.Write([]byte(name + labelStr + " " + strconv.FormatInt(v, 10) + "\n"))
			case float64:
				w.Write([]byte(name + labelStr + " " + strconv.FormatFloat(v, 'f', 6, 64) + "\n"))
			}
		}

		// System metrics
		write("queueboard_uptime_seconds", time.Since(m.startTime).Seconds())

		// Query metrics
		write("queueboard_queries_total", m.QueriesTotal)
		write("queueboard_query_errors_total", m.QueryErrorsTotal)
		write("queueboard_query_duration_seconds", m.lastQueryDuration.Seconds())

		for stmt, count := range m.queriesByStmt {
			write("queueboard_queries_by_statement", count, "statement", string(stmt))
		}
		for stmt, count := range m.queryErrorsByStmt {
			write("queueboard_query_errors_by_statement", count, "statement", string(stmt))
		}

		if len(m.queryDurations) > 0 {
			var sum float64
			for _, d := range m.queryDurations {
				sum += d
			}
			write("queueboard_query_duration_seconds_avg", sum/float64(len(m.queryDurations)))
		}

		// HTTP metrics
		for endpoint, statusCodes := range m.httpRequestsTotal {
			for status, count := range statusCodes {
				write("queueboard_http_requests_total", count, "endpoint", endpoint, "status", strconv.Itoa(status))
			}
		}
	}
}

// Middleware records request counts per endpoint and status code
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		Get().RecordHTTPRequest(r.URL.Path, rec.status)
	})
}

// statusRecorder captures the response status code
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
