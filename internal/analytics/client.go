package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/queueboard/backend/internal/metrics"
	"github.com/queueboard/backend/internal/types"
	"github.com/rs/zerolog"
)

// StatusError reports a non-2xx reply from the query endpoint. The message
// carries the HTTP status text so it can be surfaced to the user as-is.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("query endpoint returned %s", e.Status)
}

// Client is a thin client for the analytics query endpoint. Every call
// posts a prepared-statement request and decodes the tabular envelope.
// There is no caching and no retry; a failed call is terminal until the
// caller triggers it again.
type Client struct {
	endpoint   string
	maxWait    int
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new Client for the given endpoint URL. maxWait bounds
// the server-side wait (seconds) on every request.
func NewClient(endpoint string, timeout time.Duration, maxWait int, logger zerolog.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		maxWait:  maxWait,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.With().Str("component", "analytics_client").Logger(),
	}
}

// QueueSummary fetches the aggregate row-per-queue dataset, optionally
// bounded by an inclusive date range.
func (c *Client) QueueSummary(ctx context.Context, dateRange *types.DateRange) ([]types.QueueSummaryRow, error) {
	req := types.QueryRequest{
		PreparedStatement: types.StatementQueueSummary,
		WaitForResults:    true,
		MaxWaitTime:       c.maxWait,
	}
	if dateRange != nil {
		req.StartDate = dateRange.Start
		req.EndDate = dateRange.End
	}
	return execute[types.QueueSummaryRow](ctx, c, req)
}

// QueueRecords fetches every call record for the given queue. The queue
// identifier is the statement's sole positional parameter.
func (c *Client) QueueRecords(ctx context.Context, queueID string) ([]types.QueueDetailRecord, error) {
	req := types.QueryRequest{
		PreparedStatement: types.StatementQueueDetail,
		Parameters:        []string{queueID},
		WaitForResults:    true,
		MaxWaitTime:       c.maxWait,
	}
	return execute[types.QueueDetailRecord](ctx, c, req)
}

// execute posts the request and decodes the envelope, returning the data
// rows. rowCount is logged but never reconciled against len(data).
func execute[T any](ctx context.Context, c *Client, query types.QueryRequest) ([]T, error) {
	start := time.Now()
	requestID := uuid.NewString()

	body, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("failed to encode query request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create query request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.Get().RecordQuery(query.PreparedStatement, false, time.Since(start))
		c.logger.Error().Err(err).
			Str("request_id", requestID).
			Str("statement", string(query.PreparedStatement)).
			Msg("query request failed")
		return nil, fmt.Errorf("query request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.Get().RecordQuery(query.PreparedStatement, false, time.Since(start))
		c.logger.Error().
			Str("request_id", requestID).
			Str("statement", string(query.PreparedStatement)).
			Int("status_code", resp.StatusCode).
			Msg("query endpoint returned error status")
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	var envelope types.QueryResponse[T]
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		metrics.Get().RecordQuery(query.PreparedStatement, false, time.Since(start))
		return nil, fmt.Errorf("failed to decode query response: %w", err)
	}

	metrics.Get().RecordQuery(query.PreparedStatement, true, time.Since(start))
	c.logger.Debug().
		Str("request_id", requestID).
		Str("statement", string(query.PreparedStatement)).
		Str("execution_id", envelope.QueryExecutionID).
		Str("status", envelope.Status).
		Float64("execution_time", envelope.ExecutionTime).
		Int("row_count", envelope.RowCount).
		Int("rows", len(envelope.Data)).
		Msg("query completed")

	return envelope.Data, nil
}
