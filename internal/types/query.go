package types

// QueryRequest is the JSON body sent to the analytics query endpoint.
// WaitForResults is always true and MaxWaitTime is always 60: the server
// bounds its own wait, the client carries no timeout of its own beyond the
// HTTP client deadline.
type QueryRequest struct {
	PreparedStatement Statement `json:"preparedStatement"`
	Parameters        []string  `json:"parameters,omitempty"`
	StartDate         string    `json:"startDate,omitempty"`
	EndDate           string    `json:"endDate,omitempty"`
	WaitForResults    bool      `json:"waitForResults"`
	MaxWaitTime       int       `json:"maxWaitTime"`
}

// QueryResponse is the envelope the analytics endpoint wraps every result
// in. RowCount is reported by the server and not reconciled against
// len(Data); consumers iterate Data directly.
type QueryResponse[T any] struct {
	QueryExecutionID string   `json:"queryExecutionId"`
	Status           string   `json:"status"`
	ExecutionTime    float64  `json:"executionTime"`
	Data             []T      `json:"data"`
	Columns          []string `json:"columns"`
	RowCount         int      `json:"rowCount"`
}
