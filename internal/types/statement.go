package types

// Statement identifies a server-side prepared statement on the analytics
// query endpoint. The names are opaque to the client; keeping them as typed
// constants catches typos at compile time.
type Statement string

const (
	// StatementQueueSummary returns one aggregate row per queue for a time window.
	StatementQueueSummary Statement = "prep_distbyqueue"
	// StatementQueueDetail returns every call record for a single queue.
	// Binds one positional parameter: the queue identifier.
	StatementQueueDetail Statement = "prep_distbyqueue_dd"
)
