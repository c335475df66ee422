package types

// QueueSummaryRow holds one queue's aggregate metrics for a time window.
// All numeric fields arrive pre-formatted as strings from the analytics
// endpoint and are displayed verbatim; the client never recomputes or
// rounds them. answered + unanswered is expected to equal received but is
// not validated here.
type QueueSummaryRow struct {
	QueueID          string `json:"queue_id"`
	Channel          string `json:"channel"`
	InitiationMethod string `json:"initiation_method"`
	Received         string `json:"received"`
	Answered         string `json:"answered"`
	Unanswered       string `json:"unanswered"`
	Abandoned        string `json:"abandoned"`
	Transferred      string `json:"transferred"`
	AvgWaitSeconds   string `json:"avg_wait_seconds"`
	AvgTalkTime      string `json:"avg_talk_time"`
	MaxCallers       string `json:"max_callers"`
	PctAnswered      string `json:"%_answered"`
	PctUnanswered    string `json:"%_unanswered"`
	SLA              string `json:"sla"`
}

// QueueDetailRecord holds one call event within a queue. Agent and the
// ring/wait/talk durations may be absent; renderers show a dash for them.
type QueueDetailRecord struct {
	Row          string `json:"row"`
	ContactID    string `json:"contact_id"`
	Agent        string `json:"agent"`
	Date         string `json:"date"`
	QueueID      string `json:"queue_id"`
	DialedNumber string `json:"dialed_number"`
	EventType    string `json:"event_type"`
	RingTime     string `json:"ring_time"`
	WaitTime     string `json:"wait_time"`
	TalkTime     string `json:"talk_time"`
	DNIS         string `json:"dnis"`
}

// FindQueue returns the first row whose identifier equals queueID, or nil
// when no row matches. A nil result is a normal not-found state, not an
// error.
func FindQueue(rows []QueueSummaryRow, queueID string) *QueueSummaryRow {
	for i := range rows {
		if rows[i].QueueID == queueID {
			return &rows[i]
		}
	}
	return nil
}
