package ui

import (
	"strconv"

	"github.com/queueboard/backend/internal/types"
	"github.com/queueboard/backend/internal/view"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const recordColumns = 10

type queueDetailPageData struct {
	QueueID string
	Summary view.SummarySection
	Records view.RecordsSection
}

func queueDetailPage(d queueDetailPageData) Node {
	return appPage(
		"Queue: "+d.QueueID,
		Div(Class("toolbar"),
			Button(Type("button"), Class("btn"), Attr("onclick", "history.back()"), Text("Back")),
		),
		summarySectionNode(d.Summary),
		recordsSectionNode(d.Records),
	)
}

// summarySectionNode renders the tile grid. A queue missing from the
// aggregate set is a normal state, not an error.
func summarySectionNode(s view.SummarySection) Node {
	if s.Err != nil {
		return errorBanner("summaryError", "Failed to load queue summary: "+s.Err.Error())
	}
	if s.NotFound {
		return emptyState("Queue not found.")
	}
	if s.Queue == nil {
		return Node(nil)
	}

	q := s.Queue
	tiles := []struct {
		label string
		value string
	}{
		{"Received", q.Received},
		{"Answered", q.Answered},
		{"Unanswered", q.Unanswered},
		{"Abandoned", q.Abandoned},
		{"Transferred", q.Transferred},
		{"Avg Wait (s)", q.AvgWaitSeconds},
		{"Avg Talk", q.AvgTalkTime},
		{"Max Callers", q.MaxCallers},
		{"% Answered", q.PctAnswered},
		{"% Unanswered", q.PctUnanswered},
		{"SLA %", q.SLA},
	}

	nodes := make([]Node, 0, len(tiles))
	for _, t := range tiles {
		nodes = append(nodes, Div(Class("tile"),
			Div(Class("label"), Text(t.label)),
			Div(Class("value"), Text(dashIfEmpty(t.value))),
		))
	}
	return Div(Class("tiles"), Group(nodes))
}

// recordsSectionNode renders one row per call record, keyed by contact
// identifier. Optional fields show a dash; an empty result set renders a
// single placeholder row spanning all columns.
func recordsSectionNode(s view.RecordsSection) Node {
	banner := Node(nil)
	if s.Err != nil {
		banner = errorBanner("recordsError", "Failed to load call records: "+s.Err.Error())
	}

	rows := make([]Node, 0, len(s.Records))
	for i := range s.Records {
		rows = append(rows, recordRow(s.Records[i]))
	}
	if len(rows) == 0 {
		rows = append(rows, Tr(Class("placeholder-row"),
			Td(ColSpan(strconv.Itoa(recordColumns)), Text("No call records found.")),
		))
	}

	return Group([]Node{
		banner,
		Div(Class("card"),
			H2(Text("Call Records")),
			Table(Class("data-table"),
				THead(Tr(
					Th(Text("#")),
					Th(Text("Contact ID")),
					Th(Text("Agent")),
					Th(Text("Date")),
					Th(Text("Dialed Number")),
					Th(Text("Event")),
					Th(Text("Ring Time")),
					Th(Text("Wait Time")),
					Th(Text("Talk Time")),
					Th(Text("DNIS")),
				)),
				TBody(Group(rows)),
			),
		),
	})
}

func recordRow(rec types.QueueDetailRecord) Node {
	return Tr(
		ID("record-"+rec.ContactID),
		Td(Text(rec.Row)),
		Td(Text(rec.ContactID)),
		Td(Text(dashIfEmpty(rec.Agent))),
		Td(Text(rec.Date)),
		Td(Text(rec.DialedNumber)),
		Td(Text(rec.EventType)),
		Td(Text(dashIfEmpty(rec.RingTime))),
		Td(Text(dashIfEmpty(rec.WaitTime))),
		Td(Text(dashIfEmpty(rec.TalkTime))),
		Td(Text(rec.DNIS)),
	)
}
