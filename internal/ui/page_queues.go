package ui

import (
	"github.com/queueboard/backend/internal/types"
	"github.com/queueboard/backend/internal/view"

	. "maragu.dev/gomponents"
	data "maragu.dev/gomponents-datastar"
	. "maragu.dev/gomponents/html"
)

type queuesPageData struct {
	Rows      []types.QueueSummaryRow
	DateRange types.DateRange
	Quick7    types.DateRange
	Quick30   types.DateRange
	FetchErr  string
}

func queuesPage(d queuesPageData) Node {
	tableRows := make([]Node, 0, len(d.Rows))
	for i := range d.Rows {
		row := d.Rows[i]
		detailHref := view.DetailPath(row.QueueID, &d.DateRange)
		tableRows = append(tableRows, Tr(
			data.Show(containsExpr(row.QueueID)),
			Td(A(Href(detailHref), Text(row.QueueID))),
			Td(Text(row.Channel)),
			Td(Text(row.Received)),
			Td(Text(row.Answered)),
			Td(Text(row.Unanswered)),
			Td(Text(row.Abandoned)),
			Td(Text(row.Transferred)),
			Td(Text(row.AvgWaitSeconds)),
			Td(Text(row.AvgTalkTime)),
			Td(Text(row.MaxCallers)),
			Td(Text(row.PctAnswered)),
			Td(Text(row.SLA)),
			Td(A(Href(detailHref), Class("btn"), Text("View Details"))),
		))
	}

	tableNode := Node(emptyState("No queues found for this date range."))
	if len(tableRows) > 0 {
		tableNode = Div(Class("card"),
			Table(Class("data-table"),
				THead(Tr(
					Th(Text("Queue")),
					Th(Text("Channel")),
					Th(Text("Received")),
					Th(Text("Answered")),
					Th(Text("Unanswered")),
					Th(Text("Abandoned")),
					Th(Text("Transferred")),
					Th(Text("Avg Wait (s)")),
					Th(Text("Avg Talk")),
					Th(Text("Max Callers")),
					Th(Text("% Answered")),
					Th(Text("SLA %")),
					Th(Text("")),
				)),
				TBody(Group(tableRows)),
			),
		)
	}

	banner := Node(nil)
	if d.FetchErr != "" {
		banner = errorBanner("summaryError", "Failed to load queue metrics: "+d.FetchErr)
	}

	return appPage(
		"Queues",
		banner,
		dateRangeCard(d),
		searchCard("Filter by queue name"),
		tableNode,
	)
}

// dateRangeCard renders the date bounds, the quick selects and the
// apply/reset actions. Apply submits the form so the fetch re-issues with
// the current bounds; the quick selects set both bounds atomically via
// precomputed links.
func dateRangeCard(d queuesPageData) Node {
	return Div(Class("card toolbar"),
		Form(
			Method("get"),
			Action("/ui/queues"),
			Class("toolbar"),
			Label(Class("muted"), For("startDate"), Text("From")),
			Input(Type("date"), Class("date-input"), ID("startDate"), Name("startDate"), Value(d.DateRange.Start)),
			Label(Class("muted"), For("endDate"), Text("To")),
			Input(Type("date"), Class("date-input"), ID("endDate"), Name("endDate"), Value(d.DateRange.End)),
			Button(Type("submit"), Class("btn btn-primary"), Text("Apply")),
		),
		A(Href("/ui/queues?"+d.Quick7.Values().Encode()), Class("btn"), Text("Last 7 Days")),
		A(Href("/ui/queues?"+d.Quick30.Values().Encode()), Class("btn"), Text("Last 30 Days")),
		A(Href("/ui/queues"), Class("btn"), Text("Reset")),
	)
}
