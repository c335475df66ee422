package ui

import (
	"strconv"
	"strings"

	. "maragu.dev/gomponents"
	data "maragu.dev/gomponents-datastar"
	. "maragu.dev/gomponents/html"
)

func appPage(title string, body ...Node) Node {
	return HTML(
		Lang("en"),
		Head(
			Meta(Charset("utf-8")),
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			TitleEl(Text(title+" | Queue Metrics")),
			Link(Rel("icon"), Href("data:,")),
			StyleEl(Raw(appStyle)),
			Script(
				Type("module"),
				Src("https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.7/bundles/datastar.js"),
			),
		),
		Body(
			Main(Class("shell"),
				Div(Class("topbar"),
					A(Href("/ui/queues"), Class("brand"), Text("Queue Metrics")),
					Span(Class("muted"), Text("Call-center queue performance")),
				),
				Section(Class("content"),
					H1(Class("page-title"), Text(title)),
					Group(body),
				),
			),
		),
	)
}

// errorBanner renders a dismissible notification for a failed fetch. Each
// banner owns its own visibility signal so one section's failure never
// hides another's.
func errorBanner(signal, message string) Node {
	return Div(
		Class("banner banner-error"),
		data.Signals(map[string]any{signal: true}),
		data.Show("$"+signal),
		Span(Text(message)),
		Button(Type("button"), Class("banner-dismiss"), Attr("data-on-click", "$"+signal+" = false"), Text("Dismiss")),
	)
}

// searchCard is the free-text filter box. The bound signal drives pure
// client-side row filtering; typing never issues a request.
func searchCard(placeholder string) Node {
	return Div(
		Class("card toolbar"),
		data.Signals(map[string]any{"q": ""}),
		Label(Class("sr-only"), Text("Search queues")),
		Input(Type("search"), Class("input"), Placeholder(placeholder), data.Bind("q"), AutoComplete("off")),
	)
}

// containsExpr builds the datastar show-expression for one row: visible
// when the search signal is empty or a case-insensitive substring of
// value.
func containsExpr(value string) string {
	lower := strings.ToLower(value)
	return "$q === '' || " + strconv.Quote(lower) + ".includes($q.toLowerCase())"
}

func dashIfEmpty(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func emptyState(message string) Node {
	return Div(Class("card blankslate"), P(Class("muted"), Text(message)))
}

const appStyle = `
:root { color-scheme: light dark; }
* { box-sizing: border-box; }
body { margin: 0; font-family: system-ui, sans-serif; background: #f6f8fa; color: #1f2328; }
.shell { max-width: 1100px; margin: 0 auto; padding: 0 16px 48px; }
.topbar { display: flex; align-items: baseline; gap: 12px; padding: 16px 0; border-bottom: 1px solid #d1d9e0; }
.brand { font-weight: 700; font-size: 18px; color: inherit; text-decoration: none; }
.page-title { font-size: 22px; margin: 20px 0 12px; }
.muted { color: #59636e; font-size: 13px; }
.card { background: #fff; border: 1px solid #d1d9e0; border-radius: 6px; padding: 12px; margin-bottom: 12px; }
.toolbar { display: flex; align-items: center; gap: 8px; flex-wrap: wrap; }
.input, .date-input { padding: 6px 8px; border: 1px solid #d1d9e0; border-radius: 6px; font-size: 14px; }
.input { flex: 1; min-width: 220px; }
.btn { padding: 6px 12px; border: 1px solid #d1d9e0; border-radius: 6px; background: #f6f8fa; cursor: pointer; font-size: 13px; text-decoration: none; color: inherit; display: inline-block; }
.btn-primary { background: #1f883d; border-color: #1f883d; color: #fff; }
.data-table { width: 100%; border-collapse: collapse; font-size: 14px; }
.data-table th, .data-table td { text-align: left; padding: 8px 10px; border-bottom: 1px solid #eaeef2; white-space: nowrap; }
.data-table th { color: #59636e; font-weight: 600; font-size: 12px; text-transform: uppercase; }
.banner { display: flex; justify-content: space-between; align-items: center; gap: 12px; padding: 10px 12px; border-radius: 6px; margin-bottom: 12px; }
.banner-error { background: #ffebe9; border: 1px solid #ff818266; color: #a40e26; }
.banner-dismiss { border: none; background: none; color: inherit; cursor: pointer; font-size: 13px; text-decoration: underline; }
.tiles { display: grid; grid-template-columns: repeat(auto-fill, minmax(150px, 1fr)); gap: 12px; margin-bottom: 12px; }
.tile { background: #fff; border: 1px solid #d1d9e0; border-radius: 6px; padding: 12px; }
.tile .label { color: #59636e; font-size: 12px; text-transform: uppercase; }
.tile .value { font-size: 22px; font-weight: 600; margin-top: 4px; }
.blankslate { text-align: center; padding: 32px; }
.placeholder-row td { text-align: center; color: #59636e; padding: 24px; }
.sr-only { position: absolute; width: 1px; height: 1px; overflow: hidden; clip: rect(0 0 0 0); }
`
