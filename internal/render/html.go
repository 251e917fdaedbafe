package render

import (
	"fmt"
	"html"
	"sort"
	"strings"
	"unicode"
)

// docHeader opens the rendered document. The stylesheet is inline so the
// artifact is fully self-contained.
const docHeader = `<html>
<head>
<meta charset="UTF-8">
<title>Sectoral Report</title>
<style>
body,div,ul,li,p,h1,h2,h3,h4 { font-family: 'Segoe UI', 'Roboto', sans-serif; }
.report-box { background: #f7fafd; border-radius: 16px; border: 1px solid #cde3f7; padding: 32px 24px; margin-bottom:24px; }
h1 { color: #2261a8; }
h2, h3 { color: #2674c2; margin-top: 1.6em;}
h4 { color: #195280; margin-bottom: 0.5em;}
ul { padding-left: 1.2em; }
li { margin-bottom: 0.5em;}
table { border-collapse: collapse; margin: 12px 0;}
table, th, td { border: 1px solid #9ec6e7; }
th, td { padding: 8px 12px; }
.section { margin-bottom: 2em; }
</style>
</head>
<body>
<div class="report-box">`

const docFooter = `</div></body></html>`

// RenderReport converts structured report content into one complete HTML
// document. Fields render in the fixed FieldOrder regardless of input
// order; absent or empty fields are skipped. The function never fails:
// malformed table payloads degrade to preformatted text.
func RenderReport(content map[string]any) string {
	parts := []string{docHeader}

	for _, field := range FieldOrder {
		value, ok := classify(field, content[field])
		if !ok {
			continue
		}

		parts = append(parts, fmt.Sprintf("<h3>%s</h3>", escape(fieldTitle(field))))
		parts = append(parts, renderValue(value)...)
	}

	parts = append(parts, docFooter)
	return strings.Join(parts, "\n")
}

func renderValue(value fieldValue) []string {
	switch value.kind {
	case KindTableList:
		return renderTableEntries(value.tables)
	case KindChartList:
		return []string{renderChartEntries(value.charts)}
	case KindCompanyList:
		return renderCompanyEntries(value.companies)
	case KindCompanyDetail:
		return renderCompanyDetails(value.details)
	case KindStringList:
		return []string{renderItemList(value.items)}
	case KindMapping:
		return []string{renderMapping(value.mapping)}
	default:
		return []string{fmt.Sprintf("<p>%s</p>", escape(stringify(value.scalar)))}
	}
}

func renderTableEntries(entries []TableEntry) []string {
	var parts []string
	for _, tbl := range entries {
		parts = append(parts, fmt.Sprintf("<h4>%s</h4>", escape(tbl.Title)))
		parts = append(parts, renderTable(tbl.TableData, tbl.Description))
	}
	return parts
}

func renderChartEntries(entries []ChartEntry) string {
	var b strings.Builder
	b.WriteString("<ul>")
	for _, c := range entries {
		fmt.Fprintf(&b, "<li><b>%s</b>: %s</li>", escape(c.Title), escape(c.Description))
	}
	b.WriteString("</ul>")
	return b.String()
}

func renderCompanyEntries(entries []CompanyEntry) []string {
	parts := []string{"<ul>"}
	for _, item := range entries {
		li := fmt.Sprintf("<li><b>%s</b>: %s", escape(item.Name), escape(item.PerformanceSummary))
		if item.HasRationale {
			li += fmt.Sprintf("<br><em>Rationale:</em> %s", escape(item.Rationale))
		}
		parts = append(parts, li+"</li>")
	}
	return append(parts, "</ul>")
}

func renderCompanyDetails(details []CompanyDetail) []string {
	var parts []string
	for _, comp := range details {
		parts = append(parts, fmt.Sprintf("<h4>%s <span style='color:gray'>(%s)</span></h4>",
			escape(comp.Name), escape(comp.Sentiment)))
		if comp.BriefSummary != "" {
			parts = append(parts, fmt.Sprintf("<b>Summary:</b> %s<br>", escape(comp.BriefSummary)))
		}
		if len(comp.SentimentTriggers) > 0 {
			parts = append(parts, fmt.Sprintf("<b>Triggers:</b> %s", renderStringList(comp.SentimentTriggers)))
		}
		if comp.Metrics != "" {
			parts = append(parts, fmt.Sprintf("<b>Metrics:</b><br><pre>%s</pre>", escape(comp.Metrics)))
		}
		if comp.OutlookGuidance != "" {
			parts = append(parts, fmt.Sprintf("<b>Outlook/Guidance:</b> %s<br>", escape(comp.OutlookGuidance)))
		}
	}
	return parts
}

// renderItemList renders a plain bulleted list of stringified, escaped items.
func renderItemList(items []any) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<ul>")
	for _, item := range items {
		fmt.Fprintf(&b, "<li>%s</li>", escape(stringify(item)))
	}
	b.WriteString("</ul>")
	return b.String()
}

func renderStringList(items []string) string {
	list := make([]any, len(items))
	for i, s := range items {
		list[i] = s
	}
	return renderItemList(list)
}

// renderMapping renders key/value pairs as a bulleted list. List-valued
// entries recurse into a nested bulleted list; the nested markup is
// renderer-built and must not be escaped again. Keys are sorted so output
// is deterministic across map iterations.
func renderMapping(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("<ul>")
	for _, k := range keys {
		if list, ok := asList(m[k]); ok {
			fmt.Fprintf(&b, "<li><b>%s:</b> %s</li>", escape(k), renderItemList(list))
		} else {
			fmt.Fprintf(&b, "<li><b>%s:</b> %s</li>", escape(k), escape(stringify(m[k])))
		}
	}
	b.WriteString("</ul>")
	return b.String()
}

// fieldTitle converts a machine field name to its heading: underscores
// become spaces and each word is title-cased.
func fieldTitle(field string) string {
	words := strings.Split(field, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

func escape(s string) string {
	return html.EscapeString(s)
}
