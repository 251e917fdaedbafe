package render

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// renderTable parses comma-separated tabular text into an HTML table with
// a header row. On parse failure the raw payload is shown verbatim inside
// a preformatted block instead; this fallback never fails and always
// produces valid markup.
func renderTable(tableData, description string) string {
	var b strings.Builder
	b.WriteString("<div>")
	fmt.Fprintf(&b, "<p>%s</p>", escape(description))

	records, ok := parseTableData(tableData)
	if ok {
		b.WriteString("<table>")
		b.WriteString("<tr>")
		for _, cell := range records[0] {
			fmt.Fprintf(&b, "<th>%s</th>", escape(cell))
		}
		b.WriteString("</tr>")
		for _, row := range records[1:] {
			b.WriteString("<tr>")
			for _, cell := range row {
				fmt.Fprintf(&b, "<td>%s</td>", escape(cell))
			}
			b.WriteString("</tr>")
		}
		b.WriteString("</table>")
	} else {
		fmt.Fprintf(&b, "<pre>%s</pre>", escape(tableData))
	}

	b.WriteString("</div>")
	return b.String()
}

// parseTableData attempts to read the payload as delimited tabular text.
// It demands a header row plus at least one data row and at least two
// columns; anything else is treated as non-tabular.
func parseTableData(tableData string) ([][]string, bool) {
	reader := csv.NewReader(strings.NewReader(strings.TrimSpace(tableData)))
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, false
	}
	if len(records) < 2 || len(records[0]) < 2 {
		return nil, false
	}
	return records, true
}
