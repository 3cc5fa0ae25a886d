/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package export

import (
	"html"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/NVIDIA/census/pkg/table"
)

// Minimal embedded style sheet; kept deterministic so the document is
// byte-stable for a fixed input.
const htmlStyle = `table { border-collapse: collapse; margin-bottom: 1em; }
th, td { border: 1px solid #999; padding: 4px 8px; text-align: left; }
th { background-color: #eee; }
body { font-family: sans-serif; }`

var titleCaser = cases.Title(language.English)

// DocumentTitle derives a readable document title from an output base
// name, e.g. "net-config" becomes "Net Config".
func DocumentTitle(base string) string {
	cleaned := strings.NewReplacer("-", " ", "_", " ").Replace(base)
	return titleCaser.String(cleaned)
}

// WriteHTML writes the table as a single HTML document: one <table>
// fragment per source host, fragments separated by a visible <hr>. The
// row host tag is bookkeeping only and is excluded from the emitted
// columns; all cell content is escaped.
func WriteHTML(w io.Writer, t *table.Table, title string) error {
	ew := &errWriter{w: w}

	ew.printf("<!DOCTYPE html>\n<html>\n<head>\n")
	ew.printf("<meta charset=\"utf-8\">\n")
	ew.printf("<title>%s</title>\n", html.EscapeString(title))
	ew.printf("<style>\n%s\n</style>\n", htmlStyle)
	ew.printf("</head>\n<body>\n")
	ew.printf("<h1>%s</h1>\n", html.EscapeString(title))

	for i, host := range t.Hosts() {
		if i > 0 {
			ew.printf("<hr>\n")
		}
		writeFragment(ew, t, host)
	}

	ew.printf("</body>\n</html>\n")
	return ew.err
}

func writeFragment(ew *errWriter, t *table.Table, host string) {
	ew.printf("<h2>%s</h2>\n", html.EscapeString(host))
	ew.printf("<table>\n<thead>\n<tr>")
	for _, col := range t.Columns {
		ew.printf("<th>%s</th>", html.EscapeString(col.Name))
	}
	ew.printf("</tr>\n</thead>\n<tbody>\n")

	for _, row := range t.Rows {
		if row.Host != host {
			continue
		}
		ew.printf("<tr>")
		for _, cell := range row.Cells {
			if cell == nil {
				ew.printf("<td></td>")
				continue
			}
			ew.printf("<td>%s</td>", html.EscapeString(cell.String()))
		}
		ew.printf("</tr>\n")
	}

	ew.printf("</tbody>\n</table>\n")
}
