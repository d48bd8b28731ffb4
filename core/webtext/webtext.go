package webtext

import (
	"html"
	"strings"
)

// lineBreak is the marker newlines collapse to when requested.
const lineBreak = "<br />"

var newlineReplacer = strings.NewReplacer("\r\n", lineBreak, "\r", lineBreak, "\n", lineBreak)

// EscapeHTML escapes s for safe embedding in web output, converting
// & < > " ' to their entity forms. When collapseNewlines is true, newline
// sequences (\r\n, \r, \n) become HTML line breaks.
func EscapeHTML(s string, collapseNewlines bool) string {
	s = html.EscapeString(s)
	if collapseNewlines {
		s = newlineReplacer.Replace(s)
	}
	return s
}
