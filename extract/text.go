package extract

import (
	"html"
	"regexp"
	"strings"
)

var whitespace = regexp.MustCompile(`\s+`)

// normalize collapses whitespace runs to a single space, decodes any
// character references left in the text and trims the result.
func normalize(s string) string {
	s = whitespace.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	return strings.TrimSpace(s)
}
