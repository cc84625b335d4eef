package confluence

import (
	"regexp"
	"strings"
)

var (
	// htmlTagRegex matches any HTML/XHTML tag, including Confluence
	// storage-format macro tags
	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

	// whitespaceRegex matches runs of whitespace, newlines included
	whitespaceRegex = regexp.MustCompile(`\s+`)

	// entityReplacer decodes the five standard HTML entities
	entityReplacer = strings.NewReplacer(
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
		"&amp;", "&",
	)
)

// htmlToPlainText converts Confluence storage-format markup to plain text:
// tags are stripped, the five standard HTML entities are decoded, whitespace
// runs collapse to a single space, and the result is trimmed. The function is
// idempotent on already-plain text.
func htmlToPlainText(s string) string {
	s = htmlTagRegex.ReplaceAllString(s, "")
	s = entityReplacer.Replace(s)
	s = whitespaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
