package parser

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// titleStripPatterns removes the fragments consumed by the other stages from
// the display title, in order: priority keywords, date phrases, time patterns,
// the trailing-space-bound prepositions "at " / "on ", and recurrence
// keywords. The preposition patterns are deliberately not word-bound.
// Weekday names, category keywords and bare "weekend" tokens stay in the title.
var titleStripPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(urgent|asap|important|critical|immediately|priority)\b`),
	regexp.MustCompile(`(?i)\b(tomorrow|today|next week|this weekend|in \d+ days?)\b`),
	regexp.MustCompile(`(?i)\d{1,2}:\d{2}\s*(am|pm)?`),
	regexp.MustCompile(`(?i)\d{1,2}\s*(am|pm)`),
	regexp.MustCompile(`(?i)at `),
	regexp.MustCompile(`(?i)on `),
	regexp.MustCompile(`(?i)\b(every day|daily|every week|weekly|every month|monthly)\b`),
}

var whitespacePattern = regexp.MustCompile(`\s+`)

// cleanTitle strips the matched keyword fragments from the original-case
// text, collapses whitespace and uppercases the first rune. A non-empty
// input always yields a non-empty title: when stripping consumes everything,
// the first character of the trimmed input stands in. Empty input passes
// through as the empty string.
func cleanTitle(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}

	cleaned := text
	for _, re := range titleStripPatterns {
		cleaned = re.ReplaceAllString(cleaned, "")
	}
	cleaned = strings.TrimSpace(whitespacePattern.ReplaceAllString(cleaned, " "))

	if cleaned == "" {
		_, size := utf8.DecodeRuneInString(trimmed)
		cleaned = trimmed[:size]
	}

	return upperFirst(cleaned)
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
