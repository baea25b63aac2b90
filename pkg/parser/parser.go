// Package parser derives structured task attributes from free-form text
// without calling any external language model or API. It runs a fixed
// pipeline of independent keyword and regex stages: category, priority,
// due date, due time, recurrence, and finally a cleaned display title.
package parser

import (
	"strings"
	"time"
)

// Parser extracts task attributes from natural language descriptions.
// It holds no mutable state; concurrent use is safe.
type Parser struct{}

// New creates a new Parser with the default keyword vocabulary.
func New() *Parser {
	return &Parser{}
}

// Parse extracts task attributes from text relative to the given reference
// instant. The instant is frozen and normalized to midnight before any stage
// runs, so every stage observes the same "today". Parse never fails: text
// with no recognizable signal yields the default category, priority and
// recurrence with no date or time set.
func (p *Parser) Parse(text string, now time.Time) Result {
	today := startOfDay(now)
	lower := strings.ToLower(text)

	return Result{
		Category:  classifyCategory(lower),
		Priority:  classifyPriority(lower),
		DueDate:   extractDate(text, lower, today),
		DueTime:   extractTime(text, lower),
		Recurring: detectRecurrence(lower),
		Title:     cleanTitle(text),
	}
}

// classifyCategory returns the first category (in declaration order) with any
// keyword contained in the lowercased text, or CategoryOther.
func classifyCategory(lower string) Category {
	for _, cat := range categoryOrder {
		for _, kw := range categoryKeywords[cat] {
			if strings.Contains(lower, kw) {
				return cat
			}
		}
	}
	return CategoryOther
}

// classifyPriority checks high keywords before low keywords so that text
// matching both resolves to high. Medium is the default.
func classifyPriority(lower string) Priority {
	for _, kw := range highPriorityKeywords {
		if strings.Contains(lower, kw) {
			return PriorityHigh
		}
	}
	for _, kw := range lowPriorityKeywords {
		if strings.Contains(lower, kw) {
			return PriorityLow
		}
	}
	return PriorityMedium
}

// detectRecurrence returns the first matching recurrence rule, or none.
func detectRecurrence(lower string) Recurrence {
	for _, rule := range recurrenceRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.kind
			}
		}
	}
	return RecurrenceNone
}

// startOfDay returns midnight at the start of the given instant's day.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
