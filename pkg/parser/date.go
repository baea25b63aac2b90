package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	inDaysPattern   = regexp.MustCompile(`in (\d+) days?`)
	monthDayPattern = regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})`)
)

// weekdayNames is indexed Sunday-first to line up with time.Weekday.
var weekdayNames = []string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// extractDate resolves the due date from the text relative to today (midnight).
// The rules form an overwrite cascade: every matching rule replaces the result
// of any earlier rule, so the last matching rule in declaration order wins.
// An explicit month/day pattern therefore always beats a relative phrase.
func extractDate(text, lower string, today time.Time) *time.Time {
	var due *time.Time
	set := func(t time.Time) { due = &t }

	if strings.Contains(lower, "tomorrow") {
		set(today.AddDate(0, 0, 1))
	}
	if strings.Contains(lower, "today") {
		set(today)
	}
	if strings.Contains(lower, "next week") {
		set(today.AddDate(0, 0, 7))
	}
	if strings.Contains(lower, "weekend") ||
		strings.Contains(lower, "saturday") ||
		strings.Contains(lower, "sunday") {
		set(today.AddDate(0, 0, daysUntil(time.Saturday, today)))
	}
	for i, name := range weekdayNames {
		if strings.Contains(lower, name) {
			set(today.AddDate(0, 0, daysUntil(time.Weekday(i), today)))
			break
		}
	}
	if m := inDaysPattern.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		set(today.AddDate(0, 0, n))
	}
	// Month/day runs against the original text, not the case-folded copy.
	if m := monthDayPattern.FindStringSubmatch(text); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		d := time.Date(today.Year(), time.Month(month), day, 0, 0, 0, 0, today.Location())
		if d.Before(today) {
			d = time.Date(today.Year()+1, time.Month(month), day, 0, 0, 0, 0, today.Location())
		}
		set(d)
	}

	return due
}

// daysUntil returns the offset in days to the next occurrence of target.
// It never returns zero: when today already is the target weekday the task
// is pushed a full week out.
func daysUntil(target time.Weekday, today time.Time) int {
	offset := (int(target) - int(today.Weekday()) + 7) % 7
	if offset == 0 {
		offset = 7
	}
	return offset
}
