package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	twelveHourPattern     = regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?\s*(am|pm)`)
	twentyFourHourPattern = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
)

// wordTimes maps spoken time-of-day words to clock times. The list is an
// ordered cascade: the first contained word wins, so "midnight" resolves
// before its "night" suffix can match.
var wordTimes = []struct {
	word string
	at   TimeOfDay
}{
	{"noon", TimeOfDay{Hour: 12}},
	{"midnight", TimeOfDay{}},
	{"morning", TimeOfDay{Hour: 9}},
	{"afternoon", TimeOfDay{Hour: 14}},
	{"evening", TimeOfDay{Hour: 18}},
	{"night", TimeOfDay{Hour: 20}},
}

// extractTime resolves the due time from the text. A 12-hour match (with
// meridiem) takes the numeric slot; the bare 24-hour pattern is consulted
// only when no meridiem form is present. Word-based times run last and
// replace any numeric match: "3pm in the evening" resolves to 18:00.
func extractTime(text, lower string) *TimeOfDay {
	var due *TimeOfDay

	if m := twelveHourPattern.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		switch strings.ToLower(m[3]) {
		case "pm":
			if hour != 12 {
				hour += 12
			}
		case "am":
			if hour == 12 {
				hour = 0
			}
		}
		due = &TimeOfDay{Hour: hour, Minute: minute}
	} else if m := twentyFourHourPattern.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour < 24 && minute < 60 {
			due = &TimeOfDay{Hour: hour, Minute: minute}
		}
	}

	for _, wt := range wordTimes {
		if strings.Contains(lower, wt.word) {
			at := wt.at
			due = &at
			break
		}
	}

	return due
}
