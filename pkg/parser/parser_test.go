package parser_test

import (
	"testing"
	"time"

	"smart-task-manager/pkg/parser"
)

// base is Wednesday, March 5, 2025. Stage arithmetic below is relative to it.
var base = time.Date(2025, 3, 5, 10, 30, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseCategory(t *testing.T) {
	p := parser.New()

	tests := []struct {
		name string
		text string
		want parser.Category
	}{
		{"work keyword", "Finish the report for the client", parser.CategoryWork},
		{"personal keyword", "Plan birthday party", parser.CategoryPersonal},
		{"health keyword", "Gym workout every day", parser.CategoryHealth},
		{"finance keyword", "Pay rent on 1/1", parser.CategoryFinance},
		{"shopping keyword", "Buy milk tomorrow at 3pm", parser.CategoryShopping},
		{"no keyword falls back", "Think about life", parser.CategoryOther},
		{"first category in order wins", "Email the doctor", parser.CategoryWork},
		{"substring match, not word match", "Review the budget", parser.CategoryFinance},
		{"empty text", "", parser.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Parse(tt.text, base)
			if got.Category != tt.want {
				t.Errorf("Parse(%q).Category = %q, want %q", tt.text, got.Category, tt.want)
			}
		})
	}
}

func TestParsePriority(t *testing.T) {
	p := parser.New()

	tests := []struct {
		name string
		text string
		want parser.Priority
	}{
		{"urgent is high", "Urgent: finish report", parser.PriorityHigh},
		{"asap is high", "Send the invoice asap", parser.PriorityHigh},
		{"someday is low", "Clean the garage someday", parser.PriorityLow},
		{"high beats low", "urgent but also someday", parser.PriorityHigh},
		{"default is medium", "Buy milk", parser.PriorityMedium},
		{"empty text", "", parser.PriorityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Parse(tt.text, base)
			if got.Priority != tt.want {
				t.Errorf("Parse(%q).Priority = %q, want %q", tt.text, got.Priority, tt.want)
			}
		})
	}
}

func TestParseDueDate(t *testing.T) {
	p := parser.New()

	tests := []struct {
		name string
		text string
		now  time.Time
		want *time.Time
	}{
		{"tomorrow", "Buy milk tomorrow", base, ptr(day(2025, 3, 6))},
		{"today", "Call the bank today", base, ptr(day(2025, 3, 5))},
		{"next week", "Plan sprint next week", base, ptr(day(2025, 3, 12))},
		{"weekend resolves to next saturday", "Hike this weekend", base, ptr(day(2025, 3, 8))},
		{"weekend on a saturday advances a week", "Hike this weekend", day(2025, 3, 8), ptr(day(2025, 3, 15))},
		{"weekday name", "Dentist friday", base, ptr(day(2025, 3, 7))},
		{"same weekday advances a full week", "Standup wednesday", base, ptr(day(2025, 3, 12))},
		{"sunday overrides the weekend rule", "Brunch sunday", base, ptr(day(2025, 3, 9))},
		{"in N days", "Renew passport in 10 days", base, ptr(day(2025, 3, 15))},
		{"in N days beats relative phrase", "tomorrow, or in 3 days", base, ptr(day(2025, 3, 8))},
		{"month/day this year", "Dentist 11/20", base, ptr(day(2025, 11, 20))},
		{"month/day already passed rolls a year", "Pay rent on 1/1", base, ptr(day(2026, 1, 1))},
		{"month/day beats relative phrase", "tomorrow 11/20", base, ptr(day(2025, 11, 20))},
		{"dash separator", "Taxes due 4-15", base, ptr(day(2025, 4, 15))},
		{"no date", "Buy milk", base, nil},
		{"empty text", "", base, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Parse(tt.text, tt.now)
			assertDate(t, got.DueDate, tt.want)
		})
	}
}

func TestParseDueTime(t *testing.T) {
	p := parser.New()

	tests := []struct {
		name string
		text string
		want *parser.TimeOfDay
	}{
		{"12-hour pm", "Buy milk tomorrow at 3pm", &parser.TimeOfDay{Hour: 15}},
		{"12-hour with minutes", "Meeting at 9:45am", &parser.TimeOfDay{Hour: 9, Minute: 45}},
		{"12pm stays noon", "Lunch 12pm", &parser.TimeOfDay{Hour: 12}},
		{"12am is midnight", "Deploy at 12am", &parser.TimeOfDay{}},
		{"24-hour", "Standup 9:30", &parser.TimeOfDay{Hour: 9, Minute: 30}},
		{"24-hour out of range rejected", "Weird 99:99", nil},
		{"noon", "Lunch at noon", &parser.TimeOfDay{Hour: 12}},
		{"midnight resolves before night", "Deploy at midnight", &parser.TimeOfDay{}},
		{"morning", "Run in the morning", &parser.TimeOfDay{Hour: 9}},
		{"afternoon matches its noon suffix first", "Nap this afternoon", &parser.TimeOfDay{Hour: 12}},
		{"evening", "Dinner in the evening", &parser.TimeOfDay{Hour: 18}},
		{"night", "Read at night", &parser.TimeOfDay{Hour: 20}},
		{"word time overrides numeric time", "Meeting at 3pm in the evening", &parser.TimeOfDay{Hour: 18}},
		{"no time", "Buy milk", nil},
		{"empty text", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Parse(tt.text, base)
			assertTime(t, got.DueTime, tt.want)
		})
	}
}

func TestParseRecurrence(t *testing.T) {
	p := parser.New()

	tests := []struct {
		name string
		text string
		want parser.Recurrence
	}{
		{"every day", "Gym workout every day", parser.RecurrenceDaily},
		{"daily", "Take medicine daily", parser.RecurrenceDaily},
		{"every week", "Groceries every week", parser.RecurrenceWeekly},
		{"weekly", "Team sync weekly", parser.RecurrenceWeekly},
		{"every month", "Pay rent every month", parser.RecurrenceMonthly},
		{"monthly", "Review budget monthly", parser.RecurrenceMonthly},
		{"daily wins over weekly", "daily and weekly", parser.RecurrenceDaily},
		{"default", "Buy milk", parser.RecurrenceNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Parse(tt.text, base)
			if got.Recurring != tt.want {
				t.Errorf("Parse(%q).Recurring = %q, want %q", tt.text, got.Recurring, tt.want)
			}
		})
	}
}

func TestParseTitle(t *testing.T) {
	p := parser.New()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"strips date and time fragments", "Buy milk tomorrow at 3pm", "Buy milk"},
		{"strips priority keyword", "urgent call the bank", "Call the bank"},
		{"strips recurrence keyword", "Gym workout every day", "Gym workout"},
		{"strips 24-hour time", "Standup 9:30", "Standup"},
		{"keeps weekday names", "Dentist friday", "Dentist friday"},
		{"keeps bare weekend", "Hike weekend", "Hike weekend"},
		{"uppercases first rune", "buy milk", "Buy milk"},
		{"preposition stripping is destructive", "Eat at home", "Ehome"},
		{"fallback when everything is stripped", "tomorrow", "T"},
		{"whitespace collapsed", "Buy   milk   today", "Buy milk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Parse(tt.text, base)
			if got.Title != tt.want {
				t.Errorf("Parse(%q).Title = %q, want %q", tt.text, got.Title, tt.want)
			}
		})
	}
}

func TestParseEmptyInput(t *testing.T) {
	p := parser.New()

	got := p.Parse("", base)
	if got.Title != "" {
		t.Errorf("Title = %q, want empty", got.Title)
	}
	if got.Category != parser.CategoryOther {
		t.Errorf("Category = %q, want %q", got.Category, parser.CategoryOther)
	}
	if got.Priority != parser.PriorityMedium {
		t.Errorf("Priority = %q, want %q", got.Priority, parser.PriorityMedium)
	}
	if got.DueDate != nil || got.DueTime != nil {
		t.Errorf("DueDate/DueTime = %v/%v, want nil/nil", got.DueDate, got.DueTime)
	}
	if got.Recurring != parser.RecurrenceNone {
		t.Errorf("Recurring = %q, want %q", got.Recurring, parser.RecurrenceNone)
	}
}

func TestParseTitleNeverEmpty(t *testing.T) {
	p := parser.New()

	inputs := []string{
		"tomorrow", "urgent", "3pm", "at 9:00", "daily", "today at noon 5pm asap",
	}
	for _, text := range inputs {
		if got := p.Parse(text, base); got.Title == "" {
			t.Errorf("Parse(%q).Title is empty", text)
		}
	}
}

func TestParseCombined(t *testing.T) {
	p := parser.New()

	got := p.Parse("Buy milk tomorrow at 3pm", base)
	if got.Category != parser.CategoryShopping {
		t.Errorf("Category = %q, want %q", got.Category, parser.CategoryShopping)
	}
	assertDate(t, got.DueDate, ptr(day(2025, 3, 6)))
	assertTime(t, got.DueTime, &parser.TimeOfDay{Hour: 15})
	if got.DueTime.String() != "15:00" {
		t.Errorf("DueTime.String() = %q, want %q", got.DueTime.String(), "15:00")
	}
	if got.Title != "Buy milk" {
		t.Errorf("Title = %q, want %q", got.Title, "Buy milk")
	}

	got = p.Parse("Urgent: finish report", base)
	if got.Priority != parser.PriorityHigh {
		t.Errorf("Priority = %q, want %q", got.Priority, parser.PriorityHigh)
	}
	if got.Category != parser.CategoryWork {
		t.Errorf("Category = %q, want %q", got.Category, parser.CategoryWork)
	}
	if got.DueDate != nil || got.DueTime != nil {
		t.Errorf("DueDate/DueTime = %v/%v, want nil/nil", got.DueDate, got.DueTime)
	}
}

func ptr(t time.Time) *time.Time { return &t }

func assertDate(t *testing.T, got, want *time.Time) {
	t.Helper()
	switch {
	case want == nil && got != nil:
		t.Errorf("DueDate = %v, want nil", got)
	case want != nil && got == nil:
		t.Errorf("DueDate = nil, want %v", want)
	case want != nil && !got.Equal(*want):
		t.Errorf("DueDate = %v, want %v", got, want)
	}
}

func assertTime(t *testing.T, got, want *parser.TimeOfDay) {
	t.Helper()
	switch {
	case want == nil && got != nil:
		t.Errorf("DueTime = %v, want nil", got)
	case want != nil && got == nil:
		t.Errorf("DueTime = nil, want %v", want)
	case want != nil && *got != *want:
		t.Errorf("DueTime = %v, want %v", got, want)
	}
}
