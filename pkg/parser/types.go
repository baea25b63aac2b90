package parser

import (
	"encoding/json"
	"fmt"
	"time"
)

// Category buckets a task by subject matter.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryHealth   Category = "health"
	CategoryFinance  Category = "finance"
	CategoryShopping Category = "shopping"
	CategoryOther    Category = "other"
)

// Priority is the urgency level derived from the task text.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Recurrence describes how often a task repeats.
type Recurrence string

const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

// TimeOfDay is a minute-precision clock time in 24-hour representation.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// String formats the time as HH:MM.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// MarshalJSON encodes the time as an "HH:MM" string.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes an "HH:MM" string.
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if _, err := fmt.Sscanf(s, "%d:%d", &t.Hour, &t.Minute); err != nil {
		return fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return nil
}

// Result holds the structured attributes extracted from one task description.
// DueDate and DueTime are nil when the text carries no date or time signal.
type Result struct {
	Title     string
	Category  Category
	Priority  Priority
	DueDate   *time.Time
	DueTime   *TimeOfDay
	Recurring Recurrence
}
