package parser

// Keyword tables are plain data so the matching logic stays generic.
// Matching is case-folded substring containment, not word-boundary matching:
// collisions like "get" inside "budget" are accepted behavior.

// categoryOrder fixes the evaluation order. The first category with any
// matching keyword wins; CategoryOther is the fallback.
var categoryOrder = []Category{
	CategoryWork,
	CategoryPersonal,
	CategoryHealth,
	CategoryFinance,
	CategoryShopping,
}

var categoryKeywords = map[Category][]string{
	CategoryWork: {
		"meeting", "project", "deadline", "report", "presentation",
		"client", "email", "office", "boss", "interview",
	},
	CategoryPersonal: {
		"birthday", "family", "friend", "party", "anniversary",
		"visit", "wedding", "movie",
	},
	CategoryHealth: {
		"gym", "doctor", "workout", "exercise", "medicine",
		"dentist", "yoga", "checkup", "pill",
	},
	CategoryFinance: {
		"pay", "bill", "rent", "bank", "budget",
		"invoice", "tax", "insurance", "loan",
	},
	CategoryShopping: {
		"buy", "shop", "purchase", "order", "groceries",
		"store", "get", "pick up",
	},
}

// High keywords are checked before low keywords; text matching both yields high.
var (
	highPriorityKeywords = []string{"urgent", "asap", "important", "critical", "immediately"}
	lowPriorityKeywords  = []string{"later", "whenever", "sometime", "someday", "eventually", "no rush"}
)

// recurrenceRules are checked in order; the first matching rule wins.
var recurrenceRules = []struct {
	keywords []string
	kind     Recurrence
}{
	{[]string{"every day", "daily"}, RecurrenceDaily},
	{[]string{"every week", "weekly"}, RecurrenceWeekly},
	{[]string{"every month", "monthly"}, RecurrenceMonthly},
}
