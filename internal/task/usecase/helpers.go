package usecase

import (
	"sort"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/task"
	"smart-task-manager/pkg/parser"
)

// filterTasks applies the status and category filters.
func filterTasks(tasks []model.Task, input task.ListInput) []model.Task {
	filtered := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		switch input.Status {
		case task.StatusActive:
			if t.Completed {
				continue
			}
		case task.StatusCompleted:
			if !t.Completed {
				continue
			}
		}
		if input.Category != "" && t.Category != input.Category {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}

// priorityRank orders priorities high before medium before low.
var priorityRank = map[parser.Priority]int{
	parser.PriorityHigh:   0,
	parser.PriorityMedium: 1,
	parser.PriorityLow:    2,
}

// sortTasks orders tasks in place. Tasks without a due date sort after dated
// ones when sorting by due date; ties fall back to creation time.
func sortTasks(tasks []model.Task, sortBy string, desc bool) {
	less := func(a, b model.Task) bool { return a.CreatedAt.Before(b.CreatedAt) }

	switch sortBy {
	case task.SortByDue:
		less = func(a, b model.Task) bool {
			switch {
			case a.DueDate == nil && b.DueDate == nil:
				return a.CreatedAt.Before(b.CreatedAt)
			case a.DueDate == nil:
				return false
			case b.DueDate == nil:
				return true
			case !a.DueDate.Equal(*b.DueDate):
				return a.DueDate.Before(*b.DueDate)
			default:
				return dueMinutes(a) < dueMinutes(b)
			}
		}
	case task.SortByPriority:
		less = func(a, b model.Task) bool {
			if priorityRank[a.Priority] != priorityRank[b.Priority] {
				return priorityRank[a.Priority] < priorityRank[b.Priority]
			}
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		if desc {
			return less(tasks[j], tasks[i])
		}
		return less(tasks[i], tasks[j])
	})
}

// dueMinutes flattens the optional due time for comparison; tasks without a
// time of day sort before timed ones on the same date.
func dueMinutes(t model.Task) int {
	if t.DueTime == nil {
		return -1
	}
	return t.DueTime.Hour*60 + t.DueTime.Minute
}
