package repository

// ListOptions selects the tasks returned by List.
type ListOptions struct {
	UserID string // required, scopes the scan to one user's tasks
}
