package model

// Task is an immutable snapshot of an Asana task. Optional fields stay empty
// here; default substitution ("Unassigned", "N/A") happens only at the
// spreadsheet row-projection boundary.
type Task struct {
	GID          string
	Name         string
	Notes        string
	Completed    bool
	CompletedAt  string   // RFC3339, empty when not completed
	DueOn        string   // date-only due date, e.g. "2025-06-01"
	DueAt        string   // datetime due date, used when DueOn is empty
	Assignee     string   // assignee name; empty when unassigned
	Tags         []string // tag names, source order preserved
	PermalinkURL string
	CreatedAt    string
	ModifiedAt   string
}
