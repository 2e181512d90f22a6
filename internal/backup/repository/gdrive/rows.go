package gdrive

import (
	"strings"
	"time"

	"asana-drive-backup/internal/model"
)

// taskHeader is the fixed column order of the Tasks tab.
var taskHeader = []any{
	"Name", "Status", "Assignee", "Due Date", "Completed At",
	"Tags", "Notes", "URL", "Created At", "Modified At",
}

// buildTaskRows projects tasks into spreadsheet rows: header row first, then
// one row per task. A project with zero tasks yields the header row only.
func buildTaskRows(tasks []model.Task) [][]any {
	rows := make([][]any, 0, len(tasks)+1)
	rows = append(rows, taskHeader)
	for _, t := range tasks {
		rows = append(rows, taskRow(t))
	}
	return rows
}

// taskRow applies the default substitutions for optional fields. This is the
// only place "Unassigned" and the due-date precedence exist.
func taskRow(t model.Task) []any {
	status := "Incomplete"
	if t.Completed {
		status = "Completed"
	}

	assignee := t.Assignee
	if assignee == "" {
		assignee = "Unassigned"
	}

	// Date-only due date wins over the datetime variant.
	due := t.DueOn
	if due == "" {
		due = t.DueAt
	}

	return []any{
		t.Name,
		status,
		assignee,
		due,
		t.CompletedAt,
		strings.Join(t.Tags, ", "),
		t.Notes,
		t.PermalinkURL,
		t.CreatedAt,
		t.ModifiedAt,
	}
}

// buildProjectInfoRows returns the 11 fixed key/value rows of the
// Project Info tab. now is the backup-run timestamp.
func buildProjectInfoRows(p model.Project, tasks []model.Task, now time.Time) [][]any {
	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}

	owner := p.Owner
	if owner == "" {
		owner = "N/A"
	}

	archived := "No"
	if p.Archived {
		archived = "Yes"
	}

	return [][]any{
		{"Project Name", p.Name},
		{"Project ID", p.GID},
		{"Created At", p.CreatedAt},
		{"Modified At", p.ModifiedAt},
		{"Owner", owner},
		{"Archived", archived},
		{"Notes", p.Notes},
		{"Backup Date", now.UTC().Format(time.RFC3339)},
		{"Total Tasks", len(tasks)},
		{"Completed Tasks", completed},
		{"Incomplete Tasks", len(tasks) - completed},
	}
}
