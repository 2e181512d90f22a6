package gdrive

import (
	"testing"
	"time"

	"asana-drive-backup/internal/model"
)

func TestBuildTaskRows(t *testing.T) {
	t.Run("EmptyProjectHasHeaderOnly", func(t *testing.T) {
		rows := buildTaskRows(nil)
		if len(rows) != 1 {
			t.Fatalf("expected header row only, got %d rows", len(rows))
		}
		if len(rows[0]) != 10 {
			t.Errorf("expected 10 header columns, got %d", len(rows[0]))
		}
	})

	t.Run("DefaultsForAbsentFields", func(t *testing.T) {
		rows := buildTaskRows([]model.Task{{}})
		row := rows[1]

		want := []any{"", "Incomplete", "Unassigned", "", "", "", "", "", "", ""}
		for i, v := range want {
			if row[i] != v {
				t.Errorf("column %d: expected %q, got %q", i, v, row[i])
			}
		}
	})

	t.Run("CompletedTask", func(t *testing.T) {
		rows := buildTaskRows([]model.Task{{
			Name:         "Ship report",
			Completed:    true,
			CompletedAt:  "2026-08-30T10:00:00.000Z",
			Assignee:     "Ada",
			Tags:         []string{"urgent", "q3", "finance"},
			Notes:        "quarterly export",
			PermalinkURL: "https://app.asana.com/0/1/2",
			CreatedAt:    "2026-08-01T08:00:00.000Z",
			ModifiedAt:   "2026-08-30T10:00:00.000Z",
		}})
		row := rows[1]

		if row[0] != "Ship report" || row[1] != "Completed" || row[2] != "Ada" {
			t.Errorf("unexpected row head: %v", row[:3])
		}
		if row[4] != "2026-08-30T10:00:00.000Z" {
			t.Errorf("unexpected completed at: %q", row[4])
		}
		// Order-preserving comma-and-space join.
		if row[5] != "urgent, q3, finance" {
			t.Errorf("unexpected tags: %q", row[5])
		}
	})

	t.Run("DueDatePrecedence", func(t *testing.T) {
		both := buildTaskRows([]model.Task{{DueOn: "2026-09-01", DueAt: "2026-09-01T17:00:00.000Z"}})[1]
		if both[3] != "2026-09-01" {
			t.Errorf("due_on should win over due_at, got %q", both[3])
		}

		datetimeOnly := buildTaskRows([]model.Task{{DueAt: "2026-09-01T17:00:00.000Z"}})[1]
		if datetimeOnly[3] != "2026-09-01T17:00:00.000Z" {
			t.Errorf("expected due_at fallback, got %q", datetimeOnly[3])
		}
	})
}

func TestBuildProjectInfoRows(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	project := model.Project{
		GID:        "p1",
		Name:       "Alpha",
		Notes:      "flagship",
		Archived:   true,
		CreatedAt:  "2025-01-01T00:00:00.000Z",
		ModifiedAt: "2026-08-30T00:00:00.000Z",
	}
	tasks := []model.Task{
		{Completed: true},
		{Completed: true},
		{},
	}

	rows := buildProjectInfoRows(project, tasks, now)
	if len(rows) != 11 {
		t.Fatalf("expected 11 key/value rows, got %d", len(rows))
	}

	byKey := map[string]any{}
	for _, row := range rows {
		if len(row) != 2 {
			t.Fatalf("expected key/value pair, got %v", row)
		}
		byKey[row[0].(string)] = row[1]
	}

	if byKey["Project Name"] != "Alpha" || byKey["Project ID"] != "p1" {
		t.Errorf("unexpected identity rows: %v", byKey)
	}
	if byKey["Owner"] != "N/A" {
		t.Errorf("expected N/A owner, got %q", byKey["Owner"])
	}
	if byKey["Archived"] != "Yes" {
		t.Errorf("expected archived Yes, got %q", byKey["Archived"])
	}
	if byKey["Backup Date"] != "2026-08-31T12:00:00Z" {
		t.Errorf("unexpected backup date: %q", byKey["Backup Date"])
	}
	if byKey["Total Tasks"] != 3 || byKey["Completed Tasks"] != 2 || byKey["Incomplete Tasks"] != 1 {
		t.Errorf("unexpected counts: %v", byKey)
	}
}
