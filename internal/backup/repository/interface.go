package repository

import (
	"context"

	"asana-drive-backup/internal/model"
)

// Source lists the projects of a workspace and the tasks of a project. Every
// call hits the source service fresh; nothing is cached between runs.
type Source interface {
	ListProjects(ctx context.Context) ([]model.Project, error)
	ListTasks(ctx context.Context, projectGID string) ([]model.Task, error)
}

// Destination creates backup folders and task documents in the destination
// store.
type Destination interface {
	// EnsureFolder returns the ID of the non-trashed folder with the exact
	// name under parentID, creating it when absent. Safe to call repeatedly
	// from a single run; two concurrent runs can race the lookup and create
	// duplicate folders (no client-side locking is provided).
	EnsureFolder(ctx context.Context, name, parentID string) (string, error)

	// CreateTasksDocument creates a new two-tab spreadsheet for the project
	// and returns its document ID. The sub-steps run sequentially and the
	// first failure aborts the operation; a partially-written document may
	// be left behind.
	CreateTasksDocument(ctx context.Context, opt CreateDocumentOptions) (string, error)
}
