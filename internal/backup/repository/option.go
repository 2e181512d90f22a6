package repository

import "asana-drive-backup/internal/model"

// CreateDocumentOptions is the input for Destination.CreateTasksDocument.
type CreateDocumentOptions struct {
	Title    string
	FolderID string
	Project  model.Project
	Tasks    []model.Task
}
