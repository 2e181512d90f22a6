package model

import "time"

// BackupStatus is the per-project outcome of one backup run.
type BackupStatus string

const (
	BackupStatusSuccess BackupStatus = "success"
	BackupStatusFailed  BackupStatus = "failed"
)

// BackupResult is the outcome for a single project. Held in memory for the
// duration of one request only.
type BackupResult struct {
	ProjectName string
	Status      BackupStatus

	// Success fields
	TaskCount  int
	FolderID   string
	DocumentID string
	Timestamp  time.Time

	// Failure field
	Error string
}

// Summary aggregates all BackupResults for one run. Returned to the caller
// and not stored.
type Summary struct {
	RunID         string
	Timestamp     time.Time
	TotalProjects int
	Successful    int
	Failed        int
	Results       []BackupResult
}
