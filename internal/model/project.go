package model

// Project is an immutable snapshot of an Asana project, fetched fresh each
// run and never persisted.
type Project struct {
	GID        string // Asana global ID
	Name       string
	Notes      string
	Owner      string // owner name; empty when the project has no owner
	Archived   bool
	CreatedAt  string // RFC3339 string as returned by the Asana API
	ModifiedAt string
}
