package asana

// Named is a compact Asana object carrying only gid and name (owner,
// assignee, tag).
type Named struct {
	GID  string `json:"gid"`
	Name string `json:"name"`
}

// Project is the Asana API project object, restricted to the opt_fields the
// client requests.
type Project struct {
	GID        string `json:"gid"`
	Name       string `json:"name"`
	Notes      string `json:"notes"`
	Archived   bool   `json:"archived"`
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
	Owner      *Named `json:"owner"`
}

// Task is the Asana API task object, restricted to the opt_fields the client
// requests. Assignee and Tags are absent for unassigned/untagged tasks.
type Task struct {
	GID          string  `json:"gid"`
	Name         string  `json:"name"`
	Notes        string  `json:"notes"`
	Completed    bool    `json:"completed"`
	CompletedAt  string  `json:"completed_at"`
	DueOn        string  `json:"due_on"`
	DueAt        string  `json:"due_at"`
	Assignee     *Named  `json:"assignee"`
	Tags         []Named `json:"tags"`
	PermalinkURL string  `json:"permalink_url"`
	CreatedAt    string  `json:"created_at"`
	ModifiedAt   string  `json:"modified_at"`
}

// NextPage is the Asana pagination descriptor; Offset is the opaque
// continuation token for the next request.
type NextPage struct {
	Offset string `json:"offset"`
	Path   string `json:"path"`
	URI    string `json:"uri"`
}
