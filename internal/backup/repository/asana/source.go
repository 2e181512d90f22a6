package asana

import (
	"context"

	"asana-drive-backup/internal/backup/repository"
	"asana-drive-backup/internal/model"
	"asana-drive-backup/pkg/asana"
	pkgLog "asana-drive-backup/pkg/log"
)

type implSource struct {
	client      *asana.Client
	workspaceID string
	l           pkgLog.Logger
}

// New creates a new Asana-backed Source.
func New(client *asana.Client, workspaceID string, l pkgLog.Logger) repository.Source {
	return &implSource{
		client:      client,
		workspaceID: workspaceID,
		l:           l,
	}
}

func (s *implSource) ListProjects(ctx context.Context) ([]model.Project, error) {
	projects, err := s.client.ListProjects(ctx, s.workspaceID)
	if err != nil {
		s.l.Errorf(ctx, "asana source: failed to list projects: %v", err)
		return nil, err
	}

	out := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		out = append(out, projectToModel(p))
	}
	return out, nil
}

func (s *implSource) ListTasks(ctx context.Context, projectGID string) ([]model.Task, error) {
	tasks, err := s.client.ListTasks(ctx, projectGID)
	if err != nil {
		s.l.Errorf(ctx, "asana source: failed to list tasks for project %s: %v", projectGID, err)
		return nil, err
	}

	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskToModel(t))
	}
	return out, nil
}

// projectToModel converts an Asana API project object to the internal model.
func projectToModel(p asana.Project) model.Project {
	owner := ""
	if p.Owner != nil {
		owner = p.Owner.Name
	}
	return model.Project{
		GID:        p.GID,
		Name:       p.Name,
		Notes:      p.Notes,
		Owner:      owner,
		Archived:   p.Archived,
		CreatedAt:  p.CreatedAt,
		ModifiedAt: p.ModifiedAt,
	}
}

// taskToModel converts an Asana API task object to the internal model.
func taskToModel(t asana.Task) model.Task {
	assignee := ""
	if t.Assignee != nil {
		assignee = t.Assignee.Name
	}

	var tags []string
	for _, tag := range t.Tags {
		tags = append(tags, tag.Name)
	}

	return model.Task{
		GID:          t.GID,
		Name:         t.Name,
		Notes:        t.Notes,
		Completed:    t.Completed,
		CompletedAt:  t.CompletedAt,
		DueOn:        t.DueOn,
		DueAt:        t.DueAt,
		Assignee:     assignee,
		Tags:         tags,
		PermalinkURL: t.PermalinkURL,
		CreatedAt:    t.CreatedAt,
		ModifiedAt:   t.ModifiedAt,
	}
}
