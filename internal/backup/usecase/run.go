package usecase

import (
	"context"

	"github.com/google/uuid"

	"asana-drive-backup/internal/backup/repository"
	"asana-drive-backup/internal/model"
)

// Run performs one full backup of the workspace. Projects are processed one
// at a time; a failure inside the loop is recorded and the loop continues.
// Only the initial project listing aborts the whole run.
func (uc *implUseCase) Run(ctx context.Context) (model.Summary, error) {
	runID := uuid.NewString()
	startedAt := uc.now()
	uc.l.Infof(ctx, "uc.Run: starting backup run %s", runID)

	projects, err := uc.source.ListProjects(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Run: failed to list projects: %v", err)
		return model.Summary{}, err
	}
	uc.l.Infof(ctx, "uc.Run: run %s found %d projects", runID, len(projects))

	results := make([]model.BackupResult, 0, len(projects))
	for _, project := range projects {
		results = append(results, uc.backupProject(ctx, project))
	}

	summary := model.Summary{
		RunID:         runID,
		Timestamp:     startedAt,
		TotalProjects: len(results),
		Results:       results,
	}
	for _, r := range results {
		if r.Status == model.BackupStatusSuccess {
			summary.Successful++
		} else {
			summary.Failed++
		}
	}

	uc.l.Infof(ctx, "uc.Run: run %s finished: %d succeeded, %d failed",
		runID, summary.Successful, summary.Failed)
	return summary, nil
}

// backupProject backs up a single project. All errors are absorbed into a
// failed BackupResult so one broken project never aborts the others.
func (uc *implUseCase) backupProject(ctx context.Context, project model.Project) model.BackupResult {
	tasks, err := uc.source.ListTasks(ctx, project.GID)
	if err != nil {
		return uc.failedResult(ctx, project, err)
	}

	folderID, err := uc.destination.EnsureFolder(ctx, project.Name+folderNameSuffix, uc.rootFolderID)
	if err != nil {
		return uc.failedResult(ctx, project, err)
	}

	documentID, err := uc.destination.CreateTasksDocument(ctx, repository.CreateDocumentOptions{
		Title:    documentNamePrefix + uc.now().UTC().Format(documentDateLayout),
		FolderID: folderID,
		Project:  project,
		Tasks:    tasks,
	})
	if err != nil {
		return uc.failedResult(ctx, project, err)
	}

	uc.l.Infof(ctx, "uc.backupProject: backed up %q: %d tasks into document %s",
		project.Name, len(tasks), documentID)

	return model.BackupResult{
		ProjectName: project.Name,
		Status:      model.BackupStatusSuccess,
		TaskCount:   len(tasks),
		FolderID:    folderID,
		DocumentID:  documentID,
		Timestamp:   uc.now(),
	}
}

func (uc *implUseCase) failedResult(ctx context.Context, project model.Project, err error) model.BackupResult {
	uc.l.Errorf(ctx, "uc.backupProject: %q failed: %v", project.Name, err)
	return model.BackupResult{
		ProjectName: project.Name,
		Status:      model.BackupStatusFailed,
		Error:       err.Error(),
	}
}
