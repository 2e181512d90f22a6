package http

import (
	"asana-drive-backup/internal/model"
	"asana-drive-backup/pkg/response"
)

// --- Response DTOs ---

type resultResp struct {
	Project    string `json:"project"`
	Status     string `json:"status"`
	Tasks      int    `json:"tasks,omitempty"`
	FolderID   string `json:"folderId,omitempty"`
	DocumentID string `json:"documentId,omitempty"`
	Timestamp  string `json:"timestamp,omitempty"`
	Error      string `json:"error,omitempty"`
}

func newResultResp(r model.BackupResult) resultResp {
	resp := resultResp{
		Project: r.ProjectName,
		Status:  string(r.Status),
	}
	if r.Status == model.BackupStatusSuccess {
		resp.Tasks = r.TaskCount
		resp.FolderID = r.FolderID
		resp.DocumentID = r.DocumentID
		resp.Timestamp = r.Timestamp.UTC().Format(response.DateTimeFormat)
	} else {
		resp.Error = r.Error
	}
	return resp
}

type summaryResp struct {
	RunID         string       `json:"runId"`
	Timestamp     string       `json:"timestamp"`
	TotalProjects int          `json:"totalProjects"`
	Successful    int          `json:"successful"`
	Failed        int          `json:"failed"`
	Results       []resultResp `json:"results"`
}

type backupResp struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Summary summaryResp `json:"summary"`
}

func newBackupResp(s model.Summary) backupResp {
	results := make([]resultResp, len(s.Results))
	for i, r := range s.Results {
		results[i] = newResultResp(r)
	}
	return backupResp{
		Success: true,
		Message: "Asana backup completed",
		Summary: summaryResp{
			RunID:         s.RunID,
			Timestamp:     s.Timestamp.UTC().Format(response.DateTimeFormat),
			TotalProjects: s.TotalProjects,
			Successful:    s.Successful,
			Failed:        s.Failed,
			Results:       results,
		},
	}
}
