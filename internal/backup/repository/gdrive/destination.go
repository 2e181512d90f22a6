package gdrive

import (
	"context"
	"time"

	"asana-drive-backup/internal/backup/repository"
	"asana-drive-backup/pkg/gdrive"
	"asana-drive-backup/pkg/gsheets"
	pkgLog "asana-drive-backup/pkg/log"
)

const (
	tasksSheetTitle = "Tasks"
	infoSheetTitle  = "Project Info"

	// Sheet IDs are assigned 0..n-1 at spreadsheet creation, in tab order.
	tasksSheetID = 0
)

type implDestination struct {
	drive  *gdrive.Client
	sheets *gsheets.Client
	l      pkgLog.Logger
	now    func() time.Time
}

// New creates a new Google Drive/Sheets-backed Destination. Either client may
// be nil when credentials were unavailable at startup; operations then fail
// with repository.ErrNotConfigured at request time.
func New(l pkgLog.Logger, driveClient *gdrive.Client, sheetsClient *gsheets.Client) repository.Destination {
	return &implDestination{
		drive:  driveClient,
		sheets: sheetsClient,
		l:      l,
		now:    time.Now,
	}
}

func (d *implDestination) EnsureFolder(ctx context.Context, name, parentID string) (string, error) {
	if d.drive == nil {
		return "", repository.ErrNotConfigured
	}

	folderID, err := d.drive.FindFolder(ctx, name, parentID)
	if err != nil {
		return "", err
	}
	if folderID != "" {
		return folderID, nil
	}

	folderID, err = d.drive.CreateFolder(ctx, name, parentID)
	if err != nil {
		return "", err
	}
	d.l.Infof(ctx, "gdrive destination: created folder %q (%s)", name, folderID)
	return folderID, nil
}

func (d *implDestination) CreateTasksDocument(ctx context.Context, opt repository.CreateDocumentOptions) (string, error) {
	if d.drive == nil || d.sheets == nil {
		return "", repository.ErrNotConfigured
	}

	// Strictly sequential; the first failing step aborts and may leave a
	// partially-written document behind. No rollback is attempted.
	documentID, err := d.sheets.CreateSpreadsheet(ctx, opt.Title, []string{tasksSheetTitle, infoSheetTitle})
	if err != nil {
		return "", err
	}

	if err := d.drive.MoveFile(ctx, documentID, opt.FolderID); err != nil {
		return "", err
	}

	if err := d.sheets.UpdateValues(ctx, documentID, tasksSheetTitle+"!A1", buildTaskRows(opt.Tasks)); err != nil {
		return "", err
	}

	infoRows := buildProjectInfoRows(opt.Project, opt.Tasks, d.now())
	if err := d.sheets.UpdateValues(ctx, documentID, "'"+infoSheetTitle+"'!A1", infoRows); err != nil {
		return "", err
	}

	if err := d.sheets.FormatHeader(ctx, documentID, tasksSheetID, int64(len(taskHeader))); err != nil {
		return "", err
	}

	return documentID, nil
}
