package usecase

import (
	"time"

	"asana-drive-backup/internal/backup/repository"
	"asana-drive-backup/pkg/log"
)

// implUseCase is the private implementation of backup.UseCase.
type implUseCase struct {
	source       repository.Source
	destination  repository.Destination
	rootFolderID string
	l            log.Logger
	now          func() time.Time
}

// New creates a new backup UseCase implementation.
func New(l log.Logger, source repository.Source, destination repository.Destination, rootFolderID string) *implUseCase {
	return &implUseCase{
		source:       source,
		destination:  destination,
		rootFolderID: rootFolderID,
		l:            l,
		now:          time.Now,
	}
}
