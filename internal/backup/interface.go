package backup

import (
	"context"

	"asana-drive-backup/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Run performs one full backup of every project in the configured
	// workspace and returns the per-project results.
	Run(ctx context.Context) (model.Summary, error)
}
