package http

import (
	"github.com/gin-gonic/gin"

	"asana-drive-backup/internal/backup"
	"asana-drive-backup/pkg/log"
)

// Handler is the public interface for the backup HTTP delivery layer.
type Handler interface {
	Backup(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc backup.UseCase
}

// New creates a new HTTP handler for the backup domain.
func New(l log.Logger, uc backup.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
