package http

import (
	"github.com/gin-gonic/gin"

	"asana-drive-backup/pkg/response"
)

// Backup godoc
// @Summary     Run a full workspace backup
// @Description Exports every Asana project in the workspace into a Google
// @Description Sheets document, one per project. Runs synchronously: the
// @Description connection stays open for the full duration of the run.
// @Tags        Backup
// @Produce     json
// @Success     200 {object} backupResp
// @Failure     500 {object} response.ErrResp "Internal Server Error"
// @Router      /backup-asana [POST]
func (h *handler) Backup(c *gin.Context) {
	ctx := c.Request.Context()

	summary, err := h.uc.Run(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Run: %v", err)
		response.ServerError(c, err)
		return
	}

	response.OK(c, newBackupResp(summary))
}
