package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"

	"asana-drive-backup/pkg/response"
)

// healthResp is the liveness probe body.
type healthResp struct {
	Status    string            `json:"status"`
	Timestamp response.DateTime `json:"timestamp"`
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, healthResp{
		Status:    "healthy",
		Timestamp: response.DateTime(time.Now()),
	})
}
