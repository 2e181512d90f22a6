package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The trigger
// route carries no authentication: credentials live only in server-side
// configuration.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/backup-asana", h.Backup)
}
