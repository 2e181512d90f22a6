package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	backupHTTP "asana-drive-backup/internal/backup/delivery/http"
	"asana-drive-backup/internal/middleware"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	mw := middleware.New(srv.l)

	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestLogger())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/test", srv.configCheck)
}

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	backupHTTP.RegisterRoutes(srv.gin.Group(""), srv.backupHandler)
	srv.l.Infof(ctx, "Backup route registered at POST /backup-asana")
}
