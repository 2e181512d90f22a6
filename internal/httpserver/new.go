package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"asana-drive-backup/config"
	backupHTTP "asana-drive-backup/internal/backup/delivery/http"
	"asana-drive-backup/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Configuration snapshot, used by the diagnostics route to report which
	// values are present (never their contents).
	cfg *config.Config

	// Backup domain
	backupHandler backupHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	AppConfig *config.Config

	// Backup domain
	BackupHandler backupHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:             logger,
		gin:           gin.New(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		cfg:           cfg.AppConfig,
		backupHandler: cfg.BackupHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.cfg == nil {
		return errors.New("app config is required")
	}
	if srv.backupHandler == nil {
		return errors.New("backup handler is required")
	}
	return nil
}
