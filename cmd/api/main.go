package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"asana-drive-backup/config"
	backupHTTP "asana-drive-backup/internal/backup/delivery/http"
	asanaRepo "asana-drive-backup/internal/backup/repository/asana"
	gdriveRepo "asana-drive-backup/internal/backup/repository/gdrive"
	"asana-drive-backup/internal/backup/usecase"
	"asana-drive-backup/internal/httpserver"
	"asana-drive-backup/pkg/asana"
	"asana-drive-backup/pkg/gdrive"
	"asana-drive-backup/pkg/gsheets"
	"asana-drive-backup/pkg/log"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Asana Drive Backup...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Source: Asana client. Construction never fails; a missing token
	// surfaces as an auth error when a backup is triggered.
	asanaClient := asana.NewClient(cfg.Asana.BaseURL, cfg.Asana.AccessToken)
	source := asanaRepo.New(asanaClient, cfg.Asana.WorkspaceID, logger)

	// 4. Destination: Google Drive + Sheets clients (optional at startup).
	// When credentials are absent or invalid the clients stay nil and every
	// destination operation fails at request time instead.
	var driveClient *gdrive.Client
	var sheetsClient *gsheets.Client

	if creds := googleCredentials(ctx, cfg, logger); len(creds) > 0 {
		driveClient, err = gdrive.NewClientFromCredentialsJSON(ctx, creds)
		if err != nil {
			logger.Warnf(ctx, "Google Drive not available: %v", err)
			driveClient = nil
		}
		sheetsClient, err = gsheets.NewClientFromCredentialsJSON(ctx, creds)
		if err != nil {
			logger.Warnf(ctx, "Google Sheets not available: %v", err)
			sheetsClient = nil
		}
		if driveClient != nil && sheetsClient != nil {
			logger.Info(ctx, "Google Drive and Sheets initialized")
		}
	}
	destination := gdriveRepo.New(logger, driveClient, sheetsClient)

	// 5. Backup domain
	backupUC := usecase.New(logger, source, destination, cfg.Google.RootFolderID)
	backupHandler := backupHTTP.New(logger, backupUC)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:        logger,
		Port:          cfg.HTTPServer.Port,
		Mode:          cfg.HTTPServer.Mode,
		Environment:   cfg.Environment.Name,
		AppConfig:     cfg,
		BackupHandler: backupHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// googleCredentials returns the service-account JSON from config: the inline
// blob when set, otherwise the contents of the credentials file.
func googleCredentials(ctx context.Context, cfg *config.Config, logger log.Logger) []byte {
	if cfg.Google.ServiceAccountJSON != "" {
		return []byte(cfg.Google.ServiceAccountJSON)
	}
	if cfg.Google.CredentialsPath == "" {
		logger.Warn(ctx, "Google service account credentials missing; backups will fail until configured")
		return nil
	}

	data, err := os.ReadFile(cfg.Google.CredentialsPath)
	if err != nil {
		logger.Warnf(ctx, "Failed to read Google credentials file: %v", err)
		return nil
	}
	return data
}
