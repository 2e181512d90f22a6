package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Backup specifics
	Asana  AsanaConfig
	Google GoogleConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// AsanaConfig configures the source-service client.
type AsanaConfig struct {
	BaseURL     string
	AccessToken string
	WorkspaceID string
}

// GoogleConfig configures the destination-store clients.
// ServiceAccountJSON is the raw service-account credential blob; when empty,
// CredentialsPath is read instead.
type GoogleConfig struct {
	ServiceAccountJSON string
	CredentialsPath    string
	RootFolderID       string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
//
// Missing credentials are not validated here: a value absent at load time
// surfaces as a request-time error, and GET /test reports which values are
// present.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	if port := viper.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}

	// Asana source
	cfg.Asana.BaseURL = viper.GetString("asana.base_url")
	cfg.Asana.AccessToken = viper.GetString("asana.access_token")
	cfg.Asana.WorkspaceID = viper.GetString("asana.workspace_id")
	if token := viper.GetString("asana_access_token"); token != "" {
		cfg.Asana.AccessToken = token
	}
	if workspace := viper.GetString("asana_workspace_id"); workspace != "" {
		cfg.Asana.WorkspaceID = workspace
	}

	// Google destination
	cfg.Google.ServiceAccountJSON = viper.GetString("google.service_account")
	cfg.Google.CredentialsPath = viper.GetString("google.credentials_path")
	cfg.Google.RootFolderID = viper.GetString("google.root_folder_id")
	if sa := viper.GetString("google_service_account"); sa != "" {
		cfg.Google.ServiceAccountJSON = sa
	}
	if creds := viper.GetString("google_application_credentials"); creds != "" && cfg.Google.CredentialsPath == "" {
		cfg.Google.CredentialsPath = creds
	}
	if folder := viper.GetString("drive_root_folder_id"); folder != "" {
		cfg.Google.RootFolderID = folder
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 3000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("asana.base_url", "https://app.asana.com/api/1.0")
}
