package config

import (
	"os"
	"strings"
)

const (
	portEnvVar          = "PORT"
	appNameVar          = "APP_NAME"
	envVar              = "ENV"
	logLevelVar         = "LOG_LEVEL"
	siteFolderEnvVar    = "SITE_FOLDER"
	dataFolderEnvVar    = "DATA_FOLDER"
	ordersBackendEnvVar = "ORDERS_BACKEND"
	clientSecretEnvVar  = "CLIENT_SECRET"
	adminSecretEnvVar   = "ADMIN_SECRET"
	webhookURLEnvVar    = "DISCORD_WEBHOOK_URL"
)

const (
	OrdersBackendFile   = "file"
	OrdersBackendSQLite = "sqlite"
)

type EnvVars struct {
	file fileValues
}

var _ EnvConfig = EnvVars{}

func (e EnvVars) GetPort() string {
	port := e.file.lookup(portEnvVar, "3000")
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}
	return port
}

func (e EnvVars) GetAppName() string {
	return e.file.lookup(appNameVar, "Nuggets Customs")
}

func (e EnvVars) GetEnv() string {
	return strings.ToUpper(e.file.lookup(envVar, "DEV"))
}

func (e EnvVars) GetLogLevel() string {
	return strings.ToLower(e.file.lookup(logLevelVar, "info"))
}

func (e EnvVars) GetSiteFolder() string {
	return e.file.lookup(siteFolderEnvVar, "./public")
}

func (e EnvVars) GetDataFolder() string {
	return e.file.lookup(dataFolderEnvVar, "./data")
}

// GetOrdersBackend returns "file" or "sqlite". Unknown values fall back to "file".
func (e EnvVars) GetOrdersBackend() string {
	backend := strings.ToLower(e.file.lookup(ordersBackendEnvVar, OrdersBackendFile))
	if backend != OrdersBackendSQLite {
		return OrdersBackendFile
	}
	return backend
}

// GetClientSecret returns the client portal secret, either plain text or a bcrypt hash.
func (e EnvVars) GetClientSecret() string {
	return e.file.lookup(clientSecretEnvVar, "")
}

// GetAdminSecret returns the admin portal secret, either plain text or a bcrypt hash.
func (e EnvVars) GetAdminSecret() string {
	return e.file.lookup(adminSecretEnvVar, "")
}

func (e EnvVars) GetDiscordWebhookURL() string {
	return e.file.lookup(webhookURLEnvVar, "")
}

// GetEnv returns the environment variable or defaultValue when it is unset or empty.
func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
