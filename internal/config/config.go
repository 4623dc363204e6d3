package config

type Config interface {
	EnvConfig
	CorsConfig
	SecurityConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
	GetLogLevel() string
	GetSiteFolder() string
	GetDataFolder() string
	GetOrdersBackend() string
	GetClientSecret() string
	GetAdminSecret() string
	GetDiscordWebhookURL() string
}

type CorsConfig interface {
	GetAllowedOrigins() AllowedOrigins
	GetAllowedMethods() string
	GetAllowedHeaders() string
}

type mainConfig struct {
	EnvVars
	Cors
	Security
}

// New returns a Config backed by environment variables only.
func New() Config {
	return mainConfig{}
}

// Load returns a Config backed by environment variables with the YAML file at
// path as a fallback source. An empty path behaves like New.
func Load(path string) (Config, error) {
	if path == "" {
		return New(), nil
	}
	values, err := readFileValues(path)
	if err != nil {
		return nil, err
	}
	return mainConfig{
		EnvVars: EnvVars{file: values},
		Cors:    Cors{file: values},
	}, nil
}
