package config

import (
	"fmt"
	"net/url"
	"time"
)

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Ollama   OllamaConfig   `mapstructure:"ollama"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DatabaseConfig holds the SQL Server connection settings.
type DatabaseConfig struct {
	Server                 string `mapstructure:"server"`
	Port                   int    `mapstructure:"port"`
	Database               string `mapstructure:"database"`
	User                   string `mapstructure:"user"`
	Password               string `mapstructure:"password"`
	MaxConnections         int    `mapstructure:"max_connections"`
	MaxIdle                int    `mapstructure:"max_idle"`
	QueryTimeout           int    `mapstructure:"query_timeout"` // milliseconds
	TrustServerCertificate bool   `mapstructure:"trust_server_certificate"`
}

// GetDSN returns the sqlserver connection URL.
func (d DatabaseConfig) GetDSN() string {
	query := url.Values{}
	query.Set("database", d.Database)
	if d.TrustServerCertificate {
		query.Set("TrustServerCertificate", "true")
	}
	u := url.URL{
		Scheme:   "sqlserver",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Server, d.Port),
		RawQuery: query.Encode(),
	}
	return u.String()
}

// OllamaConfig holds the model service settings.
type OllamaConfig struct {
	URL           string `mapstructure:"url"`
	Model         string `mapstructure:"model"`
	Timeout       int    `mapstructure:"timeout"`        // milliseconds
	HealthTimeout int    `mapstructure:"health_timeout"` // milliseconds
	NarrateRows   int    `mapstructure:"narrate_rows"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GetDuration converts milliseconds from config to time.Duration.
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}
