package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads configs/config.yaml if present, then lets environment
// variables override individual values. The env names match the ones the
// deployment already uses (DB_SERVER, OLLAMA_URL, ...).
func Load() (*Config, error) {
	loadEnvFile()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideFromEnv(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func loadEnvFile() {
	for _, path := range []string{".env", "../.env", "../../.env"} {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// overrideFromEnv applies the flat env names the original deployment uses,
// taking precedence over the yaml file.
func overrideFromEnv(cfg *Config) {
	if val := os.Getenv("DB_SERVER"); val != "" {
		cfg.Database.Server = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		var port int
		if _, err := fmt.Sscanf(val, "%d", &port); err == nil {
			cfg.Database.Port = port
		}
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		cfg.Database.Database = val
	}
	if val := os.Getenv("DB_USER"); val != "" {
		cfg.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		cfg.Database.Password = val
	}
	if val := os.Getenv("OLLAMA_URL"); val != "" {
		cfg.Ollama.URL = val
	}
	if val := os.Getenv("OLLAMA_MODEL"); val != "" {
		cfg.Ollama.Model = val
	}
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "joborder-agent"
	}
	if cfg.App.Version == "" {
		cfg.App.Version = "1.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}

	if cfg.Database.Server == "" {
		cfg.Database.Server = "sqlserver"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 1433
	}
	if cfg.Database.Database == "" {
		cfg.Database.Database = "JOBORDER"
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "sa"
	}
	if cfg.Database.MaxConnections == 0 {
		cfg.Database.MaxConnections = 25
	}
	if cfg.Database.MaxIdle == 0 {
		cfg.Database.MaxIdle = 5
	}
	if cfg.Database.QueryTimeout == 0 {
		cfg.Database.QueryTimeout = 30000
	}

	if cfg.Ollama.URL == "" {
		cfg.Ollama.URL = "http://localhost:11434"
	}
	if cfg.Ollama.Model == "" {
		cfg.Ollama.Model = "qwen3:8b"
	}
	if cfg.Ollama.Timeout == 0 {
		cfg.Ollama.Timeout = 30000
	}
	if cfg.Ollama.HealthTimeout == 0 {
		cfg.Ollama.HealthTimeout = 5000
	}
	if cfg.Ollama.NarrateRows == 0 {
		cfg.Ollama.NarrateRows = 20
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Database.Server == "" {
		return fmt.Errorf("database.server is required")
	}
	if cfg.Database.Database == "" {
		return fmt.Errorf("database.database is required")
	}
	if cfg.Database.User == "" {
		return fmt.Errorf("database.user is required")
	}
	if cfg.Ollama.URL == "" {
		return fmt.Errorf("ollama.url is required")
	}
	if cfg.Ollama.Model == "" {
		return fmt.Errorf("ollama.model is required")
	}
	return nil
}
