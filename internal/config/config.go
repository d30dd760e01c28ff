package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Rebrickable RebrickableConfig `mapstructure:"rebrickable"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Database    DatabaseConfig    `mapstructure:"database"`
}

// ServerConfig holds the web server bind address
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// RebrickableConfig holds Rebrickable API configuration
type RebrickableConfig struct {
	BaseURL              string `mapstructure:"base_url"`
	APIKey               string `mapstructure:"api_key"`
	EnvFile              string `mapstructure:"env_file"`
	Timeout              int    `mapstructure:"timeout"`
	MaxRequestsPerSecond int    `mapstructure:"max_requests_per_second"`

	// Parsed separately so "yes" counts as true alongside "1" and "true".
	SkipSSLVerify bool `mapstructure:"-"`
}

// RedisConfig holds the optional RGB cache backend
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	Database int    `mapstructure:"database"`
	CacheTTL int    `mapstructure:"cache_ttl"`
}

// DatabaseConfig holds the optional part payload store
type DatabaseConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

// Load resolves configuration from an optional config.yaml, an optional
// env file (REBRICKABLE_ENV_FILE, default .env) and environment variable
// overrides. Environment variables always win over the env file.
func Load() (*Config, error) {
	if err := loadEnvFile(envFilePath()); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	config.Rebrickable.SkipSSLVerify = parseBoolish(v.GetString("rebrickable.skip_ssl_verify"))

	return &config, nil
}

func envFilePath() string {
	if path := os.Getenv("REBRICKABLE_ENV_FILE"); path != "" {
		return path
	}
	return ".env"
}

// loadEnvFile loads KEY=VALUE pairs into the process environment. Variables
// already present in the environment are never overwritten; a missing file
// is not an error.
func loadEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("error reading env file %s: %w", path, err)
	}

	if err := gotenv.Load(path); err != nil {
		return fmt.Errorf("error loading env file %s: %w", path, err)
	}
	return nil
}

func parseBoolish(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes":
		return true
	}
	return false
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)

	v.SetDefault("rebrickable.base_url", "https://rebrickable.com/api/v3")
	v.SetDefault("rebrickable.api_key", "")
	v.SetDefault("rebrickable.env_file", ".env")
	v.SetDefault("rebrickable.timeout", 30)
	v.SetDefault("rebrickable.max_requests_per_second", 2)
	v.SetDefault("rebrickable.skip_ssl_verify", "")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.database", 0)
	v.SetDefault("redis.cache_ttl", 0)

	v.SetDefault("database.enabled", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "rebrickable")
	v.SetDefault("database.user", "rebrickable_user")
	v.SetDefault("database.password", "rebrickable_pass")
}
