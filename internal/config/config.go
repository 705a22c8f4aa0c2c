package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/georgemunganga/storeadmin/internal/db"
)

type Config struct {
	Port          string        `yaml:"port" default:"8080"`
	DBDialect     string        `yaml:"db_dialect" default:"sqlite"`
	DatabaseURL   string        `yaml:"database_url" default:"file:storeadmin.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"`
	JWTSecret     string        `yaml:"jwt_secret"`
	SessionTTL    time.Duration `yaml:"session_ttl" default:"24h"`
	APIBaseURL    string        `yaml:"api_base_url"`
	PublicOrigin  string        `yaml:"public_origin"`
	CloudinaryURL string        `yaml:"cloudinary_url"`
	LogLevel      string        `yaml:"log_level" default:"info"`
	LogFormat     string        `yaml:"log_format" default:"json"`
}

// Load builds the configuration from struct defaults, then the YAML file
// named by CONFIG_FILE (if any), then environment variables. A .env file in
// the working directory is read first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply config defaults: %w", err)
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.Port = getEnv("APP_PORT", cfg.Port)
	cfg.DBDialect = getEnv("DB_DIALECT", cfg.DBDialect)
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	cfg.APIBaseURL = getEnv("API_BASE_URL", cfg.APIBaseURL)
	cfg.PublicOrigin = getEnv("PUBLIC_ORIGIN", cfg.PublicOrigin)
	cfg.CloudinaryURL = getEnv("CLOUDINARY_URL", cfg.CloudinaryURL)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)
	if v, ok := os.LookupEnv("SESSION_TTL"); ok {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TTL %q: %w", v, err)
		}
		cfg.SessionTTL = ttl
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "http://localhost:" + cfg.Port
	}
	if cfg.PublicOrigin == "" {
		cfg.PublicOrigin = cfg.APIBaseURL
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	cfg.PublicOrigin = strings.TrimRight(cfg.PublicOrigin, "/")
	return cfg, nil
}

// Validate reports the first setting that would prevent the server from
// starting.
func (c *Config) Validate() error {
	if _, err := db.ParseDialect(c.DBDialect); err != nil {
		return err
	}
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}
