package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strings"
	"time"

	"go.yaml.in/yaml/v4"
)

const defaultConfigFile = "config.yaml"

type Config struct {
	APIBaseURL string        `yaml:"api_base_url"`
	ListenAddr string        `yaml:"listen_addr"`
	Timezone   string        `yaml:"timezone"`
	Storage    StorageConfig `yaml:"storage"`
	Log        LogConfig     `yaml:"log"`
	CORS       CORSConfig    `yaml:"cors"`
	Nudge      NudgeConfig   `yaml:"nudge"`
}

type StorageConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type NudgeConfig struct {
	Email        string `yaml:"email"`
	ResendAPIKey string `yaml:"resend_api_key"`
	From         string `yaml:"from"`
}

func defaults() Config {
	return Config{
		APIBaseURL: "http://localhost:8080",
		ListenAddr: ":8080",
		Timezone:   "UTC",
		Storage:    StorageConfig{Backend: "bolt", Path: "habits.db"},
		Log:        LogConfig{Level: "info", Format: "text"},
		CORS:       CORSConfig{AllowedOrigins: []string{"*"}},
		Nudge:      NudgeConfig{From: "Momentum <nudge@momentum.local>"},
	}
}

// Load reads the YAML file named by MOMENTUM_CONFIG, falling back to
// config.yaml in the working directory. The fallback file may be absent; an
// explicitly named one may not. Environment variables override file values.
func Load() (Config, error) {
	cfg := defaults()

	path, explicit := os.LookupEnv("MOMENTUM_CONFIG")
	if !explicit || path == "" {
		path = defaultConfigFile
		explicit = false
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg.APIBaseURL = getenv("MOMENTUM_API_BASE", cfg.APIBaseURL)
	cfg.ListenAddr = getenv("MOMENTUM_LISTEN_ADDR", cfg.ListenAddr)
	cfg.Timezone = getenv("MOMENTUM_TIMEZONE", cfg.Timezone)
	cfg.Storage.Backend = getenv("MOMENTUM_STORAGE_BACKEND", cfg.Storage.Backend)
	cfg.Storage.Path = getenv("MOMENTUM_DB_PATH", cfg.Storage.Path)
	cfg.Log.Level = getenv("MOMENTUM_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getenv("MOMENTUM_LOG_FORMAT", cfg.Log.Format)
	cfg.Log.File = getenv("MOMENTUM_LOG_FILE", cfg.Log.File)
	cfg.Nudge.Email = getenv("MOMENTUM_NUDGE_EMAIL", cfg.Nudge.Email)
	cfg.Nudge.ResendAPIKey = getenv("RESEND_API_KEY", cfg.Nudge.ResendAPIKey)
	cfg.Nudge.From = getenv("MOMENTUM_NUDGE_FROM", cfg.Nudge.From)
	if v := os.Getenv("MOMENTUM_CORS_ORIGINS"); v != "" {
		cfg.CORS.AllowedOrigins = strings.Split(v, ",")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Storage.Backend {
	case "bolt", "sqlite":
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for backend %q", c.Storage.Backend)
		}
	case "memory":
	default:
		return fmt.Errorf("unknown storage.backend %q", c.Storage.Backend)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log.level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log.format %q", c.Log.Format)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, _, err := net.SplitHostPort(c.ListenAddr); err != nil {
		return fmt.Errorf("bad listen_addr %q: %w", c.ListenAddr, err)
	}
	return nil
}

// Location resolves Timezone; empty means UTC.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("bad timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
