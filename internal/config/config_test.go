package config

import (
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v4"
)

func TestLoad_MissingConfig(t *testing.T) {
	t.Setenv("MOMENTUM_CONFIG", "nonexistent.yaml")
	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing config file, got nil")
	}
}

func TestLoad_MissingDefaultConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MOMENTUM_CONFIG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Storage.Backend != "bolt" {
		t.Errorf("expected default backend bolt, got %q", cfg.Storage.Backend)
	}
}

func TestLoad_CustomConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	t.Setenv("MOMENTUM_CONFIG", configFile)

	c := defaults()
	c.Storage = StorageConfig{Backend: "sqlite", Path: filepath.Join(tmpDir, "momentum.db")}
	c.Timezone = "Europe/Dublin"
	d, err := yaml.Marshal(&c)
	if err != nil {
		t.Fatalf("failed to marshal config: %v", err)
	}
	if err := os.WriteFile(configFile, d, 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatal("error opening config:", err)
	}
	if cfg.Storage.Backend != "sqlite" {
		t.Errorf("expected sqlite backend, got %q", cfg.Storage.Backend)
	}
	if loc, _ := cfg.Location(); loc.String() != "Europe/Dublin" {
		t.Errorf("expected Europe/Dublin, got %v", loc)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MOMENTUM_CONFIG", "")
	t.Setenv("MOMENTUM_STORAGE_BACKEND", "memory")
	t.Setenv("MOMENTUM_LOG_LEVEL", "debug")
	t.Setenv("MOMENTUM_CORS_ORIGINS", "http://a.test,http://b.test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Storage.Backend != "memory" || cfg.Log.Level != "debug" {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 {
		t.Errorf("expected 2 origins, got %v", cfg.CORS.AllowedOrigins)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown backend", func(c *Config) { c.Storage.Backend = "postgres" }},
		{"missing path", func(c *Config) { c.Storage.Path = "" }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }},
		{"bad timezone", func(c *Config) { c.Timezone = "Mars/Olympus" }},
		{"bad listen addr", func(c *Config) { c.ListenAddr = "8080" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaults()
			tt.mutate(&c)
			if err := c.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
	if err := defaults().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}
