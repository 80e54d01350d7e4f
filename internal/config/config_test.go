package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Store.Backend != StoreMemory || cfg.AI.Provider != ProviderMock {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Cache.TTL != 24*time.Hour {
		t.Errorf("expected cache ttl 24h, got %v", cfg.Cache.TTL)
	}
}

func TestLoadFrom_YAMLThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "claimtriage.yaml")
	content := `
server:
  port: 9090
store:
  backend: sqlite
  sqlite_path: /tmp/claims.db
region:
  name: metro
  cost_multiplier: 1.4
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("STORE_BACKEND", "DynamoDB")
	t.Setenv("CACHE_TTL", "90m")
	t.Setenv("DEBUG", "true")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Store.Backend != StoreDynamoDB {
		t.Errorf("env must override yaml backend, got %s", cfg.Store.Backend)
	}
	if cfg.Store.SQLitePath != "/tmp/claims.db" {
		t.Errorf("expected sqlite path from yaml, got %s", cfg.Store.SQLitePath)
	}
	if cfg.Region.Name != "metro" || cfg.Region.CostMultiplier != 1.4 || cfg.Region.LaborRate != 95 {
		t.Errorf("unexpected region: %+v", cfg.Region)
	}
	if cfg.Cache.TTL != 90*time.Minute || !cfg.Debug {
		t.Errorf("unexpected env overrides: %+v", cfg)
	}
}

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Server.Port)
	}
}

func TestLoadFrom_Validation(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown backend", env: map[string]string{"STORE_BACKEND": "redis"}},
		{name: "unknown provider", env: map[string]string{"AI_PROVIDER": "oracle"}},
		{name: "anthropic without key", env: map[string]string{"AI_PROVIDER": "anthropic"}},
		{name: "bad port", env: map[string]string{"PORT": "70000"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if _, err := LoadFrom(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
