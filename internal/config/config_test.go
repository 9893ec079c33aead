// Package config_test
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"landed-cost/internal/config"
	"landed-cost/internal/errors"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")

	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("default addr = %q, want :8080", cfg.Server.Addr)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Data == nil {
		t.Error("default data config is nil")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.hcl"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("addr = %q, want the default", cfg.Server.Addr)
	}
}

func TestLoadHCLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "landed-cost.hcl")
	content := `
server {
  addr = ":9090"
}

logging {
  level  = "debug"
  format = "json"
}

data {
  tariffs  = "/etc/landed-cost/tariffs.yaml"
  denylist = "/etc/landed-cost/denylist.csv"
}
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("addr = %q, want :9090", cfg.Server.Addr)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
	if cfg.Data.Tariffs != "/etc/landed-cost/tariffs.yaml" {
		t.Errorf("tariffs = %q", cfg.Data.Tariffs)
	}
	if cfg.Data.Denylist != "/etc/landed-cost/denylist.csv" {
		t.Errorf("denylist = %q", cfg.Data.Denylist)
	}

	// Unset logging output falls back to the default.
	if lc := cfg.LogConfig(); lc.Output != "stderr" {
		t.Errorf("log output = %q, want stderr", lc.Output)
	}
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.hcl")
	if err := os.WriteFile(path, []byte("logging {\n  level = \"warn\"\n}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server == nil || cfg.Server.Addr != ":8080" {
		t.Errorf("server block not defaulted: %+v", cfg.Server)
	}
	if cfg.Data == nil {
		t.Error("data block not defaulted")
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("level = %q, want warn", cfg.Logging.Level)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.hcl")
	if err := os.WriteFile(path, []byte("server {\n  addr = \n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := config.Load(path)
	if err == nil {
		t.Fatal("corrupt file accepted")
	}
	if !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("error = %v, want a config error", err)
	}
}

func TestLoadHonorsEnvVariable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.hcl")
	if err := os.WriteFile(path, []byte("server {\n  addr = \":7070\"\n}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(config.EnvConfigPath, path)

	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":7070" {
		t.Errorf("addr = %q, want :7070 from %s", cfg.Server.Addr, config.EnvConfigPath)
	}
}
