package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(homeEnvVar, dir)
	t.Setenv(envStorageBackend, "")
	t.Setenv(envLogLevel, "")
	t.Setenv(envIDStrategy, "")
	t.Chdir(t.TempDir())
	return dir
}

func TestLoadCoreConfigDefaults(t *testing.T) {
	dir := setupDataDir(t)
	cfg, err := LoadCoreConfig()
	if err != nil {
		t.Fatalf("LoadCoreConfig: %v", err)
	}
	if cfg.StorageBackend() != BackendBbolt {
		t.Fatalf("unexpected backend: %q", cfg.StorageBackend())
	}
	if cfg.IDStrategy() != "timestamp" || cfg.LogLevel() != "info" {
		t.Fatalf("unexpected defaults: %#v", cfg)
	}
	path, err := cfg.StoragePath()
	if err != nil {
		t.Fatalf("StoragePath: %v", err)
	}
	if path != filepath.Join(dir, "storage.db") {
		t.Fatalf("unexpected storage path: %s", path)
	}
}

func TestLoadCoreConfigFromTOML(t *testing.T) {
	dir := setupDataDir(t)
	content := []byte("[storage]\nbackend = \"file\"\npath = \"data/nb.json\"\n\n[ids]\nstrategy = \"uuid\"\n")
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), content, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadCoreConfig()
	if err != nil {
		t.Fatalf("LoadCoreConfig: %v", err)
	}
	if cfg.StorageBackend() != BackendFile || cfg.IDStrategy() != "uuid" {
		t.Fatalf("unexpected config: %#v", cfg)
	}
	path, err := cfg.StoragePath()
	if err != nil {
		t.Fatalf("StoragePath: %v", err)
	}
	if path != filepath.Join(dir, "data", "nb.json") {
		t.Fatalf("expected relative path under data dir, got %s", path)
	}
}

func TestLoadCoreConfigEnvOverrides(t *testing.T) {
	setupDataDir(t)
	t.Setenv(envStorageBackend, "memory")
	t.Setenv(envLogLevel, "debug")

	cfg, err := LoadCoreConfig()
	if err != nil {
		t.Fatalf("LoadCoreConfig: %v", err)
	}
	if cfg.StorageBackend() != BackendMemory || cfg.LogLevel() != "debug" {
		t.Fatalf("expected env overrides, got %#v", cfg)
	}
}

func TestLoadCoreConfigDotEnv(t *testing.T) {
	setupDataDir(t)
	os.Unsetenv(envIDStrategy)
	if err := os.WriteFile(".env", []byte(envIDStrategy+"=uuid\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv(envIDStrategy) })

	cfg, err := LoadCoreConfig()
	if err != nil {
		t.Fatalf("LoadCoreConfig: %v", err)
	}
	if cfg.IDStrategy() != "uuid" {
		t.Fatalf("expected .env override, got %q", cfg.IDStrategy())
	}
}

func TestLoadCoreConfigRejectsUnknownBackend(t *testing.T) {
	dir := setupDataDir(t)
	content := []byte("[storage]\nbackend = \"postgres\"\n")
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), content, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := LoadCoreConfig()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !strings.Contains(err.Error(), "backend") {
		t.Fatalf("expected backend in error, got %v", err)
	}
}

func TestUIConfigDefaults(t *testing.T) {
	setupDataDir(t)
	cfg, err := LoadUIConfig()
	if err != nil {
		t.Fatalf("LoadUIConfig: %v", err)
	}
	if cfg.SidebarWidth() != defaultSidebarSize || !cfg.GreetingEnabled() {
		t.Fatalf("unexpected ui defaults: %#v", cfg)
	}
}

func TestUIConfigFromTOML(t *testing.T) {
	dir := setupDataDir(t)
	content := []byte("[sidebar]\nwidth = 34\ncollapsed = true\n\n[header]\ngreeting = false\n")
	if err := os.WriteFile(filepath.Join(dir, "ui.toml"), content, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := LoadUIConfig()
	if err != nil {
		t.Fatalf("LoadUIConfig: %v", err)
	}
	if cfg.SidebarWidth() != 34 || !cfg.Sidebar.Collapsed || cfg.GreetingEnabled() {
		t.Fatalf("unexpected ui config: %#v", cfg)
	}
}
