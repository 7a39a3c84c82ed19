package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	BackendBbolt  = "bbolt"
	BackendFile   = "file"
	BackendMemory = "memory"

	defaultBackend     = BackendBbolt
	defaultIDStrategy  = "timestamp"
	defaultLogLevel    = "info"
	defaultSidebarSize = 28
)

const (
	envStorageBackend = "INKWELL_STORAGE_BACKEND"
	envLogLevel       = "INKWELL_LOG_LEVEL"
	envIDStrategy     = "INKWELL_ID_STRATEGY"
)

type CoreConfig struct {
	Storage CoreStorageConfig `toml:"storage"`
	IDs     CoreIDsConfig     `toml:"ids"`
	Logging CoreLoggingConfig `toml:"logging"`
}

type CoreStorageConfig struct {
	Backend        string `toml:"backend" validate:"omitempty,oneof=bbolt file memory"`
	Path           string `toml:"path"`
	LegacyJSONPath string `toml:"legacy_json_path"`
}

type CoreIDsConfig struct {
	Strategy string `toml:"strategy" validate:"omitempty,oneof=timestamp uuid"`
}

type CoreLoggingConfig struct {
	Level      string `toml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Path       string `toml:"path"`
	MaxSizeMB  int    `toml:"max_size_mb" validate:"gte=0,lte=1024"`
	MaxBackups int    `toml:"max_backups" validate:"gte=0,lte=100"`
	MaxAgeDays int    `toml:"max_age_days" validate:"gte=0,lte=3650"`
	Compress   bool   `toml:"compress"`
}

type UIConfig struct {
	Sidebar UISidebarConfig `toml:"sidebar"`
	Header  UIHeaderConfig  `toml:"header"`
}

type UISidebarConfig struct {
	Width     int  `toml:"width" validate:"gte=0,lte=80"`
	Collapsed bool `toml:"collapsed"`
}

type UIHeaderConfig struct {
	Greeting *bool `toml:"greeting"`
}

func DefaultCoreConfig() CoreConfig {
	return CoreConfig{
		Storage: CoreStorageConfig{
			Backend: defaultBackend,
		},
		IDs: CoreIDsConfig{
			Strategy: defaultIDStrategy,
		},
		Logging: CoreLoggingConfig{
			Level:      defaultLogLevel,
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 30,
		},
	}
}

func DefaultUIConfig() UIConfig {
	return UIConfig{
		Sidebar: UISidebarConfig{Width: defaultSidebarSize},
	}
}

// LoadCoreConfig reads config.toml from the data dir, then applies
// environment overrides. A .env file in the working directory is loaded
// first when present.
func LoadCoreConfig() (CoreConfig, error) {
	path, err := CoreConfigPath()
	if err != nil {
		return CoreConfig{}, err
	}
	return loadCoreConfigFromPath(path)
}

func LoadUIConfig() (UIConfig, error) {
	path, err := UIConfigPath()
	if err != nil {
		return UIConfig{}, err
	}
	return loadUIConfigFromPath(path)
}

func (c CoreConfig) StorageBackend() string {
	backend := strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	if backend == "" {
		return defaultBackend
	}
	return backend
}

// StoragePath resolves the durable location for the configured backend.
func (c CoreConfig) StoragePath() (string, error) {
	if path := strings.TrimSpace(c.Storage.Path); path != "" {
		return resolveConfigPath(path)
	}
	switch c.StorageBackend() {
	case BackendFile:
		return NotebooksPath()
	case BackendMemory:
		return "", nil
	default:
		return DBPath()
	}
}

// LegacyJSONPath is the JSON file seeded into an empty bbolt store.
func (c CoreConfig) LegacyJSONPath() (string, error) {
	if path := strings.TrimSpace(c.Storage.LegacyJSONPath); path != "" {
		return resolveConfigPath(path)
	}
	return NotebooksPath()
}

func (c CoreConfig) IDStrategy() string {
	strategy := strings.ToLower(strings.TrimSpace(c.IDs.Strategy))
	if strategy == "" {
		return defaultIDStrategy
	}
	return strategy
}

func (c CoreConfig) LogLevel() string {
	level := strings.TrimSpace(c.Logging.Level)
	if level == "" {
		return defaultLogLevel
	}
	return level
}

func (c CoreConfig) LogPath() (string, error) {
	if path := strings.TrimSpace(c.Logging.Path); path != "" {
		return resolveConfigPath(path)
	}
	return LogPath()
}

func (c UIConfig) SidebarWidth() int {
	if c.Sidebar.Width <= 0 {
		return defaultSidebarSize
	}
	return c.Sidebar.Width
}

func (c UIConfig) GreetingEnabled() bool {
	if c.Header.Greeting == nil {
		return true
	}
	return *c.Header.Greeting
}

func loadCoreConfigFromPath(path string) (CoreConfig, error) {
	cfg := DefaultCoreConfig()
	if err := readTOML(path, &cfg); err != nil {
		return CoreConfig{}, err
	}
	if err := loadDotEnv(); err != nil {
		return CoreConfig{}, err
	}
	applyEnvOverrides(&cfg)
	if err := Validate(cfg); err != nil {
		return CoreConfig{}, err
	}
	return cfg, nil
}

func loadUIConfigFromPath(path string) (UIConfig, error) {
	cfg := DefaultUIConfig()
	if err := readTOML(path, &cfg); err != nil {
		return UIConfig{}, err
	}
	if err := Validate(cfg); err != nil {
		return UIConfig{}, err
	}
	return cfg, nil
}

func loadDotEnv() error {
	if _, err := os.Stat(".env"); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	// Load never overrides variables that are already set.
	return godotenv.Load(".env")
}

func applyEnvOverrides(cfg *CoreConfig) {
	if value := strings.TrimSpace(os.Getenv(envStorageBackend)); value != "" {
		cfg.Storage.Backend = value
	}
	if value := strings.TrimSpace(os.Getenv(envLogLevel)); value != "" {
		cfg.Logging.Level = value
	}
	if value := strings.TrimSpace(os.Getenv(envIDStrategy)); value != "" {
		cfg.IDs.Strategy = value
	}
}

func readTOML(path string, out any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	return toml.Unmarshal(data, out)
}

func resolveConfigPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("path is required")
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[2:]), nil
	}
	if filepath.IsAbs(path) {
		return path, nil
	}
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, path), nil
}
