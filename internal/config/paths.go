package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	appDirName = ".inkwell"
	homeEnvVar = "INKWELL_HOME"
)

// DataDir returns the base data directory for inkwell.
func DataDir() (string, error) {
	if dir := strings.TrimSpace(os.Getenv(homeEnvVar)); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, appDirName), nil
}

// CoreConfigPath returns the path to the core TOML configuration.
func CoreConfigPath() (string, error) {
	return dataPath("config.toml")
}

// UIConfigPath returns the path to the UI TOML configuration.
func UIConfigPath() (string, error) {
	return dataPath("ui.toml")
}

// DBPath returns the path to the bbolt database.
func DBPath() (string, error) {
	return dataPath("storage.db")
}

// NotebooksPath returns the path to the JSON notebooks file used by the file backend.
func NotebooksPath() (string, error) {
	return dataPath("notebooks.json")
}

// LogPath returns the path to the rotating log file.
func LogPath() (string, error) {
	return dataPath("inkwell.log")
}

func dataPath(name string) (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, name), nil
}
