package main

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"inkwell/internal/config"
)

const (
	configFormatJSON = "json"
	configFormatTOML = "toml"

	configScopeCore = "core"
	configScopeUI   = "ui"
)

type configOutput struct {
	CoreConfigPath string            `json:"core_config_path,omitempty" toml:"core_config_path,omitempty"`
	UIConfigPath   string            `json:"ui_config_path,omitempty" toml:"ui_config_path,omitempty"`
	Storage        *effectiveStorage `json:"storage,omitempty" toml:"storage,omitempty"`
	IDs            *effectiveIDs     `json:"ids,omitempty" toml:"ids,omitempty"`
	Logging        *effectiveLogging `json:"logging,omitempty" toml:"logging,omitempty"`
	Sidebar        *effectiveSidebar `json:"sidebar,omitempty" toml:"sidebar,omitempty"`
	Header         *effectiveHeader  `json:"header,omitempty" toml:"header,omitempty"`
}

type effectiveStorage struct {
	Backend        string `json:"backend" toml:"backend"`
	Path           string `json:"path,omitempty" toml:"path,omitempty"`
	LegacyJSONPath string `json:"legacy_json_path" toml:"legacy_json_path"`
}

type effectiveIDs struct {
	Strategy string `json:"strategy" toml:"strategy"`
}

type effectiveLogging struct {
	Level      string `json:"level" toml:"level"`
	Path       string `json:"path" toml:"path"`
	MaxSizeMB  int    `json:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int    `json:"max_backups" toml:"max_backups"`
	MaxAgeDays int    `json:"max_age_days" toml:"max_age_days"`
	Compress   bool   `json:"compress" toml:"compress"`
}

type effectiveSidebar struct {
	Width     int  `json:"width" toml:"width"`
	Collapsed bool `json:"collapsed" toml:"collapsed"`
}

type effectiveHeader struct {
	Greeting bool `json:"greeting" toml:"greeting"`
}

func newConfigCommand(opts *rootOptions) *cobra.Command {
	var (
		defaults bool
		format   string
		scope    string
	)
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print configuration (effective or defaults)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolvedFormat, err := resolveConfigFormat(format)
			if err != nil {
				return err
			}
			scopes, err := resolveConfigScopes(scope)
			if err != nil {
				return err
			}
			payload, err := buildConfigOutput(defaults, opts.backend, scopes)
			if err != nil {
				return err
			}
			return writeConfigOutput(opts.stdout, resolvedFormat, payload)
		},
	}
	cmd.Flags().BoolVar(&defaults, "default", false, "print default config values")
	cmd.Flags().StringVar(&format, "format", configFormatJSON, "output format: json|toml")
	cmd.Flags().StringVar(&scope, "scope", "", "scope to print: core|ui (default both)")
	return cmd
}

func buildConfigOutput(defaults bool, backend string, scopes map[string]struct{}) (configOutput, error) {
	out := configOutput{}
	if _, ok := scopes[configScopeCore]; ok {
		path, err := config.CoreConfigPath()
		if err != nil {
			return configOutput{}, err
		}
		cfg := config.DefaultCoreConfig()
		if !defaults {
			cfg, err = config.LoadCoreConfig()
			if err != nil {
				return configOutput{}, err
			}
			if backend = strings.TrimSpace(backend); backend != "" {
				cfg.Storage.Backend = backend
			}
		}
		storagePath, err := cfg.StoragePath()
		if err != nil {
			return configOutput{}, err
		}
		legacyPath, err := cfg.LegacyJSONPath()
		if err != nil {
			return configOutput{}, err
		}
		logPath, err := cfg.LogPath()
		if err != nil {
			return configOutput{}, err
		}
		out.CoreConfigPath = path
		out.Storage = &effectiveStorage{Backend: cfg.StorageBackend(), Path: storagePath, LegacyJSONPath: legacyPath}
		out.IDs = &effectiveIDs{Strategy: cfg.IDStrategy()}
		out.Logging = &effectiveLogging{
			Level:      cfg.LogLevel(),
			Path:       logPath,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
			Compress:   cfg.Logging.Compress,
		}
	}
	if _, ok := scopes[configScopeUI]; ok {
		path, err := config.UIConfigPath()
		if err != nil {
			return configOutput{}, err
		}
		cfg := config.DefaultUIConfig()
		if !defaults {
			cfg, err = config.LoadUIConfig()
			if err != nil {
				return configOutput{}, err
			}
		}
		out.UIConfigPath = path
		out.Sidebar = &effectiveSidebar{Width: cfg.SidebarWidth(), Collapsed: cfg.Sidebar.Collapsed}
		out.Header = &effectiveHeader{Greeting: cfg.GreetingEnabled()}
	}
	return out, nil
}

func writeConfigOutput(out io.Writer, format string, payload any) error {
	switch format {
	case configFormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	case configFormatTOML:
		data, err := toml.Marshal(payload)
		if err != nil {
			return err
		}
		if len(data) == 0 || data[len(data)-1] != '\n' {
			data = append(data, '\n')
		}
		_, err = out.Write(data)
		return err
	default:
		return errors.New("unsupported format")
	}
}

func resolveConfigFormat(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", configFormatJSON:
		return configFormatJSON, nil
	case configFormatTOML:
		return configFormatTOML, nil
	default:
		return "", errors.New("invalid format: must be json or toml")
	}
}

func resolveConfigScopes(raw string) (map[string]struct{}, error) {
	out := map[string]struct{}{}
	for _, part := range strings.Split(raw, ",") {
		switch scope := strings.ToLower(strings.TrimSpace(part)); scope {
		case "":
		case "all":
			out[configScopeCore] = struct{}{}
			out[configScopeUI] = struct{}{}
		case configScopeCore, configScopeUI:
			out[scope] = struct{}{}
		default:
			return nil, errors.New("invalid scope: must be core, ui or all")
		}
	}
	if len(out) == 0 {
		out[configScopeCore] = struct{}{}
		out[configScopeUI] = struct{}{}
	}
	return out, nil
}
