package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/evgfitil/docclip/internal/clipboard"
	"github.com/evgfitil/docclip/internal/i18n"
)

const (
	Dir              = ".config/docclip"
	File             = "config.yaml"
	LogFile          = "docclip.log"
	DefaultBackend   = clipboard.BackendAuto
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Config represents the application configuration
type Config struct {
	Language     string         `mapstructure:"language"`
	Backend      string         `mapstructure:"backend"`
	History      bool           `mapstructure:"history"`
	Translations map[string]any `mapstructure:"translations"`
	Log          LogConfig      `mapstructure:"log"`
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// configDir returns the directory holding the config file and state
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, Dir), nil
}

// StateDir returns the directory used for history and logs
func StateDir() string {
	dir, err := configDir()
	if err != nil {
		return Dir
	}
	return dir
}

// Load reads configuration from ~/.config/docclip/config.yaml and environment variables
func Load() (*Config, error) {
	dir, err := configDir()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, File)

	viper.SetDefault("language", i18n.DefaultLanguage)
	viper.SetDefault("backend", DefaultBackend)
	viper.SetDefault("history", true)
	viper.SetDefault("log.level", DefaultLogLevel)
	viper.SetDefault("log.format", DefaultLogFormat)
	viper.SetDefault("log.file", filepath.Join(dir, LogFile))

	viper.MustBindEnv("language", "DOCCLIP_LANG")
	viper.MustBindEnv("backend", "DOCCLIP_BACKEND")

	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")

	if readErr := viper.ReadInConfig(); readErr != nil {
		if !errors.Is(readErr, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var cfg Config
	if unmarshalErr := viper.Unmarshal(&cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	switch cfg.Backend {
	case clipboard.BackendAuto, clipboard.BackendSystem, clipboard.BackendOSC52:
	default:
		return nil, fmt.Errorf("backend must be one of auto, system, osc52, got %q (in %s)", cfg.Backend, path)
	}

	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return nil, fmt.Errorf("log.level must be one of debug, info, warn, error, got %q (in %s)", cfg.Log.Level, path)
	}

	return &cfg, nil
}

// TranslationOverrides flattens the translations section into message keys.
// Viper splits dotted keys such as clipboard.copied into nested maps, so the
// nesting is joined back with dots here.
func (c Config) TranslationOverrides() map[string]string {
	out := make(map[string]string)
	flatten("", c.Translations, out)
	return out
}

func flatten(prefix string, m map[string]any, out map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case string:
			out[key] = val
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

// Path returns the path to the config file
func Path() string {
	dir, err := configDir()
	if err != nil {
		return filepath.Join("~", Dir, File)
	}
	return filepath.Join(dir, File)
}
