// Package config resolves runtime settings from defaults, an optional TOML
// file and TODOD_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultBackend    = "sqlite"
	DefaultDBPath     = ".todod.db"
	DefaultStateFile  = ".todod_state.json"
	DefaultStorageKey = "todoItems"
	DefaultLogLevel   = "info"
	DefaultConfigFile = "todod.toml"
)

type RuntimeConfig struct {
	Backend    string `toml:"backend"`
	DBPath     string `toml:"db_path"`
	StateFile  string `toml:"state_file"`
	StorageKey string `toml:"storage_key"`
	LogFile    string `toml:"log_file"`
	LogLevel   string `toml:"log_level"`
	ShowHelp   bool   `toml:"show_help"`
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		Backend:    DefaultBackend,
		DBPath:     DefaultDBPath,
		StateFile:  DefaultStateFile,
		StorageKey: DefaultStorageKey,
		LogLevel:   DefaultLogLevel,
	}
}

// Load applies the config file at path (if any) and then the environment on
// top of the defaults. An empty path falls back to TODOD_CONFIG and then to
// ./todod.toml; only an explicitly named file is required to exist.
func Load(path string) (RuntimeConfig, error) {
	cfg := DefaultRuntimeConfig()

	explicit := true
	if strings.TrimSpace(path) == "" {
		path = strings.TrimSpace(os.Getenv("TODOD_CONFIG"))
	}
	if path == "" {
		path = DefaultConfigFile
		explicit = false
	}

	next, err := LoadFile(cfg, path)
	switch {
	case err == nil:
		cfg = next
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return cfg, err
	}
	return RuntimeConfigFromEnv(cfg), nil
}

// LoadFile decodes a TOML file over base. Keys missing from the file keep
// their base values.
func LoadFile(base RuntimeConfig, path string) (RuntimeConfig, error) {
	cfg := base
	if _, err := os.Stat(path); err != nil {
		return base, err
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return base, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("TODOD_BACKEND"); ok {
		cfg.Backend = strings.ToLower(v)
	}
	if v, ok := getEnvString("TODOD_DB_PATH"); ok {
		cfg.DBPath = v
	}
	if v, ok := getEnvString("TODOD_STATE_FILE"); ok {
		cfg.StateFile = v
	}
	if v, ok := getEnvString("TODOD_STORAGE_KEY"); ok {
		cfg.StorageKey = v
	}
	if v, ok := getEnvString("TODOD_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := getEnvString("TODOD_LOG_LEVEL"); ok {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v, ok := getEnvBool("TODOD_SHOW_HELP"); ok {
		cfg.ShowHelp = v
	}
	return cfg
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		if v, err := strconv.ParseBool(raw); err == nil {
			return v, true
		}
		return false, false
	}
}
