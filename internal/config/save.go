package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pingdeck/pingdeck/internal/errors"
)

// fileConfig mirrors Config with durations rendered as strings, so the
// written YAML says "1s" instead of nanosecond counts.
type fileConfig struct {
	Version        int            `yaml:"version"`
	Targets        []TargetConfig `yaml:"targets"`
	PingInterval   string         `yaml:"ping_interval"`
	PingTimeout    string         `yaml:"ping_timeout"`
	SSHTimeout     string         `yaml:"ssh_timeout"`
	HistorySize    int            `yaml:"history_size"`
	PrivilegedPing bool           `yaml:"privileged_ping"`
}

// Marshal renders the config as YAML with human-readable durations.
func Marshal(cfg *Config) ([]byte, error) {
	out := fileConfig{
		Version:        cfg.Version,
		Targets:        cfg.Targets,
		PingInterval:   cfg.PingInterval.String(),
		PingTimeout:    cfg.PingTimeout.String(),
		SSHTimeout:     cfg.SSHTimeout.String(),
		HistorySize:    cfg.HistorySize,
		PrivilegedPing: cfg.PrivilegedPing,
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to serialize config",
			"This is a bug; please report it")
	}
	return data, nil
}

// Save writes the config as YAML to the given path, creating parent
// directories as needed.
func Save(cfg *Config, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to create config directory "+dir,
				"Check directory permissions")
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write config file "+path,
			"Check file permissions")
	}

	return nil
}
