// Package config defines the pingdeck configuration file, its loading
// rules, and the flag syntax for specifying targets on the command line.
package config

import (
	"fmt"
	"time"

	"github.com/pingdeck/pingdeck/internal/errors"
	"github.com/pingdeck/pingdeck/internal/target"
)

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete pingdeck configuration.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Targets lists the endpoints to monitor.
	Targets []TargetConfig `yaml:"targets" mapstructure:"targets"`

	// PingInterval paces ping cycles. SSH cycles run at five times this
	// interval.
	PingInterval time.Duration `yaml:"ping_interval" mapstructure:"ping_interval"`

	// PingTimeout bounds each ICMP echo round trip.
	PingTimeout time.Duration `yaml:"ping_timeout" mapstructure:"ping_timeout"`

	// SSHTimeout bounds each SSH connect plus handshake.
	SSHTimeout time.Duration `yaml:"ssh_timeout" mapstructure:"ssh_timeout"`

	// HistorySize bounds each probe history and the failure log per target.
	HistorySize int `yaml:"history_size" mapstructure:"history_size"`

	// PrivilegedPing selects raw ICMP sockets instead of unprivileged UDP
	// ping. Requires root or CAP_NET_RAW.
	PrivilegedPing bool `yaml:"privileged_ping" mapstructure:"privileged_ping"`
}

// TargetConfig defines one monitored endpoint in the config file.
type TargetConfig struct {
	// Addr is the IP address to ping.
	Addr string `yaml:"addr" mapstructure:"addr"`

	// Name is an optional display name; the address is shown when empty.
	Name string `yaml:"name" mapstructure:"name"`

	// SSH enables SSH handshake probing for this target when present.
	SSH *SSHConfig `yaml:"ssh,omitempty" mapstructure:"ssh"`
}

// SSHConfig holds the SSH probe settings for a target.
type SSHConfig struct {
	Port int    `yaml:"port" mapstructure:"port"`
	User string `yaml:"user" mapstructure:"user"`
}

// DefaultConfig returns a Config with sensible defaults: two well-known
// public resolvers, ping-only.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Targets: []TargetConfig{
			{Addr: "8.8.8.8", Name: "google-dns"},
			{Addr: "1.1.1.1", Name: "cloudflare-dns"},
		},
		PingInterval: 1 * time.Second,
		PingTimeout:  1 * time.Second,
		SSHTimeout:   5 * time.Second,
		HistorySize:  100,
	}
}

// Validate checks the config for values that would break the engine.
// Malformed addresses are not rejected here; the ping probe reports them as
// per-target failures instead of aborting the whole run.
func (c *Config) Validate() error {
	if len(c.Targets) == 0 {
		return errors.New(errors.ErrConfig,
			"No targets configured",
			"Add targets to the config file or pass --ip / --ssh")
	}
	for i, t := range c.Targets {
		if t.Addr == "" {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Target %d has no address", i+1),
				"Every target needs an addr field")
		}
		if t.SSH != nil && (t.SSH.Port < 0 || t.SSH.Port > 65535) {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Target %s has invalid SSH port %d", t.Addr, t.SSH.Port),
				"Use a port between 1 and 65535, or omit it for 22")
		}
	}
	if c.PingInterval <= 0 {
		return errors.New(errors.ErrConfig,
			"ping_interval must be positive",
			"Use a duration like 1s or 500ms")
	}
	if c.PingTimeout <= 0 {
		return errors.New(errors.ErrConfig,
			"ping_timeout must be positive",
			"Use a duration like 1s")
	}
	if c.SSHTimeout <= 0 {
		return errors.New(errors.ErrConfig,
			"ssh_timeout must be positive",
			"Use a duration like 5s")
	}
	if c.HistorySize <= 0 {
		return errors.New(errors.ErrConfig,
			"history_size must be positive",
			"Use a window size like 100")
	}
	return nil
}

// BuildTargets converts the configured targets into engine targets.
func (c *Config) BuildTargets() []target.Target {
	out := make([]target.Target, len(c.Targets))
	for i, t := range c.Targets {
		tgt := target.Target{Addr: t.Addr, Name: t.Name}
		if t.SSH != nil {
			port := t.SSH.Port
			if port == 0 {
				port = target.DefaultSSHPort
			}
			tgt.SSH = &target.SSHSpec{Port: port, User: t.SSH.User}
		}
		out[i] = tgt
	}
	return out
}
