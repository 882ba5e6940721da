package config

import (
	"strconv"
	"strings"

	"github.com/kevinburke/ssh_config"

	"github.com/pingdeck/pingdeck/internal/errors"
	"github.com/pingdeck/pingdeck/internal/target"
)

// ParseIPFlag converts one --ip value into a ping-only target. The value is
// an address with an optional display name: "8.8.8.8" or "8.8.8.8=dns".
func ParseIPFlag(value string) (TargetConfig, error) {
	addr, name := value, ""
	if idx := strings.Index(value, "="); idx >= 0 {
		addr, name = value[:idx], value[idx+1:]
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return TargetConfig{}, errors.New(errors.ErrConfig,
			"Empty --ip value",
			"Pass an address like --ip 8.8.8.8 or --ip 8.8.8.8=dns")
	}
	return TargetConfig{Addr: addr, Name: strings.TrimSpace(name)}, nil
}

// ParseSSHFlag converts one --ssh value into an SSH-enabled target. Accepted
// forms:
//
//	user@host        port 22
//	user@host:port
//	alias            resolved through ~/.ssh/config
//
// A bare alias takes its hostname, user, and port from the SSH config entry.
func ParseSSHFlag(value string) (TargetConfig, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return TargetConfig{}, errors.New(errors.ErrConfig,
			"Empty --ssh value",
			"Pass a target like --ssh deploy@10.0.0.5:22 or an SSH config alias")
	}

	if !strings.Contains(value, "@") {
		return resolveSSHAlias(value)
	}

	at := strings.LastIndex(value, "@")
	user := value[:at]
	hostPort := value[at+1:]
	if user == "" || hostPort == "" {
		return TargetConfig{}, errors.New(errors.ErrConfig,
			"Invalid --ssh value: "+value,
			"Use the form user@host or user@host:port")
	}

	host := hostPort
	port := target.DefaultSSHPort
	if idx := strings.LastIndex(hostPort, ":"); idx >= 0 {
		host = hostPort[:idx]
		p, err := strconv.Atoi(hostPort[idx+1:])
		if err != nil || p < 1 || p > 65535 {
			return TargetConfig{}, errors.New(errors.ErrConfig,
				"Invalid SSH port in "+value,
				"Use a port between 1 and 65535")
		}
		port = p
	}

	return TargetConfig{
		Addr: host,
		SSH:  &SSHConfig{Port: port, User: user},
	}, nil
}

// resolveSSHAlias builds a target from an SSH config alias, using the
// HostName, User, and Port of the matching entry in ~/.ssh/config.
func resolveSSHAlias(alias string) (TargetConfig, error) {
	host := ssh_config.Get(alias, "HostName")
	if host == "" {
		// No HostName entry; the alias itself may be the address
		host = alias
	}

	port := target.DefaultSSHPort
	if p := ssh_config.Get(alias, "Port"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed >= 1 && parsed <= 65535 {
			port = parsed
		}
	}

	return TargetConfig{
		Addr: host,
		Name: alias,
		SSH: &SSHConfig{
			Port: port,
			User: ssh_config.Get(alias, "User"),
		},
	}, nil
}

// TargetsFromFlags builds the target list from --ip and --ssh values. Flag
// targets replace the config file's target list entirely.
func TargetsFromFlags(ips, sshSpecs []string) ([]TargetConfig, error) {
	var targets []TargetConfig
	for _, v := range ips {
		t, err := ParseIPFlag(v)
		if err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}
	for _, v := range sshSpecs {
		t, err := ParseSSHFlag(v)
		if err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}
	return targets, nil
}
