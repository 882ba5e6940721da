package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pingdeck/pingdeck/internal/target"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, CurrentConfigVersion, cfg.Version)
	require.Len(t, cfg.Targets, 2)
	assert.Equal(t, "8.8.8.8", cfg.Targets[0].Addr)
	assert.Equal(t, "1.1.1.1", cfg.Targets[1].Addr)
	assert.Nil(t, cfg.Targets[0].SSH)
	assert.Equal(t, 1*time.Second, cfg.PingInterval)
	assert.Equal(t, 1*time.Second, cfg.PingTimeout)
	assert.Equal(t, 5*time.Second, cfg.SSHTimeout)
	assert.Equal(t, 100, cfg.HistorySize)
	assert.False(t, cfg.PrivilegedPing)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ".pingdeck.yaml")

	content := `
version: 1
targets:
  - addr: 192.168.1.10
    name: gateway
  - addr: 10.0.0.5
    name: build-box
    ssh:
      port: 2222
      user: deploy
ping_interval: 500ms
ssh_timeout: 3s
history_size: 50
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	require.Len(t, cfg.Targets, 2)
	assert.Equal(t, "gateway", cfg.Targets[0].Name)
	assert.Nil(t, cfg.Targets[0].SSH)
	require.NotNil(t, cfg.Targets[1].SSH)
	assert.Equal(t, 2222, cfg.Targets[1].SSH.Port)
	assert.Equal(t, "deploy", cfg.Targets[1].SSH.User)
	assert.Equal(t, 500*time.Millisecond, cfg.PingInterval)
	assert.Equal(t, 3*time.Second, cfg.SSHTimeout)
	assert.Equal(t, 50, cfg.HistorySize)

	// Unspecified fields keep their defaults
	assert.Equal(t, 1*time.Second, cfg.PingTimeout)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ".pingdeck.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("targets: [\n"), 0o644))

	_, err := Load(configPath)
	require.Error(t, err)
}

func TestFindExplicitPath(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("version: 1\n"), 0o644))

	found, err := Find(configPath)
	require.NoError(t, err)
	assert.Equal(t, configPath, found)

	_, err = Find(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Targets = append(cfg.Targets, TargetConfig{
		Addr: "10.0.0.5",
		Name: "build-box",
		SSH:  &SSHConfig{Port: 2222, User: "deploy"},
	})
	cfg.PingInterval = 2 * time.Second

	require.NoError(t, Save(cfg, configPath))

	loaded, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, cfg.Targets, loaded.Targets)
	assert.Equal(t, 2*time.Second, loaded.PingInterval)
	assert.Equal(t, cfg.HistorySize, loaded.HistorySize)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(c *Config) {}, false},
		{"no targets", func(c *Config) { c.Targets = nil }, true},
		{"empty addr", func(c *Config) { c.Targets[0].Addr = "" }, true},
		{"bad ssh port", func(c *Config) {
			c.Targets[0].SSH = &SSHConfig{Port: 70000}
		}, true},
		{"zero interval", func(c *Config) { c.PingInterval = 0 }, true},
		{"zero ping timeout", func(c *Config) { c.PingTimeout = 0 }, true},
		{"zero ssh timeout", func(c *Config) { c.SSHTimeout = 0 }, true},
		{"zero history", func(c *Config) { c.HistorySize = 0 }, true},
		// Address parsing is the probe's job, not validation's
		{"non-ip addr allowed", func(c *Config) { c.Targets[0].Addr = "not-an-ip" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBuildTargets(t *testing.T) {
	cfg := &Config{
		Targets: []TargetConfig{
			{Addr: "8.8.8.8", Name: "dns"},
			{Addr: "10.0.0.5", SSH: &SSHConfig{User: "deploy"}},
		},
	}

	targets := cfg.BuildTargets()
	require.Len(t, targets, 2)

	assert.False(t, targets[0].SSHEnabled())
	assert.Equal(t, "dns", targets[0].Label())

	require.True(t, targets[1].SSHEnabled())
	assert.Equal(t, target.DefaultSSHPort, targets[1].SSH.Port)
	assert.Equal(t, "deploy", targets[1].SSH.User)
}

func TestParseIPFlag(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		wantAddr string
		wantName string
		wantErr  bool
	}{
		{"bare address", "8.8.8.8", "8.8.8.8", "", false},
		{"with name", "8.8.8.8=dns", "8.8.8.8", "dns", false},
		{"whitespace", " 1.1.1.1 ", "1.1.1.1", "", false},
		{"empty", "", "", "", true},
		{"name only", "=dns", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc, err := ParseIPFlag(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAddr, tc.Addr)
			assert.Equal(t, tt.wantName, tc.Name)
			assert.Nil(t, tc.SSH)
		})
	}
}

func TestParseSSHFlag(t *testing.T) {
	t.Run("user at host", func(t *testing.T) {
		tc, err := ParseSSHFlag("deploy@10.0.0.5")
		require.NoError(t, err)
		assert.Equal(t, "10.0.0.5", tc.Addr)
		require.NotNil(t, tc.SSH)
		assert.Equal(t, target.DefaultSSHPort, tc.SSH.Port)
		assert.Equal(t, "deploy", tc.SSH.User)
	})

	t.Run("user at host with port", func(t *testing.T) {
		tc, err := ParseSSHFlag("deploy@10.0.0.5:2222")
		require.NoError(t, err)
		assert.Equal(t, "10.0.0.5", tc.Addr)
		assert.Equal(t, 2222, tc.SSH.Port)
	})

	t.Run("invalid port", func(t *testing.T) {
		_, err := ParseSSHFlag("deploy@10.0.0.5:notaport")
		assert.Error(t, err)

		_, err = ParseSSHFlag("deploy@10.0.0.5:99999")
		assert.Error(t, err)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := ParseSSHFlag("@10.0.0.5")
		assert.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ParseSSHFlag("")
		assert.Error(t, err)
	})
}

func TestTargetsFromFlags(t *testing.T) {
	targets, err := TargetsFromFlags(
		[]string{"8.8.8.8=dns", "1.1.1.1"},
		[]string{"deploy@10.0.0.5:2222"},
	)
	require.NoError(t, err)
	require.Len(t, targets, 3)
	assert.Nil(t, targets[0].SSH)
	assert.NotNil(t, targets[2].SSH)

	_, err = TargetsFromFlags([]string{""}, nil)
	assert.Error(t, err)
}
