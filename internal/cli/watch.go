package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pingdeck/pingdeck/internal/config"
	"github.com/pingdeck/pingdeck/internal/engine"
	"github.com/pingdeck/pingdeck/internal/errors"
	"github.com/pingdeck/pingdeck/internal/logger"
	"github.com/pingdeck/pingdeck/internal/monitor"
	"github.com/pingdeck/pingdeck/internal/probe"
)

// Watch command flags
var (
	watchIPFlags     []string
	watchSSHFlags    []string
	watchInterval    string
	watchHistory     int
	watchPingTimeout string
	watchSSHTimeout  string
	watchPrivileged  bool
)

// watchCmd starts the monitoring dashboard. It is also what the bare root
// command runs.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Start the monitoring dashboard",
	Long: `Start probing the configured targets and render the live dashboard.

Targets come from the config file, or from --ip and --ssh flags. When any
target flag is given, the flag targets replace the configured list.

Keyboard shortcuts:
  q / Ctrl+C  Quit
  up/k        Select previous target
  down/j      Select next target
  Enter       Expand selected target details
  f           Toggle failure log view
  Esc         Collapse / go back
  ?           Show help

Examples:
  pingdeck watch
  pingdeck watch --ip 8.8.8.8 --ip 1.1.1.1=cloudflare
  pingdeck watch --ssh deploy@10.0.0.5:2222 --interval 2s
  pingdeck watch --ssh buildbox`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return watchCommand()
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	for _, cmd := range []*cobra.Command{watchCmd, rootCmd} {
		cmd.Flags().StringArrayVar(&watchIPFlags, "ip", nil,
			"ping-only target, addr or addr=name (repeatable)")
		cmd.Flags().StringArrayVar(&watchSSHFlags, "ssh", nil,
			"SSH target, user@host[:port] or SSH config alias (repeatable)")
		cmd.Flags().StringVar(&watchInterval, "interval", "",
			"ping cycle interval (e.g. 1s, 500ms)")
		cmd.Flags().IntVar(&watchHistory, "history", 0,
			"probe history window size per target")
		cmd.Flags().StringVar(&watchPingTimeout, "ping-timeout", "",
			"per-probe ICMP timeout (e.g. 1s)")
		cmd.Flags().StringVar(&watchSSHTimeout, "ssh-timeout", "",
			"per-probe SSH connect+handshake timeout (e.g. 5s)")
		cmd.Flags().BoolVar(&watchPrivileged, "privileged", false,
			"use raw ICMP sockets (requires root or CAP_NET_RAW)")
	}
}

// watchCommand resolves config, builds the engine, and runs the TUI until
// the user quits.
func watchCommand() error {
	cfg, err := resolveWatchConfig()
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New(errors.ErrUI,
			"Standard output is not a terminal",
			"pingdeck renders an interactive dashboard; run it in a terminal")
	}

	pinger := probe.NewICMPPinger(cfg.PingTimeout, cfg.PrivilegedPing)
	handshaker := probe.NewSSHHandshaker(cfg.SSHTimeout)

	eng := engine.New(cfg.BuildTargets(), pinger, handshaker, engine.Options{
		PingInterval: cfg.PingInterval,
		HistorySize:  cfg.HistorySize,
		Logger:       logger.NewEnvLogger("[engine]"),
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = eng.Run(ctx)
	}()

	// Match the rendered palette to what the terminal supports
	lipgloss.SetColorProfile(termenv.ColorProfile())

	model := monitor.NewModel(eng.Board(), cfg.PingInterval)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrUI,
			"Dashboard terminated unexpectedly",
			"Check terminal compatibility; set PINGDECK_DEBUG=1 for details")
	}

	return nil
}

// resolveWatchConfig merges the config file with the watch flags and
// validates the result.
func resolveWatchConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return nil, err
	}

	if len(watchIPFlags) > 0 || len(watchSSHFlags) > 0 {
		targets, err := config.TargetsFromFlags(watchIPFlags, watchSSHFlags)
		if err != nil {
			return nil, err
		}
		cfg.Targets = targets
	}

	if watchInterval != "" {
		d, err := parseDurationFlag("interval", watchInterval)
		if err != nil {
			return nil, err
		}
		if d < 100*time.Millisecond {
			return nil, errors.New(errors.ErrConfig,
				"Interval too short",
				"Minimum interval is 100ms to avoid flooding targets")
		}
		cfg.PingInterval = d
	}
	if watchPingTimeout != "" {
		d, err := parseDurationFlag("ping-timeout", watchPingTimeout)
		if err != nil {
			return nil, err
		}
		cfg.PingTimeout = d
	}
	if watchSSHTimeout != "" {
		d, err := parseDurationFlag("ssh-timeout", watchSSHTimeout)
		if err != nil {
			return nil, err
		}
		cfg.SSHTimeout = d
	}
	if watchHistory > 0 {
		cfg.HistorySize = watchHistory
	}
	if watchPrivileged {
		cfg.PrivilegedPing = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// parseDurationFlag parses a duration flag value with a helpful error.
func parseDurationFlag(name, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid --%s", value, name),
			"Try something like 1s, 500ms, or 2m")
	}
	if d <= 0 {
		return 0, errors.New(errors.ErrConfig,
			fmt.Sprintf("--%s must be positive", name),
			"Try something like 1s, 500ms, or 2m")
	}
	return d, nil
}
