// Package cli wires the pingdeck commands. Each command lives in its own
// file and registers itself on rootCmd in an init function.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Global flags
var configFlag string

// rootCmd is the base command. Running pingdeck with no subcommand starts
// the dashboard, matching what people want most of the time.
var rootCmd = &cobra.Command{
	Use:   "pingdeck",
	Short: "Terminal dashboard for ping and SSH reachability",
	Long: `pingdeck continuously probes a set of hosts with ICMP pings and SSH
handshakes, and renders per-target latency statistics in a live terminal
dashboard.

Ping cycles run every interval; SSH handshake cycles run at five times the
interval. Each target keeps a bounded history of results, so percentiles and
success rates always reflect the recent window.

Examples:
  pingdeck
  pingdeck watch --ip 8.8.8.8 --ip 1.1.1.1=cloudflare
  pingdeck watch --ssh deploy@10.0.0.5:22 --interval 2s`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return watchCommand()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file path")
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
