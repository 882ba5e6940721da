package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/pingdeck/pingdeck/internal/config"
	"github.com/pingdeck/pingdeck/internal/errors"
)

var (
	initForce  bool
	initGlobal bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a pingdeck configuration file",
	Long: `Initialize a new pingdeck configuration file.

Creates .pingdeck.yaml in the current directory (or the global config with
--global) and guides you through target selection with interactive prompts.

Examples:
  pingdeck init
  pingdeck init --global
  pingdeck init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForce, initGlobal)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing config without asking")
	initCmd.Flags().BoolVar(&initGlobal, "global", false, "write the global config instead of a local one")
}

// initCommand creates a config file, prompting for targets.
func initCommand(force, global bool) error {
	configPath := filepath.Join(".", config.ConfigFileName)
	if global {
		var err error
		configPath, err = config.GlobalConfigPath()
		if err != nil {
			return err
		}
	}

	if _, err := os.Stat(configPath); err == nil && !force {
		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", configPath)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	var ipList, sshTarget, interval string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Ping targets").
				Description("Comma-separated IP addresses, each optionally addr=name").
				Placeholder("8.8.8.8=google-dns, 1.1.1.1").
				Value(&ipList).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("at least one target is required")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("SSH target (optional)").
				Description("user@host[:port] or an SSH config alias; leave empty to skip").
				Placeholder("deploy@10.0.0.5:22").
				Value(&sshTarget),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Ping interval").
				Options(
					huh.NewOption("1s (default)", "1s"),
					huh.NewOption("500ms", "500ms"),
					huh.NewOption("2s", "2s"),
					huh.NewOption("5s", "5s"),
				).
				Value(&interval),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility")
	}

	cfg := config.DefaultConfig()
	cfg.Targets = nil

	for _, part := range strings.Split(ipList, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		tc, err := config.ParseIPFlag(part)
		if err != nil {
			return err
		}
		cfg.Targets = append(cfg.Targets, tc)
	}

	if strings.TrimSpace(sshTarget) != "" {
		tc, err := config.ParseSSHFlag(sshTarget)
		if err != nil {
			return err
		}
		cfg.Targets = append(cfg.Targets, tc)
	}

	if interval != "" {
		d, err := time.ParseDuration(interval)
		if err == nil {
			cfg.PingInterval = d
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := config.Save(cfg, configPath); err != nil {
		return err
	}

	fmt.Printf("✓ Created %s\n\n", configPath)
	fmt.Println("Next steps:")
	fmt.Println("  pingdeck            - Start the dashboard")
	fmt.Println("  pingdeck config     - Show the resolved configuration")

	return nil
}
