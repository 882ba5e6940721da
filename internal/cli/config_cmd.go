package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pingdeck/pingdeck/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	Long: `Print the configuration pingdeck would use, after merging the config
file with built-in defaults. Shows which file was loaded, or that defaults
are in effect when no file was found.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return configCommand()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func configCommand() error {
	path, err := config.Find(configFlag)
	if err != nil {
		return err
	}

	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return err
	}

	if path == "" {
		fmt.Println("# no config file found, showing defaults")
	} else {
		fmt.Printf("# loaded from %s\n", path)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
