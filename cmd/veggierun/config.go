package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/veggie-run/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or validate tuning files",
}

var flagDefaults bool

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective tuning as YAML",
	Long: `Print the tuning the game would use. Without --config this is the
first file found in ~/.veggierun/configs, ./configs or the built-in defaults.
With --defaults the built-in file is printed as shipped, comments included.

Examples:
  veggierun config dump --defaults > ~/.veggierun/configs/veggierun.yaml
  veggierun config dump --config ./hard.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagDefaults {
			_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
			return err
		}
		cfg, err := loadConfig(flagConfig)
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("config: cannot encode: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}

var configCheckCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a tuning file",
	Long: `Parse and validate a tuning file, reporting every problem found.
The file argument takes precedence over --config.

Examples:
  veggierun config check ./hard.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := flagConfig
		if len(args) == 1 {
			path = args[0]
		}
		if path == "" {
			return fmt.Errorf("no file given")
		}
		if _, err := loadConfig(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
		return nil
	},
}

func init() {
	configDumpCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults file verbatim")

	configCmd.AddCommand(configDumpCmd)
	configCmd.AddCommand(configCheckCmd)
}

// loadConfig reads path strictly: a missing or invalid file is an error.
// An empty path resolves through the normal search order.
func loadConfig(path string) (config.RunnerConfig, error) {
	cfg, err := config.LoadRunner(path)
	if err != nil {
		return config.RunnerConfig{}, err
	}
	return cfg, nil
}
