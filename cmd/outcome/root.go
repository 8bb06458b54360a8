package main

import (
	"github.com/spf13/cobra"

	"github.com/riordanpawley/outcome/internal/config"
)

type rootFlags struct {
	configPath string
	scenarios  string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "outcome",
		Short:         "Animated outcome overlays for terminal apps",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, launch the demo host
			return runHost(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Config file (default $XDG_CONFIG_HOME/outcome/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.scenarios, "scenarios", "", "Scenario file replacing the built-in scenarios")

	cmd.AddCommand(newRunCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadConfig reads the config and applies persistent flag overrides
func loadConfig(flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.scenarios != "" {
		cfg.Demo.Scenarios = flags.scenarios
		if err := config.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
