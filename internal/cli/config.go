package cli

import (
	"github.com/spf13/cobra"
)

// configCommand creates the config command.
func (c *CLI) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the effective configuration after merging flags, environment,
the --config source and defaults. Violations are reported but the values are
printed regardless.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			printConfig(cmd.OutOrStdout(), cfg)
			return checkConfig(cmd.ErrOrStderr(), cfg)
		},
	}
}
