package cli

import (
	"github.com/spf13/cobra"
)

// NewConfigCommand creates the config command.
func NewConfigCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved settings as YAML",
		Long: `Print the settings a front-end would start with: defaults, then the
--config file, then explicit flags. The array is included, so a random
array can be saved and replayed later.

Examples:
  sortviz config --seed 7 > run.yaml
  sortviz --config run.yaml tui`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, algo, values, err := resolve(rootOpts, cmd)
			if err != nil {
				return err
			}
			cfg.Algorithm = algo.String()
			cfg.Values = values
			data, err := cfg.Marshal()
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to encode config", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
