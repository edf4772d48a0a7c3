package cli

import "github.com/spf13/cobra"

// NewGUICommand creates the gui command.
func NewGUICommand(rootOpts *RootOptions, l Launcher) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the visualizer window (default)",
		Long: `Open the visualizer window.

Buttons along the top randomize or enter an array, open one from a file,
start, pause and single-step the run and switch algorithm. The slider sets
the speed while the run continues.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launch(rootOpts, cmd, l, "gui")
		},
	}
}

// NewTUICommand creates the tui command.
func NewTUICommand(rootOpts *RootOptions, l Launcher) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the visualizer in the terminal",
		Long: `Run the visualizer in the terminal.

Keys: space pause, n step, enter restart, r randomize, a next algorithm,
+/- speed, q quit.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launch(rootOpts, cmd, l, "tui")
		},
	}
}
