package main

import (
	"fmt"
	"os"

	"github.com/iburimskiy/sort-visualization/internal/cli"
	"github.com/iburimskiy/sort-visualization/internal/game"
	"github.com/iburimskiy/sort-visualization/internal/tui"
)

func main() {
	root := cli.NewRootCommand(cli.Launchers{
		GUI: game.Run,
		TUI: tui.Run,
	})
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
