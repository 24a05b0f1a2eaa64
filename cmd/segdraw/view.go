package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/segdraw/internal/app"
)

var noWatch bool

var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Open the interactive viewer",
	Long:  "Open an STL model in a window and draw a segment on it with the mouse while the draw key is held.",
	Args:  cobra.ExactArgs(1),
	Run:   runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)

	viewCmd.Flags().BoolVar(&noWatch, "no-watch", false, "do not reload the model when the file changes")
}

func runView(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if noWatch {
		cfg.Watch = false
	}

	err = app.Run(app.Options{
		ModelFile:  args[0],
		ConfigFile: configFile,
		Config:     cfg,
		Overrides:  overrides(cmd),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
