package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/segdraw/version"
)

var rootCmd = &cobra.Command{
	Use:   "segdraw",
	Short: "Draw line segments on the surface of STL models",
	Long: `segdraw opens an STL model and lets you draw a line segment on its surface:
hold the draw key, press on the model and drag. The pick and trace commands
run the same ray casting and drawing headlessly.`,
	Version: version.GetVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
