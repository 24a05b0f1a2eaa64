package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/segdraw/internal/session"
	"github.com/philipparndt/segdraw/pkg/analysis"
	"github.com/philipparndt/segdraw/pkg/geometry"
	"github.com/philipparndt/segdraw/pkg/stl"
)

var pickX, pickY float64

var pickCmd = &cobra.Command{
	Use:   "pick [file]",
	Short: "Cast a ray from the home view and print the hit",
	Long: `Cast a ray through a normalized screen position of the default view and
print the nearest surface point inside the bounding box. (-1, -1) is the
bottom-left corner, (1, 1) the top-right one.`,
	Args: cobra.ExactArgs(1),
	Run:  runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)

	pickCmd.Flags().Float64Var(&pickX, "x", 0, "normalized horizontal position")
	pickCmd.Flags().Float64Var(&pickY, "y", 0, "normalized vertical position")
}

// openSession parses the model and builds a session with the resolved config
func openSession(cmd *cobra.Command, filename string) (*session.Session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	model, err := stl.Parse(filename)
	if err != nil {
		return nil, fmt.Errorf("error parsing STL file: %w", err)
	}

	return session.New(model, cfg)
}

func runPick(cmd *cobra.Command, args []string) {
	sess, err := openSession(cmd, args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	pointer := geometry.NewVector2(pickX, pickY)
	hit, ok := sess.Pick(pointer)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no hit at (%.3f, %.3f)\n", pickX, pickY)
		os.Exit(1)
	}

	nearest, dist := analysis.FindNearestVertex(sess.Model(), hit.Point)

	fmt.Println("Pick")
	fmt.Println("====")
	fmt.Printf("Pointer: (%.3f, %.3f)\n", pickX, pickY)
	fmt.Printf("Camera: %s\n", analysis.FormatVector(sess.Camera.Position))
	fmt.Printf("Hit: %s\n", analysis.FormatVector(hit.Point))
	fmt.Printf("  Object: %s, face %d\n", hit.Object, hit.Face)
	fmt.Printf("  Distance: %s\n", analysis.FormatMeasurement(hit.Distance, ""))
	fmt.Printf("  Nearest vertex: %s (%s away)\n", analysis.FormatVector(nearest), analysis.FormatMeasurement(dist, ""))
}
