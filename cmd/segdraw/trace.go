package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/segdraw/pkg/analysis"
	"github.com/philipparndt/segdraw/pkg/geometry"
)

var (
	traceFrom  []float64
	traceTo    []float64
	traceSteps int
)

var traceCmd = &cobra.Command{
	Use:   "trace [file]",
	Short: "Replay a drawing stroke headlessly",
	Long: `Press the draw key, press the pointer at --from, drag it to --to in --steps
moves, release, and print every draw event and the resulting segment.
Positions are normalized screen coordinates of the default view.`,
	Args: cobra.ExactArgs(1),
	Run:  runTrace,
}

func init() {
	rootCmd.AddCommand(traceCmd)

	traceCmd.Flags().Float64SliceVar(&traceFrom, "from", nil, "stroke start as x,y")
	traceCmd.Flags().Float64SliceVar(&traceTo, "to", nil, "stroke end as x,y")
	traceCmd.Flags().IntVar(&traceSteps, "steps", 10, "pointer moves between start and end")

	traceCmd.MarkFlagRequired("from")
	traceCmd.MarkFlagRequired("to")
}

func parsePointer(name string, v []float64) (geometry.Vector2, error) {
	if len(v) != 2 {
		return geometry.Vector2{}, fmt.Errorf("--%s needs two values x,y, got %d", name, len(v))
	}
	return geometry.NewVector2(v[0], v[1]), nil
}

func runTrace(cmd *cobra.Command, args []string) {
	from, err := parsePointer("from", traceFrom)
	if err == nil {
		var to geometry.Vector2
		if to, err = parsePointer("to", traceTo); err == nil {
			err = trace(cmd, args[0], from, to)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func trace(cmd *cobra.Command, filename string, from, to geometry.Vector2) error {
	sess, err := openSession(cmd, filename)
	if err != nil {
		return err
	}

	res := sess.Trace(from, to, traceSteps)

	fmt.Println("Trace")
	fmt.Println("=====")
	for i, ev := range res.Draws {
		fmt.Printf("draw %3d: %s -> %s\n", i+1, analysis.FormatVector(ev.Start), analysis.FormatVector(ev.End))
	}

	if !res.Segment.Visible {
		return fmt.Errorf("stroke did not hit the model")
	}

	r := analysis.MeasureSegment(res.Segment.Start, res.Segment.End, sess.Model())
	fmt.Println("\nSegment:")
	fmt.Printf("  Start: %s\n", analysis.FormatVector(r.Start))
	fmt.Printf("  End: %s\n", analysis.FormatVector(r.End))
	fmt.Printf("  Length: %s\n", analysis.FormatMeasurement(r.Length, ""))
	fmt.Printf("  Delta: %s\n", analysis.FormatVector(r.Delta))
	fmt.Printf("  Midpoint: %s\n", analysis.FormatVector(r.Midpoint))
	fmt.Printf("  Nearest vertices: %s, %s\n", analysis.FormatVector(r.NearestStart), analysis.FormatVector(r.NearestEnd))
	return nil
}
