package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/OpenCircuitLab/OpenCircuitSim/pkg/ckt"
	"github.com/OpenCircuitLab/OpenCircuitSim/pkg/engine"
	"github.com/spf13/cobra"
)

var (
	tracePNG  string
	traceJSON bool
)

var traceCmd = &cobra.Command{
	Use:   "trace <circuit.ckt>",
	Short: "Trace a power-to-ground path for animation",
	Long: `Find the first route from a power pin to ground and print the
waypoints, wires and breadboard highlights the animation would use.

Pin positions come from a deterministic grid layout, not from the canvas.

Examples:
  circuit trace blink.ckt
  circuit trace blink.ckt --png flow.png
  circuit trace blink.ckt --json`,
	Args: cobra.ExactArgs(1),
	RunE: runTrace,
}

func init() {
	rootCmd.AddCommand(traceCmd)
	traceCmd.Flags().StringVar(&tracePNG, "png", "", "render the traced path to a PNG file")
	traceCmd.Flags().BoolVar(&traceJSON, "json", false, "print the animation path as JSON")
}

func runTrace(cmd *cobra.Command, args []string) error {
	reg, err := registry()
	if err != nil {
		return err
	}
	circ, err := ckt.LoadFile(args[0], reg)
	if err != nil {
		return err
	}

	locate := engine.GridLocator(circ)
	path := engine.FirstPowerPath(circ, locate, engineConfig())
	if path == nil {
		return fmt.Errorf("no power pin leads anywhere: nothing to trace")
	}

	if traceJSON {
		data, err := json.MarshalIndent(path, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	} else {
		fmt.Printf("Waypoints:  %d\n", len(path.Waypoints))
		fmt.Printf("Wires:      %v\n", path.WireIDs)
		fmt.Printf("Highlights: %d\n", len(path.Highlights))
		if path.IsComplete {
			fmt.Println("Path reaches ground.")
		} else {
			fmt.Println("Path is incomplete: no ground reached.")
		}
	}

	if tracePNG != "" {
		if err := renderPNG(path, tracePNG); err != nil {
			return fmt.Errorf("render %s: %w", tracePNG, err)
		}
		fmt.Printf("Wrote %s\n", tracePNG)
	}
	return nil
}
