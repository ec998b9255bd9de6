package cmd

import (
	"fmt"
	"os"

	"github.com/OpenCircuitLab/OpenCircuitSim/pkg/ckt"
	"github.com/OpenCircuitLab/OpenCircuitSim/pkg/engine"
	"github.com/spf13/cobra"
)

var (
	netsJSON  string
	netsKiCad string
)

var netsCmd = &cobra.Command{
	Use:   "nets <circuit.ckt>",
	Short: "List or export the electrical nets of a circuit",
	Long: `Group every pin of the circuit into electrical nets, folding in wires,
component-internal bridges, breadboard rows and insertion mappings.

Examples:
  circuit nets blink.ckt
  circuit nets blink.ckt --json nets.json
  circuit nets blink.ckt --kicad nets.net`,
	Args: cobra.ExactArgs(1),
	RunE: runNets,
}

func init() {
	rootCmd.AddCommand(netsCmd)
	netsCmd.Flags().StringVar(&netsJSON, "json", "", "write the netlist as JSON to this file")
	netsCmd.Flags().StringVar(&netsKiCad, "kicad", "", "write a KiCad netlist to this file")
}

func runNets(cmd *cobra.Command, args []string) error {
	reg, err := registry()
	if err != nil {
		return err
	}
	circ, err := ckt.LoadFile(args[0], reg)
	if err != nil {
		return err
	}

	nl := engine.BuildNetlist(circ)
	nl.Finalize()

	fmt.Printf("Circuit: %d nets\n\n", nl.NetCount())
	for _, net := range nl.Nets {
		fmt.Printf("Net %d (%d pins)\n", net.ID, len(net.Pins))
		for _, pin := range net.Pins {
			fmt.Printf("  %s.%s\n", pin.ComponentID, pin.PinID)
		}
	}

	if netsJSON != "" {
		data, err := nl.ExportJSON()
		if err != nil {
			return err
		}
		if err := os.WriteFile(netsJSON, data, 0o644); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", netsJSON)
	}
	if netsKiCad != "" {
		out, err := nl.ExportKiCad()
		if err != nil {
			return err
		}
		if err := os.WriteFile(netsKiCad, []byte(out), 0o644); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", netsKiCad)
	}
	return nil
}
