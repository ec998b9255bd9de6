package cmd

import (
	"fmt"
	"sort"

	"github.com/OpenCircuitLab/OpenCircuitSim/pkg/ckt"
	"github.com/OpenCircuitLab/OpenCircuitSim/pkg/engine"
	"github.com/spf13/cobra"
)

var validateReport bool

var validateCmd = &cobra.Command{
	Use:   "validate <circuit.ckt>",
	Short: "Check a circuit for electrical defects",
	Long: `Validate every LED in the circuit: polarity, power, ground and the
presence of a current-limiting resistor. Prints the resulting on/off state
per component and one line per defect found.

Examples:
  circuit validate blink.ckt
  circuit validate blink.ckt --report     # include per-component diagnostics`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().BoolVar(&validateReport, "report", false,
		"print per-component diagnostics and suggestions")
}

func runValidate(cmd *cobra.Command, args []string) error {
	reg, err := registry()
	if err != nil {
		return err
	}
	circ, err := ckt.LoadFile(args[0], reg)
	if err != nil {
		return err
	}

	cfg := engineConfig()
	analysis := engine.AnalyzeCircuit(circ, cfg)

	ids := make([]string, 0, len(analysis.States))
	for id := range analysis.States {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	fmt.Printf("%-20s %s\n", "Component", "State")
	for _, id := range ids {
		fmt.Printf("%-20s %s\n", id, analysis.States[id])
	}

	if validateReport {
		report := engine.Diagnose(circ, cfg)
		fmt.Println()
		fmt.Printf("%-20s %-10s %-6s %-7s %s\n", "Component", "Connected", "Power", "Ground", "Active")
		for _, d := range report.Components {
			fmt.Printf("%-20s %-10v %-6v %-7v %v\n",
				d.ComponentID, d.IsConnected, d.HasPower, d.HasGround, d.IsActive)
		}
		for _, s := range report.Suggestions {
			fmt.Printf("hint: %s\n", s)
		}
	}

	if len(analysis.Errors) == 0 {
		fmt.Println("\nCircuit OK")
		return nil
	}
	fmt.Println()
	for _, cerr := range analysis.Errors {
		if cerr.WireID != "" {
			fmt.Printf("%s: %s (component %s, wire %s)\n", cerr.Type, cerr.Message, cerr.ComponentID, cerr.WireID)
		} else {
			fmt.Printf("%s: %s (component %s)\n", cerr.Type, cerr.Message, cerr.ComponentID)
		}
	}
	return fmt.Errorf("circuit has %d defect(s)", len(analysis.Errors))
}
