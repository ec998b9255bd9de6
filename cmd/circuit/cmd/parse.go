package cmd

import (
	"fmt"

	"github.com/OpenCircuitLab/OpenCircuitSim/pkg/ckt"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <circuit.ckt>",
	Short: "Parse a circuit file and dump its contents",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	p, err := ckt.NewParser()
	if err != nil {
		return err
	}
	file, err := p.ParseFile(args[0])
	if err != nil {
		return err
	}

	if file.Name != "" {
		fmt.Printf("Circuit: %s\n", file.Name)
	}
	for _, stmt := range file.Stmts {
		switch {
		case stmt.Part != nil:
			fmt.Printf("part    %-12s %s\n", stmt.Part.Name, stmt.Part.Type)
		case stmt.Insert != nil:
			fmt.Printf("insert  %-12s into %s:", stmt.Insert.Part, stmt.Insert.Board)
			for _, slot := range stmt.Insert.Pins {
				fmt.Printf(" %s=%s", slot.Pin, slot.Hole)
			}
			fmt.Println()
		case stmt.Wire != nil:
			id := stmt.Wire.ID
			if id == "" {
				id = "(auto)"
			}
			fmt.Printf("wire    %-12s %s.%s -> %s.%s\n", id,
				stmt.Wire.From.Component, stmt.Wire.From.Pin,
				stmt.Wire.To.Component, stmt.Wire.To.Pin)
		case stmt.Press != nil:
			fmt.Printf("press   %s\n", stmt.Press.Button)
		}
	}
	return nil
}
