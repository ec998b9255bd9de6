package engine

import (
	"fmt"

	"github.com/OpenCircuitLab/OpenCircuitSim/pkg/circuit"
)

// ComponentDiagnostics is the per-instance connectivity status shown in the
// issue list and fed to the assistant chat context.
type ComponentDiagnostics struct {
	ComponentID string `json:"component_id"`
	TypeID      string `json:"type_id"`
	IsConnected bool   `json:"is_connected"`
	HasPower    bool   `json:"has_power"`
	HasGround   bool   `json:"has_ground"`
	IsActive    bool   `json:"is_active"`
}

// Report is the aggregated diagnostics view: per-component status, the
// validator's errors, and human-readable suggestions.
type Report struct {
	Components  []ComponentDiagnostics `json:"components"`
	Errors      []CircuitError         `json:"errors"`
	Suggestions []string               `json:"suggestions"`
}

// Diagnose builds the report by re-running the validator and tracing from
// every wire-connected pin of every instance. It adds no algorithm of its
// own; it is a read-only view over AnalyzeCircuit and TracePath.
func Diagnose(c *Circuit, cfg *Config) *Report {
	analysis := AnalyzeCircuit(c, cfg)
	nl := BuildNetlist(c)
	nl.Finalize()

	report := &Report{Errors: analysis.Errors}
	for i := range c.Components {
		comp := &c.Components[i]
		def := c.definition(comp)
		if def == nil {
			continue
		}
		diag := ComponentDiagnostics{
			ComponentID: comp.InstanceID,
			TypeID:      comp.TypeID,
			IsActive:    analysis.States[comp.InstanceID] == StateOn,
		}
		for _, pin := range def.Pins {
			ref := circuit.PinRef{ComponentID: comp.InstanceID, PinID: pin.ID}
			if !diag.IsConnected && nl.Connected(ref) {
				diag.IsConnected = true
			}
			if !wired(c, ref) {
				continue
			}
			trace := TracePath(c, ref.ComponentID, ref.PinID, cfg)
			diag.HasPower = diag.HasPower || trace.ReachesPower
			diag.HasGround = diag.HasGround || trace.ReachesGround
		}
		report.Components = append(report.Components, diag)
	}

	for _, cerr := range analysis.Errors {
		if s := suggestion(cerr); s != "" {
			report.Suggestions = append(report.Suggestions, s)
		}
	}
	return report
}

func wired(c *Circuit, ref circuit.PinRef) bool {
	for _, w := range c.Wires {
		if w.Touches(ref.ComponentID, ref.PinID) {
			return true
		}
	}
	return false
}

func suggestion(cerr CircuitError) string {
	switch cerr.Type {
	case ErrMissingResistor:
		return fmt.Sprintf("Add a resistor between the power source and the anode of %s to limit current", cerr.ComponentID)
	case ErrWrongPolarity:
		return fmt.Sprintf("Swap the anode and cathode connections of %s", cerr.ComponentID)
	case ErrNoPower:
		return fmt.Sprintf("Connect the anode of %s to a power pin such as 5V", cerr.ComponentID)
	case ErrNoGround:
		return fmt.Sprintf("Connect the cathode of %s to a GND pin", cerr.ComponentID)
	default:
		return ""
	}
}
