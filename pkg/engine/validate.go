package engine

import (
	"fmt"

	"github.com/OpenCircuitLab/OpenCircuitSim/pkg/circuit"
)

// ErrorType is the defect taxonomy surfaced to the UI. There is no generic
// "unknown" case: analysis either names a specific defect or declares the
// circuit valid.
type ErrorType string

const (
	ErrNoGround        ErrorType = "no-ground"
	ErrNoPower         ErrorType = "no-power"
	ErrWrongPolarity   ErrorType = "wrong-polarity"
	ErrMissingResistor ErrorType = "missing-resistor"
	ErrShortCircuit    ErrorType = "short-circuit"
	ErrOpenCircuit     ErrorType = "open-circuit"
)

// CircuitError is a user-visible defect with enough context for the UI to
// highlight the offending component and wire.
type CircuitError struct {
	Type        ErrorType `json:"error_type"`
	Message     string    `json:"message"`
	ComponentID string    `json:"component_id,omitempty"`
	WireID      string    `json:"wire_id,omitempty"`
}

// TraceResult is the validator's view of one traversal.
type TraceResult struct {
	ReachesPower  bool
	ReachesGround bool
	HasResistor   bool
	Path          []circuit.PinRef
	WireIDs       []string
	LastWireID    string
}

// TracePath resolves connectivity outward from one pin and classifies where
// it ends up. It is the resolver behind ValidateLED and Diagnose.
func TracePath(c *Circuit, componentID, pinID string, cfg *Config) *TraceResult {
	w := newWalker(c, policy{stopAtPower: true}, cfg)
	out := w.walk(circuit.PinRef{ComponentID: componentID, PinID: pinID}, 0)
	return &TraceResult{
		ReachesPower:  out.reachesPower,
		ReachesGround: out.reachesGround,
		HasResistor:   out.hasResistor,
		Path:          out.path,
		WireIDs:       out.wireIDs,
		LastWireID:    out.lastWireID,
	}
}

// ComponentState is the on/off rendering state per instance.
type ComponentState string

const (
	StateOn  ComponentState = "on"
	StateOff ComponentState = "off"
)

// Analysis is the full validator output for one circuit snapshot.
type Analysis struct {
	States map[string]ComponentState
	Errors []CircuitError
}

// ValidateLED traces from both LED terminals and classifies the combined
// result. Priority order is fixed: wrong-polarity beats no-power beats
// no-ground beats missing-resistor; first match wins. A missing resistor
// still reports the LED as lit, with a warning error attached.
func ValidateLED(c *Circuit, led *circuit.Placement, cfg *Config) (ComponentState, *CircuitError) {
	anode := TracePath(c, led.InstanceID, circuit.PinAnode, cfg)
	cathode := TracePath(c, led.InstanceID, circuit.PinCathode, cfg)

	switch {
	case cathode.ReachesPower && anode.ReachesGround:
		return StateOff, &CircuitError{
			Type:        ErrWrongPolarity,
			Message:     fmt.Sprintf("LED %s is connected backwards: swap the anode and cathode", led.InstanceID),
			ComponentID: led.InstanceID,
			WireID:      attributeWire(c, led, cathode),
		}
	case !anode.ReachesPower:
		return StateOff, &CircuitError{
			Type:        ErrNoPower,
			Message:     fmt.Sprintf("LED %s anode does not reach a power source", led.InstanceID),
			ComponentID: led.InstanceID,
			WireID:      attributeWire(c, led, anode),
		}
	case !cathode.ReachesGround:
		return StateOff, &CircuitError{
			Type:        ErrNoGround,
			Message:     fmt.Sprintf("LED %s cathode does not reach ground", led.InstanceID),
			ComponentID: led.InstanceID,
			WireID:      attributeWire(c, led, cathode),
		}
	case !anode.HasResistor && !cathode.HasResistor:
		return StateOn, &CircuitError{
			Type:        ErrMissingResistor,
			Message:     fmt.Sprintf("LED %s has no current-limiting resistor in its path", led.InstanceID),
			ComponentID: led.InstanceID,
			WireID:      attributeWire(c, led, anode),
		}
	default:
		return StateOn, nil
	}
}

// attributeWire picks the wire id attached to an error: the first wire on the
// offending path, then the last wire tried on a dead end, then the nearest
// wire reachable through the component's breadboard net siblings, then none.
func attributeWire(c *Circuit, comp *circuit.Placement, trace *TraceResult) string {
	if len(trace.WireIDs) > 0 {
		return trace.WireIDs[0]
	}
	if trace.LastWireID != "" {
		return trace.LastWireID
	}
	return nearestBreadboardWire(c, comp)
}

// nearestBreadboardWire finds a wire attached anywhere on the net groups the
// component is inserted into. Used when the component has no direct wire, so
// the UI can still point at something nearby.
func nearestBreadboardWire(c *Circuit, comp *circuit.Placement) string {
	if comp.ParentBreadboardID == "" {
		return ""
	}
	board := c.placement(comp.ParentBreadboardID)
	def := c.definition(board)
	if def == nil {
		return ""
	}
	for _, pid := range sortedInsertedPins(comp) {
		hole := comp.InsertedPins[pid]
		group := append([]string{hole}, def.NetSiblings(hole)...)
		for _, sib := range group {
			for _, wire := range c.Wires {
				if wire.Touches(comp.ParentBreadboardID, sib) {
					return wire.ID
				}
			}
		}
	}
	return ""
}

// AnalyzeCircuit validates every LED, derives pushbutton state directly from
// the button map, and defaults every other instance to off with no error.
// Buzzer validation is a known gap: buzzers are placed and traversed like any
// terminal component but no defect taxonomy exists for them yet.
func AnalyzeCircuit(c *Circuit, cfg *Config) *Analysis {
	res := &Analysis{States: make(map[string]ComponentState, len(c.Components))}
	for i := range c.Components {
		comp := &c.Components[i]
		switch comp.TypeID {
		case circuit.TypeLED:
			state, cerr := ValidateLED(c, comp, cfg)
			res.States[comp.InstanceID] = state
			if cerr != nil {
				res.Errors = append(res.Errors, *cerr)
			}
		case circuit.TypePushbutton:
			if c.Buttons.Pressed(comp.InstanceID) {
				res.States[comp.InstanceID] = StateOn
			} else {
				res.States[comp.InstanceID] = StateOff
			}
		default:
			res.States[comp.InstanceID] = StateOff
		}
	}
	return res
}
