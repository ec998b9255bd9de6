package engine

import "github.com/OpenCircuitLab/OpenCircuitSim/pkg/circuit"

// internalConnections returns the pins on the same instance that are directly
// bridged to pinID by the component itself, given the current button state.
//
// A resistor always passes through. A pushbutton keeps two independent side
// bridges when released (PIN1A-PIN2A and PIN1B-PIN2B, so a button straddling
// the breadboard gap still bridges two isolated rows) and ties all four pins
// together when pressed. The LED conducts ANODE to CATHODE only when
// ledConducts is set: the animation tracer follows the forward direction,
// while the validator must not conduct through the LED because polarity is
// exactly what it checks.
//
// Net-tag equivalence is not handled here; callers combine these bridges with
// Definition.NetSiblings according to their traversal mode.
func internalConnections(def *circuit.Definition, pinID, instanceID string, buttons circuit.ButtonState, ledConducts bool) []string {
	if def == nil {
		return nil
	}
	switch def.TypeID {
	case circuit.TypeResistor:
		switch pinID {
		case circuit.PinTerm1:
			return []string{circuit.PinTerm2}
		case circuit.PinTerm2:
			return []string{circuit.PinTerm1}
		}
	case circuit.TypePushbutton:
		if buttons.Pressed(instanceID) {
			all := []string{circuit.PinButton1A, circuit.PinButton1B, circuit.PinButton2A, circuit.PinButton2B}
			out := make([]string, 0, 3)
			for _, p := range all {
				if p != pinID {
					out = append(out, p)
				}
			}
			return out
		}
		switch pinID {
		case circuit.PinButton1A:
			return []string{circuit.PinButton2A}
		case circuit.PinButton2A:
			return []string{circuit.PinButton1A}
		case circuit.PinButton1B:
			return []string{circuit.PinButton2B}
		case circuit.PinButton2B:
			return []string{circuit.PinButton1B}
		}
	case circuit.TypeLED:
		if ledConducts && pinID == circuit.PinAnode {
			return []string{circuit.PinCathode}
		}
	}
	return nil
}
