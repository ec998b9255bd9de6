package engine

import (
	"strings"

	"github.com/OpenCircuitLab/OpenCircuitSim/pkg/circuit"
)

// Board pins that act as supply rails regardless of their declared type.
var boardPowerLabels = map[string]bool{
	"5V":   true,
	"3V3":  true,
	"3.3V": true,
	"VIN":  true,
}

// isPowerPin reports whether traversal should treat the pin as a power
// source. Board digital and pwm pins count as potential sources (a driven
// output is a supply for connectivity purposes); this is a deliberate
// simplification, not logic-level simulation, and it is isolated here so a
// future version can replace it without touching the traversal.
func isPowerPin(def *circuit.Definition, pin circuit.Pin) bool {
	if pin.Type == circuit.PinPower {
		return true
	}
	if def == nil || !def.Board {
		return false
	}
	if boardPowerLabels[strings.ToUpper(pin.ID)] {
		return true
	}
	return pin.Type == circuit.PinDigital || pin.Type == circuit.PinPWM
}

// isGroundPin reports whether traversal should stop at the pin as ground.
func isGroundPin(def *circuit.Definition, pin circuit.Pin) bool {
	if pin.Type == circuit.PinGround {
		return true
	}
	return def != nil && def.Board && strings.Contains(strings.ToUpper(pin.ID), "GND")
}
