package engine

import (
	"strconv"
	"strings"
)

// Grid spacing used by GridLocator. Values are plain scene units.
const (
	gridPinPitch    = 10.0
	gridComponentDX = 400.0
)

// GridLocator lays every placed instance out left to right in input order and
// returns a PinLocator over the result. It is a deterministic stand-in for the
// application's real pin-position transform, good enough for the CLI trace
// renderer and for tests; it makes no claim about how the canvas places
// things. Breadboard holes take their coordinates from the row/column encoded
// in the pin id; other components stack their pins vertically.
func GridLocator(c *Circuit) PinLocator {
	positions := make(map[string]Point)
	x := 0.0
	for i := range c.Components {
		comp := &c.Components[i]
		def := c.definition(comp)
		if def == nil {
			continue
		}
		for idx, pin := range def.Pins {
			var pt Point
			if off, ok := breadboardOffset(pin.ID); ok {
				pt = Point{X: x + off.X, Y: off.Y}
			} else {
				pt = Point{X: x, Y: float64(idx) * gridPinPitch}
			}
			positions[comp.InstanceID+":"+pin.ID] = pt
		}
		x += gridComponentDX
	}
	return func(componentID, pinID string) (Point, bool) {
		pt, ok := positions[componentID+":"+pinID]
		return pt, ok
	}
}

// breadboardOffset decodes hole ids like "a5", "j30" or rail ids like "tp12"
// into grid coordinates local to the breadboard.
func breadboardOffset(pinID string) (Point, bool) {
	railRows := map[string]float64{"tp": 0, "tn": 1, "bp": 14, "bn": 15}
	if len(pinID) > 2 {
		if row, ok := railRows[pinID[:2]]; ok {
			col, err := strconv.Atoi(pinID[2:])
			if err == nil {
				return Point{X: float64(col) * gridPinPitch, Y: row * gridPinPitch}, true
			}
		}
	}
	if len(pinID) < 2 {
		return Point{}, false
	}
	row := strings.Index("abcdefghij", pinID[:1])
	if row < 0 {
		return Point{}, false
	}
	col, err := strconv.Atoi(pinID[1:])
	if err != nil {
		return Point{}, false
	}
	// Rows a-e sit above the center gap, f-j below it.
	y := float64(row) + 2
	if row >= 5 {
		y++
	}
	return Point{X: float64(col) * gridPinPitch, Y: y * gridPinPitch}, true
}
