package engine

import "github.com/OpenCircuitLab/OpenCircuitSim/pkg/circuit"

// Point is a scene coordinate produced by the external geometry layer.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned breadboard highlight rectangle.
type Rect struct {
	Min Point `json:"min"`
	Max Point `json:"max"`
}

// PinLocator maps a pin to scene coordinates, already accounting for
// component position, rotation and flips. The engine calls it but never
// implements the geometry; a pin the locator cannot place simply contributes
// no waypoint.
type PinLocator func(componentID, pinID string) (Point, bool)

// AnimationPath is one concrete power-to-ground route for the current-flow
// animation: the waypoints the ball follows, the wires to glow, and the
// breadboard net groups to tint. IsComplete is true iff a ground pin was
// reached.
type AnimationPath struct {
	Waypoints  []Point  `json:"waypoints"`
	WireIDs    []string `json:"wire_ids"`
	Highlights []Rect   `json:"highlights"`
	IsComplete bool     `json:"is_complete"`
}

// FindAllPowerPins scans every placed instance for power-classified pins, in
// placement and pin definition order.
func FindAllPowerPins(c *Circuit) []circuit.PinRef {
	var out []circuit.PinRef
	for i := range c.Components {
		comp := &c.Components[i]
		def := c.definition(comp)
		if def == nil {
			continue
		}
		for _, pin := range def.Pins {
			if isPowerPin(def, pin) {
				out = append(out, circuit.PinRef{ComponentID: comp.InstanceID, PinID: pin.ID})
			}
		}
	}
	return out
}

// TracePowerPath walks from one power pin toward ground with a fresh visited
// set and returns the animation payload. Wire ids are de-duplicated in first
// traversal order.
func TracePowerPath(c *Circuit, start circuit.PinRef, locate PinLocator, cfg *Config) *AnimationPath {
	w := newWalker(c, policy{
		ledConducts:    true,
		netSiblingScan: true,
		accumulateAll:  true,
		locate:         locate,
	}, cfg)
	out := w.walk(start, 0)
	return &AnimationPath{
		Waypoints:  out.waypoints,
		WireIDs:    dedupe(out.wireIDs),
		Highlights: out.highlights,
		IsComplete: out.complete,
	}
}

// FirstPowerPath tries every power pin in order and returns the first path
// that made any progress (at least one wire traversed), or nil when no power
// pin leads anywhere.
func FirstPowerPath(c *Circuit, locate PinLocator, cfg *Config) *AnimationPath {
	for _, start := range FindAllPowerPins(c) {
		if path := TracePowerPath(c, start, locate, cfg); len(path.WireIDs) > 0 {
			return path
		}
	}
	return nil
}

func dedupe(ids []string) []string {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[string]bool, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
