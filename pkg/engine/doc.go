// Package engine resolves electrical connectivity across a virtual breadboard
// circuit and answers two questions about it: is the circuit correct, and
// which route would current take from power to ground.
//
// Both answers come from one depth-first traversal over four kinds of links:
//
//  1. Explicit wires between pins
//  2. Component-internal bridges (resistor pass-through, pushbutton contacts,
//     LED forward conduction in tracer mode)
//  3. Net-tag equivalence (breadboard rows and rails are bundles of pins
//     sharing a net tag)
//  4. Breadboard insertion links, in both directions
//
// The traversal is parameterized by a policy: the validator stops at any
// power or ground classification and records reach flags, the animation
// tracer stops only at ground and records scene-coordinate waypoints and
// breadboard highlight rectangles. A shared visited set plus a recursion
// ceiling guarantee termination even on cyclic wiring.
//
// # Usage
//
// Validation:
//
//	circ := &engine.Circuit{
//		Registry:   circuit.Builtin(),
//		Components: placements,
//		Wires:      wires,
//		Buttons:    buttons,
//	}
//	analysis := engine.AnalyzeCircuit(circ, engine.DefaultConfig())
//	for _, err := range analysis.Errors {
//		fmt.Printf("%s: %s (wire %s)\n", err.Type, err.Message, err.WireID)
//	}
//
// Power-flow animation:
//
//	locate := engine.GridLocator(circ) // or the app's real transform
//	if path := engine.FirstPowerPath(circ, locate, nil); path != nil {
//		render(path.Waypoints, path.WireIDs, path.Highlights)
//	}
//
// Every entry point is a pure function of its inputs and re-traverses from
// scratch; nothing is cached between calls. Concurrent calls are safe as long
// as the caller does not mutate the circuit mid-call.
package engine
