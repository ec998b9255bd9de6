package engine

import (
	"sort"

	"github.com/OpenCircuitLab/OpenCircuitSim/pkg/circuit"
)

// policy parameterizes the shared depth-first walk. The validator and the
// animation tracer traverse the same four edge kinds (internal bridges, net
// siblings, breadboard insertion links, explicit wires) and differ only in
// where they stop and what they record.
type policy struct {
	// stopAtPower makes any power classification terminal. The validator
	// stops at power or ground; the tracer only completes at ground.
	stopAtPower bool

	// ledConducts lets the walk continue through an LED in its forward
	// direction (tracer only).
	ledConducts bool

	// netSiblingScan switches net-tag handling from plain recursion targets
	// (validator) to the tracer's dedicated scan, which greedily follows the
	// first wire found on a sibling and records breadboard highlight
	// rectangles for the whole net group.
	netSiblingScan bool

	// accumulateAll keeps dead-end branch payloads in the result (tracer
	// only): an incomplete path still carries every wire tried and every
	// highlight rectangle, so the UI can show how far the current got. The
	// validator instead drops failed branches and keeps its path clean.
	accumulateAll bool

	// locate maps a pin to scene coordinates; non-nil only for the tracer.
	locate PinLocator
}

// outcome is the union payload accumulated by a walk. The validator reads the
// reach flags, path and wire attribution; the tracer reads waypoints,
// highlights and the completion flag.
type outcome struct {
	reachesPower  bool
	reachesGround bool
	hasResistor   bool
	path          []circuit.PinRef
	wireIDs       []string
	lastWireID    string
	waypoints     []Point
	highlights    []Rect
	complete      bool
}

// terminal reports whether the outcome ends the walk under the given policy.
func (o *outcome) terminal(pol *policy) bool {
	if pol.stopAtPower {
		return o.reachesPower || o.reachesGround
	}
	return o.complete
}

// absorb merges a terminal (or, in the tracer's greedy net case, abandoned)
// sub-result into the receiver.
func (o *outcome) absorb(sub *outcome) {
	o.reachesPower = o.reachesPower || sub.reachesPower
	o.reachesGround = o.reachesGround || sub.reachesGround
	o.hasResistor = o.hasResistor || sub.hasResistor
	o.path = append(o.path, sub.path...)
	o.wireIDs = append(o.wireIDs, sub.wireIDs...)
	o.waypoints = append(o.waypoints, sub.waypoints...)
	o.highlights = append(o.highlights, sub.highlights...)
	o.complete = o.complete || sub.complete
	if sub.lastWireID != "" {
		o.lastWireID = sub.lastWireID
	}
}

type walker struct {
	circ    *Circuit
	pol     policy
	cfg     *Config
	visited map[string]bool
}

func newWalker(c *Circuit, pol policy, cfg *Config) *walker {
	return &walker{
		circ:    c,
		pol:     pol,
		cfg:     cfg.normalized(),
		visited: make(map[string]bool),
	}
}

// walk resolves connectivity outward from one pin. Missing placements,
// definitions or pins end the branch quietly; the only hard limit is the
// recursion ceiling, which logs and abandons the branch without failing the
// caller. First terminal sub-result wins; remaining branches stay unexplored.
func (w *walker) walk(ref circuit.PinRef, depth int) *outcome {
	res := &outcome{}
	if depth > w.cfg.MaxDepth {
		w.cfg.Logger.Warn("traversal recursion ceiling reached, abandoning branch",
			"component", ref.ComponentID, "pin", ref.PinID, "depth", depth)
		return res
	}
	key := ref.Key()
	if w.visited[key] {
		return res
	}
	w.visited[key] = true

	comp := w.circ.placement(ref.ComponentID)
	if comp == nil {
		return res
	}
	def := w.circ.definition(comp)
	if def == nil {
		return res
	}
	pin, ok := def.Pin(ref.PinID)
	if !ok {
		return res
	}

	res.path = append(res.path, ref)
	if w.pol.locate != nil {
		if pt, ok := w.pol.locate(ref.ComponentID, ref.PinID); ok {
			res.waypoints = append(res.waypoints, pt)
		}
	}

	ground := isGroundPin(def, pin)
	if w.pol.stopAtPower {
		if isPowerPin(def, pin) {
			res.reachesPower = true
			return res
		}
		if ground {
			res.reachesGround = true
			return res
		}
	} else if ground {
		res.reachesGround = true
		res.complete = true
		return res
	}

	if def.TypeID == circuit.TypeResistor {
		res.hasResistor = true
	}

	// Internal bridges; the validator also folds net siblings in here.
	next := internalConnections(def, ref.PinID, comp.InstanceID, w.circ.Buttons, w.pol.ledConducts)
	if !w.pol.netSiblingScan {
		next = append(next, def.NetSiblings(ref.PinID)...)
	}
	for _, pid := range next {
		if w.descend(res, circuit.PinRef{ComponentID: comp.InstanceID, PinID: pid}, depth+1) {
			return res
		}
	}

	// Tracer-mode net group scan.
	if w.pol.netSiblingScan {
		if done := w.netScan(res, comp, def, ref, depth); done {
			return res
		}
	}

	// Components inserted into this pin (this instance as breadboard).
	for i := range w.circ.Components {
		child := &w.circ.Components[i]
		if child.ParentBreadboardID != comp.InstanceID {
			continue
		}
		for _, childPin := range sortedInsertedPins(child) {
			if child.InsertedPins[childPin] != ref.PinID {
				continue
			}
			if w.descend(res, circuit.PinRef{ComponentID: child.InstanceID, PinID: childPin}, depth+1) {
				return res
			}
		}
	}

	// The breadboard pin this instance is inserted at.
	if comp.ParentBreadboardID != "" {
		if hole, ok := comp.InsertedPins[ref.PinID]; ok {
			if w.descend(res, circuit.PinRef{ComponentID: comp.ParentBreadboardID, PinID: hole}, depth+1) {
				return res
			}
		}
	}

	// Explicit wires, in input order.
	for _, wire := range w.circ.Wires {
		other, ok := wire.OtherEnd(ref.ComponentID, ref.PinID)
		if !ok {
			continue
		}
		res.wireIDs = append(res.wireIDs, wire.ID)
		// Remember the wire for error attribution before descending; a
		// deeper dead-end wire overwrites it, so a failed trace always
		// points at the last wire tried.
		res.lastWireID = wire.ID
		if w.descend(res, other, depth+1) {
			return res
		}
	}

	return res
}

// descend recurses into ref and merges the sub-result according to the
// policy. It reports whether the sub-result was terminal, in which case the
// caller returns immediately (first success wins).
func (w *walker) descend(res *outcome, ref circuit.PinRef, depth int) bool {
	sub := w.walk(ref, depth)
	if w.pol.accumulateAll {
		res.absorb(sub)
		return sub.terminal(&w.pol)
	}
	if sub.terminal(&w.pol) {
		res.absorb(sub)
		return true
	}
	if sub.lastWireID != "" {
		res.lastWireID = sub.lastWireID
	}
	return false
}

// netScan is the tracer's net-group step. For each unvisited sibling sharing
// the current pin's net tag it follows the first attached wire and returns
// that branch unconditionally, even when it dead-ends; inserted-component
// branches at the same net only win when they make real progress (completion
// or at least one wire). Either way the whole net group contributes a
// highlight rectangle, so the UI can mark rows that belong to the circuit
// even when the animation does not pass through them.
//
// The unconditional first-wire return is inherited behavior: with two wired
// siblings the walk may commit to a dead end even though the other sibling
// reaches ground. Kept as-is; the regression test in tracer_test.go pins it
// down.
func (w *walker) netScan(res *outcome, comp *circuit.Placement, def *circuit.Definition, ref circuit.PinRef, depth int) bool {
	sibs := def.NetSiblings(ref.PinID)
	if len(sibs) == 0 {
		return false
	}

	group := append([]string{ref.PinID}, sibs...)
	rect, hasRect := w.netBounds(comp.InstanceID, group)

	for _, sib := range sibs {
		sibRef := circuit.PinRef{ComponentID: comp.InstanceID, PinID: sib}
		if w.visited[sibRef.Key()] {
			continue
		}
		for _, wire := range w.circ.Wires {
			other, ok := wire.OtherEnd(sibRef.ComponentID, sibRef.PinID)
			if !ok {
				continue
			}
			w.visited[sibRef.Key()] = true
			if w.pol.locate != nil {
				if pt, ok := w.pol.locate(sibRef.ComponentID, sibRef.PinID); ok {
					res.waypoints = append(res.waypoints, pt)
				}
			}
			res.wireIDs = append(res.wireIDs, wire.ID)
			sub := w.walk(other, depth+1)
			res.absorb(sub)
			if hasRect {
				res.highlights = append(res.highlights, rect)
			}
			return true
		}
		for i := range w.circ.Components {
			child := &w.circ.Components[i]
			if child.ParentBreadboardID != comp.InstanceID {
				continue
			}
			for _, childPin := range sortedInsertedPins(child) {
				if child.InsertedPins[childPin] != sib {
					continue
				}
				sub := w.walk(circuit.PinRef{ComponentID: child.InstanceID, PinID: childPin}, depth+1)
				if sub.complete || len(sub.wireIDs) > 0 {
					if w.pol.locate != nil {
						if pt, ok := w.pol.locate(sibRef.ComponentID, sibRef.PinID); ok {
							res.waypoints = append(res.waypoints, pt)
						}
					}
					res.absorb(sub)
					if hasRect {
						res.highlights = append(res.highlights, rect)
					}
					return true
				}
			}
		}
	}

	if hasRect {
		res.highlights = append(res.highlights, rect)
	}
	return false
}

// netBounds computes the bounding box over every located pin of a net group.
func (w *walker) netBounds(componentID string, pinIDs []string) (Rect, bool) {
	if w.pol.locate == nil {
		return Rect{}, false
	}
	var rect Rect
	found := false
	for _, pid := range pinIDs {
		pt, ok := w.pol.locate(componentID, pid)
		if !ok {
			continue
		}
		if !found {
			rect = Rect{Min: pt, Max: pt}
			found = true
			continue
		}
		if pt.X < rect.Min.X {
			rect.Min.X = pt.X
		}
		if pt.Y < rect.Min.Y {
			rect.Min.Y = pt.Y
		}
		if pt.X > rect.Max.X {
			rect.Max.X = pt.X
		}
		if pt.Y > rect.Max.Y {
			rect.Max.Y = pt.Y
		}
	}
	return rect, found
}

// sortedInsertedPins returns a placement's occupied pin ids in a stable
// order, so map iteration never leaks into analysis results.
func sortedInsertedPins(comp *circuit.Placement) []string {
	if len(comp.InsertedPins) == 0 {
		return nil
	}
	pins := make([]string, 0, len(comp.InsertedPins))
	for pid := range comp.InsertedPins {
		pins = append(pins, pid)
	}
	sort.Strings(pins)
	return pins
}
