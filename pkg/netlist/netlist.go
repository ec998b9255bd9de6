// Package netlist groups pins into electrical nets with a union-find
// structure and exports the result as JSON or a simplified KiCad netlist.
// The engine feeds it every connectivity source it knows about (wires,
// component-internal bridges, breadboard insertions, shared net tags); this
// package only does the grouping.
package netlist

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/OpenCircuitLab/OpenCircuitSim/pkg/circuit"
)

// Net is a connected set of pins that share the same electrical potential.
type Net struct {
	ID   int              `json:"id"`
	Pins []circuit.PinRef `json:"pins"`
}

// Netlist tracks pin connectivity. Connect pins as edges are discovered, then
// call Finalize to build the net list.
type Netlist struct {
	parent map[string]string
	rank   map[string]int

	// Nets holds the final groups after Finalize. Only nets with 2+ pins are
	// included; isolated pins are not nets.
	Nets []*Net

	allPins []circuit.PinRef
	known   map[string]circuit.PinRef
}

// New creates a netlist where every pin starts in its own isolated net.
func New(pins []circuit.PinRef) *Netlist {
	nl := &Netlist{
		parent:  make(map[string]string, len(pins)),
		rank:    make(map[string]int, len(pins)),
		allPins: make([]circuit.PinRef, len(pins)),
		known:   make(map[string]circuit.PinRef, len(pins)),
	}
	copy(nl.allPins, pins)
	for _, pin := range pins {
		key := pin.Key()
		nl.parent[key] = key
		nl.rank[key] = 0
		nl.known[key] = pin
	}
	return nl
}

// Connect marks two pins as electrically connected. Pins the netlist was not
// built with are ignored, matching the engine's degrade-quietly contract.
func (nl *Netlist) Connect(a, b circuit.PinRef) {
	if _, ok := nl.known[a.Key()]; !ok {
		return
	}
	if _, ok := nl.known[b.Key()]; !ok {
		return
	}
	rootA := nl.find(a.Key())
	rootB := nl.find(b.Key())
	if rootA == rootB {
		return
	}
	// Union by rank.
	switch {
	case nl.rank[rootA] < nl.rank[rootB]:
		nl.parent[rootA] = rootB
	case nl.rank[rootA] > nl.rank[rootB]:
		nl.parent[rootB] = rootA
	default:
		nl.parent[rootB] = rootA
		nl.rank[rootA]++
	}
}

// Find returns the representative pin for the net containing the given pin.
func (nl *Netlist) Find(pin circuit.PinRef) circuit.PinRef {
	return nl.known[nl.find(pin.Key())]
}

// find resolves the root key with path compression.
func (nl *Netlist) find(key string) string {
	root := key
	for nl.parent[root] != root {
		root = nl.parent[root]
	}
	for key != root {
		next := nl.parent[key]
		nl.parent[key] = root
		key = next
	}
	return root
}

// Finalize builds Nets from the union-find structure. Pins within a net and
// the nets themselves are sorted, so identical inputs always produce
// identical output regardless of map iteration order.
func (nl *Netlist) Finalize() {
	groups := make(map[string][]circuit.PinRef)
	for _, pin := range nl.allPins {
		root := nl.find(pin.Key())
		groups[root] = append(groups[root], pin)
	}

	nets := make([]*Net, 0, len(groups))
	for _, pins := range groups {
		if len(pins) < 2 {
			continue
		}
		sort.Slice(pins, func(i, j int) bool {
			if pins[i].ComponentID != pins[j].ComponentID {
				return pins[i].ComponentID < pins[j].ComponentID
			}
			return pins[i].PinID < pins[j].PinID
		})
		nets = append(nets, &Net{Pins: pins})
	}
	sort.Slice(nets, func(i, j int) bool {
		a, b := nets[i].Pins[0], nets[j].Pins[0]
		if a.ComponentID != b.ComponentID {
			return a.ComponentID < b.ComponentID
		}
		return a.PinID < b.PinID
	})
	for i, net := range nets {
		net.ID = i
	}
	nl.Nets = nets
}

// NetCount returns the number of multi-pin nets. Only valid after Finalize.
func (nl *Netlist) NetCount() int {
	return len(nl.Nets)
}

// Connected reports whether the pin belongs to a net with at least one other
// pin. Only valid after Finalize.
func (nl *Netlist) Connected(pin circuit.PinRef) bool {
	for _, net := range nl.Nets {
		for _, p := range net.Pins {
			if p == pin {
				return true
			}
		}
	}
	return false
}

// ExportJSON renders the finalized netlist as indented JSON.
func (nl *Netlist) ExportJSON() ([]byte, error) {
	if nl.Nets == nil {
		return nil, fmt.Errorf("netlist: not finalized")
	}
	output := struct {
		Version  string `json:"version"`
		NetCount int    `json:"net_count"`
		Nets     []*Net `json:"nets"`
	}{
		Version:  "1.0",
		NetCount: nl.NetCount(),
		Nets:     nl.Nets,
	}
	return json.MarshalIndent(output, "", "  ")
}

// ExportKiCad renders the finalized netlist in a simplified KiCad netlist
// format for import into schematic tools.
func (nl *Netlist) ExportKiCad() (string, error) {
	if nl.Nets == nil {
		return "", fmt.Errorf("netlist: not finalized")
	}

	components := make(map[string]bool)
	for _, net := range nl.Nets {
		for _, pin := range net.Pins {
			components[pin.ComponentID] = true
		}
	}
	refs := make([]string, 0, len(components))
	for ref := range components {
		refs = append(refs, ref)
	}
	sort.Strings(refs)

	var out string
	out += "(export (version D)\n"
	out += "  (design\n"
	out += "    (source \"virtual breadboard circuit\")\n"
	out += "  )\n"
	out += "  (components\n"
	for _, ref := range refs {
		out += fmt.Sprintf("    (comp (ref %s))\n", ref)
	}
	out += "  )\n"
	out += "  (nets\n"
	for _, net := range nl.Nets {
		out += fmt.Sprintf("    (net (code %d) (name Net-%d)\n", net.ID, net.ID)
		for _, pin := range net.Pins {
			out += fmt.Sprintf("      (node (ref %s) (pin %s))\n", pin.ComponentID, pin.PinID)
		}
		out += "    )\n"
	}
	out += "  )\n"
	out += ")\n"
	return out, nil
}
