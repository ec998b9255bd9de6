package engine

import (
	"github.com/OpenCircuitLab/OpenCircuitSim/pkg/circuit"
	"github.com/OpenCircuitLab/OpenCircuitSim/pkg/netlist"
)

// BuildNetlist folds every connectivity source into a union-find netlist:
// explicit wires, component-internal bridges under the current button state,
// shared net tags, and breadboard insertion mappings. LED conduction is left
// out so a reversed LED still shows both terminal nets. The caller finalizes.
func BuildNetlist(c *Circuit) *netlist.Netlist {
	var pins []circuit.PinRef
	for i := range c.Components {
		comp := &c.Components[i]
		def := c.definition(comp)
		if def == nil {
			continue
		}
		for _, pin := range def.Pins {
			pins = append(pins, circuit.PinRef{ComponentID: comp.InstanceID, PinID: pin.ID})
		}
	}
	nl := netlist.New(pins)

	for i := range c.Components {
		comp := &c.Components[i]
		def := c.definition(comp)
		if def == nil {
			continue
		}
		for _, pin := range def.Pins {
			ref := circuit.PinRef{ComponentID: comp.InstanceID, PinID: pin.ID}
			for _, other := range internalConnections(def, pin.ID, comp.InstanceID, c.Buttons, false) {
				nl.Connect(ref, circuit.PinRef{ComponentID: comp.InstanceID, PinID: other})
			}
			for _, sib := range def.NetSiblings(pin.ID) {
				nl.Connect(ref, circuit.PinRef{ComponentID: comp.InstanceID, PinID: sib})
			}
		}
		if comp.ParentBreadboardID != "" {
			for _, pid := range sortedInsertedPins(comp) {
				nl.Connect(
					circuit.PinRef{ComponentID: comp.InstanceID, PinID: pid},
					circuit.PinRef{ComponentID: comp.ParentBreadboardID, PinID: comp.InsertedPins[pid]},
				)
			}
		}
	}

	for _, wire := range c.Wires {
		nl.Connect(
			circuit.PinRef{ComponentID: wire.StartComponent, PinID: wire.StartPin},
			circuit.PinRef{ComponentID: wire.EndComponent, PinID: wire.EndPin},
		)
	}
	return nl
}
