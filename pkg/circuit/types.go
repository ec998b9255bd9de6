package circuit

import "fmt"

// PinType classifies the electrical role of a pin as declared by the
// component's definition.
type PinType string

const (
	PinPower         PinType = "power"
	PinGround        PinType = "ground"
	PinDigital       PinType = "digital"
	PinAnalog        PinType = "analog"
	PinPWM           PinType = "pwm"
	PinCommunication PinType = "communication"
	PinTerminal      PinType = "terminal"
)

// Pin describes a single pin of a component type. Pins sharing the same
// non-empty Net tag on one instance are always electrically identical
// (breadboard rows and rails are modeled this way).
type Pin struct {
	ID   string  `yaml:"id"`
	Type PinType `yaml:"type"`
	Net  string  `yaml:"net,omitempty"`
}

// Definition is the static metadata for one component type. Instances share
// the definition and never mutate it.
type Definition struct {
	TypeID string `yaml:"type"`
	// Board marks the microcontroller board. Board pins get special power
	// and ground classification during traversal (5V/3V3/VIN by label,
	// digital/pwm pins as potential sources, GND-labeled pins as ground).
	Board bool  `yaml:"board,omitempty"`
	Pins  []Pin `yaml:"pins"`
}

// Pin returns the pin with the given id, or false if the definition does not
// declare it.
func (d *Definition) Pin(id string) (Pin, bool) {
	for _, p := range d.Pins {
		if p.ID == id {
			return p, true
		}
	}
	return Pin{}, false
}

// NetSiblings returns the ids of every other pin that shares the given pin's
// non-empty net tag, in definition order.
func (d *Definition) NetSiblings(pinID string) []string {
	pin, ok := d.Pin(pinID)
	if !ok || pin.Net == "" {
		return nil
	}
	var sibs []string
	for _, p := range d.Pins {
		if p.ID != pinID && p.Net == pin.Net {
			sibs = append(sibs, p.ID)
		}
	}
	return sibs
}

// Placement is one component instance placed on the scene. If the instance
// sits in a breadboard, ParentBreadboardID names the breadboard instance and
// InsertedPins maps each occupied pin of this instance to the breadboard pin
// it plugs into.
type Placement struct {
	InstanceID         string
	TypeID             string
	ParentBreadboardID string
	InsertedPins       map[string]string
}

// Wire joins two pins on two (possibly identical) instances. Wires are
// undirected; traversal may enter from either end.
type Wire struct {
	ID             string
	StartComponent string
	StartPin       string
	EndComponent   string
	EndPin         string
}

// Touches reports whether either wire endpoint is the given pin.
func (w Wire) Touches(componentID, pinID string) bool {
	return (w.StartComponent == componentID && w.StartPin == pinID) ||
		(w.EndComponent == componentID && w.EndPin == pinID)
}

// OtherEnd returns the endpoint opposite the given pin. The boolean is false
// when the wire does not touch the pin at all.
func (w Wire) OtherEnd(componentID, pinID string) (PinRef, bool) {
	if w.StartComponent == componentID && w.StartPin == pinID {
		return PinRef{ComponentID: w.EndComponent, PinID: w.EndPin}, true
	}
	if w.EndComponent == componentID && w.EndPin == pinID {
		return PinRef{ComponentID: w.StartComponent, PinID: w.StartPin}, true
	}
	return PinRef{}, false
}

// ButtonState maps pushbutton instance ids to their pressed state. Absent
// entries mean "not pressed". The engine only reads it; ownership stays with
// the application state store.
type ButtonState map[string]bool

// Pressed reports whether the given instance is currently pressed.
func (b ButtonState) Pressed(instanceID string) bool {
	return b != nil && b[instanceID]
}

// PinRef uniquely identifies a physical pin on a placed instance.
type PinRef struct {
	ComponentID string `json:"component_id"`
	PinID       string `json:"pin_id"`
}

// Key returns the canonical string form used for visited sets and map keys.
func (r PinRef) Key() string {
	return fmt.Sprintf("%s:%s", r.ComponentID, r.PinID)
}
