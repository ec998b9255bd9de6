package ckt

import (
	"fmt"

	"github.com/OpenCircuitLab/OpenCircuitSim/pkg/circuit"
	"github.com/OpenCircuitLab/OpenCircuitSim/pkg/engine"
)

// Load converts a parsed circuit file into an engine.Circuit backed by the
// given registry. Unlike the engine, which degrades quietly on dangling
// references at traversal time, loading is strict: a statement that names an
// unknown part, type, pin or hole is a file error.
func Load(file *File, reg circuit.Registry) (*engine.Circuit, error) {
	c := &engine.Circuit{
		Registry: reg,
		Buttons:  make(circuit.ButtonState),
	}
	index := make(map[string]int)  // part name -> index into c.Components
	wireIDs := make(map[string]bool)
	autoWire := 0

	lookupPart := func(name string) (*circuit.Placement, *circuit.Definition, error) {
		i, ok := index[name]
		if !ok {
			return nil, nil, fmt.Errorf("ckt: part %s not declared", name)
		}
		comp := &c.Components[i]
		def, _ := reg.Lookup(comp.TypeID)
		return comp, def, nil
	}

	for _, stmt := range file.Stmts {
		switch {
		case stmt.Part != nil:
			s := stmt.Part
			if _, dup := index[s.Name]; dup {
				return nil, fmt.Errorf("ckt: part %s declared twice", s.Name)
			}
			if _, ok := reg.Lookup(s.Type); !ok {
				return nil, fmt.Errorf("ckt: part %s has unknown type %s", s.Name, s.Type)
			}
			index[s.Name] = len(c.Components)
			c.Components = append(c.Components, circuit.Placement{
				InstanceID: s.Name,
				TypeID:     s.Type,
			})

		case stmt.Insert != nil:
			s := stmt.Insert
			comp, def, err := lookupPart(s.Part)
			if err != nil {
				return nil, err
			}
			_, boardDef, err := lookupPart(s.Board)
			if err != nil {
				return nil, err
			}
			if len(s.Pins) == 0 {
				return nil, fmt.Errorf("ckt: insert %s into %s maps no pins", s.Part, s.Board)
			}
			if comp.InsertedPins == nil {
				comp.InsertedPins = make(map[string]string, len(s.Pins))
			}
			for _, slot := range s.Pins {
				if def != nil {
					if _, ok := def.Pin(slot.Pin); !ok {
						return nil, fmt.Errorf("ckt: part %s has no pin %s", s.Part, slot.Pin)
					}
				}
				if boardDef != nil {
					if _, ok := boardDef.Pin(slot.Hole); !ok {
						return nil, fmt.Errorf("ckt: breadboard %s has no hole %s", s.Board, slot.Hole)
					}
				}
				comp.InsertedPins[slot.Pin] = slot.Hole
			}
			comp.ParentBreadboardID = s.Board

		case stmt.Wire != nil:
			s := stmt.Wire
			id := s.ID
			if id == "" {
				for {
					autoWire++
					id = fmt.Sprintf("w%d", autoWire)
					if !wireIDs[id] {
						break
					}
				}
			}
			if wireIDs[id] {
				return nil, fmt.Errorf("ckt: wire id %s used twice", id)
			}
			wireIDs[id] = true
			for _, ep := range []*Endpoint{s.From, s.To} {
				_, def, err := lookupPart(ep.Component)
				if err != nil {
					return nil, err
				}
				if def != nil {
					if _, ok := def.Pin(ep.Pin); !ok {
						return nil, fmt.Errorf("ckt: part %s has no pin %s", ep.Component, ep.Pin)
					}
				}
			}
			c.Wires = append(c.Wires, circuit.Wire{
				ID:             id,
				StartComponent: s.From.Component,
				StartPin:       s.From.Pin,
				EndComponent:   s.To.Component,
				EndPin:         s.To.Pin,
			})

		case stmt.Press != nil:
			s := stmt.Press
			comp, _, err := lookupPart(s.Button)
			if err != nil {
				return nil, err
			}
			if comp.TypeID != circuit.TypePushbutton {
				return nil, fmt.Errorf("ckt: press %s: not a pushbutton (type %s)", s.Button, comp.TypeID)
			}
			c.Buttons[s.Button] = true
		}
	}
	return c, nil
}

// LoadFile parses a .ckt file and loads it against the registry.
func LoadFile(path string, reg circuit.Registry) (*engine.Circuit, error) {
	p, err := NewParser()
	if err != nil {
		return nil, err
	}
	file, err := p.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return Load(file, reg)
}
