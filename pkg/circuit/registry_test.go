package circuit

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestBuiltinDefinitions(t *testing.T) {
	reg := Builtin()

	tests := []struct {
		typeID  string
		pinID   string
		pinType PinType
	}{
		{TypeArduinoUno, "5V", PinPower},
		{TypeArduinoUno, "GND1", PinGround},
		{TypeArduinoUno, "D3", PinPWM},
		{TypeArduinoUno, "D2", PinDigital},
		{TypeArduinoUno, "A0", PinAnalog},
		{TypeLED, PinAnode, PinTerminal},
		{TypeLED, PinCathode, PinTerminal},
		{TypeResistor, PinTerm1, PinTerminal},
		{TypePushbutton, PinButton2B, PinTerminal},
		{TypeBuzzer, PinPositive, PinTerminal},
		{TypeBreadboard, "a1", PinTerminal},
		{TypeBreadboard, "j30", PinTerminal},
		{TypeBreadboard, "tp25", PinTerminal},
	}
	for _, tt := range tests {
		def, ok := reg.Lookup(tt.typeID)
		if !ok {
			t.Fatalf("builtin registry missing %s", tt.typeID)
		}
		pin, ok := def.Pin(tt.pinID)
		if !ok {
			t.Errorf("%s: missing pin %s", tt.typeID, tt.pinID)
			continue
		}
		if pin.Type != tt.pinType {
			t.Errorf("%s.%s: type = %s, want %s", tt.typeID, tt.pinID, pin.Type, tt.pinType)
		}
	}

	uno, _ := reg.Lookup(TypeArduinoUno)
	if !uno.Board {
		t.Errorf("arduino-uno should be marked as a board")
	}
}

func TestBreadboardNets(t *testing.T) {
	reg := Builtin()
	bb, _ := reg.Lookup(TypeBreadboard)

	sibs := bb.NetSiblings("a1")
	want := []string{"b1", "c1", "d1", "e1"}
	if !reflect.DeepEqual(sibs, want) {
		t.Errorf("NetSiblings(a1) = %v, want %v", sibs, want)
	}

	// Top and bottom halves of a column are isolated from each other.
	for _, sib := range bb.NetSiblings("a1") {
		if sib == "f1" {
			t.Errorf("a1 and f1 must not share a net")
		}
	}

	// A pin with no net tag has no siblings.
	led := &Definition{TypeID: TypeLED, Pins: []Pin{{ID: PinAnode, Type: PinTerminal}}}
	if got := led.NetSiblings(PinAnode); got != nil {
		t.Errorf("NetSiblings on untagged pin = %v, want nil", got)
	}
}

func TestRegistryAdd(t *testing.T) {
	tests := []struct {
		name    string
		def     *Definition
		wantErr bool
	}{
		{"valid", &Definition{TypeID: "photoresistor", Pins: []Pin{{ID: "P1", Type: PinTerminal}, {ID: "P2", Type: PinTerminal}}}, false},
		{"missing type id", &Definition{Pins: []Pin{{ID: "P1"}}}, true},
		{"no pins", &Definition{TypeID: "empty"}, true},
		{"duplicate pin", &Definition{TypeID: "dup", Pins: []Pin{{ID: "P1"}, {ID: "P1"}}}, true},
		{"unnamed pin", &Definition{TypeID: "anon", Pins: []Pin{{ID: ""}}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewMemoryRegistry()
			err := reg.Add(tt.def)
			if (err != nil) != tt.wantErr {
				t.Errorf("Add() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegistryLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photoresistor.yaml")
	content := `type: photoresistor
pins:
  - id: P1
    type: terminal
  - id: P2
    type: terminal
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	reg := NewMemoryRegistry()
	if err := reg.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	def, ok := reg.Lookup("photoresistor")
	if !ok {
		t.Fatalf("definition not registered after LoadFile")
	}
	if len(def.Pins) != 2 || def.Pins[0].ID != "P1" {
		t.Errorf("unexpected pins: %+v", def.Pins)
	}
}

func TestRegistryLoadDir(t *testing.T) {
	dir := t.TempDir()
	good := `type: thermistor
pins:
  - id: T1
    type: terminal
`
	if err := os.WriteFile(filepath.Join(dir, "thermistor.yml"), []byte(good), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	// Non-YAML files are ignored.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	reg := NewMemoryRegistry()
	if err := reg.LoadDir(dir); err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if _, ok := reg.Lookup("thermistor"); !ok {
		t.Errorf("thermistor not loaded from dir")
	}
}

func TestWireOtherEnd(t *testing.T) {
	w := Wire{ID: "w1", StartComponent: "a", StartPin: "P1", EndComponent: "b", EndPin: "P2"}

	ref, ok := w.OtherEnd("a", "P1")
	if !ok || ref != (PinRef{ComponentID: "b", PinID: "P2"}) {
		t.Errorf("OtherEnd(a.P1) = %v, %v", ref, ok)
	}
	ref, ok = w.OtherEnd("b", "P2")
	if !ok || ref != (PinRef{ComponentID: "a", PinID: "P1"}) {
		t.Errorf("OtherEnd(b.P2) = %v, %v", ref, ok)
	}
	if _, ok := w.OtherEnd("c", "P9"); ok {
		t.Errorf("OtherEnd on unrelated pin should report false")
	}
}

func TestPinRefKey(t *testing.T) {
	ref := PinRef{ComponentID: "led-1", PinID: "ANODE"}
	if got := ref.Key(); got != "led-1:ANODE" {
		t.Errorf("Key() = %s, want led-1:ANODE", got)
	}
}
