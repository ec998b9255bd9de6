package engine

import (
	"strings"
	"testing"

	"github.com/OpenCircuitLab/OpenCircuitSim/pkg/circuit"
)

func findDiag(t *testing.T, report *Report, id string) *ComponentDiagnostics {
	t.Helper()
	for i := range report.Components {
		if report.Components[i].ComponentID == id {
			return &report.Components[i]
		}
	}
	t.Fatalf("component %s missing from report", id)
	return nil
}

func TestDiagnoseHealthyCircuit(t *testing.T) {
	c := testCircuit(
		[]circuit.Placement{part("uno", circuit.TypeArduinoUno), part("r1", circuit.TypeResistor), part("led1", circuit.TypeLED)},
		[]circuit.Wire{
			wire("w1", "uno", "5V", "r1", circuit.PinTerm1),
			wire("w2", "r1", circuit.PinTerm2, "led1", circuit.PinAnode),
			wire("w3", "led1", circuit.PinCathode, "uno", "GND1"),
		},
		nil,
	)
	report := Diagnose(c, nil)

	if len(report.Errors) != 0 {
		t.Fatalf("expected no errors, got %+v", report.Errors)
	}
	if len(report.Suggestions) != 0 {
		t.Fatalf("expected no suggestions, got %v", report.Suggestions)
	}

	led := findDiag(t, report, "led1")
	if !led.IsConnected {
		t.Errorf("led1 should be connected")
	}
	if !led.HasPower || !led.HasGround {
		t.Errorf("led1 should see power and ground, got power=%v ground=%v", led.HasPower, led.HasGround)
	}
	if !led.IsActive {
		t.Errorf("led1 should be active")
	}

	res := findDiag(t, report, "r1")
	if !res.IsConnected || !res.HasPower {
		t.Errorf("r1 should be connected with power, got %+v", res)
	}
	if res.IsActive {
		t.Errorf("resistors never report active")
	}
}

func TestDiagnoseIsolatedComponent(t *testing.T) {
	c := testCircuit(
		[]circuit.Placement{part("uno", circuit.TypeArduinoUno), part("led1", circuit.TypeLED)},
		nil,
		nil,
	)
	report := Diagnose(c, nil)

	led := findDiag(t, report, "led1")
	if led.IsConnected {
		t.Errorf("unwired led should not be connected")
	}
	if led.HasPower || led.HasGround {
		t.Errorf("unwired led should see neither power nor ground")
	}
	if led.IsActive {
		t.Errorf("unwired led should be inactive")
	}
}

func TestDiagnoseSuggestions(t *testing.T) {
	tests := []struct {
		name  string
		wires []circuit.Wire
		want  string
	}{
		{
			"missing resistor",
			[]circuit.Wire{
				wire("w1", "uno", "5V", "led1", circuit.PinAnode),
				wire("w2", "led1", circuit.PinCathode, "uno", "GND1"),
			},
			"Add a resistor",
		},
		{
			"wrong polarity",
			[]circuit.Wire{
				wire("w1", "uno", "5V", "led1", circuit.PinCathode),
				wire("w2", "led1", circuit.PinAnode, "uno", "GND1"),
			},
			"Swap the anode and cathode",
		},
		{
			"no power",
			[]circuit.Wire{
				wire("w1", "led1", circuit.PinCathode, "uno", "GND1"),
			},
			"Connect the anode",
		},
		{
			"no ground",
			[]circuit.Wire{
				wire("w1", "uno", "5V", "led1", circuit.PinAnode),
			},
			"Connect the cathode",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testCircuit(
				[]circuit.Placement{part("uno", circuit.TypeArduinoUno), part("led1", circuit.TypeLED)},
				tt.wires,
				nil,
			)
			report := Diagnose(c, nil)
			if len(report.Suggestions) != 1 {
				t.Fatalf("expected one suggestion, got %v", report.Suggestions)
			}
			if !strings.Contains(report.Suggestions[0], tt.want) {
				t.Errorf("suggestion %q should contain %q", report.Suggestions[0], tt.want)
			}
		})
	}
}

func TestDiagnoseSkipsGhostTypes(t *testing.T) {
	c := testCircuit(
		[]circuit.Placement{part("uno", circuit.TypeArduinoUno), part("mystery", "warp-core")},
		nil,
		nil,
	)
	report := Diagnose(c, nil)

	for _, diag := range report.Components {
		if diag.ComponentID == "mystery" {
			t.Fatalf("component with unknown type should be skipped, got %+v", diag)
		}
	}
	findDiag(t, report, "uno")
}

func TestBuildNetlistGroups(t *testing.T) {
	c := testCircuit(
		[]circuit.Placement{
			part("uno", circuit.TypeArduinoUno),
			part("r1", circuit.TypeResistor),
			part("led1", circuit.TypeLED),
			{
				InstanceID:         "bb",
				TypeID:             circuit.TypeBreadboard,
				ParentBreadboardID: "",
			},
		},
		[]circuit.Wire{
			wire("w1", "uno", "5V", "r1", circuit.PinTerm1),
			wire("w2", "r1", circuit.PinTerm2, "led1", circuit.PinAnode),
		},
		nil,
	)
	nl := BuildNetlist(c)
	nl.Finalize()

	// The resistor's internal bridge joins w1 and w2 into one net.
	a := circuit.PinRef{ComponentID: "uno", PinID: "5V"}
	b := circuit.PinRef{ComponentID: "led1", PinID: circuit.PinAnode}
	if nl.Find(a) != nl.Find(b) {
		t.Errorf("5V and ANODE should share a net through the resistor")
	}

	// LED conduction is excluded: the cathode stays isolated.
	cath := circuit.PinRef{ComponentID: "led1", PinID: circuit.PinCathode}
	if nl.Connected(cath) {
		t.Errorf("cathode should be isolated when nothing is wired to it")
	}
}

func TestBuildNetlistInsertion(t *testing.T) {
	c := testCircuit(
		[]circuit.Placement{
			part("bb", circuit.TypeBreadboard),
			{
				InstanceID:         "led1",
				TypeID:             circuit.TypeLED,
				ParentBreadboardID: "bb",
				InsertedPins:       map[string]string{circuit.PinAnode: "a1", circuit.PinCathode: "a5"},
			},
		},
		nil,
		nil,
	)
	nl := BuildNetlist(c)
	nl.Finalize()

	// Insertion plus net-tag equivalence: ANODE joins the whole t1 group.
	anode := circuit.PinRef{ComponentID: "led1", PinID: circuit.PinAnode}
	sibling := circuit.PinRef{ComponentID: "bb", PinID: "e1"}
	if nl.Find(anode) != nl.Find(sibling) {
		t.Errorf("inserted anode should share a net with hole e1")
	}

	// Columns 1 and 5 stay separate nets.
	other := circuit.PinRef{ComponentID: "bb", PinID: "a5"}
	if nl.Find(anode) == nl.Find(other) {
		t.Errorf("columns 1 and 5 should be distinct nets")
	}
}
