package ckt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func mustParser(t *testing.T) *Parser {
	t.Helper()
	p, err := NewParser()
	if err != nil {
		t.Fatalf("NewParser failed: %v", err)
	}
	return p
}

func TestParseBasicCircuit(t *testing.T) {
	input := `
circuit "blink"

// parts
part uno arduino-uno
part bb breadboard
part led1 led-5mm
part r1 resistor

insert led1 into bb (ANODE = a5, CATHODE = a6)
insert r1 into bb (TERM1 = b6, TERM2 = b10)

wire w1 from uno.D13 to bb.a1
wire from uno.GND1 to bb.b10
`
	p := mustParser(t)
	file, err := p.ParseString(input)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if file.Name != "blink" {
		t.Errorf("circuit name: got %q, want %q", file.Name, "blink")
	}
	if len(file.Stmts) != 8 {
		t.Fatalf("expected 8 statements, got %d", len(file.Stmts))
	}

	part := file.Stmts[0].Part
	if part == nil || part.Name != "uno" || part.Type != "arduino-uno" {
		t.Errorf("first statement: got %+v, want part uno arduino-uno", part)
	}

	ins := file.Stmts[4].Insert
	if ins == nil {
		t.Fatalf("statement 4 should be an insert")
	}
	if ins.Part != "led1" || ins.Board != "bb" || len(ins.Pins) != 2 {
		t.Errorf("insert: got %+v", ins)
	}
	if ins.Pins[0].Pin != "ANODE" || ins.Pins[0].Hole != "a5" {
		t.Errorf("first pin slot: got %+v", ins.Pins[0])
	}

	w := file.Stmts[6].Wire
	if w == nil || w.ID != "w1" {
		t.Fatalf("statement 6 should be wire w1, got %+v", w)
	}
	if w.From.Component != "uno" || w.From.Pin != "D13" {
		t.Errorf("wire from: got %+v", w.From)
	}
	if w.To.Component != "bb" || w.To.Pin != "a1" {
		t.Errorf("wire to: got %+v", w.To)
	}

	anon := file.Stmts[7].Wire
	if anon == nil || anon.ID != "" {
		t.Errorf("statement 7 should be an anonymous wire, got %+v", anon)
	}
}

func TestParseCaseInsensitiveKeywords(t *testing.T) {
	input := `
CIRCUIT "shout"
PART uno arduino-uno
Part led1 led-5mm
WIRE w1 FROM uno.D13 TO led1.ANODE
PRESS btn1
`
	p := mustParser(t)
	file, err := p.ParseString(input)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(file.Stmts) != 4 {
		t.Fatalf("expected 4 statements, got %d", len(file.Stmts))
	}
	if file.Stmts[3].Press == nil || file.Stmts[3].Press.Button != "btn1" {
		t.Errorf("press statement: got %+v", file.Stmts[3].Press)
	}
}

func TestParseOptionalName(t *testing.T) {
	p := mustParser(t)
	file, err := p.ParseString("part uno arduino-uno\n")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if file.Name != "" {
		t.Errorf("circuit without name should parse with empty Name, got %q", file.Name)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"part missing type", "part uno\nwire w1 from a.b to c.d"},
		{"insert without pins", "insert led1 into bb ()"},
		{"wire missing to", "wire w1 from uno.D13"},
		{"endpoint without pin", "wire w1 from uno to bb.a1"},
		{"stray token", "part uno arduino-uno ="},
	}
	p := mustParser(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := p.ParseString(tt.input); err == nil {
				t.Errorf("expected parse error for %q", tt.input)
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blink.ckt")
	content := "circuit \"blink\"\npart uno arduino-uno\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	p := mustParser(t)
	file, err := p.ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if file.Name != "blink" || len(file.Stmts) != 1 {
		t.Errorf("unexpected parse result: %+v", file)
	}

	if _, err := p.ParseFile(filepath.Join(dir, "missing.ckt")); err == nil {
		t.Errorf("expected error for missing file")
	} else if !strings.Contains(err.Error(), "ckt:") {
		t.Errorf("error should carry ckt prefix, got: %v", err)
	}
}
