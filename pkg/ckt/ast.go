package ckt

// File is a complete parsed circuit description.
//
// Example:
//
//	circuit "blink"
//
//	part uno arduino-uno
//	part bb breadboard
//	part led1 led-5mm
//
//	insert led1 into bb (ANODE = a5, CATHODE = a6)
//	wire w1 from uno.5V to bb.tp1
//	press btn1
type File struct {
	Name  string  `parser:"( KwCircuit @String )?"`
	Stmts []*Stmt `parser:"@@*"`
}

// Stmt is one top-level statement.
type Stmt struct {
	Part   *PartStmt   `parser:"  @@"`
	Insert *InsertStmt `parser:"| @@"`
	Wire   *WireStmt   `parser:"| @@"`
	Press  *PressStmt  `parser:"| @@"`
}

// PartStmt places a component instance: part <name> <type-id>.
type PartStmt struct {
	Name string `parser:"KwPart @Ident"`
	Type string `parser:"@Ident"`
}

// InsertStmt plugs a previously declared part into a breadboard.
type InsertStmt struct {
	Part  string     `parser:"KwInsert @Ident"`
	Board string     `parser:"KwInto @Ident"`
	Pins  []*PinSlot `parser:"LParen @@ ( Comma @@ )* RParen"`
}

// PinSlot maps one pin of the inserted part to a breadboard hole.
type PinSlot struct {
	Pin  string `parser:"@Ident"`
	Hole string `parser:"Equals @Ident"`
}

// WireStmt connects two pins. The wire id is optional; the loader generates
// one when omitted.
type WireStmt struct {
	ID   string    `parser:"KwWire @Ident?"`
	From *Endpoint `parser:"KwFrom @@"`
	To   *Endpoint `parser:"KwTo @@"`
}

// Endpoint is a <part>.<pin> reference.
type Endpoint struct {
	Component string `parser:"@Ident"`
	Pin       string `parser:"Dot @Ident"`
}

// PressStmt marks a pushbutton as held down.
type PressStmt struct {
	Button string `parser:"KwPress @Ident"`
}
