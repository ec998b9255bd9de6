package ckt

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// CircuitLexer defines the lexical structure of .ckt circuit files.
var CircuitLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments run to end of line.
	{Name: "Comment", Pattern: `//[^\n]*`},

	// Whitespace
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// Keywords (case-insensitive)
	{Name: "KwCircuit", Pattern: `(?i)\bCIRCUIT\b`},
	{Name: "KwPart", Pattern: `(?i)\bPART\b`},
	{Name: "KwInsert", Pattern: `(?i)\bINSERT\b`},
	{Name: "KwInto", Pattern: `(?i)\bINTO\b`},
	{Name: "KwWire", Pattern: `(?i)\bWIRE\b`},
	{Name: "KwFrom", Pattern: `(?i)\bFROM\b`},
	{Name: "KwTo", Pattern: `(?i)\bTO\b`},
	{Name: "KwPress", Pattern: `(?i)\bPRESS\b`},

	// Literals
	{Name: "String", Pattern: `"[^"]*"`},

	// Punctuation
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Equals", Pattern: `=`},
	{Name: "Dot", Pattern: `\.`},

	// Identifiers cover part names, type ids like "led-5mm" and pin ids
	// like "5V" or "a12", so they may start with a digit.
	{Name: "Ident", Pattern: `[A-Za-z0-9][A-Za-z0-9_\-]*`},
})
