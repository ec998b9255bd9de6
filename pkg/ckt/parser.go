package ckt

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
)

// Parser parses .ckt circuit description files.
type Parser struct {
	parser *participle.Parser[File]
}

// NewParser builds the circuit file parser.
func NewParser() (*Parser, error) {
	parser, err := participle.Build[File](
		participle.Lexer(CircuitLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.Unquote("String"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("ckt: build parser: %w", err)
	}
	return &Parser{parser: parser}, nil
}

// Parse parses a circuit description from a reader.
func (p *Parser) Parse(r io.Reader) (*File, error) {
	file, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("ckt: parse: %w", err)
	}
	return file, nil
}

// ParseString parses a circuit description from a string.
func (p *Parser) ParseString(input string) (*File, error) {
	file, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("ckt: parse: %w", err)
	}
	return file, nil
}

// ParseFile parses a circuit description from a file path.
func (p *Parser) ParseFile(filename string) (*File, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("ckt: open %s: %w", filename, err)
	}
	defer f.Close()
	return p.Parse(f)
}
