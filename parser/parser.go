// Package parser turns Brainfuck source text into a program.Program.
//
// Grammar:
//
//	program     = instruction* EOF
//	instruction = ">" | "<" | "+" | "-" | "." | "," | loop
//	loop        = "[" instruction* "]"
//
// The grammar is LL(1): the next character alone selects the rule. There is
// no lexer stage and no ignored characters. Whitespace, newlines and
// comments are all invalid input.
package parser

import (
	"unicode/utf8"

	"github.com/sarchlab/bfast/program"
)

// Parser parses source text. It holds only configuration and can be used
// from multiple goroutines.
type Parser struct {
	maxDepth int
	tracer   Tracer
}

var defaultParser = NewBuilder().Build()

// ParseProgram parses input with the default settings. On failure it
// returns a *ParseError and a nil program.
func ParseProgram(input string) (program.Program, error) {
	return defaultParser.Parse(input)
}

// Parse consumes all of input and returns the top-level instructions.
func (p *Parser) Parse(input string) (program.Program, error) {
	c := &cursor{
		src:    input,
		column: 1,
		parser: p,
	}

	seq, err := c.sequence(0, Position{})
	if err != nil {
		return nil, err
	}

	return program.Program(seq), nil
}

// cursor is the per-call state of a parse.
type cursor struct {
	src    string
	offset int
	column int
	parser *Parser
}

// peek returns the current rune and its width. The width is 0 at the end
// of input.
func (c *cursor) peek() (rune, int) {
	if c.offset >= len(c.src) {
		return 0, 0
	}
	return utf8.DecodeRuneInString(c.src[c.offset:])
}

// advance consumes a rune of the given width.
func (c *cursor) advance(width int) {
	c.offset += width
	c.column++
}

func (c *cursor) pos() Position {
	return Position{Offset: c.offset, Column: c.column}
}

// sequence parses instructions at the given depth. At depth 0 it stops at
// the end of input; inside a loop it stops before the closing ']' and open
// is the position of the loop's '['.
func (c *cursor) sequence(depth int, open Position) ([]program.Instruction, error) {
	var seq []program.Instruction

	for {
		pos := c.pos()
		r, width := c.peek()

		switch {
		case width == 0:
			if depth > 0 {
				return nil, &ParseError{
					Kind:     UnterminatedLoop,
					Position: open,
					Char:     '[',
					Depth:    depth,
				}
			}
			return seq, nil
		case r == ']' && depth > 0:
			return seq, nil
		case r == '[':
			inst, err := c.loop(depth + 1)
			if err != nil {
				return nil, err
			}
			seq = append(seq, inst)
			continue
		}

		op, ok := program.Lookup(r)
		if !ok {
			return nil, &ParseError{
				Kind:     InvalidCharacter,
				Position: pos,
				Char:     r,
				Depth:    depth,
			}
		}

		c.advance(width)
		c.parser.tracer.Instruction(pos, op, depth)
		seq = append(seq, program.NewInstruction(op))
	}
}

// loop parses a loop whose body sits at the given depth. The cursor is on
// the opening '['.
func (c *cursor) loop(depth int) (program.Instruction, error) {
	open := c.pos()

	if c.parser.maxDepth > 0 && depth > c.parser.maxDepth {
		return program.Instruction{}, &ParseError{
			Kind:     NestingTooDeep,
			Position: open,
			Char:     '[',
			Depth:    depth,
		}
	}

	c.advance(1)
	c.parser.tracer.EnterLoop(open, depth)

	body, err := c.sequence(depth, open)
	if err != nil {
		return program.Instruction{}, err
	}

	closePos := c.pos()
	c.advance(1)
	c.parser.tracer.ExitLoop(closePos, depth, len(body))

	return program.NewLoop(body...), nil
}
