// Package program defines the syntax tree of a parsed Brainfuck program.
//
// A Program is an ordered sequence of instructions. Every instruction is
// either one of six single-character primitives or a Loop that owns its
// own body:
//
//	Program
//	  └── Instruction (MoveRight, MoveLeft, Increment, Decrement, Output, Input)
//	  └── Instruction (Loop)
//	      └── Body: Instruction ...
//
// The tree is strictly owned top-down. A nil body is an empty loop.
package program

import (
	"fmt"
	"strings"
)

// Instruction is a single node of the syntax tree.
type Instruction struct {
	Op Op

	// Body holds the loop body. It is only populated when Op is Loop.
	Body []Instruction
}

// Program is the ordered sequence of top-level instructions.
type Program []Instruction

// NewInstruction creates a simple instruction.
func NewInstruction(op Op) Instruction {
	if op == Loop || !op.Valid() {
		panic(fmt.Sprintf("%v is not a simple instruction", op))
	}
	return Instruction{Op: op}
}

// NewLoop creates a loop with the given body.
func NewLoop(body ...Instruction) Instruction {
	return Instruction{Op: Loop, Body: body}
}

func (i Instruction) String() string {
	var b strings.Builder
	writeInst(&b, i)
	return b.String()
}

// String returns the canonical source form of the program.
func (p Program) String() string {
	return Serialize(p)
}

// Serialize writes the program back to its canonical source form.
func Serialize(p Program) string {
	var b strings.Builder
	for _, inst := range p {
		writeInst(&b, inst)
	}
	return b.String()
}

func writeInst(b *strings.Builder, inst Instruction) {
	if inst.Op != Loop {
		b.WriteRune(inst.Op.Symbol())
		return
	}

	b.WriteByte('[')
	for _, child := range inst.Body {
		writeInst(b, child)
	}
	b.WriteByte(']')
}

// Equal reports whether two programs have the same structure. Nil and empty
// bodies compare equal.
func Equal(a, b Program) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i].Op != b[i].Op {
			return false
		}
		if a[i].Op == Loop && !Equal(a[i].Body, b[i].Body) {
			return false
		}
	}

	return true
}
