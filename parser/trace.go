package parser

import (
	"context"
	"log/slog"

	"github.com/sarchlab/bfast/program"
)

// LevelTrace is the slog level of parse events.
const LevelTrace slog.Level = slog.LevelDebug - 4

// Trace logs a message at LevelTrace on the default logger.
func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// A Tracer observes a parse as it happens. Events are reported in source
// order. A failed parse stops reporting at the failure point.
type Tracer interface {
	// Instruction is called for every simple instruction.
	Instruction(pos Position, op program.Op, depth int)

	// EnterLoop is called when a '[' is consumed. depth is the depth of
	// the loop body.
	EnterLoop(pos Position, depth int)

	// ExitLoop is called when the matching ']' is consumed.
	ExitLoop(pos Position, depth int, bodyLen int)
}

// Position locates a character in the input.
type Position struct {
	Offset int // byte offset, 0-based
	Column int // rune index, 1-based
}

type nopTracer struct{}

func (nopTracer) Instruction(Position, program.Op, int) {}
func (nopTracer) EnterLoop(Position, int)               {}
func (nopTracer) ExitLoop(Position, int, int)           {}

// SlogTracer logs parse events at LevelTrace.
type SlogTracer struct{}

func (SlogTracer) Instruction(pos Position, op program.Op, depth int) {
	Trace("Inst", "Op", op, "Column", pos.Column, "Depth", depth)
}

func (SlogTracer) EnterLoop(pos Position, depth int) {
	Trace("LoopOpen", "Column", pos.Column, "Depth", depth)
}

func (SlogTracer) ExitLoop(pos Position, depth int, bodyLen int) {
	Trace("LoopClose", "Column", pos.Column, "Depth", depth, "BodyLen", bodyLen)
}
