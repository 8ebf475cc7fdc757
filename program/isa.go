package program

// Op identifies the kind of an Instruction.
type Op uint8

const (
	MoveRight Op = iota + 1
	MoveLeft
	Increment
	Decrement
	Output
	Input
	Loop
)

var opNames = map[Op]string{
	MoveRight: "MoveRight",
	MoveLeft:  "MoveLeft",
	Increment: "Increment",
	Decrement: "Decrement",
	Output:    "Output",
	Input:     "Input",
	Loop:      "Loop",
}

// String returns the name of the op.
func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return "Op(?)"
}

// Symbol returns the source character of the op. A Loop is represented by
// its opening bracket.
func (o Op) Symbol() rune {
	if o == Loop {
		return '['
	}
	return defaultISA.opToSymbol[o]
}

// Valid reports whether o is one of the defined ops.
func (o Op) Valid() bool {
	_, ok := opNames[o]
	return ok
}

// ISA maps source characters to the simple (non-loop) instructions.
type ISA struct {
	name       string
	symbolToOp map[rune]Op
	opToSymbol map[Op]rune
}

// NewISA creates an empty instruction table.
func NewISA(name string) *ISA {
	return &ISA{
		name:       name,
		symbolToOp: make(map[rune]Op),
		opToSymbol: make(map[Op]rune),
	}
}

// Name returns the name of the instruction table.
func (isa *ISA) Name() string {
	return isa.name
}

func (isa *ISA) registerNewInst(symbol rune, op Op) {
	if op == Loop {
		panic("loops are structural and cannot be registered as a symbol")
	}
	isa.symbolToOp[symbol] = op
	isa.opToSymbol[op] = symbol
}

// Lookup returns the simple op for a source character.
func (isa *ISA) Lookup(r rune) (Op, bool) {
	op, ok := isa.symbolToOp[r]
	return op, ok
}

var defaultISA = func() *ISA {
	isa := NewISA("Brainfuck")
	isa.registerNewInst('>', MoveRight)
	isa.registerNewInst('<', MoveLeft)
	isa.registerNewInst('+', Increment)
	isa.registerNewInst('-', Decrement)
	isa.registerNewInst('.', Output)
	isa.registerNewInst(',', Input)
	return isa
}()

// DefaultISA returns the instruction table of the language.
func DefaultISA() *ISA {
	return defaultISA
}

// Lookup returns the simple op for r in the default table. The loop
// brackets are not part of the table.
func Lookup(r rune) (Op, bool) {
	return defaultISA.Lookup(r)
}
