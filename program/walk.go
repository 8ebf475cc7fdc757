package program

// Walk visits the instructions of p in pre-order. Top-level instructions
// have depth 0. If fn returns false the children of that node are skipped.
func Walk(p Program, fn func(inst Instruction, depth int) bool) {
	walk(p, 0, fn)
}

func walk(p []Instruction, depth int, fn func(inst Instruction, depth int) bool) {
	for _, inst := range p {
		if !fn(inst, depth) {
			continue
		}
		if inst.Op == Loop {
			walk(inst.Body, depth+1, fn)
		}
	}
}

// Flatten returns the ops of p in source order, ignoring nesting. A loop
// contributes a single Loop entry at the position of its opening bracket.
func Flatten(p Program) []Op {
	var ops []Op
	Walk(p, func(inst Instruction, _ int) bool {
		ops = append(ops, inst.Op)
		return true
	})
	return ops
}

// Statistics summarizes the shape of a program.
type Statistics struct {
	Nodes    int
	Counts   map[Op]int
	MaxDepth int
}

// Stats computes the statistics of p. MaxDepth is the deepest loop
// nesting, 0 for a program without loops.
func Stats(p Program) Statistics {
	s := Statistics{Counts: make(map[Op]int)}

	Walk(p, func(inst Instruction, depth int) bool {
		s.Nodes++
		s.Counts[inst.Op]++
		if inst.Op == Loop && depth+1 > s.MaxDepth {
			s.MaxDepth = depth + 1
		}
		return true
	})

	return s
}
