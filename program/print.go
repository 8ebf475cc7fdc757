package program

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// PrintProgram writes a table of all nodes of p in pre-order. The output is
// meant for debugging and has no stable format.
func PrintProgram(w io.Writer, p Program) {
	t := table.NewWriter()
	t.SetTitle("Program (%d top-level instructions)", len(p))
	t.AppendHeader(table.Row{"#", "Depth", "Op", "Symbol"})

	idx := 0
	Walk(p, func(inst Instruction, depth int) bool {
		name := strings.Repeat("  ", depth) + inst.Op.String()
		sym := string(inst.Op.Symbol())
		if inst.Op == Loop {
			name = fmt.Sprintf("%s (%d)", name, len(inst.Body))
			sym = "[ ]"
		}

		t.AppendRow(table.Row{idx, depth, name, sym})
		idx++
		return true
	})

	fmt.Fprintln(w, t.Render())
}
