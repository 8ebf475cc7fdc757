package verify

import (
	"fmt"

	"github.com/sarchlab/bfast/program"
)

var inverse = map[program.Op]program.Op{
	program.Increment: program.Decrement,
	program.Decrement: program.Increment,
	program.MoveRight: program.MoveLeft,
	program.MoveLeft:  program.MoveRight,
}

// RunLint performs static lint checks on a program. Issues are returned in
// source order; an empty list means no issues were found.
func RunLint(p program.Program) []Issue {
	return lintSequence(p, nil, true)
}

func lintSequence(seq []program.Instruction, parent []int, top bool) []Issue {
	var issues []Issue

	for idx := 0; idx < len(seq); idx++ {
		inst := seq[idx]
		path := childPath(parent, idx)

		if inst.Op == program.Loop {
			// Cells start at zero, and a loop only exits on a zero cell.
			if top && idx == 0 {
				issues = append(issues, Issue{
					Type:    IssueDeadLoop,
					Path:    path,
					Op:      inst.Op,
					Message: "loop at program start is never entered",
				})
			} else if idx > 0 && seq[idx-1].Op == program.Loop {
				issues = append(issues, Issue{
					Type:    IssueDeadLoop,
					Path:    path,
					Op:      inst.Op,
					Message: "loop directly after a loop is never entered",
				})
			}

			if len(inst.Body) == 0 {
				issues = append(issues, Issue{
					Type:    IssueEmptyLoop,
					Path:    path,
					Op:      inst.Op,
					Message: "empty loop never terminates once entered",
				})
			}

			issues = append(issues, lintSequence(inst.Body, path, false)...)
			continue
		}

		if idx+1 < len(seq) {
			if inv, ok := inverse[inst.Op]; ok && seq[idx+1].Op == inv {
				issues = append(issues, Issue{
					Type:    IssueCancel,
					Path:    path,
					Op:      inst.Op,
					Message: fmt.Sprintf("%v followed by %v has no effect", inst.Op, inv),
				})
				idx++
			}
		}
	}

	return issues
}

func childPath(parent []int, idx int) []int {
	path := make([]int, len(parent)+1)
	copy(path, parent)
	path[len(parent)] = idx
	return path
}
