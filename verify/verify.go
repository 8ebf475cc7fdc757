// Package verify provides static checks over parsed Brainfuck programs.
//
// Two stages are offered:
//
// 1. Static Lint (lint.go): advisory checks on the syntax tree
//   - EMPTY_LOOP: a loop with no body never terminates once entered
//   - DEAD_LOOP: a loop that can never be entered (program start, or
//     directly after another loop, where the current cell is zero)
//   - CANCEL: adjacent instructions that undo each other
//
// 2. Round trip (report.go): the source is parsed, written back in
//    canonical form and parsed again. Both trees and the text must match.
//
// Lint never rejects a program and never rewrites it.
package verify

import (
	"fmt"

	"github.com/sarchlab/bfast/program"
)

// IssueType classifies a lint issue.
type IssueType string

const (
	IssueEmptyLoop IssueType = "EMPTY_LOOP" // loop without a body
	IssueDeadLoop  IssueType = "DEAD_LOOP"  // loop that is never entered
	IssueCancel    IssueType = "CANCEL"     // adjacent instructions cancel out
)

// Issue represents a single lint issue.
type Issue struct {
	Type    IssueType
	Path    []int      // index path from the top-level sequence to the node
	Op      program.Op // op of the node at Path
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s at %v: %s", i.Type, i.Path, i.Message)
}
