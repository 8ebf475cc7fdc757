package verify

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sarchlab/bfast/parser"
	"github.com/sarchlab/bfast/program"
)

// ErrRoundTripMismatch is returned when a program does not survive being
// serialized and parsed again.
var ErrRoundTripMismatch = errors.New("round trip mismatch")

// CheckRoundTrip parses src, writes it back in canonical form and parses
// the result again. It returns the parse error, if any, or
// ErrRoundTripMismatch when the text or the trees differ.
func CheckRoundTrip(p *parser.Parser, src string) error {
	prog, err := p.Parse(src)
	if err != nil {
		return err
	}

	return checkRoundTrip(p, src, prog)
}

func checkRoundTrip(p *parser.Parser, src string, prog program.Program) error {
	text := program.Serialize(prog)
	if text != src {
		return fmt.Errorf("%w: serialized %q, source %q", ErrRoundTripMismatch, text, src)
	}

	again, err := p.Parse(text)
	if err != nil {
		return fmt.Errorf("%w: reparse: %v", ErrRoundTripMismatch, err)
	}

	if !program.Equal(prog, again) {
		return fmt.Errorf("%w: trees differ", ErrRoundTripMismatch)
	}

	return nil
}

// Report represents a complete verification report of one source.
type Report struct {
	Source       string
	Program      program.Program
	ParseErr     error
	Stats        program.Statistics
	Issues       []Issue
	RoundTripErr error
}

// GenerateReport parses src and, if that succeeds, runs lint and the round
// trip check.
func GenerateReport(p *parser.Parser, src string) *Report {
	report := &Report{Source: src}

	report.Program, report.ParseErr = p.Parse(src)
	if report.ParseErr != nil {
		return report
	}

	report.Stats = program.Stats(report.Program)
	report.Issues = RunLint(report.Program)
	report.RoundTripErr = checkRoundTrip(p, src, report.Program)

	return report
}

// OK reports whether the source parsed and survived the round trip. Lint
// issues do not affect the result.
func (r *Report) OK() bool {
	return r.ParseErr == nil && r.RoundTripErr == nil
}

var reportOps = []program.Op{
	program.MoveRight, program.MoveLeft,
	program.Increment, program.Decrement,
	program.Output, program.Input,
	program.Loop,
}

// WriteReport writes a formatted report to a writer.
func (r *Report) WriteReport(w io.Writer) {
	separator := strings.Repeat("=", 60)
	dash := strings.Repeat("-", 60)

	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "PROGRAM VERIFICATION REPORT")
	fmt.Fprintln(w, separator)

	// STAGE 1: PARSE
	fmt.Fprintln(w, "\nSTAGE 1: PARSE")
	fmt.Fprintln(w, dash)
	if r.ParseErr != nil {
		fmt.Fprintf(w, "✗ %v\n", parser.FormatError(r.ParseErr, r.Source))
		return
	}

	fmt.Fprintf(w, "✓ Parsed %d top-level instructions (%d nodes, max depth %d)\n",
		len(r.Program), r.Stats.Nodes, r.Stats.MaxDepth)
	for _, op := range reportOps {
		if n := r.Stats.Counts[op]; n > 0 {
			fmt.Fprintf(w, "  - %-10s %d\n", op, n)
		}
	}

	// STAGE 2: LINT
	fmt.Fprintln(w, "\nSTAGE 2: STATIC LINT CHECKS")
	fmt.Fprintln(w, dash)
	if len(r.Issues) == 0 {
		fmt.Fprintln(w, "✓ No lint issues found!")
	} else {
		fmt.Fprintf(w, "⚠ Found %d lint issues:\n", len(r.Issues))
		for _, issue := range r.Issues {
			fmt.Fprintf(w, "  %s\n", issue)
		}
	}

	// STAGE 3: ROUND TRIP
	fmt.Fprintln(w, "\nSTAGE 3: ROUND TRIP")
	fmt.Fprintln(w, dash)
	if r.RoundTripErr != nil {
		fmt.Fprintf(w, "✗ %v\n", r.RoundTripErr)
	} else {
		fmt.Fprintln(w, "✓ Canonical form reparses to the same tree")
	}
}
