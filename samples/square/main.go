package main

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/sarchlab/bfast/parser"
	"github.com/sarchlab/bfast/program"
	"github.com/sarchlab/bfast/verify"
	"github.com/tebeka/atexit"
)

// Reads a value and writes its square.
//
//go:embed square.b
var squareKernel string

func main() {
	src := strings.TrimSpace(squareKernel)
	p := parser.NewBuilder().Build()

	prog, err := p.Parse(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, parser.FormatError(err, src))
		atexit.Exit(1)
	}

	program.PrintProgram(os.Stdout, prog)
	verify.GenerateReport(p, src).WriteReport(os.Stdout)

	atexit.Exit(0)
}
