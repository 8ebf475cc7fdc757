package parser

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrorKind classifies a parse failure.
type ErrorKind int

const (
	// InvalidCharacter is a character that cannot begin any rule at its
	// position, including a ']' without an open loop.
	InvalidCharacter ErrorKind = iota + 1

	// UnterminatedLoop is the end of input with at least one loop open.
	UnterminatedLoop

	// NestingTooDeep is a '[' that exceeds the configured nesting bound.
	NestingTooDeep
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidCharacter:
		return "InvalidCharacter"
	case UnterminatedLoop:
		return "UnterminatedLoop"
	case NestingTooDeep:
		return "NestingTooDeep"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Sentinels returned by ParseError.Unwrap, one per kind.
var (
	ErrInvalidCharacter = errors.New("invalid character")
	ErrUnterminatedLoop = errors.New("unterminated loop")
	ErrNestingTooDeep   = errors.New("nesting too deep")
)

// ParseError describes the first violation found in the input.
type ParseError struct {
	Kind ErrorKind

	// Position of the offending character. For UnterminatedLoop it is the
	// innermost '[' still open at the end of input.
	Position

	// Char is the offending character. It is utf8.RuneError for bytes that
	// are not valid UTF-8.
	Char rune

	// Depth is the loop nesting depth at the failure point.
	Depth int
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case InvalidCharacter:
		switch e.Char {
		case ']':
			return fmt.Sprintf("unmatched ']' at column %d", e.Column)
		case utf8.RuneError:
			return fmt.Sprintf("invalid UTF-8 at column %d", e.Column)
		}
		return fmt.Sprintf("invalid character %q at column %d", e.Char, e.Column)
	case UnterminatedLoop:
		return fmt.Sprintf("unterminated loop opened at column %d", e.Column)
	case NestingTooDeep:
		return fmt.Sprintf("loop at column %d exceeds the nesting limit (depth %d)",
			e.Column, e.Depth)
	default:
		return fmt.Sprintf("parse error at column %d", e.Column)
	}
}

// Unwrap returns the sentinel of the error kind.
func (e *ParseError) Unwrap() error {
	switch e.Kind {
	case InvalidCharacter:
		return ErrInvalidCharacter
	case UnterminatedLoop:
		return ErrUnterminatedLoop
	case NestingTooDeep:
		return ErrNestingTooDeep
	default:
		return nil
	}
}

// snippetRadius is the number of runes shown on each side of the caret.
const snippetRadius = 32

// FormatError returns err with a caret snippet of src pointing at the
// failure:
//
//	PARSE ERROR at column 3: invalid character 'a'
//
//	  +[a]
//	    ^
//
// Errors other than *ParseError are returned unchanged.
func FormatError(err error, src string) error {
	var pe *ParseError
	if !errors.As(err, &pe) {
		return err
	}

	msg := pe.Error()
	if i := strings.LastIndex(msg, " at column"); i >= 0 {
		msg = msg[:i]
	}

	line := src
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	runes := []rune(line)

	col := pe.Column
	if col < 1 {
		col = 1
	}
	if col > len(runes)+1 {
		col = len(runes) + 1
	}

	start, end := col-1-snippetRadius, col-1+snippetRadius
	prefix, suffix := "...", "..."
	if start <= 0 {
		start, prefix = 0, ""
	}
	if end >= len(runes) {
		end, suffix = len(runes), ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "PARSE ERROR at column %d: %s\n\n", pe.Column, msg)
	fmt.Fprintf(&b, "  %s%s%s\n", prefix, visible(runes[start:end]), suffix)
	fmt.Fprintf(&b, "  %s^", strings.Repeat(" ", len(prefix)+col-1-start))

	return errors.New(b.String())
}

// visible replaces control characters so the caret stays aligned.
func visible(rs []rune) string {
	var b strings.Builder
	for _, r := range rs {
		if r < ' ' || r == 0x7f {
			b.WriteRune('·')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
