package parser_test

import (
	"errors"
	"fmt"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/bfast/parser"
)

var _ = Describe("ParseError", func() {
	DescribeTable("messages",
		func(src string, msg string) {
			_, err := parser.ParseProgram(src)
			Expect(err).To(MatchError(msg))
		},
		Entry("invalid", "+a", "invalid character 'a' at column 2"),
		Entry("unmatched close", "[]]", "unmatched ']' at column 3"),
		Entry("invalid UTF-8", "\xfe", "invalid UTF-8 at column 1"),
		Entry("unterminated", "+[", "unterminated loop opened at column 2"),
	)

	It("should describe nesting failures", func() {
		_, err := parser.NewBuilder().WithMaxDepth(1).Build().Parse("[[]]")
		Expect(err).To(MatchError("loop at column 2 exceeds the nesting limit (depth 2)"))
	})

	It("should name error kinds", func() {
		Expect(parser.InvalidCharacter.String()).To(Equal("InvalidCharacter"))
		Expect(parser.UnterminatedLoop.String()).To(Equal("UnterminatedLoop"))
		Expect(parser.NestingTooDeep.String()).To(Equal("NestingTooDeep"))
		Expect(parser.ErrorKind(9).String()).To(Equal("ErrorKind(9)"))
	})

	It("should unwrap to exactly one sentinel", func() {
		_, err := parser.ParseProgram("[")
		Expect(errors.Is(err, parser.ErrUnterminatedLoop)).To(BeTrue())
		Expect(errors.Is(err, parser.ErrInvalidCharacter)).To(BeFalse())
		Expect(errors.Is(err, parser.ErrNestingTooDeep)).To(BeFalse())

		var zero parser.ParseError
		Expect(zero.Unwrap()).To(BeNil())
	})
})

var _ = Describe("FormatError", func() {
	It("should point a caret at the offending character", func() {
		src := "+[a]"
		_, err := parser.ParseProgram(src)

		formatted := parser.FormatError(err, src)
		Expect(formatted.Error()).To(Equal(
			"PARSE ERROR at column 3: invalid character 'a'\n" +
				"\n" +
				"  +[a]\n" +
				"    ^"))
	})

	It("should point at the open bracket of an unterminated loop", func() {
		src := "[["
		_, err := parser.ParseProgram(src)

		lines := strings.Split(parser.FormatError(err, src).Error(), "\n")
		Expect(lines[0]).To(Equal("PARSE ERROR at column 2: unterminated loop opened"))
		Expect(lines[2]).To(Equal("  [["))
		Expect(lines[3]).To(Equal("   ^"))
	})

	It("should show only the first line and mark control characters", func() {
		src := "+\t-\n+"
		_, err := parser.ParseProgram(src)

		lines := strings.Split(parser.FormatError(err, src).Error(), "\n")
		Expect(lines).To(HaveLen(4))
		Expect(lines[2]).To(Equal("  +·-"))
		Expect(lines[3]).To(Equal("   ^"))
	})

	It("should window long lines around the caret", func() {
		src := strings.Repeat("+", 100) + "a"
		_, err := parser.ParseProgram(src)

		lines := strings.Split(parser.FormatError(err, src).Error(), "\n")
		Expect(lines[2]).To(Equal("  ..." + strings.Repeat("+", 32) + "a"))
		Expect(lines[3]).To(Equal("  " + strings.Repeat(" ", 35) + "^"))
	})

	It("should see through wrapping", func() {
		_, err := parser.ParseProgram("x")
		wrapped := fmt.Errorf("load kernel: %w", err)

		Expect(parser.FormatError(wrapped, "x").Error()).
			To(HavePrefix("PARSE ERROR at column 1: invalid character 'x'"))
	})

	It("should leave other errors untouched", func() {
		err := errors.New("boom")
		Expect(parser.FormatError(err, "+")).To(BeIdenticalTo(err))
		Expect(parser.FormatError(nil, "+")).To(BeNil())
	})
})
