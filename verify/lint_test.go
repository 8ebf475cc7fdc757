package verify_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/bfast/parser"
	"github.com/sarchlab/bfast/program"
	"github.com/sarchlab/bfast/verify"
)

type issueKey struct {
	Type verify.IssueType
	Path []int
}

func lint(src string) []issueKey {
	prog, err := parser.ParseProgram(src)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())

	var keys []issueKey
	for _, issue := range verify.RunLint(prog) {
		keys = append(keys, issueKey{issue.Type, issue.Path})
	}
	return keys
}

var _ = Describe("RunLint", func() {
	It("should find no issues in the square program", func() {
		Expect(lint(",[>+>+<<-]>[>[>+<<<+>>-]>[<+>-]<<-]<.")).To(BeEmpty())
	})

	It("should find no issues in the empty program", func() {
		Expect(verify.RunLint(nil)).To(BeEmpty())
	})

	It("should flag a loop at program start", func() {
		Expect(lint("[-]+")).To(Equal([]issueKey{
			{verify.IssueDeadLoop, []int{0}},
		}))
	})

	It("should flag an empty loop", func() {
		Expect(lint("+[]")).To(Equal([]issueKey{
			{verify.IssueEmptyLoop, []int{1}},
		}))
		Expect(lint("[]")).To(Equal([]issueKey{
			{verify.IssueDeadLoop, []int{0}},
			{verify.IssueEmptyLoop, []int{0}},
		}))
	})

	It("should flag a loop directly after a loop", func() {
		Expect(lint("+[-][+]")).To(Equal([]issueKey{
			{verify.IssueDeadLoop, []int{2}},
		}))
		Expect(lint("+[[-][-]]")).To(Equal([]issueKey{
			{verify.IssueDeadLoop, []int{1, 1}},
		}))
	})

	It("should not flag a nested loop at body start", func() {
		Expect(lint("+[[-]>]")).To(BeEmpty())
	})

	DescribeTable("cancelling pairs",
		func(src string, want []issueKey) {
			Expect(lint(src)).To(Equal(want))
		},
		Entry("increment decrement", "+-", []issueKey{{verify.IssueCancel, []int{0}}}),
		Entry("decrement increment", ".-+", []issueKey{{verify.IssueCancel, []int{1}}}),
		Entry("right left", "><", []issueKey{{verify.IssueCancel, []int{0}}}),
		Entry("left right", "<>", []issueKey{{verify.IssueCancel, []int{0}}}),
		Entry("overlapping triple", "+-+", []issueKey{{verify.IssueCancel, []int{0}}}),
		Entry("two pairs", "+-<>", []issueKey{
			{verify.IssueCancel, []int{0}},
			{verify.IssueCancel, []int{2}},
		}),
		Entry("inside loop", "+[>-+]", []issueKey{{verify.IssueCancel, []int{1, 1}}}),
		Entry("not across loop", "+[-]-", []issueKey(nil)),
		Entry("io does not cancel", ".,", []issueKey(nil)),
	)

	It("should describe issues", func() {
		issues := verify.RunLint(program.Program{
			program.NewInstruction(program.Increment),
			program.NewInstruction(program.Decrement),
		})
		Expect(issues).To(HaveLen(1))
		Expect(issues[0].Op).To(Equal(program.Increment))
		Expect(issues[0].String()).To(Equal(
			"CANCEL at [0]: Increment followed by Decrement has no effect"))
	})
})
