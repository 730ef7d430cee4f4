package prompt

import (
	"fmt"
	"strings"

	"relnotes/internal/model"
)

// Build formats the commit list and diff stats into the instruction sent to
// the model. The commit list and stat block are embedded verbatim.
func Build(h model.History) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Based on the following git changes for version %s, generate professional release notes in Japanese.\n\n", h.CurrentTag)
	b.WriteString("Include these sections if applicable:\n")
	b.WriteString("- 新機能 (New Features)\n")
	b.WriteString("- 改善 (Improvements)\n")
	b.WriteString("- バグ修正 (Bug Fixes)\n\n")

	b.WriteString("Commits:\n")
	b.WriteString(h.CommitList())
	b.WriteString("\n\n")

	b.WriteString("File changes:\n")
	b.WriteString(h.Stats)
	b.WriteString("\n\n")

	b.WriteString("Format the response as clear, professional release notes in markdown.")
	return b.String()
}
