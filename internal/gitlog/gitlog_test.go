package gitlog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"relnotes/internal/model"
)

func TestParseCommitLines(t *testing.T) {
	out := "abc1234\x1fFix crash on startup\ndef5678\x1fAdd dark mode\n"

	commits := parseCommitLines(out)
	assert.Equal(t, []model.Commit{
		{ShortSHA: "abc1234", Subject: "Fix crash on startup"},
		{ShortSHA: "def5678", Subject: "Add dark mode"},
	}, commits)
}

func TestParseCommitLinesSkipsBlanks(t *testing.T) {
	assert.Empty(t, parseCommitLines(""))
	assert.Empty(t, parseCommitLines("\n\n"))
}

func TestParseCommitLinesSubjectWithSeparatorLookalikes(t *testing.T) {
	// subjects may contain anything except the unit separator itself
	commits := parseCommitLines("1234abc\x1ffeat: add a..b range parsing (#42)")
	assert.Equal(t, "feat: add a..b range parsing (#42)", commits[0].Subject)
}
