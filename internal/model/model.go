package model

import (
	"fmt"
	"strings"
)

// Commit is one entry in the release range.
type Commit struct {
	ShortSHA string
	Subject  string
}

// Line renders the commit the way it appears in release notes and prompts.
func (c Commit) Line() string {
	return fmt.Sprintf("- %s (%s)", c.Subject, c.ShortSHA)
}

// History bundles everything we know about the changes between two tags.
type History struct {
	CurrentTag  string
	PreviousTag string
	Commits     []Commit
	Stats       string
}

// CommitList renders the commits as a newline-joined bullet list.
func (h History) CommitList() string {
	lines := make([]string, 0, len(h.Commits))
	for _, c := range h.Commits {
		lines = append(lines, c.Line())
	}
	return strings.Join(lines, "\n")
}
