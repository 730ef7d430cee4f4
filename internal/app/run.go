package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"relnotes/internal/format"
	"relnotes/internal/gitlog"
	"relnotes/internal/model"
)

// Generator produces prose release notes for a history, typically by calling
// a text-generation API. Implementations report failures as errors; the
// pipeline degrades to the structured fallback instead of aborting.
type Generator interface {
	Notes(h model.History) (string, error)
}

// Pipeline orchestrates the full workflow: git history -> AI notes ->
// structured fallback -> output. A nil Generator disables AI generation.
type Pipeline struct {
	Source    gitlog.Source
	Generator Generator
	Out       io.Writer
}

// Run executes the pipeline and writes exactly one release-notes block to
// Out. It returns an error for the two fatal conditions: no current tag and
// empty commit history.
func (p Pipeline) Run(opts Options) error {
	if opts.CurrentTag == "" {
		return errors.New("current tag not set")
	}

	previous := opts.PreviousTag
	if previous == "" {
		previous = "none"
	}
	logrus.Infof("generating release notes for %s (previous: %s)", opts.CurrentTag, previous)

	commits, stats, err := p.Source.Changes(opts.CurrentTag, opts.PreviousTag)
	if err != nil {
		// Degrade to empty history; the no-commits check below decides
		// whether that is fatal.
		logrus.WithError(err).Warn("collecting git history failed")
		commits, stats = nil, ""
	}
	if len(commits) == 0 {
		return errors.New("no commits found")
	}

	history := model.History{
		CurrentTag:  opts.CurrentTag,
		PreviousTag: opts.PreviousTag,
		Commits:     commits,
		Stats:       stats,
	}

	var notes string
	if p.Generator != nil {
		notes, err = p.Generator.Notes(history)
		if err != nil {
			logrus.WithError(err).Warn("AI generation failed")
			notes = ""
		}
	}

	if notes == "" {
		logrus.Info("using structured format for release notes")
		notes = format.Notes(history)
	}

	fmt.Fprintln(p.Out, notes)
	return nil
}
