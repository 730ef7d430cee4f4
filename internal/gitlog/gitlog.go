package gitlog

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"relnotes/internal/model"
)

// Source abstracts repository history access.
//
// The default implementation shells out to the git executable, but the
// interface allows alternative implementations (e.g. pure-Go) without
// changing callers, and lets tests substitute fakes.
type Source interface {
	// Changes returns the commits reachable from current but not previous,
	// newest first, plus a git-style diff-stat block for the same range.
	// When previous is empty the range starts at the repository root.
	Changes(current, previous string) ([]model.Commit, string, error)
}

// CLI collects history by running the git command-line tool.
type CLI struct {
	RepoPath string
}

func (c CLI) Changes(current, previous string) ([]model.Commit, string, error) {
	commits, err := c.commits(current, previous)
	if err != nil {
		return nil, "", err
	}

	base := previous
	if base == "" {
		base, err = c.rootCommit(current)
		if err != nil {
			return nil, "", err
		}
	}

	stats, err := c.diffStat(base, current)
	if err != nil {
		return nil, "", err
	}

	return commits, stats, nil
}

func (c CLI) commits(current, previous string) ([]model.Commit, error) {
	rangeSpec := current
	if previous != "" {
		rangeSpec = fmt.Sprintf("%s..%s", previous, current)
	}

	out, err := c.run("log", "--pretty=format:%h%x1f%s", rangeSpec)
	if err != nil {
		return nil, fmt.Errorf("git log %s: %w", rangeSpec, err)
	}
	return parseCommitLines(out), nil
}

func (c CLI) diffStat(from, to string) (string, error) {
	out, err := c.run("diff", "--stat", from, to)
	if err != nil {
		return "", fmt.Errorf("git diff --stat %s %s: %w", from, to, err)
	}
	return strings.TrimRight(out, "\n"), nil
}

// rootCommit walks the ancestry of rev down to the commit with no parents.
// Histories with several roots use the first one git reports.
func (c CLI) rootCommit(rev string) (string, error) {
	out, err := c.run("rev-list", "--max-parents=0", rev)
	if err != nil {
		return "", fmt.Errorf("git rev-list --max-parents=0 %s: %w", rev, err)
	}
	root, _, _ := strings.Cut(strings.TrimSpace(out), "\n")
	if root == "" {
		return "", fmt.Errorf("no root commit found for %s", rev)
	}
	return root, nil
}

func (c CLI) run(args ...string) (string, error) {
	if c.RepoPath != "" {
		args = append([]string{"-C", c.RepoPath}, args...)
	}
	cmd := exec.Command("git", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return "", fmt.Errorf("%v: %s", err, strings.TrimSpace(stderr.String()))
		}
		return "", err
	}
	return stdout.String(), nil
}

// parseCommitLines splits "shortSHA<US>subject" lines into commits.
func parseCommitLines(out string) []model.Commit {
	var commits []model.Commit
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		sha, subject, _ := strings.Cut(line, "\x1f")
		commits = append(commits, model.Commit{
			ShortSHA: strings.TrimSpace(sha),
			Subject:  strings.TrimSpace(subject),
		})
	}
	return commits
}
