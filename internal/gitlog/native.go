package gitlog

import (
	"fmt"
	"strings"

	gitlib "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"relnotes/internal/model"
)

// Native collects history with go-git instead of shelling out. Useful when
// no git binary is installed, e.g. minimal CI containers.
type Native struct {
	repo *gitlib.Repository
}

// OpenNative opens the repository at path, searching upward for .git the way
// the git CLI does.
func OpenNative(path string) (*Native, error) {
	if path == "" {
		path = "."
	}
	repo, err := gitlib.PlainOpenWithOptions(path, &gitlib.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository %s: %w", path, err)
	}
	return &Native{repo: repo}, nil
}

// NewNative wraps an already-open repository. Tests use this with in-memory
// repositories.
func NewNative(repo *gitlib.Repository) *Native {
	return &Native{repo: repo}
}

func (n *Native) Changes(current, previous string) ([]model.Commit, string, error) {
	cur, err := n.resolveCommit(current)
	if err != nil {
		return nil, "", err
	}

	var prev *object.Commit
	if previous != "" {
		prev, err = n.resolveCommit(previous)
		if err != nil {
			return nil, "", err
		}
	}

	commits, err := n.commitsBetween(cur, prev)
	if err != nil {
		return nil, "", err
	}

	base := prev
	if base == nil {
		base, err = n.rootCommit(cur)
		if err != nil {
			return nil, "", err
		}
	}

	stats, err := diffStatText(base, cur)
	if err != nil {
		return nil, "", err
	}

	return commits, stats, nil
}

func (n *Native) resolveCommit(rev string) (*object.Commit, error) {
	hash, err := n.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", rev, err)
	}
	commit, err := n.repo.CommitObject(*hash)
	if err == nil {
		return commit, nil
	}

	// Annotated tags resolve to a tag object; peel down to the commit.
	cur := *hash
	for i := 0; i < 8; i++ {
		tag, tagErr := n.repo.TagObject(cur)
		if tagErr != nil {
			break
		}
		switch tag.TargetType {
		case plumbing.CommitObject:
			return n.repo.CommitObject(tag.Target)
		case plumbing.TagObject:
			cur = tag.Target
		default:
			return nil, fmt.Errorf("resolve %s: tag points at %s, not a commit", rev, tag.TargetType)
		}
	}
	return nil, fmt.Errorf("resolve %s: %w", rev, err)
}

// commitsBetween lists ancestors of cur that are not ancestors of prev,
// newest first, matching git log prev..cur.
func (n *Native) commitsBetween(cur, prev *object.Commit) ([]model.Commit, error) {
	excluded := map[plumbing.Hash]bool{}
	if prev != nil {
		iter := object.NewCommitPreorderIter(prev, nil, nil)
		err := iter.ForEach(func(c *object.Commit) error {
			excluded[c.Hash] = true
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s ancestry: %w", prev.Hash, err)
		}
	}

	iter, err := n.repo.Log(&gitlib.LogOptions{From: cur.Hash, Order: gitlib.LogOrderCommitterTime})
	if err != nil {
		return nil, fmt.Errorf("read commits: %w", err)
	}
	defer iter.Close()

	var commits []model.Commit
	err = iter.ForEach(func(c *object.Commit) error {
		if excluded[c.Hash] {
			return nil
		}
		commits = append(commits, model.Commit{
			ShortSHA: c.Hash.String()[:7],
			Subject:  commitSubject(c.Message),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterate commits: %w", err)
	}
	return commits, nil
}

func (n *Native) rootCommit(cur *object.Commit) (*object.Commit, error) {
	iter := object.NewCommitPreorderIter(cur, nil, nil)
	defer iter.Close()

	var root *object.Commit
	err := iter.ForEach(func(c *object.Commit) error {
		if c.NumParents() == 0 && root == nil {
			root = c
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s ancestry: %w", cur.Hash, err)
	}
	if root == nil {
		return nil, fmt.Errorf("no root commit found for %s", cur.Hash)
	}
	return root, nil
}

func diffStatText(from, to *object.Commit) (string, error) {
	patch, err := from.Patch(to)
	if err != nil {
		return "", fmt.Errorf("diff %s %s: %w", from.Hash, to.Hash, err)
	}

	stats := patch.Stats()
	if len(stats) == 0 {
		return "", nil
	}

	var b strings.Builder
	b.WriteString(strings.TrimRight(stats.String(), "\n"))
	b.WriteString("\n")
	b.WriteString(shortStat(stats))
	return b.String(), nil
}

// shortStat reproduces git's diff --stat summary line, e.g.
// " 2 files changed, 40 insertions(+), 3 deletions(-)". Zero-valued
// insertion/deletion clauses are omitted, matching git.
func shortStat(stats object.FileStats) string {
	var added, deleted int
	for _, s := range stats {
		added += s.Addition
		deleted += s.Deletion
	}

	b := fmt.Sprintf(" %d %s changed", len(stats), plural(len(stats), "file"))
	if added > 0 {
		b += fmt.Sprintf(", %d %s(+)", added, plural(added, "insertion"))
	}
	if deleted > 0 {
		b += fmt.Sprintf(", %d %s(-)", deleted, plural(deleted, "deletion"))
	}
	return b
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func commitSubject(message string) string {
	subject, _, _ := strings.Cut(message, "\n")
	return strings.TrimSpace(subject)
}
