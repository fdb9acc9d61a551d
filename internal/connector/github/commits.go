package github

import (
	"fmt"
	"time"

	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing/object"
	"github.com/go-git/go-git/v6/plumbing/storer"
	"github.com/go-git/go-git/v6/storage/memory"
)

// commitInfo is the trimmed slice of a commit the radar cares about: who,
// when, and the subject line. Diff-level detail isn't a narrative signal.
type commitInfo struct {
	hash      string
	author    string
	subject   string
	body      string
	timestamp time.Time
}

// fetchCommits clones repoURL into memory and walks its HEAD history back
// to since. The clone is in-memory and discarded after the walk, since this
// is a one-shot analysis rather than a persistent mirror.
func fetchCommits(repoURL string, since time.Time) ([]commitInfo, error) {
	repo, err := git.Clone(memory.NewStorage(), nil, &git.CloneOptions{URL: repoURL})
	if err != nil {
		return nil, fmt.Errorf("github connector: clone %s: %w", repoURL, err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("github connector: resolve HEAD: %w", err)
	}

	iter, err := repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, fmt.Errorf("github connector: log: %w", err)
	}

	var out []commitInfo
	err = iter.ForEach(func(c *object.Commit) error {
		if c.Committer.When.Before(since) {
			return storer.ErrStop
		}
		subject, body := splitMessage(c.Message)
		out = append(out, commitInfo{
			hash:      c.Hash.String(),
			author:    c.Author.Name,
			subject:   subject,
			body:      body,
			timestamp: c.Committer.When,
		})
		return nil
	})
	if err != nil && err != storer.ErrStop {
		return nil, fmt.Errorf("github connector: walk commits: %w", err)
	}

	return out, nil
}

func splitMessage(message string) (subject, body string) {
	for i, r := range message {
		if r == '\n' {
			return message[:i], message[i+1:]
		}
	}
	return message, ""
}
