// Package github turns GitHub repository activity into signal.Event
// records: commit bursts from the repository's own history, and
// issue/PR/release activity from the GitHub API.
package github

import (
	"github.com/google/go-github/v77/github"
)

// Connector fetches repository activity for one owner/repo pair.
type Connector struct {
	client *github.Client
}

// NewConnector builds a Connector. An empty token still works against
// GitHub's unauthenticated rate limit.
func NewConnector(token string) *Connector {
	c := github.NewClient(nil)
	if token != "" {
		c = c.WithAuthToken(token)
	}
	return &Connector{client: c}
}
