package github

import (
	"context"
	"fmt"
	"time"

	"github.com/chainpulse/narrative-radar/internal/signal"
)

// Fetch turns owner/repo's commit, issue/PR, and release activity since the
// given time into signal.Events. repoURL is used for the commit clone; it
// is typically https://github.com/<owner>/<repo>.
func (c *Connector) Fetch(ctx context.Context, owner, repo, repoURL string, since time.Time) ([]signal.Event, error) {
	var events []signal.Event

	commits, err := fetchCommits(repoURL, since)
	if err != nil {
		return nil, err
	}
	for _, ci := range commits {
		events = append(events, signal.Event{
			Source:    signal.SourceGitHub,
			Timestamp: ci.timestamp,
			Title:     ci.subject,
			Text:      ci.body,
			URL:       fmt.Sprintf("%s/commit/%s", repoURL, ci.hash),
			Author:    ci.author,
			Relevance: 0.55,
		})
	}

	activity, err := c.fetchIssuesAndPRs(ctx, owner, repo, since)
	if err != nil {
		return nil, err
	}
	releases, err := c.fetchReleases(ctx, owner, repo, since)
	if err != nil {
		return nil, err
	}
	activity = append(activity, releases...)

	for _, a := range activity {
		relevance := 0.5
		if a.kind == "release" {
			relevance = 0.75
		}
		events = append(events, signal.Event{
			Source:    signal.SourceGitHub,
			Timestamp: a.timestamp,
			Title:     a.title,
			Text:      a.body,
			URL:       a.url,
			Author:    a.author,
			Relevance: relevance,
		})
	}

	stars, err := c.starCount(ctx, owner, repo)
	if err != nil {
		return nil, err
	}
	if stars > 0 {
		events = append(events, signal.Event{
			Source:    signal.SourceGitHub,
			Timestamp: time.Now().UTC(),
			Title:     fmt.Sprintf("%s/%s star count snapshot", owner, repo),
			Text:      fmt.Sprintf("%s/%s has %d stargazers", owner, repo, stars),
			URL:       repoURL,
			Relevance: 0.3,
			Metrics:   map[string]float64{"stars": float64(stars)},
		})
	}

	return events, nil
}
