package github

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/go-github/v77/github"
)

type activityItem struct {
	kind      string // "issue", "pull_request", "release"
	title     string
	body      string
	author    string
	url       string
	timestamp time.Time
}

// fetchIssuesAndPRs lists repository issues (go-github's ListByRepo returns
// both issues and pull requests) created since the given time. The API
// query selects by update time; issues updated since but created earlier
// are skipped.
func (c *Connector) fetchIssuesAndPRs(ctx context.Context, owner, repo string, since time.Time) ([]activityItem, error) {
	opts := &github.IssueListByRepoOptions{
		State:       "all",
		Since:       since,
		Sort:        "updated",
		Direction:   "desc",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var out []activityItem
	for {
		issues, resp, err := c.client.Issues.ListByRepo(ctx, owner, repo, opts)
		if err != nil {
			return nil, handleAPIError(err, "list issues")
		}
		for _, issue := range issues {
			if issue == nil || issue.GetCreatedAt().Before(since) {
				continue
			}
			kind := "issue"
			if issue.IsPullRequest() {
				kind = "pull_request"
			}
			author := ""
			if user := issue.GetUser(); user != nil {
				author = user.GetLogin()
			}
			out = append(out, activityItem{
				kind:      kind,
				title:     issue.GetTitle(),
				body:      issue.GetBody(),
				author:    author,
				url:       issue.GetHTMLURL(),
				timestamp: issue.GetCreatedAt().Time,
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return out, nil
}

// fetchReleases lists releases published since the given time.
func (c *Connector) fetchReleases(ctx context.Context, owner, repo string, since time.Time) ([]activityItem, error) {
	opts := &github.ListOptions{PerPage: 100}

	var out []activityItem
	for {
		releases, resp, err := c.client.Repositories.ListReleases(ctx, owner, repo, opts)
		if err != nil {
			return nil, handleAPIError(err, "list releases")
		}
		for _, r := range releases {
			if r == nil || r.GetPublishedAt().Before(since) {
				continue
			}
			author := ""
			if user := r.GetAuthor(); user != nil {
				author = user.GetLogin()
			}
			out = append(out, activityItem{
				kind:      "release",
				title:     r.GetName(),
				body:      r.GetBody(),
				author:    author,
				url:       r.GetHTMLURL(),
				timestamp: r.GetPublishedAt().Time,
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return out, nil
}

// starCount returns the repository's current stargazer count. Fetch reports
// it as one snapshot event, stamped with the fetch time, carrying a "stars"
// metric.
func (c *Connector) starCount(ctx context.Context, owner, repo string) (int, error) {
	r, _, err := c.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return 0, handleAPIError(err, "get repository")
	}
	return r.GetStargazersCount(), nil
}

func handleAPIError(err error, msg string) error {
	if err == nil {
		return nil
	}
	var rateLimitErr *github.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return fmt.Errorf("github connector: %s: rate limited (used %d of %d, resets %v): %w",
			msg, rateLimitErr.Rate.Used, rateLimitErr.Rate.Limit, rateLimitErr.Rate.Reset.Time, err)
	}
	return fmt.Errorf("github connector: %s: %w", msg, err)
}
