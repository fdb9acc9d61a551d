// Package social defines the shape a Twitter/X-style connector would fill
// in. No pack repo carries a concrete client for this surface, so only the
// interface and a deterministic in-memory double are shipped; a real
// implementation would satisfy Fetcher against net/http.
package social

import (
	"context"
	"time"

	"github.com/chainpulse/narrative-radar/internal/signal"
)

// Post is one observed social post, already decoded from whatever API
// produced it.
type Post struct {
	ID        string
	Author    string
	Followers int
	Text      string
	URL       string
	Timestamp time.Time
}

// Fetcher retrieves posts matching a query since a given time. A real
// implementation wraps an authenticated HTTP client; this package ships
// only the contract and a fixed double for tests.
type Fetcher interface {
	Fetch(ctx context.Context, query string, since time.Time) ([]Post, error)
}

// Double is a Fetcher backed by a fixed in-memory slice, used by tests.
type Double struct {
	Posts []Post
}

func (d Double) Fetch(_ context.Context, _ string, since time.Time) ([]Post, error) {
	var out []Post
	for _, p := range d.Posts {
		if !p.Timestamp.Before(since) {
			out = append(out, p)
		}
	}
	return out, nil
}

// ToEvents converts posts into signal.Events. A post's follower count
// stands in for the credibility tier the scorer reads at internal/scoring.
func ToEvents(posts []Post) []signal.Event {
	out := make([]signal.Event, 0, len(posts))
	for _, p := range posts {
		out = append(out, signal.Event{
			Source:    signal.SourceTwitter,
			Timestamp: p.Timestamp,
			Title:     p.Text,
			URL:       p.URL,
			Author:    p.Author,
			Relevance: 0.5,
			Metrics:   map[string]float64{"followers": float64(p.Followers)},
		})
	}
	return out
}
