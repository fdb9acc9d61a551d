// Package blog defines the shape an RSS/blog connector would fill in. As
// with internal/connector/social, no pack repo carries a concrete feed
// client, so only the interface and a fixed double ship here.
package blog

import (
	"context"
	"time"

	"github.com/chainpulse/narrative-radar/internal/signal"
)

// Post is one blog or RSS entry. Publisher is the canonical name the
// scorer's credibility table keys official blogs by (see
// config.Credibility.OfficialBlogs); it is not derived from the URL, since
// a blog can move hosts without losing its credibility standing.
type Post struct {
	Title     string
	Body      string
	URL       string
	Publisher string
	Timestamp time.Time
}

// Fetcher retrieves posts published to a feed since a given time.
type Fetcher interface {
	Fetch(ctx context.Context, feedURL string, since time.Time) ([]Post, error)
}

// Double is a Fetcher backed by a fixed in-memory slice.
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

// ToEvents converts posts into signal.Events. Author carries the
// publisher name the scorer's credibility table checks against
// config.Credibility.OfficialBlogs.
func ToEvents(posts []Post) []signal.Event {
	out := make([]signal.Event, 0, len(posts))
	for _, p := range posts {
		out = append(out, signal.Event{
			Source:    signal.SourceRSSBlog,
			Timestamp: p.Timestamp,
			Title:     p.Title,
			Text:      p.Body,
			URL:       p.URL,
			Author:    p.Publisher,
			Relevance: 0.55,
		})
	}
	return out
}
