package blog

import (
	"context"
	"testing"
	"time"
)

func TestDoubleFetchFiltersBySince(t *testing.T) {
	base := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	d := Double{Posts: []Post{
		{Title: "old post", Timestamp: base.Add(-time.Hour)},
		{Title: "new post", Timestamp: base.Add(time.Hour)},
	}}

	got, err := d.Fetch(context.Background(), "https://example.com/feed", base)
	if err != nil {
		t.Fatalf("Fetch() returned error: %v", err)
	}
	if len(got) != 1 || got[0].Title != "new post" {
		t.Errorf("Fetch() = %v, want only the post at or after since", got)
	}
}

func TestToEventsCarriesPublisherAsAuthor(t *testing.T) {
	posts := []Post{{Title: "release notes", Publisher: "solana-foundation", Timestamp: time.Now().UTC()}}
	events := ToEvents(posts)
	if len(events) != 1 {
		t.Fatalf("ToEvents() returned %d events, want 1", len(events))
	}
	if events[0].Author != "solana-foundation" {
		t.Errorf("Author = %q, want %q", events[0].Author, "solana-foundation")
	}
}
