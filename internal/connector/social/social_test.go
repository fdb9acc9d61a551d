package social

import (
	"context"
	"testing"
	"time"
)

func TestDoubleFetchFiltersBySince(t *testing.T) {
	base := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	d := Double{Posts: []Post{
		{ID: "old", Timestamp: base.Add(-time.Hour)},
		{ID: "new", Timestamp: base.Add(time.Hour)},
	}}

	got, err := d.Fetch(context.Background(), "sol", base)
	if err != nil {
		t.Fatalf("Fetch() returned error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "new" {
		t.Errorf("Fetch() = %v, want only the post at or after since", got)
	}
}

func TestToEventsCarriesFollowerMetric(t *testing.T) {
	posts := []Post{{ID: "p1", Author: "alice", Followers: 25000, Text: "big news", Timestamp: time.Now().UTC()}}
	events := ToEvents(posts)
	if len(events) != 1 {
		t.Fatalf("ToEvents() returned %d events, want 1", len(events))
	}
	if events[0].Metric("followers") != 25000 {
		t.Errorf("followers metric = %v, want 25000", events[0].Metric("followers"))
	}
}
