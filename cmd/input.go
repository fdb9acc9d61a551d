package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/chainpulse/narrative-radar/internal/signal"
)

// eventInput is the on-disk JSON shape for a signal event. It exists so
// internal/signal stays free of encoding concerns; the CLI is the only
// thing that reads events off a filesystem.
type eventInput struct {
	Source    string             `json:"source"`
	Timestamp time.Time          `json:"timestamp"`
	Title     string             `json:"title"`
	Text      string             `json:"text"`
	URL       string             `json:"url"`
	Author    string             `json:"author"`
	Relevance float64            `json:"relevance"`
	Metrics   map[string]float64 `json:"metrics"`
}

func (in eventInput) toEvent() signal.Event {
	source := signal.Source(in.Source)
	return signal.Event{
		Source:    source,
		Domain:    signal.DomainOf(source),
		Timestamp: in.Timestamp,
		Title:     in.Title,
		Text:      in.Text,
		URL:       in.URL,
		Author:    in.Author,
		Relevance: in.Relevance,
		Metrics:   in.Metrics,
	}
}

func loadEvents(path string) ([]signal.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open events file: %w", err)
	}
	defer f.Close()

	var inputs []eventInput
	if err := json.NewDecoder(f).Decode(&inputs); err != nil {
		return nil, fmt.Errorf("decode events file: %w", err)
	}

	events := make([]signal.Event, len(inputs))
	for i, in := range inputs {
		events[i] = in.toEvent()
	}
	return events, nil
}

// aliasFileEntry is the on-disk JSON shape for one alias table row.
type aliasFileEntry struct {
	Canonical string   `json:"canonical"`
	Forms     []string `json:"forms"`
}

func loadAliases(path string) (map[string][]string, error) {
	if path == "" {
		return map[string][]string{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open alias file: %w", err)
	}
	defer f.Close()

	var entries []aliasFileEntry
	if err := json.NewDecoder(f).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode alias file: %w", err)
	}

	out := make(map[string][]string, len(entries))
	for _, e := range entries {
		out[e.Canonical] = e.Forms
	}
	return out, nil
}
