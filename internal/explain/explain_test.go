package explain

import (
	"strings"
	"testing"
	"time"

	"github.com/chainpulse/narrative-radar/internal/config"
	"github.com/chainpulse/narrative-radar/internal/narrative"
	"github.com/chainpulse/narrative-radar/internal/signal"
)

func TestEvidenceCapsAtEightAndDiversifiesSources(t *testing.T) {
	base := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	var members []signal.Event
	for i := 0; i < 6; i++ {
		members = append(members, signal.Event{
			ID:        "gh" + string(rune('a'+i)),
			Source:    signal.SourceGitHub,
			Timestamp: base.Add(time.Duration(i) * time.Hour),
			Title:     "github event",
			Relevance: 0.9 - float64(i)*0.01,
		})
	}
	members = append(members, signal.Event{
		ID:        "tx1",
		Source:    signal.SourceTxActivity,
		Timestamp: base,
		Title:     "tx event",
		Relevance: 0.5,
	})

	got := evidence(members)
	if len(got) > maxEvidence {
		t.Fatalf("evidence() returned %d items, want <= %d", len(got), maxEvidence)
	}
	if !contains(got, "tx1") {
		t.Errorf("evidence() = %v, want the tx_activity event included via round-robin diversity", got)
	}
}

func contains(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func TestWhyNowOmitsClausesCleanly(t *testing.T) {
	r := narrative.Ranked{
		Features: narrative.Features{Velocity: 0.1, Cross: 0.1, Novelty: 0.1},
	}
	members := []signal.Event{
		{ID: "m1", Title: "some update", Timestamp: time.Now().UTC()},
	}

	got := whyNow(r, members, 0.0)
	if strings.Contains(got, "; ;") || strings.HasPrefix(got, "; ") {
		t.Errorf("whyNow() left a grammatical artifact: %q", got)
	}
	if !strings.Contains(strings.ToLower(got), "most recently triggered") {
		t.Errorf("whyNow() = %q, want the most-recent-trigger clause present", got)
	}
}

func TestWhyNowFallbackWhenNoClauseFires(t *testing.T) {
	r := narrative.Ranked{}
	got := whyNow(r, nil, 0)
	if got == "" {
		t.Error("whyNow() with no members and no clauses returned empty string")
	}
}

func TestConfidenceTierBuckets(t *testing.T) {
	base := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	var members []signal.Event
	for i := 0; i < 10; i++ {
		source := signal.SourceGitHub
		if i%2 == 0 {
			source = signal.SourceTxActivity
		}
		if i%3 == 0 {
			source = signal.SourceTwitter
		}
		members = append(members, signal.Event{
			ID:        "m" + string(rune('a'+i)),
			Source:    source,
			Domain:    signal.DomainOf(source),
			Timestamp: base.Add(time.Duration(i) * time.Hour),
		})
	}

	r := narrative.Ranked{}
	got := confidence(r, members)
	if got.Tier != narrative.TierStrong {
		t.Errorf("confidence().Tier = %v, want %v (10 members, both domains, 3+ sources)", got.Tier, narrative.TierStrong)
	}
}

func TestConfidencePenalizedBySingleSourceAndSpam(t *testing.T) {
	members := []signal.Event{
		{ID: "m1", Source: signal.SourceGitHub, Domain: signal.DomainOffchain, Timestamp: time.Now().UTC()},
		{ID: "m2", Source: signal.SourceGitHub, Domain: signal.DomainOffchain, Timestamp: time.Now().UTC()},
		{ID: "m3", Source: signal.SourceGitHub, Domain: signal.DomainOffchain, Timestamp: time.Now().UTC()},
	}
	r := narrative.Ranked{
		Penalties: narrative.Penalties{SingleSource: 0.5, Spam: 0.5},
	}

	got := confidence(r, members)
	if got.Tier != narrative.TierLow {
		t.Errorf("confidence().Tier = %v, want %v when both penalties fire", got.Tier, narrative.TierLow)
	}
}

func TestRunEnrichesWithoutChangingScore(t *testing.T) {
	cfg := config.Default()
	base := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	events := map[string]signal.Event{
		"m1": {ID: "m1", Source: signal.SourceGitHub, Domain: signal.DomainOffchain, Timestamp: base, Title: "event one", Relevance: 0.8},
		"m2": {ID: "m2", Source: signal.SourceTxActivity, Domain: signal.DomainOnchain, Timestamp: base.Add(time.Hour), Title: "event two", Relevance: 0.6},
	}
	ranked := []narrative.Ranked{
		{
			Candidate: narrative.Candidate{Label: "Solana", Members: []string{"m1", "m2"}},
			Score:     0.42,
			Features:  narrative.Features{Cross: 0.5},
		},
	}

	out := Run(ranked, events, cfg)
	if out[0].Score != 0.42 {
		t.Errorf("Run() changed Score from 0.42 to %v", out[0].Score)
	}
	if out[0].WhyNow == "" {
		t.Error("Run() left WhyNow empty")
	}
	if len(out[0].Evidence) == 0 {
		t.Error("Run() left Evidence empty")
	}
}
