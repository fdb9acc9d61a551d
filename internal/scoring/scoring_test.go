package scoring

import (
	"testing"
	"time"

	"github.com/chainpulse/narrative-radar/internal/config"
	"github.com/chainpulse/narrative-radar/internal/narrative"
	"github.com/chainpulse/narrative-radar/internal/signal"
)

func mkEvent(id string, ts time.Time, source signal.Source, author string, entities []string) signal.Event {
	return signal.Event{
		ID:        id,
		Source:    source,
		Domain:    signal.DomainOf(source),
		Timestamp: ts,
		Title:     "event " + id,
		Author:    author,
		Entities:  entities,
	}
}

func candidateFrom(label string, entities []string, members []signal.Event, window narrative.Window) (narrative.Candidate, map[string]signal.Event) {
	byID := map[string]signal.Event{}
	ids := make([]string, len(members))
	for i, e := range members {
		byID[e.ID] = e
		ids[i] = e.ID
	}
	return narrative.Candidate{Label: label, Entities: entities, Members: ids, Window: window}, byID
}

func TestScoreBoundsAlwaysInUnitInterval(t *testing.T) {
	cfg := config.Default()
	base := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	ctx := signal.RunContext{
		WindowStart:   base,
		WindowEnd:     base.Add(7 * 24 * time.Hour),
		BaselineStart: base.Add(-21 * 24 * time.Hour),
		BaselineEnd:   base,
	}

	var members []signal.Event
	for i := 0; i < 12; i++ {
		members = append(members, mkEvent(
			"m"+string(rune('a'+i)),
			base.Add(time.Duration(i)*time.Hour),
			signal.SourceTwitter,
			"author1",
			[]string{"Solana"},
		))
	}
	cand, byID := candidateFrom("Solana", []string{"Solana"}, members, narrative.Window{Start: base, End: base.Add(11 * time.Hour)})

	ranked := Run([]narrative.Candidate{cand}, byID, ctx, nil, cfg)
	r := ranked[0]

	if r.Score < 0 || r.Score > 1 {
		t.Fatalf("Score = %v, want in [0,1]", r.Score)
	}
	for name, v := range map[string]float64{
		"velocity":    r.Features.Velocity,
		"breadth":     r.Features.Breadth,
		"cross":       r.Features.Cross,
		"novelty":     r.Features.Novelty,
		"credibility": r.Features.Credibility,
	} {
		if v < 0 || v > 1 {
			t.Errorf("feature %s = %v, want in [0,1]", name, v)
		}
	}
}

func TestS1CrossDomainBeatsSingleDomain(t *testing.T) {
	cfg := config.Default()
	base := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	ctx := signal.RunContext{
		WindowStart:   base,
		WindowEnd:     base.Add(24 * time.Hour),
		BaselineStart: base.Add(-72 * time.Hour),
		BaselineEnd:   base,
	}

	var membersA, membersB []signal.Event
	for i := 0; i < 5; i++ {
		ts := base.Add(time.Duration(i) * time.Hour)
		membersA = append(membersA, mkEvent("a-on-"+string(rune('a'+i)), ts, signal.SourceTxActivity, "author", []string{"Solana"}))
		membersA = append(membersA, mkEvent("a-off-"+string(rune('a'+i)), ts, signal.SourceGitHub, "author2", []string{"Solana"}))
	}
	for i := 0; i < 10; i++ {
		ts := base.Add(time.Duration(i) * time.Hour)
		membersB = append(membersB, mkEvent("b-"+string(rune('a'+i)), ts, signal.SourceGitHub, "author", []string{"Solana"}))
	}

	candA, byIDA := candidateFrom("Solana A", []string{"Solana"}, membersA, narrative.Window{Start: base, End: base.Add(4 * time.Hour)})
	candB, byIDB := candidateFrom("Solana B", []string{"Solana"}, membersB, narrative.Window{Start: base, End: base.Add(9 * time.Hour)})

	merged := map[string]signal.Event{}
	for k, v := range byIDA {
		merged[k] = v
	}
	for k, v := range byIDB {
		merged[k] = v
	}

	ranked := Run([]narrative.Candidate{candA, candB}, merged, ctx, nil, cfg)
	if ranked[0].Label != "Solana A" {
		t.Fatalf("ranked[0].Label = %q, want %q (cross-domain narrative should rank first)", ranked[0].Label, "Solana A")
	}
}

func TestS2SpamBurstPenalty(t *testing.T) {
	base := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	var burst []signal.Event
	for i := 0; i < 7; i++ {
		burst = append(burst, mkEvent("b"+string(rune('a'+i)), base.Add(time.Duration(i)*4*time.Minute), signal.SourceTwitter, "a"+string(rune('a'+i)), nil))
	}
	for i := 0; i < 3; i++ {
		burst = append(burst, mkEvent("c"+string(rune('a'+i)), base.Add(time.Duration(i)*24*time.Hour), signal.SourceTwitter, "x"+string(rune('a'+i)), nil))
	}

	if p := spamPenalty(burst); p < 0.4 {
		t.Errorf("spamPenalty(burst) = %v, want >= 0.4", p)
	}

	var uniform []signal.Event
	for i := 0; i < 10; i++ {
		uniform = append(uniform, mkEvent("u"+string(rune('a'+i)), base.Add(time.Duration(i)*24*time.Hour), signal.SourceTwitter, "u"+string(rune('a'+i)), nil))
	}
	if p := spamPenalty(uniform); p != 0 {
		t.Errorf("spamPenalty(uniform) = %v, want 0", p)
	}
}

func TestS3SingleSourceDominance(t *testing.T) {
	base := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	var members []signal.Event
	for i := 0; i < 8; i++ {
		members = append(members, mkEvent("t"+string(rune('a'+i)), base.Add(time.Duration(i)*24*time.Hour), signal.SourceTwitter, "a"+string(rune('a'+i)), nil))
	}
	for i := 0; i < 2; i++ {
		members = append(members, mkEvent("g"+string(rune('a'+i)), base.Add(time.Duration(i)*24*time.Hour), signal.SourceGitHub, "g"+string(rune('a'+i)), nil))
	}

	if p := singleSourcePenalty(members); p < 0.33 {
		t.Errorf("singleSourcePenalty() = %v, want >= 0.33", p)
	}
}

func TestS4NoveltyLift(t *testing.T) {
	cfg := config.Default()
	baseTime := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	baseline := []signal.Event{
		mkEvent("base1", baseTime, signal.SourceGitHub, "x", []string{"Jupiter"}),
	}

	allNovel := novelty([]string{"Solana"}, baseline, cfg)
	if allNovel != 1.0 {
		t.Errorf("novelty() for entirely-absent entities = %v, want 1.0", allNovel)
	}

	allSeen := novelty([]string{"Jupiter"}, baseline, cfg)
	if allSeen != cfg.Scoring.NoveltyFloor {
		t.Errorf("novelty() for entities all in baseline = %v, want novelty floor %v", allSeen, cfg.Scoring.NoveltyFloor)
	}
}

func TestBoundaryAllOffchainCrossIsZero(t *testing.T) {
	base := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	var members []signal.Event
	for i := 0; i < 5; i++ {
		members = append(members, mkEvent("m"+string(rune('a'+i)), base.Add(time.Duration(i)*time.Hour), signal.SourceGitHub, "a", []string{"Solana"}))
	}
	if c := crossDomain(members); c != 0 {
		t.Errorf("crossDomain() for all-offchain members = %v, want 0", c)
	}
}

func TestBoundaryZeroBaselineVelocityIsOne(t *testing.T) {
	cfg := config.Default()
	base := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	ctx := signal.RunContext{
		WindowStart:   base,
		WindowEnd:     base.Add(24 * time.Hour),
		BaselineStart: base.Add(-72 * time.Hour),
		BaselineEnd:   base,
	}
	members := []signal.Event{mkEvent("m1", base, signal.SourceGitHub, "a", []string{"Solana"})}

	v := velocity(members, ctx, nil, map[string]bool{"Solana": true}, cfg)
	if v != 1.0 {
		t.Errorf("velocity() with zero baseline events = %v, want 1.0", v)
	}
}

func TestPenaltyDirection(t *testing.T) {
	cfg := config.Default()
	base := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	ctx := signal.RunContext{
		WindowStart:   base,
		WindowEnd:     base.Add(24 * time.Hour),
		BaselineStart: base.Add(-24 * time.Hour),
		BaselineEnd:   base,
	}

	var lowPenaltyMembers, highPenaltyMembers []signal.Event
	for i := 0; i < 10; i++ {
		ts := base.Add(time.Duration(i) * 2 * time.Hour)
		lowPenaltyMembers = append(lowPenaltyMembers, mkEvent("l"+string(rune('a'+i)), ts, signal.SourceGitHub, "a"+string(rune('a'+i)), []string{"Solana"}))
	}
	for i := 0; i < 10; i++ {
		ts := base.Add(time.Duration(i) * 2 * time.Hour)
		author := "dominant"
		highPenaltyMembers = append(highPenaltyMembers, mkEvent("h"+string(rune('a'+i)), ts, signal.SourceGitHub, author, []string{"Solana"}))
	}

	low, lowByID := candidateFrom("Solana Low", []string{"Solana"}, lowPenaltyMembers, narrative.Window{Start: base, End: base.Add(18 * time.Hour)})
	high, highByID := candidateFrom("Solana High", []string{"Solana"}, highPenaltyMembers, narrative.Window{Start: base, End: base.Add(18 * time.Hour)})

	merged := map[string]signal.Event{}
	for k, v := range lowByID {
		merged[k] = v
	}
	for k, v := range highByID {
		merged[k] = v
	}

	ranked := Run([]narrative.Candidate{low, high}, merged, ctx, nil, cfg)

	var lowScore, highScore float64
	for _, r := range ranked {
		if r.Label == "Solana Low" {
			lowScore = r.Score
		}
		if r.Label == "Solana High" {
			highScore = r.Score
		}
	}
	if highScore >= lowScore {
		t.Errorf("narrative with higher author-dominance penalty scored %v, want lower than %v", highScore, lowScore)
	}
}

func TestOrderingIsStableTotalOrder(t *testing.T) {
	cfg := config.Default()
	base := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	ctx := signal.RunContext{WindowStart: base, WindowEnd: base.Add(24 * time.Hour), BaselineStart: base.Add(-24 * time.Hour), BaselineEnd: base}

	m := []signal.Event{mkEvent("m1", base, signal.SourceGitHub, "a", []string{"X"})}
	candA, byIDA := candidateFrom("Zeta", []string{"X"}, m, narrative.Window{Start: base, End: base})
	m2 := []signal.Event{mkEvent("m2", base, signal.SourceGitHub, "a", []string{"Y"})}
	candB, byIDB := candidateFrom("Alpha", []string{"Y"}, m2, narrative.Window{Start: base, End: base})

	merged := map[string]signal.Event{}
	for k, v := range byIDA {
		merged[k] = v
	}
	for k, v := range byIDB {
		merged[k] = v
	}

	var first []narrative.Ranked
	for i := 0; i < 5; i++ {
		ranked := Run([]narrative.Candidate{candA, candB}, merged, ctx, nil, cfg)
		if i == 0 {
			first = ranked
			continue
		}
		if len(ranked) != len(first) {
			t.Fatalf("non-deterministic ranked length across runs")
		}
		for j := range ranked {
			if ranked[j].Label != first[j].Label || ranked[j].Score != first[j].Score {
				t.Fatalf("ordering not deterministic: run %d differs from run 0 at index %d", i, j)
			}
		}
	}
}
