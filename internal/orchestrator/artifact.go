package orchestrator

import (
	"time"

	"github.com/chainpulse/narrative-radar/internal/narrative"
)

// Totals summarizes how many events survived each stage.
type Totals struct {
	Ingested   int `json:"ingested"`
	AfterDedup int `json:"after_dedup"`
	Candidates int `json:"candidates"`
	Ranked     int `json:"ranked"`
}

// WindowJSON is the stable-encoding form of an analysis interval.
type WindowJSON struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// FeaturesJSON is the stable-encoding form of narrative.Features.
type FeaturesJSON struct {
	Velocity    Fixed3 `json:"velocity"`
	Breadth     Fixed3 `json:"breadth"`
	Cross       Fixed3 `json:"cross"`
	Novelty     Fixed3 `json:"novelty"`
	Credibility Fixed3 `json:"credibility"`
}

// ScoreBreakdownJSON is the stable-encoding form of narrative.ScoreBreakdown.
type ScoreBreakdownJSON struct {
	Velocity     Fixed3 `json:"velocity"`
	Breadth      Fixed3 `json:"breadth"`
	Cross        Fixed3 `json:"cross"`
	Novelty      Fixed3 `json:"novelty"`
	Credibility  Fixed3 `json:"credibility"`
	Spam         Fixed3 `json:"spam"`
	SingleSource Fixed3 `json:"single_source"`
}

// ConfidenceJSON is the stable-encoding form of narrative.Confidence.
type ConfidenceJSON struct {
	Tier  string `json:"tier"`
	Value Fixed3 `json:"value"`
}

// RankedNarrativeJSON is the stable-encoding form of a narrative.Ranked,
// field order fixed so two runs over identical input encode identically.
type RankedNarrativeJSON struct {
	Label          string             `json:"label"`
	Entities       []string           `json:"entities"`
	Members        []string           `json:"members"`
	Window         WindowJSON         `json:"window"`
	Features       FeaturesJSON       `json:"features"`
	Score          Fixed3             `json:"score"`
	ScoreBreakdown ScoreBreakdownJSON `json:"score_breakdown"`
	Confidence     ConfidenceJSON     `json:"confidence"`
	Evidence       []string           `json:"evidence"`
	WhyNow         string             `json:"why_now"`
}

// RunArtifact is the single deterministic output value of a pipeline run.
type RunArtifact struct {
	RunID         string                `json:"run_id"`
	GeneratedAt   time.Time             `json:"generated_at"`
	Window        WindowJSON            `json:"window"`
	Baseline      WindowJSON            `json:"baseline"`
	SourceSummary map[string]int        `json:"source_summary"`
	Totals        Totals                `json:"totals"`
	Narratives    []RankedNarrativeJSON `json:"narratives"`
	Counters      map[string]int        `json:"counters"`
	Timings       map[string]Fixed3     `json:"timings"`
	Notes         string                `json:"notes,omitempty"`
}

func toRankedJSON(r narrative.Ranked) RankedNarrativeJSON {
	entities := r.Entities
	if entities == nil {
		entities = []string{}
	}
	members := r.Members
	if members == nil {
		members = []string{}
	}
	evidence := r.Evidence
	if evidence == nil {
		evidence = []string{}
	}

	return RankedNarrativeJSON{
		Label:    r.Label,
		Entities: entities,
		Members:  members,
		Window:   WindowJSON{Start: r.Window.Start, End: r.Window.End},
		Features: FeaturesJSON{
			Velocity:    Fixed3(r.Features.Velocity),
			Breadth:     Fixed3(r.Features.Breadth),
			Cross:       Fixed3(r.Features.Cross),
			Novelty:     Fixed3(r.Features.Novelty),
			Credibility: Fixed3(r.Features.Credibility),
		},
		Score: Fixed3(r.Score),
		ScoreBreakdown: ScoreBreakdownJSON{
			Velocity:     Fixed3(r.ScoreBreakdown.Velocity),
			Breadth:      Fixed3(r.ScoreBreakdown.Breadth),
			Cross:        Fixed3(r.ScoreBreakdown.Cross),
			Novelty:      Fixed3(r.ScoreBreakdown.Novelty),
			Credibility:  Fixed3(r.ScoreBreakdown.Credibility),
			Spam:         Fixed3(r.ScoreBreakdown.Spam),
			SingleSource: Fixed3(r.ScoreBreakdown.SingleSource),
		},
		Confidence: ConfidenceJSON{
			Tier:  string(r.Confidence.Tier),
			Value: Fixed3(r.Confidence.Value),
		},
		Evidence: evidence,
		WhyNow:   r.WhyNow,
	}
}
