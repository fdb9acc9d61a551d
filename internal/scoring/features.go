// Package scoring computes the per-narrative feature vector and composite
// score: velocity, breadth, cross-domain corroboration, novelty,
// credibility, and the spam/single-source penalties that pull the score
// back down.
package scoring

import (
	"math"
	"strings"

	"github.com/chainpulse/narrative-radar/internal/config"
	"github.com/chainpulse/narrative-radar/internal/signal"
)

const epsilon = 1e-9

// velocity maps acceleration (window rate over baseline rate) to [0,1] on a
// log scale, capped by a_max. A zero baseline rate with a nonzero window
// rate is treated as maximal acceleration.
func velocity(members []signal.Event, ctx signal.RunContext, baseline []signal.Event, entities map[string]bool, cfg *config.Config) float64 {
	rw := float64(len(members)) / ctx.WindowDays()

	overlapping := 0
	for _, e := range baseline {
		if intersectsAny(e.Entities, entities) {
			overlapping++
		}
	}
	rb := float64(overlapping) / ctx.BaselineDays()

	if rb == 0 && rw > 0 {
		return 1.0
	}

	acceleration := rw / math.Max(rb, epsilon)
	v := math.Log(1+acceleration) / math.Log(1+cfg.Scoring.AMax)
	return clamp01(v)
}

// breadth mixes entity, source, and author diversity within members.
func breadth(members []signal.Event, cfg *config.Config) float64 {
	entities := map[string]bool{}
	sources := map[signal.Source]bool{}
	authors := map[string]bool{}

	for _, e := range members {
		for _, ent := range e.Entities {
			entities[ent] = true
		}
		sources[e.Source] = true
		if e.Author != "" {
			authors[e.Author] = true
		}
	}

	entityDiversity := math.Min(1, float64(len(entities))/float64(cfg.Scoring.Diversity.Entities))
	sourceDiversity := math.Min(1, float64(len(sources))/float64(cfg.Scoring.Diversity.Sources))
	authorDiversity := math.Min(1, float64(len(authors))/float64(cfg.Scoring.Diversity.Authors))

	return clamp01(0.40*entityDiversity + 0.30*sourceDiversity + 0.30*authorDiversity)
}

// authorDiversity is broken out separately because the explainer's "why
// now" clause needs the raw sub-feature, not just its contribution to
// breadth.
func authorDiversity(members []signal.Event, cfg *config.Config) float64 {
	authors := map[string]bool{}
	for _, e := range members {
		if e.Author != "" {
			authors[e.Author] = true
		}
	}
	return math.Min(1, float64(len(authors))/float64(cfg.Scoring.Diversity.Authors))
}

// crossDomain balances onchain/offchain presence against offchain subtype
// spread. Members from a single domain score 0: spread only counts once
// both domains are present.
func crossDomain(members []signal.Event) float64 {
	var nOn, nOff int
	offchainSources := map[signal.Source]bool{}

	for _, e := range members {
		if e.Domain == signal.DomainOnchain {
			nOn++
		} else {
			nOff++
			offchainSources[e.Source] = true
		}
	}

	if nOn == 0 || nOff == 0 {
		return 0
	}
	balance := 2 * math.Min(float64(nOn), float64(nOff)) / float64(nOn+nOff)

	spread := math.Min(1, float64(len(offchainSources))/3.0)

	return clamp01(0.7*balance + 0.3*spread)
}

// novelty is the fraction of a narrative's entities absent from baseline
// events, floored so long-standing narratives don't collapse to zero.
func novelty(entities []string, baseline []signal.Event, cfg *config.Config) float64 {
	if len(entities) == 0 {
		return cfg.Scoring.NoveltyFloor
	}

	seenInBaseline := map[string]bool{}
	for _, e := range baseline {
		for _, ent := range e.Entities {
			seenInBaseline[ent] = true
		}
	}

	novel := 0
	for _, ent := range entities {
		if !seenInBaseline[ent] {
			novel++
		}
	}

	frac := float64(novel) / float64(len(entities))
	return math.Max(cfg.Scoring.NoveltyFloor, clamp01(frac))
}

// credibility is the weighted mean of each member's per-event credibility
// prior.
func credibility(members []signal.Event, cfg *config.Config) float64 {
	if len(members) == 0 {
		return 0
	}
	var total float64
	for _, e := range members {
		total += eventCredibility(e, cfg)
	}
	return clamp01(total / float64(len(members)))
}

func eventCredibility(e signal.Event, cfg *config.Config) float64 {
	if prior, ok := cfg.Credibility.SourcePriors[string(e.Source)]; ok {
		return prior
	}

	switch e.Source {
	case signal.SourceTxActivity, signal.SourceProgramDeploy, signal.SourceTokenActivity:
		return 0.90
	case signal.SourceTwitter:
		if e.Metric("followers") >= 10000 {
			return 0.85
		}
		return 0.55
	case signal.SourceRSSBlog:
		if cfg.Credibility.OfficialBlogs[e.Author] {
			return 0.75
		}
		return 0.60
	case signal.SourceGitHub:
		prior := 0.70
		if host := hostOf(e.URL); host != "" && cfg.Credibility.URLAllowlist[host] {
			prior = math.Min(1.0, prior+0.05)
		}
		return prior
	default:
		return 0.50
	}
}

func hostOf(rawURL string) string {
	s := rawURL
	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+3:]
	}
	if i := strings.IndexAny(s, "/?#"); i >= 0 {
		s = s[:i]
	}
	return strings.ToLower(s)
}

func intersectsAny(entities []string, set map[string]bool) bool {
	for _, e := range entities {
		if set[e] {
			return true
		}
	}
	return false
}

func entitySet(entities []string) map[string]bool {
	s := make(map[string]bool, len(entities))
	for _, e := range entities {
		s[e] = true
	}
	return s
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

