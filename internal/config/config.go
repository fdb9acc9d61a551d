// Package config carries the single immutable configuration record threaded
// through every pipeline stage: weights, penalty coefficients, clustering
// and scoring thresholds, the alias table, and the credibility tables. No
// stage reaches for process-wide state; everything it needs arrives in a
// Config value.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Weights holds the composite score's per-feature coefficients.
type Weights struct {
	Velocity    float64
	Breadth     float64
	Cross       float64
	Novelty     float64
	Credibility float64
}

// Penalties holds the composite score's penalty coefficients.
type Penalties struct {
	Spam         float64
	SingleSource float64
}

// Clustering holds the thresholds the two clustering phases use.
type Clustering struct {
	MinEntitySupport int
	EdgeThreshold    float64
	TextDistance     float64
	MinTextSupport   int
	MinClusterSize   int
}

// Diversity holds the denominators used to normalize breadth's three
// sub-diversities.
type Diversity struct {
	Entities int
	Sources  int
	Authors  int
}

// Scoring holds the scalar thresholds the scorer's features use outside of
// Weights/Penalties.
type Scoring struct {
	AMax         float64
	Diversity    Diversity
	NoveltyFloor float64
}

// Credibility holds the per-event credibility priors and the tables that
// feed them.
type Credibility struct {
	// SourcePriors overrides the baked-in per-source prior for a source tag.
	SourcePriors map[string]float64
	// OfficialBlogs is the set of publishers whose rss_blog events get the
	// "official" credibility prior instead of the default.
	OfficialBlogs map[string]bool
	// URLAllowlist is the set of hostnames that bump a github event's
	// credibility prior.
	URLAllowlist map[string]bool
}

// Dedup holds the near-duplicate detector's bucket width and similarity
// threshold.
type Dedup struct {
	BucketMinutes    int
	NearSimThreshold float64
}

// Config is the full, immutable configuration surface for one pipeline run.
type Config struct {
	Weights     Weights
	Penalties   Penalties
	Clustering  Clustering
	Scoring     Scoring
	Credibility Credibility
	Dedup       Dedup

	// Aliases maps a canonical entity name to its known surface forms.
	Aliases map[string][]string
}

// Default returns the configuration whose values are authoritative for test
// expectations: every threshold and weight here is a named default from the
// pipeline's design, not an arbitrary placeholder.
func Default() *Config {
	return &Config{
		Weights: Weights{
			Velocity:    0.25,
			Breadth:     0.20,
			Cross:       0.20,
			Novelty:     0.20,
			Credibility: 0.15,
		},
		Penalties: Penalties{
			Spam:         0.10,
			SingleSource: 0.15,
		},
		Clustering: Clustering{
			MinEntitySupport: 2,
			EdgeThreshold:    0.30,
			TextDistance:     0.55,
			MinTextSupport:   3,
			MinClusterSize:   3,
		},
		Scoring: Scoring{
			AMax: 10,
			Diversity: Diversity{
				Entities: 8,
				Sources:  5,
				Authors:  10,
			},
			NoveltyFloor: 0.2,
		},
		Credibility: Credibility{
			SourcePriors:  map[string]float64{},
			OfficialBlogs: map[string]bool{},
			URLAllowlist:  map[string]bool{},
		},
		Dedup: Dedup{
			BucketMinutes:    5,
			NearSimThreshold: 0.85,
		},
		Aliases: map[string][]string{},
	}
}

// Load builds a Config from environment variables (optionally populated by a
// .env file), falling back to Default() for anything unset. Aliases,
// official blogs, and the URL allowlist are not environment-loadable; callers
// assemble those programmatically and attach them before Validate.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	cfg.Weights.Velocity = getEnvFloat("RADAR_WEIGHT_VELOCITY", cfg.Weights.Velocity)
	cfg.Weights.Breadth = getEnvFloat("RADAR_WEIGHT_BREADTH", cfg.Weights.Breadth)
	cfg.Weights.Cross = getEnvFloat("RADAR_WEIGHT_CROSS", cfg.Weights.Cross)
	cfg.Weights.Novelty = getEnvFloat("RADAR_WEIGHT_NOVELTY", cfg.Weights.Novelty)
	cfg.Weights.Credibility = getEnvFloat("RADAR_WEIGHT_CREDIBILITY", cfg.Weights.Credibility)

	cfg.Penalties.Spam = getEnvFloat("RADAR_PENALTY_SPAM", cfg.Penalties.Spam)
	cfg.Penalties.SingleSource = getEnvFloat("RADAR_PENALTY_SINGLE_SOURCE", cfg.Penalties.SingleSource)

	cfg.Clustering.MinEntitySupport = getEnvInt("RADAR_MIN_ENTITY_SUPPORT", cfg.Clustering.MinEntitySupport)
	cfg.Clustering.EdgeThreshold = getEnvFloat("RADAR_EDGE_THRESHOLD", cfg.Clustering.EdgeThreshold)
	cfg.Clustering.TextDistance = getEnvFloat("RADAR_TEXT_DISTANCE", cfg.Clustering.TextDistance)
	cfg.Clustering.MinTextSupport = getEnvInt("RADAR_MIN_TEXT_SUPPORT", cfg.Clustering.MinTextSupport)
	cfg.Clustering.MinClusterSize = getEnvInt("RADAR_MIN_CLUSTER_SIZE", cfg.Clustering.MinClusterSize)

	cfg.Scoring.AMax = getEnvFloat("RADAR_A_MAX", cfg.Scoring.AMax)
	cfg.Scoring.Diversity.Entities = getEnvInt("RADAR_DIVERSITY_ENTITIES", cfg.Scoring.Diversity.Entities)
	cfg.Scoring.Diversity.Sources = getEnvInt("RADAR_DIVERSITY_SOURCES", cfg.Scoring.Diversity.Sources)
	cfg.Scoring.Diversity.Authors = getEnvInt("RADAR_DIVERSITY_AUTHORS", cfg.Scoring.Diversity.Authors)
	cfg.Scoring.NoveltyFloor = getEnvFloat("RADAR_NOVELTY_FLOOR", cfg.Scoring.NoveltyFloor)

	cfg.Dedup.BucketMinutes = getEnvInt("RADAR_DEDUP_BUCKET_MINUTES", cfg.Dedup.BucketMinutes)
	cfg.Dedup.NearSimThreshold = getEnvFloat("RADAR_NEAR_SIM_THRESHOLD", cfg.Dedup.NearSimThreshold)

	return cfg, nil
}

// Validate rejects a configuration before any stage runs: weights must sum
// to 1 within tolerance, and no threshold or weight may be negative. This is
// the fatal, pre-flight half of the error taxonomy; everything that passes
// here can only fail per-event, recoverably, later.
func (c *Config) Validate() error {
	const tolerance = 1e-6

	sum := c.Weights.Velocity + c.Weights.Breadth + c.Weights.Cross +
		c.Weights.Novelty + c.Weights.Credibility
	if diff := sum - 1.0; diff > tolerance || diff < -tolerance {
		return fmt.Errorf("config: weights sum to %.6f, want 1.0 within %g", sum, tolerance)
	}

	negatives := map[string]float64{
		"penalties.spam":            c.Penalties.Spam,
		"penalties.single_source":   c.Penalties.SingleSource,
		"clustering.edge_threshold": c.Clustering.EdgeThreshold,
		"clustering.text_distance":  c.Clustering.TextDistance,
		"scoring.a_max":             c.Scoring.AMax,
		"scoring.novelty_floor":     c.Scoring.NoveltyFloor,
		"dedup.near_sim_threshold":  c.Dedup.NearSimThreshold,
	}
	for name, v := range negatives {
		if v < 0 {
			return fmt.Errorf("config: %s is negative (%.6f)", name, v)
		}
	}

	counts := map[string]int{
		"clustering.min_entity_support": c.Clustering.MinEntitySupport,
		"clustering.min_text_support":   c.Clustering.MinTextSupport,
		"clustering.min_cluster_size":   c.Clustering.MinClusterSize,
		"scoring.diversity.entities":    c.Scoring.Diversity.Entities,
		"scoring.diversity.sources":     c.Scoring.Diversity.Sources,
		"scoring.diversity.authors":     c.Scoring.Diversity.Authors,
		"dedup.bucket_minutes":          c.Dedup.BucketMinutes,
	}
	for name, v := range counts {
		if v <= 0 {
			return fmt.Errorf("config: %s must be positive, got %d", name, v)
		}
	}

	return nil
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	}
	return fallback
}

