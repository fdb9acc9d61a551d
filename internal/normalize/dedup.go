package normalize

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/chainpulse/narrative-radar/internal/config"
	"github.com/chainpulse/narrative-radar/internal/signal"
)

// exactDedupKey hashes the fields that define an event's identity for
// exact-duplicate purposes: title (normalized, lowercased), url, and the
// timestamp floored to a configurable bucket.
func exactDedupKey(e signal.Event, bucketMinutes int) string {
	bucket := e.Timestamp.Truncate(time.Duration(bucketMinutes) * time.Minute).Unix()
	raw := fmt.Sprintf("%s|%s|%d", strings.ToLower(normalizeWhitespace(e.Title)), e.URL, bucket)
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// dedupExact keeps the first occurrence of each exact-dedup key and counts
// every later collision as dropped. events must already be in a
// deterministic order; the first event in that order wins.
func dedupExact(events []signal.Event, cfg *config.Config, counters *signal.Counters) []signal.Event {
	seen := make(map[string]bool, len(events))
	out := make([]signal.Event, 0, len(events))
	for _, e := range events {
		key := exactDedupKey(e, cfg.Dedup.BucketMinutes)
		if seen[key] {
			counters.Inc(signal.DropExactDuplicate)
			continue
		}
		seen[key] = true
		out = append(out, e)
	}
	return out
}

const nearDupWindow = 6 * time.Hour

// retainedTitle is one surviving event's title token set, kept long enough
// to compare against events from the same source within the sliding window.
type retainedTitle struct {
	timestamp time.Time
	tokens    map[string]bool
}

// dedupNear compares each event's title against titles retained for the
// same source within a trailing 6-hour window, dropping it if its Jaccard
// token-set similarity to any retained title meets the configured
// threshold. events must already be in chronological order.
func dedupNear(events []signal.Event, cfg *config.Config, counters *signal.Counters) []signal.Event {
	retained := map[signal.Source][]retainedTitle{}
	out := make([]signal.Event, 0, len(events))

	for _, e := range events {
		bucket := retained[e.Source]

		cutoff := e.Timestamp.Add(-nearDupWindow)
		live := bucket[:0]
		for _, r := range bucket {
			if r.timestamp.After(cutoff) {
				live = append(live, r)
			}
		}
		bucket = live

		tokens := tokenSet(e.Title)
		duplicate := false
		for _, r := range bucket {
			if jaccard(tokens, r.tokens) >= cfg.Dedup.NearSimThreshold {
				duplicate = true
				break
			}
		}

		if duplicate {
			counters.Inc(signal.DropNearDuplicate)
			retained[e.Source] = bucket
			continue
		}

		retained[e.Source] = append(bucket, retainedTitle{timestamp: e.Timestamp, tokens: tokens})
		out = append(out, e)
	}
	return out
}
