package normalize

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/chainpulse/narrative-radar/internal/signal"
)

// assignID returns e.ID unchanged if a connector already set one, otherwise
// derives a stable id from (source, url, title, timestamp bucket).
func assignID(e signal.Event) string {
	if e.ID != "" {
		return e.ID
	}
	bucket := e.Timestamp.Truncate(5 * time.Minute).Unix()
	raw := fmt.Sprintf("%s|%s|%s|%d", e.Source, e.URL, normalizeWhitespace(e.Title), bucket)
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
