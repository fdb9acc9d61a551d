package orchestrator

import "strconv"

// Fixed3 is a float64 that always marshals to JSON with exactly three
// fractional digits, so a run artifact's encoding is stable byte-for-byte
// across runs with identical scores.
type Fixed3 float64

// MarshalJSON implements json.Marshaler.
func (f Fixed3) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(f), 'f', 3, 64)), nil
}
