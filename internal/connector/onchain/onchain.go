// Package onchain turns raw transaction and program-deploy feeds into
// signal.Events. Transaction identifiers are typed as chainhash.Hash rather
// than bare strings, so a malformed hash fails at the connector boundary
// instead of silently propagating into the pipeline.
package onchain

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/chainpulse/narrative-radar/internal/signal"
)

// TxActivity is one observed transaction touching a tracked program or
// token.
type TxActivity struct {
	TxID      chainhash.Hash
	Program   string
	Label     string // human-readable summary, e.g. "large swap on Jupiter"
	Actor     string // wallet address or known entity label
	Timestamp time.Time
	Amount    float64
}

// ProgramDeploy is a new or upgraded on-chain program.
type ProgramDeploy struct {
	ProgramID string
	Name      string
	Deployer  string
	Timestamp time.Time
}

// Connector adapts a feed of already-decoded chain activity into events.
// It does no network I/O itself; callers hand it parsed activity, matching
// the out-of-core-scope stance the rest of the connector layer takes.
type Connector struct {
	explorerBaseURL string
}

// NewConnector builds a Connector that links events back to explorerBaseURL
// plus the transaction or program ID.
func NewConnector(explorerBaseURL string) *Connector {
	return &Connector{explorerBaseURL: explorerBaseURL}
}

// TxEvents converts a batch of transaction activity into signal.Events.
func (c *Connector) TxEvents(activity []TxActivity) []signal.Event {
	out := make([]signal.Event, 0, len(activity))
	for _, a := range activity {
		out = append(out, signal.Event{
			Source:    signal.SourceTxActivity,
			Timestamp: a.Timestamp,
			Title:     a.Label,
			Text:      fmt.Sprintf("%s interacted with %s", a.Actor, a.Program),
			URL:       fmt.Sprintf("%s/tx/%s", c.explorerBaseURL, a.TxID.String()),
			Author:    a.Actor,
			Relevance: 0.6,
			Metrics:   map[string]float64{"amount": a.Amount},
		})
	}
	return out
}

// DeployEvents converts a batch of program deploys into signal.Events.
func (c *Connector) DeployEvents(deploys []ProgramDeploy) []signal.Event {
	out := make([]signal.Event, 0, len(deploys))
	for _, d := range deploys {
		out = append(out, signal.Event{
			Source:    signal.SourceProgramDeploy,
			Timestamp: d.Timestamp,
			Title:     fmt.Sprintf("%s deployed", d.Name),
			Text:      fmt.Sprintf("program %s deployed by %s", d.ProgramID, d.Deployer),
			URL:       fmt.Sprintf("%s/address/%s", c.explorerBaseURL, d.ProgramID),
			Author:    d.Deployer,
			Relevance: 0.85,
		})
	}
	return out
}

// ParseTxID parses a hex transaction hash into a chainhash.Hash, the same
// boundary validation chainhash gives Bitcoin transaction IDs. The input
// must be exactly MaxHashStringSize hex characters; shorter strings are
// rejected rather than zero-padded.
func ParseTxID(hex string) (chainhash.Hash, error) {
	if len(hex) != chainhash.MaxHashStringSize {
		return chainhash.Hash{}, fmt.Errorf("onchain connector: invalid tx id %q: want %d hex characters, got %d", hex, chainhash.MaxHashStringSize, len(hex))
	}
	h, err := chainhash.NewHashFromStr(hex)
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("onchain connector: invalid tx id %q: %w", hex, err)
	}
	return *h, nil
}
