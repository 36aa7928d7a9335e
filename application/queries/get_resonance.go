package queries

import (
	"errors"
	"time"
)

// GetResonanceQuery requests the current resonance edge set for a user's
// activated nodes.
type GetResonanceQuery struct {
	UserID string `json:"user_id"`
}

// Validate validates the query
func (q GetResonanceQuery) Validate() error {
	if q.UserID == "" {
		return errors.New("userID is required")
	}
	return nil
}

// GetResonanceResult is a point-in-time edge set. Edges vary with wall-clock
// time within the perturbation bound; callers should not expect two
// snapshots to match.
type GetResonanceResult struct {
	Edges      []ResonanceEdge `json:"edges"`
	ComputedAt time.Time       `json:"computed_at"`
}

// ResonanceEdge is one weighted relationship between activated nodes, A < B.
type ResonanceEdge struct {
	A         int     `json:"a"`
	B         int     `json:"b"`
	Intensity float64 `json:"intensity"`
}
