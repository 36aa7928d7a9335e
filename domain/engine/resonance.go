package engine

import (
	"math"
	"time"

	"aura-backend/domain/config"
	"aura-backend/domain/lexicon"
)

// ResonanceEdge is a weighted relationship between two simultaneously
// activated nodes, A < B. Edges exist only while both ends are activated and
// the perturbed intensity clears the threshold.
type ResonanceEdge struct {
	A         lexicon.NodeIndex `json:"a"`
	B         lexicon.NodeIndex `json:"b"`
	Intensity float64           `json:"intensity"`
}

// BuildResonanceGraph computes the edge set for the activated nodes at the
// given instant. The base affinity is conditioned on the whole activated set,
// then perturbed by a smooth time signal so the rendered graph breathes. Two
// calls at different instants may legitimately differ within the perturbation
// bound; that is presentation, not nondeterminism to fix.
func BuildResonanceGraph(activated []lexicon.NodeIndex, now time.Time, cfg *config.DomainConfig) []ResonanceEdge {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	if len(activated) < 2 {
		return nil
	}

	edges := make([]ResonanceEdge, 0, len(activated)*(len(activated)-1)/2)
	millis := float64(now.UnixMilli())

	for i := 0; i < len(activated); i++ {
		for j := i + 1; j < len(activated); j++ {
			a, b := activated[i], activated[j]
			if a > b {
				a, b = b, a
			}

			score := setAffinity(a, b, len(activated))
			score += math.Sin(millis/cfg.PerturbationPeriodMs+float64(a)*float64(b)) * cfg.PerturbationScale

			if score < 0 {
				score = 0
			}
			if score > 1 {
				score = 1
			}
			if score > cfg.ResonanceThreshold {
				edges = append(edges, ResonanceEdge{A: a, B: b, Intensity: score})
			}
		}
	}
	return edges
}

// setAffinity conditions the static pairwise affinity on how much of the
// node set is active: a fuller field resonates slightly harder, up to +0.1
// when all seven nodes are lit.
func setAffinity(a, b lexicon.NodeIndex, activeCount int) float64 {
	base := lexicon.Affinity(a, b)
	if activeCount > 2 {
		base += 0.1 * float64(activeCount-2) / float64(lexicon.NodeCount-2)
	}
	if base > 1 {
		base = 1
	}
	return base
}
