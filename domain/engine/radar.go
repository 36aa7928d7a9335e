package engine

import (
	"math/rand"

	"aura-backend/domain/config"
	"aura-backend/domain/lexicon"
)

// BalanceDatum is one radar-chart value; the dataset always covers all seven
// nodes, activated or not.
type BalanceDatum struct {
	Node  lexicon.NodeIndex `json:"node"`
	Name  string            `json:"name"`
	Value float64           `json:"value"`
}

// BuildBalanceRadar produces the radar dataset. Activated nodes land in the
// high band, inactive ones in the low band; the jitter inside each band is
// deliberate visual texture, so the rng is injected and tests assert ranges
// rather than exact values. A Love-dominant profile raises the heart floor.
func BuildBalanceRadar(
	activated []lexicon.NodeIndex,
	dominant []lexicon.EmotionCategory,
	rng *rand.Rand,
	cfg *config.DomainConfig,
) []BalanceDatum {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}

	activeSet := make(map[lexicon.NodeIndex]bool, len(activated))
	for _, n := range activated {
		activeSet[n] = true
	}

	loveDominant := false
	for _, e := range dominant {
		if e == lexicon.EmotionLove {
			loveDominant = true
			break
		}
	}

	data := make([]BalanceDatum, 0, lexicon.NodeCount)
	for _, info := range lexicon.Nodes {
		lo, hi := cfg.InactiveRadarMin, cfg.InactiveRadarMax
		if activeSet[info.Index] {
			lo, hi = cfg.ActivatedRadarMin, cfg.ActivatedRadarMax
			if loveDominant && info.Index == lexicon.NodeHeart && lo < cfg.LoveHeartFloor {
				lo = cfg.LoveHeartFloor
			}
		}

		data = append(data, BalanceDatum{
			Node:  info.Index,
			Name:  info.Name,
			Value: lo + rng.Float64()*(hi-lo),
		})
	}
	return data
}
