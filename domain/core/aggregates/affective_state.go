package aggregates

import (
	"aura-backend/domain/config"
	"aura-backend/domain/lexicon"
)

// AffectiveState is the aggregate root for one analysis pass. It is built
// once, never mutated afterwards, and swapped wholesale on recomputation so
// readers never observe a partial write.
type AffectiveState struct {
	growthScore      float64
	activatedNodes   []lexicon.NodeIndex
	dominantEmotions []lexicon.EmotionCategory
	insights         []string

	// position index for O(1) intensity lookups, derived from activatedNodes
	positions map[lexicon.NodeIndex]int

	cfg *config.DomainConfig
}

// NewAffectiveState assembles an immutable state from merged pipeline output.
// Inputs are copied; callers may reuse their slices.
func NewAffectiveState(
	growthScore float64,
	activatedNodes []lexicon.NodeIndex,
	dominantEmotions []lexicon.EmotionCategory,
	insights []string,
	cfg *config.DomainConfig,
) *AffectiveState {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}

	if growthScore < 0 {
		growthScore = 0
	}
	if growthScore > cfg.MaxGrowthScore {
		growthScore = cfg.MaxGrowthScore
	}

	nodes := make([]lexicon.NodeIndex, len(activatedNodes))
	copy(nodes, activatedNodes)

	emotions := make([]lexicon.EmotionCategory, len(dominantEmotions))
	copy(emotions, dominantEmotions)

	msgs := make([]string, len(insights))
	copy(msgs, insights)

	positions := make(map[lexicon.NodeIndex]int, len(nodes))
	for i, n := range nodes {
		if _, seen := positions[n]; !seen {
			positions[n] = i
		}
	}

	return &AffectiveState{
		growthScore:      growthScore,
		activatedNodes:   nodes,
		dominantEmotions: emotions,
		insights:         msgs,
		positions:        positions,
		cfg:              cfg,
	}
}

// EmptyAffectiveState returns the default state used before any data has
// loaded or when a user has no reflections.
func EmptyAffectiveState() *AffectiveState {
	return NewAffectiveState(0, nil, nil, nil, nil)
}

// GrowthScore returns the bounded [0,100] progress value
func (s *AffectiveState) GrowthScore() float64 {
	return s.growthScore
}

// ActivatedNodes returns the activated node list in activation order
func (s *AffectiveState) ActivatedNodes() []lexicon.NodeIndex {
	nodes := make([]lexicon.NodeIndex, len(s.activatedNodes))
	copy(nodes, s.activatedNodes)
	return nodes
}

// DominantEmotions returns the ranked dominant emotion list
func (s *AffectiveState) DominantEmotions() []lexicon.EmotionCategory {
	emotions := make([]lexicon.EmotionCategory, len(s.dominantEmotions))
	copy(emotions, s.dominantEmotions)
	return emotions
}

// Insights returns the full derived insight list. Rendering caps the list;
// the engine does not.
func (s *AffectiveState) Insights() []string {
	msgs := make([]string, len(s.insights))
	copy(msgs, s.insights)
	return msgs
}

// IsActivated reports whether the node is in the activated set
func (s *AffectiveState) IsActivated(node lexicon.NodeIndex) bool {
	_, ok := s.positions[node]
	return ok
}

// ActivationPosition returns the node's activation-order position and whether
// the node is activated at all
func (s *AffectiveState) ActivationPosition(node lexicon.NodeIndex) (int, bool) {
	pos, ok := s.positions[node]
	return pos, ok
}

// Intensity returns the display intensity for a node in [0,1]. Activated
// nodes get the configured baseline plus a bonus that decays with activation
// position; inactive nodes get a growth-derived floor.
func (s *AffectiveState) Intensity(node lexicon.NodeIndex) float64 {
	pos, activated := s.positions[node]
	if !activated {
		return s.growthScore / s.cfg.InactiveGrowthDivisor
	}

	bonus := s.cfg.MaxPositionBonus
	if len(s.activatedNodes) > 1 {
		span := float64(len(s.activatedNodes) - 1)
		bonus = s.cfg.MaxPositionBonus * (span - float64(pos)) / span
	}

	intensity := s.cfg.ActivatedBaseline + bonus
	if intensity > 1 {
		intensity = 1
	}
	return intensity
}
