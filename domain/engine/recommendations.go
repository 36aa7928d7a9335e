package engine

import (
	"aura-backend/domain/config"
	"aura-backend/domain/lexicon"
)

// Recommendation is one templated suggestion for the user.
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// BuildRecommendations offers suggestions from the complement of the
// activated set and from the dominant emotions, in stable order: node-based
// first, emotion-based second, the generic daily-practice fallback last.
// Output is deduplicated by title, at least one entry, at most the
// configured cap.
func BuildRecommendations(
	activated []lexicon.NodeIndex,
	dominant []lexicon.EmotionCategory,
	cfg *config.DomainConfig,
) []Recommendation {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}

	activeSet := make(map[lexicon.NodeIndex]bool, len(activated))
	for _, n := range activated {
		activeSet[n] = true
	}

	var out []Recommendation
	seen := make(map[string]bool)
	add := func(r lexicon.NodeRecommendation) {
		if seen[r.Title] || len(out) >= cfg.MaxRecommendations {
			return
		}
		seen[r.Title] = true
		out = append(out, Recommendation{Title: r.Title, Description: r.Description})
	}

	// Inactive nodes with an authored template, in node-index order.
	for _, info := range lexicon.Nodes {
		if activeSet[info.Index] {
			continue
		}
		if tpl, ok := lexicon.NodeRecommendations[info.Index]; ok {
			add(tpl)
		}
	}

	// Dominant emotions with an authored template, in rank order.
	for _, e := range dominant {
		if tpl, ok := lexicon.EmotionRecommendations[e]; ok {
			add(tpl)
		}
	}

	if len(out) < 2 {
		add(lexicon.GenericRecommendation)
	}

	return out
}
