package engine

import (
	"strings"

	"aura-backend/domain/config"
	"aura-backend/domain/lexicon"
)

// Activation is the merged output of theme seed, content analysis and the
// fallback ladder. Node order is activation order; later merge steps only
// add, never remove or reorder.
type Activation struct {
	Nodes    []lexicon.NodeIndex
	Emotions []lexicon.EmotionCategory
	Insights []string
}

// MergeActivation combines the three activation sources in fixed precedence:
// theme seed first, then content-derived nodes in rank order, then the
// reflection-count fallback ladder. The merge is idempotent and never fails;
// zero reflections with no theme produce a valid empty activation.
func MergeActivation(
	seed lexicon.ThemeSeed,
	scores []EmotionScore,
	reflectionCount int,
	cfg *config.DomainConfig,
) Activation {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}

	var out Activation
	seenNodes := make(map[lexicon.NodeIndex]bool)
	seenEmotions := make(map[lexicon.EmotionCategory]bool)
	seenInsights := make(map[string]bool)

	addNode := func(n lexicon.NodeIndex) {
		if n < 0 || n >= lexicon.NodeCount || seenNodes[n] {
			return
		}
		seenNodes[n] = true
		out.Nodes = append(out.Nodes, n)
	}
	addEmotion := func(e lexicon.EmotionCategory) {
		e = lexicon.EmotionCategory(strings.ToLower(string(e)))
		if e == "" || seenEmotions[e] || len(out.Emotions) >= cfg.MaxDominantEmotions {
			return
		}
		seenEmotions[e] = true
		out.Emotions = append(out.Emotions, e)
	}
	addInsight := func(text string) {
		if text == "" || seenInsights[text] {
			return
		}
		seenInsights[text] = true
		out.Insights = append(out.Insights, text)
	}

	// 1. Theme seed.
	for _, n := range seed.Nodes {
		addNode(n)
	}
	for _, e := range seed.Emotions {
		addEmotion(e)
	}
	for _, msg := range seed.Insights {
		addInsight(msg)
	}

	// 2. Content analysis, in rank order. First category to map to a node
	// wins; duplicates are skipped silently.
	for _, score := range scores {
		if node, ok := lexicon.CategoryNode[score.Category]; ok {
			addNode(node)
		}
		addEmotion(score.Category)
		if msg, ok := lexicon.CategoryInsight[score.Category]; ok {
			addInsight(msg)
		}
	}

	// 3. Fallback ladder: every rung whose threshold is met contributes its
	// nodes, guaranteeing some activation even with no textual signal.
	for _, step := range lexicon.FallbackLadder {
		if reflectionCount >= step.Threshold {
			for _, n := range step.Nodes {
				addNode(n)
			}
		}
	}

	return out
}
