// Package engine implements the affective analysis pipeline: content
// analysis, theme seeding, activation merging, growth scoring, resonance
// graph construction and the derived visualization datasets. Every function
// here is pure over its inputs; the only time dependence is the injectable
// clock the resonance builder takes.
package engine

import (
	"regexp"
	"sort"
	"strings"

	"aura-backend/domain/config"
	"aura-backend/domain/lexicon"
)

// EmotionScore is one ranked content-analysis result.
type EmotionScore struct {
	Category lexicon.EmotionCategory
	Count    int
}

var wordSplit = regexp.MustCompile(`[^a-z']+`)

// AnalyzeContent scores the concatenated reflection text against the emotion
// lexicon and returns the top categories with a positive count, ranked by
// count descending. Ties keep lexicon declaration order, which is the only
// deterministic tie-break in the system. Empty text yields an empty result.
func AnalyzeContent(text string, cfg *config.DomainConfig) []EmotionScore {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}

	text = strings.ToLower(text)
	if strings.TrimSpace(text) == "" {
		return nil
	}

	// Whole-word counting: tokenize once, then count per stem.
	counts := make(map[string]int)
	for _, word := range wordSplit.Split(text, -1) {
		word = strings.Trim(word, "'")
		if len(word) >= cfg.MinKeywordLength {
			counts[word]++
		}
	}

	scores := make([]EmotionScore, 0, len(lexicon.CategoryOrder))
	for _, category := range lexicon.CategoryOrder {
		total := 0
		for _, stem := range lexicon.Keywords[category] {
			total += counts[stem]
		}
		if total > 0 {
			scores = append(scores, EmotionScore{Category: category, Count: total})
		}
	}

	// Stable sort preserves declaration order between equal counts.
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Count > scores[j].Count
	})

	if len(scores) > cfg.MaxDominantEmotions {
		scores = scores[:cfg.MaxDominantEmotions]
	}
	return scores
}
