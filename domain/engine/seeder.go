package engine

import (
	"strings"

	"aura-backend/domain/lexicon"
)

// SeedFromTheme looks up the optional dream theme and returns its seed
// triple. The lookup is total: an empty or unrecognised theme yields an
// empty seed, never an error.
func SeedFromTheme(theme string) lexicon.ThemeSeed {
	theme = strings.ToLower(strings.TrimSpace(theme))
	if theme == "" {
		return lexicon.ThemeSeed{}
	}

	seed, ok := lexicon.ThemeSeeds[theme]
	if !ok {
		return lexicon.ThemeSeed{}
	}

	// Copy so callers can never mutate the static table.
	out := lexicon.ThemeSeed{
		Nodes:    make([]lexicon.NodeIndex, len(seed.Nodes)),
		Emotions: make([]lexicon.EmotionCategory, len(seed.Emotions)),
		Insights: make([]string, len(seed.Insights)),
	}
	copy(out.Nodes, seed.Nodes)
	copy(out.Emotions, seed.Emotions)
	copy(out.Insights, seed.Insights)
	return out
}
