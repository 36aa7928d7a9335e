package engine

import (
	"testing"

	"aura-backend/domain/lexicon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedFromTheme_Unknown(t *testing.T) {
	for _, theme := range []string{"", "   ", "unknown", "dragons"} {
		seed := SeedFromTheme(theme)
		assert.Empty(t, seed.Nodes, "theme=%q", theme)
		assert.Empty(t, seed.Emotions, "theme=%q", theme)
		assert.Empty(t, seed.Insights, "theme=%q", theme)
	}
}

func TestSeedFromTheme_CaseAndWhitespace(t *testing.T) {
	seed := SeedFromTheme("  LOVE  ")
	require.Len(t, seed.Nodes, 1)
	assert.Equal(t, lexicon.NodeHeart, seed.Nodes[0])
	assert.Equal(t, []lexicon.EmotionCategory{lexicon.EmotionLove}, seed.Emotions)
}

func TestSeedFromTheme_ReturnsCopy(t *testing.T) {
	seed := SeedFromTheme("peace")
	require.NotEmpty(t, seed.Nodes)
	seed.Nodes[0] = lexicon.NodeRoot

	again := SeedFromTheme("peace")
	assert.Equal(t, lexicon.NodeCrown, again.Nodes[0], "static table must not be mutated")
}
