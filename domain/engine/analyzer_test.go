package engine

import (
	"testing"

	"aura-backend/domain/config"
	"aura-backend/domain/lexicon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeContent_EmptyText(t *testing.T) {
	assert.Empty(t, AnalyzeContent("", nil))
	assert.Empty(t, AnalyzeContent("   \n\t  ", nil))
}

func TestAnalyzeContent_WholeWordMatching(t *testing.T) {
	// "lovely" must not count toward the "love" stem.
	scores := AnalyzeContent("lovely weather today", nil)
	assert.Empty(t, scores)

	scores = AnalyzeContent("I love this weather", nil)
	require.Len(t, scores, 1)
	assert.Equal(t, lexicon.EmotionLove, scores[0].Category)
	assert.Equal(t, 1, scores[0].Count)
}

func TestAnalyzeContent_CaseInsensitive(t *testing.T) {
	scores := AnalyzeContent("LOVE Love love", nil)
	require.Len(t, scores, 1)
	assert.Equal(t, 3, scores[0].Count)
}

func TestAnalyzeContent_RepeatedKeyword(t *testing.T) {
	scores := AnalyzeContent("peace, peace, and more peace", nil)
	require.Len(t, scores, 1)
	assert.Equal(t, lexicon.EmotionPeace, scores[0].Category)
	assert.Equal(t, 3, scores[0].Count)
}

func TestAnalyzeContent_RankedByCount(t *testing.T) {
	scores := AnalyzeContent("fear fear fear joy joy love", nil)
	require.Len(t, scores, 3)
	assert.Equal(t, lexicon.EmotionFear, scores[0].Category)
	assert.Equal(t, lexicon.EmotionJoy, scores[1].Category)
	assert.Equal(t, lexicon.EmotionLove, scores[2].Category)
}

func TestAnalyzeContent_TieBreakByLexiconOrder(t *testing.T) {
	// love and sadness appear once each; love is declared first.
	scores := AnalyzeContent("love grief", nil)
	require.Len(t, scores, 2)
	assert.Equal(t, lexicon.EmotionLove, scores[0].Category)
	assert.Equal(t, lexicon.EmotionSadness, scores[1].Category)
}

func TestAnalyzeContent_TopThreeCap(t *testing.T) {
	scores := AnalyzeContent("love joy peace fear anger", nil)
	assert.Len(t, scores, 3)
}

func TestAnalyzeContent_CapConfigurable(t *testing.T) {
	cfg := config.DefaultDomainConfig()
	cfg.MaxDominantEmotions = 5
	scores := AnalyzeContent("love joy peace fear anger", cfg)
	assert.Len(t, scores, 5)
}

func TestAnalyzeContent_Deterministic(t *testing.T) {
	text := "calm grateful heart insight courage flow worry grief rage"
	first := AnalyzeContent(text, nil)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, AnalyzeContent(text, nil))
	}
}
