package engine

import (
	"testing"

	"aura-backend/domain/lexicon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestMergeActivation_EmptyInputs(t *testing.T) {
	out := MergeActivation(lexicon.ThemeSeed{}, nil, 0, nil)
	assert.Empty(t, out.Nodes)
	assert.Empty(t, out.Emotions)
	assert.Empty(t, out.Insights)
}

func TestMergeActivation_ThemeSeedFirst(t *testing.T) {
	seed := SeedFromTheme("love")
	scores := AnalyzeContent("wisdom and insight", nil)

	out := MergeActivation(seed, scores, 0, nil)

	require.NotEmpty(t, out.Nodes)
	assert.Equal(t, lexicon.NodeHeart, out.Nodes[0], "theme seed node must lead")
	assert.Contains(t, out.Nodes, lexicon.NodeThirdEye)
	assert.Equal(t, lexicon.EmotionLove, out.Emotions[0])
}

func TestMergeActivation_ContentBeforeLadder(t *testing.T) {
	scores := AnalyzeContent("fear and worry", nil)

	// One reflection: ladder contributes ThirdEye, content contributes Root.
	out := MergeActivation(lexicon.ThemeSeed{}, scores, 1, nil)

	require.Len(t, out.Nodes, 2)
	assert.Equal(t, lexicon.NodeRoot, out.Nodes[0])
	assert.Equal(t, lexicon.NodeThirdEye, out.Nodes[1])
}

func TestMergeActivation_DuplicateNodesSkipped(t *testing.T) {
	// joy and creativity both map to Sacral.
	scores := []EmotionScore{
		{Category: lexicon.EmotionJoy, Count: 2},
		{Category: lexicon.EmotionCreativity, Count: 1},
	}

	out := MergeActivation(lexicon.ThemeSeed{}, scores, 0, nil)

	assert.Equal(t, []lexicon.NodeIndex{lexicon.NodeSacral}, out.Nodes)
	assert.Equal(t, []lexicon.EmotionCategory{lexicon.EmotionJoy, lexicon.EmotionCreativity}, out.Emotions)
}

func TestMergeActivation_FallbackLadder(t *testing.T) {
	tests := []struct {
		count int
		want  []lexicon.NodeIndex
	}{
		{0, nil},
		{1, []lexicon.NodeIndex{lexicon.NodeThirdEye}},
		{3, []lexicon.NodeIndex{lexicon.NodeThirdEye, lexicon.NodeThroat}},
		{5, []lexicon.NodeIndex{lexicon.NodeThirdEye, lexicon.NodeThroat, lexicon.NodeSolarPlexus}},
		{7, []lexicon.NodeIndex{lexicon.NodeThirdEye, lexicon.NodeThroat, lexicon.NodeSolarPlexus, lexicon.NodeHeart}},
		{9, []lexicon.NodeIndex{lexicon.NodeThirdEye, lexicon.NodeThroat, lexicon.NodeSolarPlexus, lexicon.NodeHeart, lexicon.NodeSacral}},
	}

	for _, tc := range tests {
		out := MergeActivation(lexicon.ThemeSeed{}, nil, tc.count, nil)
		assert.Equal(t, tc.want, out.Nodes, "count=%d", tc.count)
	}
}

func TestMergeActivation_FullSetAtTwelve(t *testing.T) {
	out := MergeActivation(lexicon.ThemeSeed{}, nil, 12, nil)
	assert.Len(t, out.Nodes, lexicon.NodeCount)
}

func TestMergeActivation_EmotionCap(t *testing.T) {
	seed := SeedFromTheme("healing") // two emotions
	scores := []EmotionScore{
		{Category: lexicon.EmotionJoy, Count: 3},
		{Category: lexicon.EmotionFear, Count: 2},
	}

	out := MergeActivation(seed, scores, 0, nil)
	assert.Len(t, out.Emotions, 3)
}

func TestMergeActivation_Properties(t *testing.T) {
	themes := []string{"", "love", "peace", "power", "wisdom", "creativity", "spirituality", "healing"}

	rapid.Check(t, func(rt *rapid.T) {
		theme := rapid.SampledFrom(themes).Draw(rt, "theme")
		count := rapid.IntRange(0, 50).Draw(rt, "count")

		n := rapid.IntRange(0, 3).Draw(rt, "num_scores")
		var scores []EmotionScore
		for i := 0; i < n; i++ {
			scores = append(scores, EmotionScore{
				Category: rapid.SampledFrom(lexicon.CategoryOrder).Draw(rt, "category"),
				Count:    rapid.IntRange(1, 10).Draw(rt, "score_count"),
			})
		}

		out := MergeActivation(SeedFromTheme(theme), scores, count, nil)

		seen := make(map[lexicon.NodeIndex]bool)
		for _, node := range out.Nodes {
			if node < 0 || node >= lexicon.NodeCount {
				rt.Fatalf("node %d out of range", node)
			}
			if seen[node] {
				rt.Fatalf("node %d appears twice", node)
			}
			seen[node] = true
		}

		if len(out.Emotions) > 3 {
			rt.Fatalf("emotion cap exceeded: %d", len(out.Emotions))
		}

		if count >= 12 && len(out.Nodes) != lexicon.NodeCount {
			rt.Fatalf("expected all %d nodes at count %d, got %d", lexicon.NodeCount, count, len(out.Nodes))
		}

		// Idempotence: merging the same inputs again gives the same output.
		again := MergeActivation(SeedFromTheme(theme), scores, count, nil)
		if len(again.Nodes) != len(out.Nodes) {
			rt.Fatalf("merge not deterministic")
		}
	})
}
