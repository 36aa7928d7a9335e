package engine

import (
	"testing"

	"aura-backend/domain/lexicon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestBuildRecommendations_EmptyActivation(t *testing.T) {
	recs := BuildRecommendations(nil, nil, nil)

	// All three authored node templates apply when nothing is active.
	require.Len(t, recs, 3)
	assert.Equal(t, "Ground Yourself", recs[0].Title)
	assert.Equal(t, "Open Your Heart", recs[1].Title)
	assert.Equal(t, "Look Inward", recs[2].Title)
}

func TestBuildRecommendations_ActiveNodesExcluded(t *testing.T) {
	activated := []lexicon.NodeIndex{lexicon.NodeRoot, lexicon.NodeHeart}
	recs := BuildRecommendations(activated, nil, nil)

	for _, r := range recs {
		assert.NotEqual(t, "Ground Yourself", r.Title)
		assert.NotEqual(t, "Open Your Heart", r.Title)
	}
}

func TestBuildRecommendations_EmotionTemplates(t *testing.T) {
	recs := BuildRecommendations(nil, []lexicon.EmotionCategory{lexicon.EmotionFear}, nil)

	titles := make([]string, 0, len(recs))
	for _, r := range recs {
		titles = append(titles, r.Title)
	}
	assert.Contains(t, titles, "Name the Fear")
}

func TestBuildRecommendations_GenericFallback(t *testing.T) {
	// Everything active, no dominant emotions with templates: only the
	// generic suggestion remains.
	all := make([]lexicon.NodeIndex, 0, lexicon.NodeCount)
	for _, info := range lexicon.Nodes {
		all = append(all, info.Index)
	}

	recs := BuildRecommendations(all, []lexicon.EmotionCategory{lexicon.EmotionPeace}, nil)
	require.Len(t, recs, 1)
	assert.Equal(t, "Daily Practice", recs[0].Title)
}

func TestBuildRecommendations_Properties(t *testing.T) {
	all := []lexicon.NodeIndex{
		lexicon.NodeRoot, lexicon.NodeSacral, lexicon.NodeHeart, lexicon.NodeSolarPlexus,
		lexicon.NodeThroat, lexicon.NodeThirdEye, lexicon.NodeCrown,
	}

	rapid.Check(t, func(rt *rapid.T) {
		var activated []lexicon.NodeIndex
		for _, n := range all {
			if rapid.Bool().Draw(rt, "active") {
				activated = append(activated, n)
			}
		}

		var dominant []lexicon.EmotionCategory
		for i := 0; i < rapid.IntRange(0, 3).Draw(rt, "num_emotions"); i++ {
			dominant = append(dominant, rapid.SampledFrom(lexicon.CategoryOrder).Draw(rt, "emotion"))
		}

		recs := BuildRecommendations(activated, dominant, nil)

		if len(recs) < 1 || len(recs) > 4 {
			rt.Fatalf("recommendation count %d out of [1,4]", len(recs))
		}

		seen := make(map[string]bool)
		for _, r := range recs {
			if r.Title == "" || r.Description == "" {
				rt.Fatalf("empty recommendation fields: %+v", r)
			}
			if seen[r.Title] {
				rt.Fatalf("duplicate title %q", r.Title)
			}
			seen[r.Title] = true
		}
	})
}
