package lexicon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryTablesAreTotal(t *testing.T) {
	require.Len(t, CategoryOrder, len(Keywords))

	for _, category := range CategoryOrder {
		stems, ok := Keywords[category]
		require.True(t, ok, "category %s missing keywords", category)
		assert.NotEmpty(t, stems)
		for _, stem := range stems {
			assert.Equal(t, strings.ToLower(stem), stem, "stems must be lowercase")
		}

		node, ok := CategoryNode[category]
		require.True(t, ok, "category %s missing node mapping", category)
		assert.GreaterOrEqual(t, int(node), 0)
		assert.Less(t, int(node), NodeCount)

		_, ok = CategoryInsight[category]
		assert.True(t, ok, "category %s missing insight", category)
	}
}

func TestNodeTable(t *testing.T) {
	for i, info := range Nodes {
		assert.Equal(t, NodeIndex(i), info.Index)
		assert.NotEmpty(t, info.Name)
		assert.True(t, strings.HasPrefix(info.Color, "#"))
	}
	assert.Equal(t, NodeIndex(2), NodeHeart)
}

func TestThemeSeedsReferenceValidEntries(t *testing.T) {
	for theme, seed := range ThemeSeeds {
		assert.Equal(t, strings.ToLower(theme), theme)
		assert.NotEmpty(t, seed.Nodes, "theme %s", theme)
		for _, n := range seed.Nodes {
			assert.GreaterOrEqual(t, int(n), 0)
			assert.Less(t, int(n), NodeCount)
		}
		for _, e := range seed.Emotions {
			_, ok := Keywords[e]
			assert.True(t, ok, "theme %s references unknown emotion %s", theme, e)
		}
	}
}

func TestFallbackLadderCoversAllNodes(t *testing.T) {
	covered := make(map[NodeIndex]bool)
	last := 0
	for _, step := range FallbackLadder {
		assert.Greater(t, step.Threshold, last, "ladder thresholds must ascend")
		last = step.Threshold
		for _, n := range step.Nodes {
			assert.False(t, covered[n], "node %d on two rungs", n)
			covered[n] = true
		}
	}
	assert.Len(t, covered, NodeCount)
}

func TestAffinity(t *testing.T) {
	for a := NodeIndex(0); a < NodeCount; a++ {
		for b := NodeIndex(0); b < NodeCount; b++ {
			v := Affinity(a, b)
			assert.Equal(t, v, Affinity(b, a), "affinity must be symmetric")
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}

	assert.Equal(t, DefaultAffinity, Affinity(NodeRoot, NodeCrown))
	assert.Equal(t, 0.65, Affinity(NodeThirdEye, NodeCrown))
}
