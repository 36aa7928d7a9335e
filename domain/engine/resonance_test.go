package engine

import (
	"testing"
	"time"

	"aura-backend/domain/config"
	"aura-backend/domain/lexicon"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

var fixedNow = time.UnixMilli(1700000000000)

func TestBuildResonanceGraph_TooFewNodes(t *testing.T) {
	assert.Nil(t, BuildResonanceGraph(nil, fixedNow, nil))
	assert.Nil(t, BuildResonanceGraph([]lexicon.NodeIndex{lexicon.NodeHeart}, fixedNow, nil))
}

func TestBuildResonanceGraph_EdgeInvariants(t *testing.T) {
	activated := []lexicon.NodeIndex{
		lexicon.NodeCrown, lexicon.NodeHeart, lexicon.NodeRoot, lexicon.NodeThirdEye,
	}
	cfg := config.DefaultDomainConfig()

	edges := BuildResonanceGraph(activated, fixedNow, cfg)

	assert.NotEmpty(t, edges)
	for _, e := range edges {
		assert.Less(t, e.A, e.B, "endpoints must be ordered")
		assert.Greater(t, e.Intensity, cfg.ResonanceThreshold)
		assert.LessOrEqual(t, e.Intensity, 1.0)
	}
}

func TestBuildResonanceGraph_DeterministicAtFixedInstant(t *testing.T) {
	activated := []lexicon.NodeIndex{lexicon.NodeHeart, lexicon.NodeThroat, lexicon.NodeThirdEye}

	first := BuildResonanceGraph(activated, fixedNow, nil)
	second := BuildResonanceGraph(activated, fixedNow, nil)

	assert.Equal(t, first, second)
}

func TestBuildResonanceGraph_PerturbationBounded(t *testing.T) {
	activated := []lexicon.NodeIndex{lexicon.NodeHeart, lexicon.NodeThroat}
	cfg := config.DefaultDomainConfig()

	// The pair intensity can never drift more than 2*scale between any two
	// instants, because only the sin term varies.
	base := lexicon.Affinity(lexicon.NodeHeart, lexicon.NodeThroat)
	for i := 0; i < 100; i++ {
		now := fixedNow.Add(time.Duration(i*137) * time.Millisecond)
		for _, e := range BuildResonanceGraph(activated, now, cfg) {
			assert.InDelta(t, base, e.Intensity, cfg.PerturbationScale+1e-9)
		}
	}
}

func TestBuildResonanceGraph_FullerSetResonatesHarder(t *testing.T) {
	now := fixedNow
	pairOnly := BuildResonanceGraph([]lexicon.NodeIndex{lexicon.NodeThirdEye, lexicon.NodeCrown}, now, nil)

	all := make([]lexicon.NodeIndex, 0, lexicon.NodeCount)
	for _, info := range lexicon.Nodes {
		all = append(all, info.Index)
	}
	fullSet := BuildResonanceGraph(all, now, nil)

	find := func(edges []ResonanceEdge, a, b lexicon.NodeIndex) (float64, bool) {
		for _, e := range edges {
			if e.A == a && e.B == b {
				return e.Intensity, true
			}
		}
		return 0, false
	}

	pairIntensity, ok := find(pairOnly, lexicon.NodeThirdEye, lexicon.NodeCrown)
	if !ok {
		t.Skip("pair edge below threshold at this instant")
	}
	fullIntensity, ok := find(fullSet, lexicon.NodeThirdEye, lexicon.NodeCrown)
	if assert.True(t, ok) {
		assert.Greater(t, fullIntensity, pairIntensity)
	}
}

func TestBuildResonanceGraph_Properties(t *testing.T) {
	all := []lexicon.NodeIndex{
		lexicon.NodeRoot, lexicon.NodeSacral, lexicon.NodeHeart, lexicon.NodeSolarPlexus,
		lexicon.NodeThroat, lexicon.NodeThirdEye, lexicon.NodeCrown,
	}

	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(2, 7).Draw(rt, "num_nodes")
		activated := make([]lexicon.NodeIndex, n)
		copy(activated, all[:n])

		now := time.UnixMilli(rapid.Int64Range(0, 4102444800000).Draw(rt, "millis"))
		cfg := config.DefaultDomainConfig()

		edges := BuildResonanceGraph(activated, now, cfg)

		if len(edges) > n*(n-1)/2 {
			rt.Fatalf("more edges (%d) than pairs (%d)", len(edges), n*(n-1)/2)
		}

		seen := make(map[[2]lexicon.NodeIndex]bool)
		for _, e := range edges {
			if e.A >= e.B {
				rt.Fatalf("unordered edge %d-%d", e.A, e.B)
			}
			if e.Intensity <= cfg.ResonanceThreshold || e.Intensity > 1 {
				rt.Fatalf("intensity %f out of (%f,1]", e.Intensity, cfg.ResonanceThreshold)
			}
			key := [2]lexicon.NodeIndex{e.A, e.B}
			if seen[key] {
				rt.Fatalf("duplicate edge %v", key)
			}
			seen[key] = true
		}
	})
}
