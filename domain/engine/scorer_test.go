package engine

import (
	"testing"

	"aura-backend/domain/config"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestGrowthScore(t *testing.T) {
	tests := []struct {
		count int
		want  float64
	}{
		{0, 0},
		{-1, 0},
		{1, 10},
		{3, 30},
		{10, 100},
		{11, 100},
		{1000, 100},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, GrowthScore(tc.count, nil), "count=%d", tc.count)
	}
}

func TestGrowthScoreWithDepth_NoDepthsDegradesToBaseline(t *testing.T) {
	assert.Equal(t, GrowthScore(4, nil), GrowthScoreWithDepth(4, nil, nil))
}

func TestGrowthScoreWithDepth_Blend(t *testing.T) {
	cfg := config.DefaultDomainConfig()
	// base 30, mean depth 0.5: 30*0.7 + 50*0.3 = 36
	got := GrowthScoreWithDepth(3, []float64{0.5, 0.5, 0.5}, cfg)
	assert.InDelta(t, 36, got, 1e-9)
}

func TestGrowthScoreWithDepth_ClampsDepths(t *testing.T) {
	// Depths outside [0,1] clamp per entry, so result stays bounded.
	got := GrowthScoreWithDepth(10, []float64{5, -3}, nil)
	assert.GreaterOrEqual(t, got, 0.0)
	assert.LessOrEqual(t, got, 100.0)
}

func TestGrowthScore_Properties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		count := rapid.IntRange(-10, 200).Draw(rt, "count")

		score := GrowthScore(count, nil)
		if score < 0 || score > 100 {
			rt.Fatalf("score %f out of [0,100]", score)
		}

		// Monotone non-decreasing in count.
		next := GrowthScore(count+1, nil)
		if next < score {
			rt.Fatalf("score decreased: f(%d)=%f > f(%d)=%f", count, score, count+1, next)
		}

		var depths []float64
		for i := 0; i < rapid.IntRange(0, 10).Draw(rt, "num_depths"); i++ {
			depths = append(depths, rapid.Float64Range(-1, 2).Draw(rt, "depth"))
		}

		blended := GrowthScoreWithDepth(count, depths, nil)
		if blended < 0 || blended > 100 {
			rt.Fatalf("blended score %f out of [0,100]", blended)
		}
	})
}
