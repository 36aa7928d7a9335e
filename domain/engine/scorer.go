package engine

import (
	"aura-backend/domain/config"
)

// GrowthScore maps a reflection count to the baseline bounded progress
// value: count * 10 capped at 100. It is monotone non-decreasing in count.
func GrowthScore(reflectionCount int, cfg *config.DomainConfig) float64 {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	if reflectionCount <= 0 {
		return 0
	}

	score := float64(reflectionCount) * cfg.GrowthPerReflection
	if score > cfg.MaxGrowthScore {
		score = cfg.MaxGrowthScore
	}
	return score
}

// GrowthScoreWithDepth blends the baseline count score with a mean emotional
// depth signal. Depths outside [0,1] are clamped per entry. With no depth
// data it degrades to the baseline score, so monotonicity in count holds
// either way.
func GrowthScoreWithDepth(reflectionCount int, depths []float64, cfg *config.DomainConfig) float64 {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}

	base := GrowthScore(reflectionCount, cfg)
	if len(depths) == 0 {
		return base
	}

	var sum float64
	for _, d := range depths {
		if d < 0 {
			d = 0
		}
		if d > 1 {
			d = 1
		}
		sum += d
	}
	mean := sum / float64(len(depths))

	score := base*(1-cfg.DepthWeight) + mean*cfg.MaxGrowthScore*cfg.DepthWeight
	if score > cfg.MaxGrowthScore {
		score = cfg.MaxGrowthScore
	}
	if score < 0 {
		score = 0
	}
	return score
}
