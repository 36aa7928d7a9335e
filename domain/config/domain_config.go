package config

import "time"

// DomainConfig holds all configurable business rules and constraints
type DomainConfig struct {
	// Analysis constraints
	MaxDominantEmotions int
	MinKeywordLength    int

	// Growth scoring
	GrowthPerReflection float64
	MaxGrowthScore      float64
	DepthWeight         float64

	// Resonance constraints
	ResonanceThreshold   float64
	PerturbationScale    float64
	PerturbationPeriodMs float64
	RefreshInterval      time.Duration

	// Intensity
	ActivatedBaseline    float64
	MaxPositionBonus     float64
	InactiveGrowthDivisor float64

	// Presentation limits
	MaxRecommendations int
	MaxRenderedInsights int
	TimelineWindow     int

	// Milestones
	ConsistencyThreshold int

	// Reflection constraints
	MaxContentLength int

	// Radar bands
	ActivatedRadarMin float64
	ActivatedRadarMax float64
	InactiveRadarMin  float64
	InactiveRadarMax  float64
	LoveHeartFloor    float64
}

// DefaultDomainConfig returns the default domain configuration
func DefaultDomainConfig() *DomainConfig {
	return &DomainConfig{
		MaxDominantEmotions: 3,
		MinKeywordLength:    2,

		GrowthPerReflection: 10,
		MaxGrowthScore:      100,
		DepthWeight:         0.3,

		ResonanceThreshold:   0.3,
		PerturbationScale:    0.1,
		PerturbationPeriodMs: 5000,
		RefreshInterval:      time.Second,

		ActivatedBaseline:     0.7,
		MaxPositionBonus:      0.3,
		InactiveGrowthDivisor: 200,

		MaxRecommendations:  4,
		MaxRenderedInsights: 3,
		TimelineWindow:      7,

		ConsistencyThreshold: 5,

		MaxContentLength: 20000,

		ActivatedRadarMin: 70,
		ActivatedRadarMax: 100,
		InactiveRadarMin:  10,
		InactiveRadarMax:  50,
		LoveHeartFloor:    85,
	}
}
