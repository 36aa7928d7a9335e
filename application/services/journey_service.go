package services

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"aura-backend/application/ports"
	"aura-backend/domain/config"
	"aura-backend/domain/core/aggregates"
	"aura-backend/domain/core/entities"
	"aura-backend/domain/engine"
	"aura-backend/domain/lexicon"

	"github.com/cenkalti/backoff/v5"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// defaultFetchLimit bounds how much history one analysis pass pulls.
const defaultFetchLimit = 100

// JourneyResult bundles everything one analysis pass produces for a user.
// All fields are freshly computed; nothing is patched incrementally.
type JourneyResult struct {
	State           *aggregates.AffectiveState
	Balance         []engine.BalanceDatum
	Timeline        []engine.TimelinePoint
	Milestones      []engine.Milestone
	Recommendations []engine.Recommendation
	ReflectionCount int
	ComputedAt      time.Time
}

// JourneyService orchestrates the analysis pipeline: fetch reflections,
// seed from the stored theme, analyze content, merge activations, score
// growth and derive the visualization datasets. Each pass produces a new
// immutable result; the previous good result is retained per user so a
// failed fetch degrades to stale data instead of an error.
type JourneyService struct {
	reflections ports.ReflectionRepository
	journeys    ports.JourneyRepository
	themes      ports.ThemeProvider
	cfg         *config.DomainConfig
	logger      *zap.Logger

	// injectable time and randomness so tests can pin both
	clock  func() time.Time
	newRNG func() *rand.Rand

	// useDepthScoring switches the growth scorer to the depth-blended variant
	useDepthScoring bool

	// fetchLimit bounds how much history one analysis pass pulls
	fetchLimit int

	breaker *gobreaker.CircuitBreaker

	mu       sync.RWMutex
	lastGood map[string]*JourneyResult
}

// NewJourneyService creates a new journey service
func NewJourneyService(
	reflections ports.ReflectionRepository,
	journeys ports.JourneyRepository,
	themes ports.ThemeProvider,
	cfg *config.DomainConfig,
	logger *zap.Logger,
) *JourneyService {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "reflection-fetch",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &JourneyService{
		reflections: reflections,
		journeys:    journeys,
		themes:      themes,
		cfg:         cfg,
		logger:      logger,
		clock:       time.Now,
		newRNG: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
		fetchLimit: defaultFetchLimit,
		breaker:    breaker,
		lastGood:   make(map[string]*JourneyResult),
	}
}

// WithClock overrides the time source. Test hook.
func (s *JourneyService) WithClock(clock func() time.Time) *JourneyService {
	s.clock = clock
	return s
}

// WithRNG overrides the radar jitter source. Test hook.
func (s *JourneyService) WithRNG(newRNG func() *rand.Rand) *JourneyService {
	s.newRNG = newRNG
	return s
}

// WithDepthScoring enables the depth-blended growth scorer.
func (s *JourneyService) WithDepthScoring(enabled bool) *JourneyService {
	s.useDepthScoring = enabled
	return s
}

// WithFetchLimit bounds how many reflections one analysis pass fetches.
// Non-positive values keep the default.
func (s *JourneyService) WithFetchLimit(limit int) *JourneyService {
	if limit > 0 {
		s.fetchLimit = limit
	}
	return s
}

// Analyze runs a full analysis pass for the user. It never returns an error
// past this boundary: a failed fetch yields the last good result, or the
// empty default on first load.
func (s *JourneyService) Analyze(ctx context.Context, userID string) *JourneyResult {
	now := s.clock()

	theme := s.loadTheme(ctx, userID)

	// Shortcut path: a precomputed summary bypasses content analysis.
	if summary := s.loadPrecomputed(ctx, userID); summary != nil {
		result := s.fromSummary(ctx, userID, summary, now)
		s.storeLastGood(userID, result)
		return result
	}

	reflections, err := s.fetchWithRetry(ctx, userID)
	if err != nil {
		s.logger.Warn("reflection fetch failed, retaining previous state",
			zap.String("userID", userID),
			zap.Error(err),
		)
		return s.LastGood(userID)
	}

	result := s.compute(userID, theme, reflections, now)
	s.storeLastGood(userID, result)
	return result
}

// LastGood returns the most recent successful result for the user, or the
// empty default when none exists yet.
func (s *JourneyService) LastGood(userID string) *JourneyResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if result, ok := s.lastGood[userID]; ok {
		return result
	}
	return emptyResult(s.cfg, s.clock(), s.newRNG())
}

// ActivatedNodes returns the activated node set from the user's latest
// result. Used by the resonance scheduler between full analysis passes.
func (s *JourneyService) ActivatedNodes(userID string) []lexicon.NodeIndex {
	return s.LastGood(userID).State.ActivatedNodes()
}

// compute is the pure pipeline core: theme seed, content analysis,
// activation merge, growth scoring, datasets.
func (s *JourneyService) compute(userID, theme string, reflections []*entities.Reflection, now time.Time) *JourneyResult {
	valid := make([]*entities.Reflection, 0, len(reflections))
	for _, r := range reflections {
		if r.IsValid() {
			valid = append(valid, r)
		} else {
			s.logger.Debug("skipping malformed reflection", zap.String("userID", userID))
		}
	}

	var sb strings.Builder
	depths := make([]float64, 0, len(valid))
	for _, r := range valid {
		sb.WriteString(r.Content().Body())
		sb.WriteByte(' ')
		depths = append(depths, r.Depth())
	}

	seed := engine.SeedFromTheme(theme)
	scores := engine.AnalyzeContent(sb.String(), s.cfg)
	activation := engine.MergeActivation(seed, scores, len(valid), s.cfg)

	growth := engine.GrowthScore(len(valid), s.cfg)
	if s.useDepthScoring && len(depths) > 0 {
		growth = engine.GrowthScoreWithDepth(len(valid), depths, s.cfg)
	}

	state := aggregates.NewAffectiveState(growth, activation.Nodes, activation.Emotions, activation.Insights, s.cfg)
	rng := s.newRNG()

	return &JourneyResult{
		State:           state,
		Balance:         engine.BuildBalanceRadar(activation.Nodes, activation.Emotions, rng, s.cfg),
		Timeline:        engine.BuildTimeline(valid, now, s.cfg),
		Milestones:      engine.BuildMilestones(valid, now, s.cfg),
		Recommendations: engine.BuildRecommendations(activation.Nodes, activation.Emotions, s.cfg),
		ReflectionCount: len(valid),
		ComputedAt:      now,
	}
}

// fromSummary rebuilds a result from a precomputed summary. Reflections are
// still fetched best-effort for the history datasets, but analysis is skipped.
func (s *JourneyService) fromSummary(ctx context.Context, userID string, summary *ports.JourneySummary, now time.Time) *JourneyResult {
	nodes := make([]lexicon.NodeIndex, 0, len(summary.ActivatedNodes))
	for _, n := range summary.ActivatedNodes {
		if n >= 0 && n < lexicon.NodeCount {
			nodes = append(nodes, lexicon.NodeIndex(n))
		}
	}
	emotions := make([]lexicon.EmotionCategory, 0, len(summary.DominantEmotions))
	for _, e := range summary.DominantEmotions {
		emotions = append(emotions, lexicon.EmotionCategory(strings.ToLower(e)))
	}

	state := aggregates.NewAffectiveState(summary.GrowthScore, nodes, emotions, summary.Insights, s.cfg)

	reflections, err := s.fetchWithRetry(ctx, userID)
	if err != nil {
		s.logger.Debug("history unavailable for precomputed journey",
			zap.String("userID", userID),
			zap.Error(err),
		)
		reflections = nil
	}

	rng := s.newRNG()
	return &JourneyResult{
		State:           state,
		Balance:         engine.BuildBalanceRadar(nodes, emotions, rng, s.cfg),
		Timeline:        engine.BuildTimeline(reflections, now, s.cfg),
		Milestones:      engine.BuildMilestones(reflections, now, s.cfg),
		Recommendations: engine.BuildRecommendations(nodes, emotions, s.cfg),
		ReflectionCount: len(reflections),
		ComputedAt:      now,
	}
}

// fetchWithRetry wraps the repository call in bounded exponential retry and
// a circuit breaker so a flapping store cannot stall analysis passes.
func (s *JourneyService) fetchWithRetry(ctx context.Context, userID string) ([]*entities.Reflection, error) {
	operation := func() ([]*entities.Reflection, error) {
		result, err := s.breaker.Execute(func() (interface{}, error) {
			return s.reflections.FetchByUser(ctx, userID, s.fetchLimit)
		})
		if err != nil {
			return nil, err
		}
		return result.([]*entities.Reflection), nil
	}

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(3),
		backoff.WithMaxElapsedTime(10*time.Second),
	)
}

func (s *JourneyService) loadTheme(ctx context.Context, userID string) string {
	if s.themes == nil {
		return ""
	}
	theme, err := s.themes.GetTheme(ctx, userID)
	if err != nil {
		s.logger.Debug("theme lookup failed, continuing without seed",
			zap.String("userID", userID),
			zap.Error(err),
		)
		return ""
	}
	return theme
}

func (s *JourneyService) loadPrecomputed(ctx context.Context, userID string) *ports.JourneySummary {
	if s.journeys == nil {
		return nil
	}
	summary, err := s.journeys.GetPrecomputed(ctx, userID)
	if err != nil {
		s.logger.Debug("precomputed journey lookup failed",
			zap.String("userID", userID),
			zap.Error(err),
		)
		return nil
	}
	return summary
}

func (s *JourneyService) storeLastGood(userID string, result *JourneyResult) {
	s.mu.Lock()
	s.lastGood[userID] = result
	s.mu.Unlock()
}

// emptyResult is the default first-load state. It carries the same dataset
// shapes as an analysis pass over zero reflections, so a fetch failure before
// the first success renders identically to an empty history.
func emptyResult(cfg *config.DomainConfig, now time.Time, rng *rand.Rand) *JourneyResult {
	return &JourneyResult{
		State:           aggregates.EmptyAffectiveState(),
		Balance:         engine.BuildBalanceRadar(nil, nil, rng, cfg),
		Timeline:        engine.BuildTimeline(nil, now, cfg),
		Milestones:      engine.BuildMilestones(nil, now, cfg),
		Recommendations: engine.BuildRecommendations(nil, nil, cfg),
		ReflectionCount: 0,
		ComputedAt:      now,
	}
}
