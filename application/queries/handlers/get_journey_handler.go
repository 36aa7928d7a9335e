package handlers

import (
	"context"
	"fmt"

	"aura-backend/application/queries"
	"aura-backend/application/services"
	"aura-backend/domain/config"
	"aura-backend/domain/lexicon"

	"go.uber.org/zap"
)

// GetJourneyHandler handles journey analysis queries
type GetJourneyHandler struct {
	journeys *services.JourneyService
	cfg      *config.DomainConfig
	logger   *zap.Logger
}

// NewGetJourneyHandler creates a new journey query handler
func NewGetJourneyHandler(journeys *services.JourneyService, cfg *config.DomainConfig, logger *zap.Logger) *GetJourneyHandler {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	return &GetJourneyHandler{
		journeys: journeys,
		cfg:      cfg,
		logger:   logger,
	}
}

// Handle executes the journey query. The service never propagates fetch
// failures, so the only errors here are validation errors.
func (h *GetJourneyHandler) Handle(ctx context.Context, query queries.GetJourneyQuery) (*queries.GetJourneyResult, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	result := h.journeys.Analyze(ctx, query.UserID)
	state := result.State

	out := &queries.GetJourneyResult{
		GrowthScore:     state.GrowthScore(),
		ReflectionCount: result.ReflectionCount,
		ComputedAt:      result.ComputedAt,
	}

	out.ActivatedNodes = make([]int, 0, len(state.ActivatedNodes()))
	for _, n := range state.ActivatedNodes() {
		out.ActivatedNodes = append(out.ActivatedNodes, int(n))
	}

	out.DominantEmotions = make([]string, 0)
	for _, e := range state.DominantEmotions() {
		out.DominantEmotions = append(out.DominantEmotions, string(e))
	}

	// The full insight list lives on the aggregate; rendering caps it.
	out.Insights = state.Insights()
	if len(out.Insights) > h.cfg.MaxRenderedInsights {
		out.Insights = out.Insights[:h.cfg.MaxRenderedInsights]
	}

	out.NodeIntensities = make([]float64, lexicon.NodeCount)
	for i := 0; i < lexicon.NodeCount; i++ {
		out.NodeIntensities[i] = state.Intensity(lexicon.NodeIndex(i))
	}

	out.Balance = make([]queries.BalanceDatum, 0, len(result.Balance))
	for _, d := range result.Balance {
		out.Balance = append(out.Balance, queries.BalanceDatum{
			Node:  int(d.Node),
			Name:  d.Name,
			Value: d.Value,
		})
	}

	out.History.Timeline = make([]queries.TimelinePoint, 0, len(result.Timeline))
	for _, p := range result.Timeline {
		out.History.Timeline = append(out.History.Timeline, queries.TimelinePoint{
			Date:            p.Date,
			GrowthScore:     p.GrowthScore,
			DominantEmotion: string(p.DominantEmotion),
		})
	}

	out.History.Milestones = make([]queries.Milestone, 0, len(result.Milestones))
	for _, m := range result.Milestones {
		out.History.Milestones = append(out.History.Milestones, queries.Milestone{
			Date:        m.Date,
			Title:       m.Title,
			Description: m.Description,
		})
	}

	out.Recommendations = make([]queries.Recommendation, 0, len(result.Recommendations))
	for _, r := range result.Recommendations {
		out.Recommendations = append(out.Recommendations, queries.Recommendation{
			Title:       r.Title,
			Description: r.Description,
		})
	}

	h.logger.Debug("journey computed",
		zap.String("userID", query.UserID),
		zap.Float64("growth", out.GrowthScore),
		zap.Int("activatedNodes", len(out.ActivatedNodes)),
	)

	return out, nil
}
