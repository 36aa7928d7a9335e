package handlers

import (
	"context"
	"fmt"

	"aura-backend/application/queries"
	"aura-backend/application/services"

	"go.uber.org/zap"
)

// GetResonanceHandler handles point-in-time resonance queries
type GetResonanceHandler struct {
	scheduler *services.ResonanceScheduler
	logger    *zap.Logger
}

// NewGetResonanceHandler creates a new resonance query handler
func NewGetResonanceHandler(scheduler *services.ResonanceScheduler, logger *zap.Logger) *GetResonanceHandler {
	return &GetResonanceHandler{
		scheduler: scheduler,
		logger:    logger,
	}
}

// Handle computes the resonance edge set at the current instant.
func (h *GetResonanceHandler) Handle(ctx context.Context, query queries.GetResonanceQuery) (*queries.GetResonanceResult, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	edges, now := h.scheduler.Snapshot(query.UserID)

	out := &queries.GetResonanceResult{
		Edges:      make([]queries.ResonanceEdge, 0, len(edges)),
		ComputedAt: now,
	}
	for _, e := range edges {
		out.Edges = append(out.Edges, queries.ResonanceEdge{
			A:         int(e.A),
			B:         int(e.B),
			Intensity: e.Intensity,
		})
	}

	h.logger.Debug("resonance snapshot",
		zap.String("userID", query.UserID),
		zap.Int("edges", len(out.Edges)),
	)

	return out, nil
}
