package handlers

import (
	"encoding/json"
	"net/http"

	"aura-backend/application/queries"
	querybus "aura-backend/application/queries/bus"
	"aura-backend/pkg/auth"
	pkgerrors "aura-backend/pkg/errors"

	"go.uber.org/zap"
)

// JourneyHandler serves the analysis read side: the full journey view,
// the live resonance snapshot, and the recommendation slice.
type JourneyHandler struct {
	queryBus *querybus.QueryBus
	logger   *zap.Logger
}

// NewJourneyHandler creates a new journey handler
func NewJourneyHandler(queryBus *querybus.QueryBus, logger *zap.Logger) *JourneyHandler {
	return &JourneyHandler{
		queryBus: queryBus,
		logger:   logger,
	}
}

// GetJourney handles GET /journey
func (h *JourneyHandler) GetJourney(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetJourneyQuery{UserID: userCtx.UserID})
	if err != nil {
		h.logger.Error("Failed to load journey",
			zap.String("userID", userCtx.UserID),
			zap.Error(err),
		)
		h.respondError(w, statusForError(err), "Failed to load journey")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// GetResonance handles GET /journey/resonance
func (h *JourneyHandler) GetResonance(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetResonanceQuery{UserID: userCtx.UserID})
	if err != nil {
		h.logger.Error("Failed to load resonance snapshot",
			zap.String("userID", userCtx.UserID),
			zap.Error(err),
		)
		h.respondError(w, statusForError(err), "Failed to load resonance snapshot")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// GetRecommendations handles GET /journey/recommendations. It runs the same
// analysis pass as GetJourney and projects out the recommendation slice.
func (h *JourneyHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetJourneyQuery{UserID: userCtx.UserID})
	if err != nil {
		h.logger.Error("Failed to load recommendations",
			zap.String("userID", userCtx.UserID),
			zap.Error(err),
		)
		h.respondError(w, statusForError(err), "Failed to load recommendations")
		return
	}

	journey, ok := result.(*queries.GetJourneyResult)
	if !ok {
		h.respondError(w, http.StatusInternalServerError, "Unexpected query result")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"recommendations": journey.Recommendations,
	})
}

func (h *JourneyHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *JourneyHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]interface{}{
		"error":   true,
		"message": message,
		"code":    status,
	})
}

// statusForError maps application errors to HTTP status codes.
func statusForError(err error) int {
	switch {
	case pkgerrors.IsValidation(err):
		return http.StatusBadRequest
	case pkgerrors.IsNotFound(err):
		return http.StatusNotFound
	case pkgerrors.IsUnauthorized(err):
		return http.StatusUnauthorized
	case pkgerrors.IsType(err, pkgerrors.ErrorTypeUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
