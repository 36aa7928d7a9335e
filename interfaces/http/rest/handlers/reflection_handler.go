package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"aura-backend/application/commands"
	"aura-backend/application/commands/bus"
	"aura-backend/pkg/auth"
	"aura-backend/pkg/utils"

	"go.uber.org/zap"
)

// ReflectionHandler handles the write side: journal entries and the
// dream theme.
type ReflectionHandler struct {
	commandBus *bus.CommandBus
	logger     *zap.Logger
}

// NewReflectionHandler creates a new reflection handler
func NewReflectionHandler(commandBus *bus.CommandBus, logger *zap.Logger) *ReflectionHandler {
	return &ReflectionHandler{
		commandBus: commandBus,
		logger:     logger,
	}
}

// CreateReflectionRequest represents the request body for recording a reflection
type CreateReflectionRequest struct {
	Content string `json:"content" validate:"required,min=1,max=20000"`
}

// CreateReflectionResponse represents the response for recording a reflection
type CreateReflectionResponse struct {
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
}

// SetThemeRequest represents the request body for setting the dream theme
type SetThemeRequest struct {
	Theme string `json:"theme" validate:"max=64"`
}

// CreateReflection handles POST /reflections
func (h *ReflectionHandler) CreateReflection(w http.ResponseWriter, r *http.Request) {
	var req CreateReflectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	cmd := commands.CreateReflectionCommand{
		UserID:  userCtx.UserID,
		Content: req.Content,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Failed to record reflection",
			zap.String("userID", userCtx.UserID),
			zap.Error(err),
		)
		h.respondError(w, http.StatusInternalServerError, "Failed to record reflection")
		return
	}

	h.respondJSON(w, http.StatusCreated, CreateReflectionResponse{
		Message:   "Reflection recorded",
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

// SetTheme handles PUT /journey/theme. An empty theme clears the stored
// value.
func (h *ReflectionHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req SetThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	cmd := commands.SetThemeCommand{
		UserID: userCtx.UserID,
		Theme:  req.Theme,
	}

	if err := cmd.Validate(); err != nil {
		h.respondError(w, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Failed to set theme",
			zap.String("userID", userCtx.UserID),
			zap.Error(err),
		)
		h.respondError(w, http.StatusInternalServerError, "Failed to set theme")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Theme updated",
	})
}

func (h *ReflectionHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *ReflectionHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]interface{}{
		"error":   true,
		"message": message,
		"code":    status,
	})
}
