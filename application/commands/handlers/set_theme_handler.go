package handlers

import (
	"context"
	"fmt"
	"strings"

	"aura-backend/application/commands"
	"aura-backend/application/commands/bus"
	"aura-backend/application/ports"

	"go.uber.org/zap"
)

// SetThemeHandler stores a user's dream theme
type SetThemeHandler struct {
	themes ports.ThemeProvider
	logger *zap.Logger
}

// NewSetThemeHandler creates a new theme command handler
func NewSetThemeHandler(themes ports.ThemeProvider, logger *zap.Logger) *SetThemeHandler {
	return &SetThemeHandler{
		themes: themes,
		logger: logger,
	}
}

// Handle implements bus.CommandHandler
func (h *SetThemeHandler) Handle(ctx context.Context, cmd bus.Command) error {
	setTheme, ok := cmd.(commands.SetThemeCommand)
	if !ok {
		return fmt.Errorf("unexpected command type %T", cmd)
	}

	theme := strings.ToLower(strings.TrimSpace(setTheme.Theme))
	if err := h.themes.SetTheme(ctx, setTheme.UserID, theme); err != nil {
		return fmt.Errorf("failed to store theme: %w", err)
	}

	h.logger.Info("theme updated",
		zap.String("userID", setTheme.UserID),
		zap.String("theme", theme),
	)
	return nil
}
