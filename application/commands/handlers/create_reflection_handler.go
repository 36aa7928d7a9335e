package handlers

import (
	"context"
	"fmt"

	"aura-backend/application/commands"
	"aura-backend/application/commands/bus"
	"aura-backend/application/ports"
	"aura-backend/domain/core/entities"
	"aura-backend/domain/core/valueobjects"
	"aura-backend/domain/engine"

	"go.uber.org/zap"
)

// CreateReflectionHandler persists a new journal entry. The entry's dominant
// emotion is tagged at write time with a single-entry content analysis so
// history timelines can label points without re-analyzing.
type CreateReflectionHandler struct {
	reflections ports.ReflectionRepository
	logger      *zap.Logger
}

// NewCreateReflectionHandler creates a new reflection command handler
func NewCreateReflectionHandler(reflections ports.ReflectionRepository, logger *zap.Logger) *CreateReflectionHandler {
	return &CreateReflectionHandler{
		reflections: reflections,
		logger:      logger,
	}
}

// Handle implements bus.CommandHandler
func (h *CreateReflectionHandler) Handle(ctx context.Context, cmd bus.Command) error {
	create, ok := cmd.(commands.CreateReflectionCommand)
	if !ok {
		return fmt.Errorf("unexpected command type %T", cmd)
	}

	content, err := valueobjects.NewReflectionContent(create.Content)
	if err != nil {
		return err
	}

	reflection, err := entities.NewReflection(create.UserID, content)
	if err != nil {
		return err
	}

	if scores := engine.AnalyzeContent(content.Body(), nil); len(scores) > 0 {
		reflection, err = entities.ReconstructReflection(
			reflection.ID(),
			reflection.UserID(),
			content,
			scores[0].Category,
			reflection.Depth(),
			reflection.CreatedAt(),
		)
		if err != nil {
			return err
		}
	}

	if err := h.reflections.Save(ctx, reflection); err != nil {
		return fmt.Errorf("failed to save reflection: %w", err)
	}

	h.logger.Info("reflection created",
		zap.String("userID", create.UserID),
		zap.String("reflectionID", reflection.ID().String()),
	)
	return nil
}
