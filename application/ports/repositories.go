package ports

import (
	"context"
	"time"

	"aura-backend/domain/core/entities"
)

// ReflectionRepository defines the interface for reflection retrieval
// This is a port in hexagonal architecture - the domain doesn't know about the implementation
type ReflectionRepository interface {
	// FetchByUser retrieves up to limit reflections for a user,
	// newest first. May fail on network or auth problems; callers treat
	// failure as "no new data", never as fatal.
	FetchByUser(ctx context.Context, userID string, limit int) ([]*entities.Reflection, error)

	// Save persists a reflection (create or update)
	Save(ctx context.Context, reflection *entities.Reflection) error

	// CountByUser returns the total reflection count for a user
	CountByUser(ctx context.Context, userID string) (int, error)
}

// JourneySummary is a precomputed engine summary, used as a shortcut path
// that bypasses the content-analysis pipeline when available.
type JourneySummary struct {
	GrowthScore      float64
	ActivatedNodes   []int
	DominantEmotions []string
	Insights         []string
	ComputedAt       time.Time
}

// JourneyRepository provides optional precomputed journey summaries.
type JourneyRepository interface {
	// GetPrecomputed returns a stored summary for the user, or nil when
	// none exists. Absence is not an error.
	GetPrecomputed(ctx context.Context, userID string) (*JourneySummary, error)
}

// ThemeProvider stores the user's optional dream theme, read once per
// analysis pass.
type ThemeProvider interface {
	// GetTheme returns the stored theme string, empty when unset
	GetTheme(ctx context.Context, userID string) (string, error)

	// SetTheme stores the theme string; empty clears it
	SetTheme(ctx context.Context, userID string, theme string) error
}
