package commands

import (
	"errors"
	"strings"

	"aura-backend/domain/lexicon"
)

// SetThemeCommand stores or clears a user's dream theme. The theme seeds
// activation on the next analysis pass.
type SetThemeCommand struct {
	UserID string `json:"user_id" validate:"required"`
	Theme  string `json:"theme" validate:"max=64"`
}

// Validate validates the command. An empty theme clears the stored value; a
// non-empty theme must come from the closed vocabulary.
func (c SetThemeCommand) Validate() error {
	if c.UserID == "" {
		return errors.New("userID is required")
	}

	theme := strings.ToLower(strings.TrimSpace(c.Theme))
	if theme == "" {
		return nil
	}
	if _, ok := lexicon.ThemeSeeds[theme]; !ok {
		return errors.New("unknown theme")
	}
	return nil
}
