package commands

import (
	"errors"
)

// CreateReflectionCommand captures a new journal entry.
type CreateReflectionCommand struct {
	UserID  string `json:"user_id" validate:"required"`
	Content string `json:"content" validate:"required,min=1,max=20000"`
}

// Validate validates the command
func (c CreateReflectionCommand) Validate() error {
	if c.UserID == "" {
		return errors.New("userID is required")
	}
	if c.Content == "" {
		return errors.New("content is required")
	}
	return nil
}
