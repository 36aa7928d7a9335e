package valueobjects

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"aura-backend/domain/config"
	pkgerrors "aura-backend/pkg/errors"
)

// ReflectionContent is a value object for a journal entry's text
type ReflectionContent struct {
	body string
}

// NewReflectionContent creates content with validation using default configuration
func NewReflectionContent(body string) (ReflectionContent, error) {
	return NewReflectionContentWithConfig(body, config.DefaultDomainConfig())
}

// NewReflectionContentWithConfig creates content with validation and configuration
func NewReflectionContentWithConfig(body string, cfg *config.DomainConfig) (ReflectionContent, error) {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}

	body = strings.TrimSpace(body)

	if body == "" {
		return ReflectionContent{}, pkgerrors.NewValidationError("reflection content cannot be empty")
	}

	if utf8.RuneCountInString(body) > cfg.MaxContentLength {
		return ReflectionContent{}, fmt.Errorf("reflection exceeds maximum length of %d characters", cfg.MaxContentLength)
	}

	return ReflectionContent{body: body}, nil
}

// Body returns the entry text
func (c ReflectionContent) Body() string {
	return c.body
}

// IsEmpty checks if the content is empty
func (c ReflectionContent) IsEmpty() bool {
	return c.body == ""
}

// WordCount returns the number of whitespace-separated words in the entry
func (c ReflectionContent) WordCount() int {
	return len(strings.Fields(c.body))
}

// Equals checks if two contents are equal
func (c ReflectionContent) Equals(other ReflectionContent) bool {
	return c.body == other.body
}
