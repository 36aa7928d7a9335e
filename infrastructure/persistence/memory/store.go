// Package memory provides in-memory implementations of the persistence
// ports, used in development mode and by tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"aura-backend/application/ports"
	"aura-backend/domain/core/entities"
)

// ReflectionStore is an in-memory ports.ReflectionRepository.
type ReflectionStore struct {
	mu      sync.RWMutex
	byUser  map[string][]*entities.Reflection
	failing bool
}

// NewReflectionStore creates an empty in-memory reflection store
func NewReflectionStore() *ReflectionStore {
	return &ReflectionStore{
		byUser: make(map[string][]*entities.Reflection),
	}
}

// SetFailing forces FetchByUser to fail. Test hook for the degraded-fetch
// path.
func (s *ReflectionStore) SetFailing(failing bool) {
	s.mu.Lock()
	s.failing = failing
	s.mu.Unlock()
}

// Save persists a reflection
func (s *ReflectionStore) Save(_ context.Context, reflection *entities.Reflection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	userID := reflection.UserID()
	s.byUser[userID] = append(s.byUser[userID], reflection)
	// keep newest first
	sort.SliceStable(s.byUser[userID], func(i, j int) bool {
		return s.byUser[userID][i].CreatedAt().After(s.byUser[userID][j].CreatedAt())
	})
	return nil
}

// FetchByUser retrieves up to limit reflections, newest first
func (s *ReflectionStore) FetchByUser(_ context.Context, userID string, limit int) ([]*entities.Reflection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failing {
		return nil, errFetchUnavailable
	}

	stored := s.byUser[userID]
	if limit <= 0 || limit > len(stored) {
		limit = len(stored)
	}

	out := make([]*entities.Reflection, limit)
	copy(out, stored[:limit])
	return out, nil
}

// CountByUser returns the total reflection count for a user
func (s *ReflectionStore) CountByUser(_ context.Context, userID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byUser[userID]), nil
}

// JourneyStore is an in-memory ports.JourneyRepository.
type JourneyStore struct {
	mu        sync.RWMutex
	summaries map[string]*ports.JourneySummary
}

// NewJourneyStore creates an empty in-memory journey store
func NewJourneyStore() *JourneyStore {
	return &JourneyStore{
		summaries: make(map[string]*ports.JourneySummary),
	}
}

// Put stores a precomputed summary for a user
func (s *JourneyStore) Put(userID string, summary *ports.JourneySummary) {
	s.mu.Lock()
	s.summaries[userID] = summary
	s.mu.Unlock()
}

// GetPrecomputed returns the stored summary or nil
func (s *JourneyStore) GetPrecomputed(_ context.Context, userID string) (*ports.JourneySummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.summaries[userID], nil
}

// ThemeStore is an in-memory ports.ThemeProvider.
type ThemeStore struct {
	mu     sync.RWMutex
	themes map[string]string
}

// NewThemeStore creates an empty in-memory theme store
func NewThemeStore() *ThemeStore {
	return &ThemeStore{
		themes: make(map[string]string),
	}
}

// GetTheme returns the stored theme string, empty when unset
func (s *ThemeStore) GetTheme(_ context.Context, userID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.themes[userID], nil
}

// SetTheme stores the theme string; empty clears it
func (s *ThemeStore) SetTheme(_ context.Context, userID string, theme string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if theme == "" {
		delete(s.themes, userID)
		return nil
	}
	s.themes[userID] = theme
	return nil
}
