package entities

import (
	"time"

	"aura-backend/domain/core/valueobjects"
	"aura-backend/domain/lexicon"
	pkgerrors "aura-backend/pkg/errors"
)

// depthSaturationWords is the entry length at which emotional depth reaches 1.0.
const depthSaturationWords = 200

// Reflection is a single journal entry. The engine only reads reflections;
// they are owned by the reflection store and never mutated here.
type Reflection struct {
	id              valueobjects.ReflectionID
	userID          string
	content         valueobjects.ReflectionContent
	dominantEmotion lexicon.EmotionCategory // optional, zero value when unknown
	depth           float64                 // emotional depth in [0,1]
	createdAt       time.Time
}

// NewReflection creates a new reflection with full validation. Depth is
// derived from entry length and saturates at depthSaturationWords.
func NewReflection(userID string, content valueobjects.ReflectionContent) (*Reflection, error) {
	if userID == "" {
		return nil, pkgerrors.NewValidationError("userID cannot be empty")
	}

	if content.IsEmpty() {
		return nil, pkgerrors.NewValidationError("content cannot be empty")
	}

	return &Reflection{
		id:        valueobjects.NewReflectionID(),
		userID:    userID,
		content:   content,
		depth:     depthFromWordCount(content.WordCount()),
		createdAt: time.Now(),
	}, nil
}

// ReconstructReflection rebuilds a reflection from repository data with
// preserved timestamps and stored depth.
func ReconstructReflection(
	id valueobjects.ReflectionID,
	userID string,
	content valueobjects.ReflectionContent,
	dominantEmotion lexicon.EmotionCategory,
	depth float64,
	createdAt time.Time,
) (*Reflection, error) {
	if userID == "" {
		return nil, pkgerrors.NewValidationError("userID cannot be empty")
	}

	if content.IsEmpty() {
		return nil, pkgerrors.NewValidationError("content cannot be empty")
	}

	if depth < 0 || depth > 1 {
		depth = depthFromWordCount(content.WordCount())
	}

	return &Reflection{
		id:              id,
		userID:          userID,
		content:         content,
		dominantEmotion: dominantEmotion,
		depth:           depth,
		createdAt:       createdAt,
	}, nil
}

// ID returns the reflection's unique identifier
func (r *Reflection) ID() valueobjects.ReflectionID {
	return r.id
}

// UserID returns the owner's ID
func (r *Reflection) UserID() string {
	return r.userID
}

// Content returns the entry text
func (r *Reflection) Content() valueobjects.ReflectionContent {
	return r.content
}

// DominantEmotion returns the stored dominant emotion, empty when unknown
func (r *Reflection) DominantEmotion() lexicon.EmotionCategory {
	return r.dominantEmotion
}

// Depth returns the emotional depth scalar in [0,1]
func (r *Reflection) Depth() float64 {
	return r.depth
}

// CreatedAt returns when the reflection was written
func (r *Reflection) CreatedAt() time.Time {
	return r.createdAt
}

// IsValid reports whether the entry carries enough data for analysis.
// Malformed entries are skipped individually, never fatal to a batch.
func (r *Reflection) IsValid() bool {
	return r != nil && !r.content.IsEmpty() && !r.createdAt.IsZero()
}

func depthFromWordCount(words int) float64 {
	depth := float64(words) / depthSaturationWords
	if depth > 1 {
		depth = 1
	}
	return depth
}
