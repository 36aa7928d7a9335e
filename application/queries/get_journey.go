package queries

import (
	"errors"
	"time"
)

// GetJourneyQuery requests a full analysis pass for a user.
type GetJourneyQuery struct {
	UserID string `json:"user_id"`
}

// Validate validates the query
func (q GetJourneyQuery) Validate() error {
	if q.UserID == "" {
		return errors.New("userID is required")
	}
	return nil
}

// GetJourneyResult is the engine output shaped for rendering clients.
type GetJourneyResult struct {
	GrowthScore      float64          `json:"growth_score"`
	ActivatedNodes   []int            `json:"activated_nodes"`
	DominantEmotions []string         `json:"dominant_emotions"`
	Insights         []string         `json:"insights"`
	NodeIntensities  []float64        `json:"node_intensities"`
	Balance          []BalanceDatum   `json:"chakra_balance_data"`
	History          EmotionalHistory `json:"emotional_history_data"`
	Recommendations  []Recommendation `json:"emotional_recommendations"`
	ReflectionCount  int              `json:"reflection_count"`
	ComputedAt       time.Time        `json:"computed_at"`
}

// BalanceDatum is one radar value, present for all seven nodes.
type BalanceDatum struct {
	Node  int     `json:"node"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// EmotionalHistory bundles the timeline and its milestones.
type EmotionalHistory struct {
	Timeline   []TimelinePoint `json:"timeline"`
	Milestones []Milestone     `json:"milestones"`
}

// TimelinePoint is one chronological history sample.
type TimelinePoint struct {
	Date            time.Time `json:"date"`
	GrowthScore     float64   `json:"growth_score"`
	DominantEmotion string    `json:"dominant_emotion,omitempty"`
}

// Milestone marks a notable feature of the reflection history.
type Milestone struct {
	Date        time.Time `json:"date"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}

// Recommendation is one templated suggestion.
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
