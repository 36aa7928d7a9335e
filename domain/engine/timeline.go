package engine

import (
	"fmt"
	"time"

	"aura-backend/domain/config"
	"aura-backend/domain/core/entities"
	"aura-backend/domain/lexicon"
)

// TimelinePoint is one history sample, one per reflection.
type TimelinePoint struct {
	Date            time.Time               `json:"date"`
	GrowthScore     float64                 `json:"growth_score"`
	DominantEmotion lexicon.EmotionCategory `json:"dominant_emotion,omitempty"`
}

// Milestone marks a notable feature of the reflection history.
type Milestone struct {
	Date        time.Time `json:"date"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}

// BuildTimeline converts a reverse-chronological reflection batch into a
// chronological growth timeline. Growth per point is synthetic interpolation
// from order and depth. Histories shorter than the window are left-padded
// with zero-growth placeholder days so charts keep a stable x-axis.
// Malformed entries are skipped, never fatal.
func BuildTimeline(reflections []*entities.Reflection, now time.Time, cfg *config.DomainConfig) []TimelinePoint {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}

	valid := make([]*entities.Reflection, 0, len(reflections))
	for _, r := range reflections {
		if r.IsValid() {
			valid = append(valid, r)
		}
	}

	points := make([]TimelinePoint, 0, len(valid))
	// Input arrives newest-first; walk backwards for chronological order.
	for i := len(valid) - 1; i >= 0; i-- {
		r := valid[i]
		idx := len(valid) - 1 - i

		growth := 30 + float64(idx)*8 + r.Depth()*30
		if growth > cfg.MaxGrowthScore {
			growth = cfg.MaxGrowthScore
		}

		points = append(points, TimelinePoint{
			Date:            r.CreatedAt(),
			GrowthScore:     growth,
			DominantEmotion: r.DominantEmotion(),
		})
	}

	if len(points) >= cfg.TimelineWindow {
		return points
	}

	// Pad placeholder days before the first real point.
	missing := cfg.TimelineWindow - len(points)
	start := now
	if len(points) > 0 {
		start = points[0].Date
	}

	padded := make([]TimelinePoint, 0, cfg.TimelineWindow)
	for i := missing; i > 0; i-- {
		padded = append(padded, TimelinePoint{
			Date:        start.AddDate(0, 0, -i),
			GrowthScore: 0,
		})
	}
	return append(padded, points...)
}

// BuildMilestones derives history milestones: the earliest entry, the
// deepest-scoring entry, and a consistency marker once the configured entry
// count is reached.
func BuildMilestones(reflections []*entities.Reflection, now time.Time, cfg *config.DomainConfig) []Milestone {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}

	valid := make([]*entities.Reflection, 0, len(reflections))
	for _, r := range reflections {
		if r.IsValid() {
			valid = append(valid, r)
		}
	}
	if len(valid) == 0 {
		return nil
	}

	earliest := valid[0]
	deepest := valid[0]
	for _, r := range valid[1:] {
		if r.CreatedAt().Before(earliest.CreatedAt()) {
			earliest = r
		}
		if r.Depth() > deepest.Depth() {
			deepest = r
		}
	}

	milestones := []Milestone{
		{
			Date:        earliest.CreatedAt(),
			Title:       "Journey Began",
			Description: "Your first reflection. Every journey starts with a single entry.",
		},
		{
			Date:        deepest.CreatedAt(),
			Title:       "Deepest Reflection",
			Description: "Your most profound entry so far.",
		},
	}

	if len(valid) >= cfg.ConsistencyThreshold {
		milestones = append(milestones, Milestone{
			Date:        now,
			Title:       "Consistent Practice",
			Description: fmt.Sprintf("You have kept up your practice across %d reflections.", len(valid)),
		})
	}

	return milestones
}
