package handlers

import (
	"context"
	"testing"

	"aura-backend/application/ports"
	"aura-backend/application/queries"
	"aura-backend/application/services"
	"aura-backend/domain/lexicon"
	"aura-backend/infrastructure/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newJourneyHandler(t *testing.T) (*GetJourneyHandler, *memory.JourneyStore) {
	t.Helper()

	journeys := memory.NewJourneyStore()
	svc := services.NewJourneyService(
		memory.NewReflectionStore(), journeys, memory.NewThemeStore(), nil, zap.NewNop())

	return NewGetJourneyHandler(svc, nil, zap.NewNop()), journeys
}

func TestHandle_RejectsEmptyUserID(t *testing.T) {
	h, _ := newJourneyHandler(t)

	_, err := h.Handle(context.Background(), queries.GetJourneyQuery{})
	assert.Error(t, err)
}

func TestHandle_CapsRenderedInsights(t *testing.T) {
	h, journeys := newJourneyHandler(t)
	journeys.Put("user-1", &ports.JourneySummary{
		GrowthScore:    50,
		ActivatedNodes: []int{int(lexicon.NodeHeart)},
		Insights:       []string{"one", "two", "three", "four", "five"},
	})

	out, err := h.Handle(context.Background(), queries.GetJourneyQuery{UserID: "user-1"})
	require.NoError(t, err)

	assert.Equal(t, []string{"one", "two", "three"}, out.Insights)
}

func TestHandle_FullDatasetShapes(t *testing.T) {
	h, _ := newJourneyHandler(t)

	out, err := h.Handle(context.Background(), queries.GetJourneyQuery{UserID: "user-1"})
	require.NoError(t, err)

	assert.Len(t, out.Balance, lexicon.NodeCount)
	assert.Len(t, out.NodeIntensities, lexicon.NodeCount)
	assert.Len(t, out.History.Timeline, 7)
	assert.NotEmpty(t, out.Recommendations)
}
