package memory

import (
	"context"
	"testing"
	"time"

	"aura-backend/application/ports"
	"aura-backend/domain/core/entities"
	"aura-backend/domain/core/valueobjects"
	"aura-backend/domain/lexicon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustReflection(t *testing.T, userID, body string, createdAt time.Time) *entities.Reflection {
	t.Helper()

	content, err := valueobjects.NewReflectionContent(body)
	require.NoError(t, err)

	r, err := entities.ReconstructReflection(valueobjects.NewReflectionID(), userID, content, "", 0.5, createdAt)
	require.NoError(t, err)
	return r
}

func TestReflectionStore_NewestFirst(t *testing.T) {
	store := NewReflectionStore()
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	// save out of order
	require.NoError(t, store.Save(ctx, mustReflection(t, "u1", "second entry", base.Add(24*time.Hour))))
	require.NoError(t, store.Save(ctx, mustReflection(t, "u1", "third entry", base.Add(48*time.Hour))))
	require.NoError(t, store.Save(ctx, mustReflection(t, "u1", "first entry", base)))

	got, err := store.FetchByUser(ctx, "u1", 0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "third entry", got[0].Content().Body())
	assert.Equal(t, "second entry", got[1].Content().Body())
	assert.Equal(t, "first entry", got[2].Content().Body())

	count, err := store.CountByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestReflectionStore_LimitAndIsolation(t *testing.T) {
	store := NewReflectionStore()
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Save(ctx, mustReflection(t, "u1", "entry", base.Add(time.Duration(i)*time.Hour))))
	}

	got, err := store.FetchByUser(ctx, "u1", 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	other, err := store.FetchByUser(ctx, "u2", 0)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestReflectionStore_SetFailing(t *testing.T) {
	store := NewReflectionStore()
	ctx := context.Background()

	store.SetFailing(true)
	_, err := store.FetchByUser(ctx, "u1", 0)
	assert.Error(t, err)

	store.SetFailing(false)
	_, err = store.FetchByUser(ctx, "u1", 0)
	assert.NoError(t, err)
}

func TestJourneyStore_Precomputed(t *testing.T) {
	store := NewJourneyStore()
	ctx := context.Background()

	got, err := store.GetPrecomputed(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, got)

	summary := &ports.JourneySummary{
		GrowthScore:      70,
		ActivatedNodes:   []int{int(lexicon.NodeHeart), int(lexicon.NodeCrown)},
		DominantEmotions: []string{"love"},
		ComputedAt:       time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
	store.Put("u1", summary)

	got, err = store.GetPrecomputed(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, summary, got)
}

func TestThemeStore_SetGetClear(t *testing.T) {
	store := NewThemeStore()
	ctx := context.Background()

	theme, err := store.GetTheme(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, theme)

	require.NoError(t, store.SetTheme(ctx, "u1", "love"))
	theme, err = store.GetTheme(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "love", theme)

	require.NoError(t, store.SetTheme(ctx, "u1", ""))
	theme, err = store.GetTheme(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, theme)
}
