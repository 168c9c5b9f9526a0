package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripweaver/internal/itinerary"
	"tripweaver/internal/repositories"
	mem "tripweaver/pkg/memcache"
	"tripweaver/pkg/utils"
)

func newTestPlanService(start time.Time) *PlanService {
	svc := NewPlanService(repositories.NewPlanRepository(mem.NewKVStore())).(*PlanService)
	tick := start
	svc.now = func() int64 {
		tick = tick.Add(time.Second)
		return tick.UnixMilli()
	}
	return svc
}

func TestPlanServiceSlugCollisions(t *testing.T) {
	ctx := context.Background()
	svc := newTestPlanService(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	content := itinerary.GeneratedItineraryContent{Title: "Weekend in Paris!", Slug: "weekend-in-paris"}

	var slugs []string
	for i := 0; i < 3; i++ {
		rec, err := svc.SavePlan(ctx, content, itinerary.TravelPreferences{})
		require.NoError(t, err)
		assert.Equal(t, rec.Slug, rec.ItineraryData.Slug)
		slugs = append(slugs, rec.Slug)
	}
	assert.Equal(t, []string{"weekend-in-paris", "weekend-in-paris-2", "weekend-in-paris-3"}, slugs)
}

func TestPlanServiceSlugFallbacks(t *testing.T) {
	ctx := context.Background()
	svc := newTestPlanService(time.Now())

	rec, err := svc.SavePlan(ctx, itinerary.GeneratedItineraryContent{Title: "Rome & Florence"}, itinerary.TravelPreferences{})
	require.NoError(t, err)
	assert.Equal(t, "rome-florence", rec.Slug)

	rec, err = svc.SavePlan(ctx, itinerary.GeneratedItineraryContent{Title: "!!!"}, itinerary.TravelPreferences{})
	require.NoError(t, err)
	assert.Equal(t, "trip", rec.Slug)
}

func TestPlanServiceListGetDelete(t *testing.T) {
	ctx := context.Background()
	svc := newTestPlanService(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	for _, title := range []string{"First", "Second", "Third"} {
		_, err := svc.SavePlan(ctx, itinerary.GeneratedItineraryContent{Title: title}, itinerary.TravelPreferences{})
		require.NoError(t, err)
	}

	list, err := svc.ListPlans(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "third", list[0].Slug)
	assert.Equal(t, "first", list[2].Slug)

	got, err := svc.GetPlan(ctx, "second")
	require.NoError(t, err)
	assert.Equal(t, "Second", got.ItineraryData.Title)

	require.NoError(t, svc.DeletePlan(ctx, "second"))
	_, err = svc.GetPlan(ctx, "second")
	assert.ErrorIs(t, err, utils.ErrPlanNotFound)
	assert.ErrorIs(t, svc.DeletePlan(ctx, "second"), utils.ErrPlanNotFound)

	list, err = svc.ListPlans(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestPlanServiceStoreFailure(t *testing.T) {
	svc := NewPlanService(repositories.NewPlanRepository(brokenStore{}))
	_, err := svc.SavePlan(context.Background(), itinerary.GeneratedItineraryContent{Title: "x"}, itinerary.TravelPreferences{})
	assert.Error(t, err)
	_, err = svc.ListPlans(context.Background())
	assert.Error(t, err)
}
