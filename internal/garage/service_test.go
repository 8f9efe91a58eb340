package garage_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trottparts/garage-api/internal/domain"
	"github.com/trottparts/garage-api/internal/event"
	"github.com/trottparts/garage-api/internal/garage"
	"github.com/trottparts/garage-api/internal/points"
)

type fixture struct {
	svc        garage.Service
	pointsRepo *points.FakeRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	pointsRepo := points.NewFakeRepository()
	pointsRepo.SeedProfile("user-1", "rider", 0)
	pointsSvc := points.NewService(pointsRepo, event.NewMemoryBus())
	return &fixture{
		svc:        garage.NewService(garage.NewFakeRepository(), pointsSvc),
		pointsRepo: pointsRepo,
	}
}

func (f *fixture) points(t *testing.T, userID string) int {
	t.Helper()
	profile, err := f.pointsRepo.GetProfile(context.Background(), userID)
	require.NoError(t, err)
	return profile.PerformancePoints
}

func TestAddScooter_NoPointsAwarded(t *testing.T) {
	f := newFixture(t)

	item, err := f.svc.AddScooter(context.Background(), "user-1", "scooter-1", true, "Ma titine")
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.True(t, item.IsOwned)
	assert.Equal(t, 0, f.points(t, "user-1"))
}

func TestAddScooter_RequiresIDs(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.AddScooter(context.Background(), "", "scooter-1", false, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.svc.AddScooter(context.Background(), "user-1", "", false, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSetOwned_PromotionAwardsBonus(t *testing.T) {
	f := newFixture(t)
	item, err := f.svc.AddScooter(context.Background(), "user-1", "scooter-1", false, "")
	require.NoError(t, err)

	updated, err := f.svc.SetOwned(context.Background(), "user-1", item.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.IsOwned)
	assert.Equal(t, garage.PromotionBonusXP, f.points(t, "user-1"))
}

func TestSetOwned_NoBonusWhenAlreadyOwned(t *testing.T) {
	f := newFixture(t)
	item, err := f.svc.AddScooter(context.Background(), "user-1", "scooter-1", true, "")
	require.NoError(t, err)

	_, err = f.svc.SetOwned(context.Background(), "user-1", item.ID, true)
	require.NoError(t, err)
	assert.Equal(t, 0, f.points(t, "user-1"))
}

func TestSetOwned_DemotionKeepsPoints(t *testing.T) {
	f := newFixture(t)
	item, err := f.svc.AddScooter(context.Background(), "user-1", "scooter-1", false, "")
	require.NoError(t, err)

	_, err = f.svc.SetOwned(context.Background(), "user-1", item.ID, true)
	require.NoError(t, err)
	_, err = f.svc.SetOwned(context.Background(), "user-1", item.ID, false)
	require.NoError(t, err)

	// Demotion never claws the bonus back
	assert.Equal(t, garage.PromotionBonusXP, f.points(t, "user-1"))
}

func TestSetOwned_RejectsOtherUsersItem(t *testing.T) {
	f := newFixture(t)
	item, err := f.svc.AddScooter(context.Background(), "user-1", "scooter-1", false, "")
	require.NoError(t, err)

	_, err = f.svc.SetOwned(context.Background(), "user-2", item.ID, true)
	assert.ErrorIs(t, err, domain.ErrNotGarageOwner)
}

func TestUpdateDetails(t *testing.T) {
	f := newFixture(t)
	item, err := f.svc.AddScooter(context.Background(), "user-1", "scooter-1", true, "")
	require.NoError(t, err)

	require.NoError(t, f.svc.UpdateDetails(context.Background(), "user-1", item.ID, "La fusée", "Freins refaits", 1200))

	got, err := f.svc.GetItem(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, "La fusée", got.Nickname)
	assert.Equal(t, "Freins refaits", got.Description)
	assert.Equal(t, 1200, got.OdometerKM)
}

func TestUpdateDetails_DescriptionTooLong(t *testing.T) {
	f := newFixture(t)
	item, err := f.svc.AddScooter(context.Background(), "user-1", "scooter-1", true, "")
	require.NoError(t, err)

	long := strings.Repeat("a", garage.MaxDescriptionLength+1)
	err = f.svc.UpdateDetails(context.Background(), "user-1", item.ID, "", long, 0)
	assert.ErrorIs(t, err, domain.ErrNotesTooLong)
}

func TestUpdateDetails_NegativeOdometer(t *testing.T) {
	f := newFixture(t)
	item, err := f.svc.AddScooter(context.Background(), "user-1", "scooter-1", true, "")
	require.NoError(t, err)

	err = f.svc.UpdateDetails(context.Background(), "user-1", item.ID, "", "", -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRemove_PointsAreKept(t *testing.T) {
	f := newFixture(t)
	item, err := f.svc.AddScooter(context.Background(), "user-1", "scooter-1", false, "")
	require.NoError(t, err)
	_, err = f.svc.SetOwned(context.Background(), "user-1", item.ID, true)
	require.NoError(t, err)

	require.NoError(t, f.svc.Remove(context.Background(), "user-1", item.ID))

	_, err = f.svc.GetItem(context.Background(), item.ID)
	assert.ErrorIs(t, err, domain.ErrGarageItemNotFound)
	assert.Equal(t, garage.PromotionBonusXP, f.points(t, "user-1"))
}

func TestListByUser(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.AddScooter(context.Background(), "user-1", "scooter-1", true, "")
	require.NoError(t, err)
	_, err = f.svc.AddScooter(context.Background(), "user-1", "scooter-2", false, "")
	require.NoError(t, err)

	items, err := f.svc.ListByUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = f.svc.ListByUser(context.Background(), "user-2")
	require.NoError(t, err)
	assert.Empty(t, items)
}
