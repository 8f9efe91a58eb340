package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trottparts/garage-api/internal/catalog"
	"github.com/trottparts/garage-api/internal/domain"
	"github.com/trottparts/garage-api/internal/event"
	"github.com/trottparts/garage-api/internal/points"
)

type fixture struct {
	svc        catalog.Service
	repo       *catalog.FakeRepository
	pointsRepo *points.FakeRepository
	bus        *event.MemoryBus
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repo := catalog.NewFakeRepository()
	pointsRepo := points.NewFakeRepository()
	pointsRepo.SeedProfile("user-1", "rider", 0)
	bus := event.NewMemoryBus()
	pointsSvc := points.NewService(pointsRepo, bus)
	return &fixture{
		svc:        catalog.NewService(repo, pointsRepo, pointsSvc, bus),
		repo:       repo,
		pointsRepo: pointsRepo,
		bus:        bus,
	}
}

func seedPart(t *testing.T, f *fixture, id, name, category string, difficulty int) {
	t.Helper()
	require.NoError(t, f.repo.CreatePart(context.Background(), &domain.Part{
		ID:              id,
		Name:            name,
		CategoryName:    category,
		DifficultyLevel: difficulty,
	}))
}

func TestGetPart_Cached(t *testing.T) {
	f := newFixture(t)
	seedPart(t, f, "part-1", "Plaquettes avant", "Freinage", 3)

	first, err := f.svc.GetPart(context.Background(), "part-1")
	require.NoError(t, err)
	assert.Equal(t, "Plaquettes avant", first.Name)

	// Second lookup served from cache, repository untouched
	callsAfterFirst := f.repo.GetCalls
	second, err := f.svc.GetPart(context.Background(), "part-1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, callsAfterFirst, f.repo.GetCalls)
}

func TestGetPart_NotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.GetPart(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrPartNotFound)
}

func TestUpdatePart_InvalidatesCache(t *testing.T) {
	f := newFixture(t)
	seedPart(t, f, "part-1", "Pneu 10 pouces", "Pneus", 2)

	_, err := f.svc.GetPart(context.Background(), "part-1")
	require.NoError(t, err)

	updated := &domain.Part{ID: "part-1", Name: "Pneu 10 pouces renforcé", CategoryName: "Pneus", DifficultyLevel: 2}
	require.NoError(t, f.svc.UpdatePart(context.Background(), updated))

	got, err := f.svc.GetPart(context.Background(), "part-1")
	require.NoError(t, err)
	assert.Equal(t, "Pneu 10 pouces renforcé", got.Name)
}

func TestCompatibilityLinks(t *testing.T) {
	f := newFixture(t)
	seedPart(t, f, "part-1", "Chambre à air", "Chambres à Air", 1)
	require.NoError(t, f.repo.CreateScooter(context.Background(), &domain.Scooter{ID: "scooter-1", Brand: "Xiaomi", Model: "M365"}))

	require.NoError(t, f.svc.LinkCompatibility(context.Background(), "part-1", "scooter-1"))

	parts, err := f.svc.ListCompatibleParts(context.Background(), "scooter-1")
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, "part-1", parts[0].ID)

	require.NoError(t, f.svc.UnlinkCompatibility(context.Background(), "part-1", "scooter-1"))
	parts, err = f.svc.ListCompatibleParts(context.Background(), "scooter-1")
	require.NoError(t, err)
	assert.Empty(t, parts)
}

func TestCreditPurchase_AwardsOnce(t *testing.T) {
	f := newFixture(t)

	credited, err := f.svc.CreditPurchase(context.Background(), "user-1", "order-42")
	require.NoError(t, err)
	assert.True(t, credited)

	profile, err := f.pointsRepo.GetProfile(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, catalog.PurchaseXP, profile.PerformancePoints)

	// Second call is a no-op
	credited, err = f.svc.CreditPurchase(context.Background(), "user-1", "order-42")
	require.NoError(t, err)
	assert.False(t, credited)

	profile, err = f.pointsRepo.GetProfile(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, catalog.PurchaseXP, profile.PerformancePoints)
}

func TestCreditPurchase_RequiresIDs(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreditPurchase(context.Background(), "", "order-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.svc.CreditPurchase(context.Background(), "user-1", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSearchParts_FoldsAccents(t *testing.T) {
	f := newFixture(t)
	seedPart(t, f, "part-1", "Chambre à air 10 pouces", "Chambres à Air", 1)
	seedPart(t, f, "part-2", "Plaquettes avant", "Freinage", 3)
	seedPart(t, f, "part-3", "Batterie 36V", "Batteries", 5)

	// Unaccented query matches the accented name and category
	parts, err := f.svc.SearchParts(context.Background(), "chambre a air")
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, "part-1", parts[0].ID)

	// Category match
	parts, err = f.svc.SearchParts(context.Background(), "freinage")
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, "part-2", parts[0].ID)

	// Blank query returns everything
	parts, err = f.svc.SearchParts(context.Background(), "  ")
	require.NoError(t, err)
	assert.Len(t, parts, 3)

	// No match
	parts, err = f.svc.SearchParts(context.Background(), "guidon")
	require.NoError(t, err)
	assert.Empty(t, parts)
}
