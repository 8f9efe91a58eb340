package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trottparts/garage-api/internal/catalog"
	"github.com/trottparts/garage-api/internal/domain"
	"github.com/trottparts/garage-api/internal/event"
	"github.com/trottparts/garage-api/internal/garage"
	"github.com/trottparts/garage-api/internal/modification"
	"github.com/trottparts/garage-api/internal/points"
	"github.com/trottparts/garage-api/internal/xp"
)

// testRouter wires garage and modification handlers behind chi URL params
func testRouter(t *testing.T) (chi.Router, *garage.FakeRepository, *catalog.FakeRepository) {
	t.Helper()

	garageRepo := garage.NewFakeRepository()
	catalogRepo := catalog.NewFakeRepository()
	modRepo := modification.NewFakeRepository()
	pointsRepo := points.NewFakeRepository()
	pointsRepo.SeedProfile("user-1", "rider", 0)

	bus := event.NewMemoryBus()
	pointsSvc := points.NewService(pointsRepo, bus)
	catalogSvc := catalog.NewService(catalogRepo, pointsRepo, pointsSvc, bus)
	garageSvc := garage.NewService(garageRepo, pointsSvc)
	modSvc := modification.NewService(modRepo, garageRepo, catalogSvc, pointsSvc, xp.NewCalculator(), bus)

	garageHandler := NewGarageHandler(garageSvc)
	modHandler := NewModificationHandler(modSvc)

	r := chi.NewRouter()
	r.Post("/garage", garageHandler.HandleAddScooter)
	r.Get("/garage", garageHandler.HandleListGarage)
	r.Put("/garage/{itemID}/owned", garageHandler.HandleSetOwned)
	r.Put("/garage/{itemID}", garageHandler.HandleUpdateDetails)
	r.Delete("/garage/{itemID}", garageHandler.HandleRemoveScooter)
	r.Post("/modifications", modHandler.HandleRecord)
	r.Get("/garage/{itemID}/modifications", modHandler.HandleList)
	r.Get("/order-items/{orderItemID}/installed", modHandler.HandleOrderItemStatus)
	r.Delete("/modifications/{eventID}", modHandler.HandleDelete)

	return r, garageRepo, catalogRepo
}

func TestGarageEndpoints(t *testing.T) {
	router, garageRepo, _ := testRouter(t)

	t.Run("Add Scooter", func(t *testing.T) {
		body := `{"user_id":"user-1","scooter_id":"scooter-1","is_owned":false,"nickname":"Titine"}`
		req := httptest.NewRequest("POST", "/garage", strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"nickname":"Titine"`)
	})

	t.Run("Set Owned Requires Ownership", func(t *testing.T) {
		require.NoError(t, garageRepo.CreateItem(context.Background(), &domain.GarageItem{
			ID: "item-x", UserID: "user-2", ScooterID: "scooter-1",
		}))

		body := `{"user_id":"user-1","is_owned":true}`
		req := httptest.NewRequest("PUT", "/garage/item-x/owned", strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Unknown Item Is 404", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/garage/ghost?user_id=user-1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestModificationEndpoints(t *testing.T) {
	router, garageRepo, catalogRepo := testRouter(t)

	require.NoError(t, garageRepo.CreateItem(context.Background(), &domain.GarageItem{
		ID: "item-1", UserID: "user-1", ScooterID: "scooter-1", IsOwned: true,
	}))
	require.NoError(t, catalogRepo.CreatePart(context.Background(), &domain.Part{
		ID: "part-1", Name: "Batterie 36V", CategoryName: "Batteries", DifficultyLevel: 3,
	}))

	t.Run("Record", func(t *testing.T) {
		body := `{"user_id":"user-1","garage_item_id":"item-1","part_id":"part-1","order_item_id":"oi-1"}`
		req := httptest.NewRequest("POST", "/modifications", strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"xp_earned":70`)
	})

	t.Run("Duplicate Order Item Conflicts", func(t *testing.T) {
		body := `{"user_id":"user-1","garage_item_id":"item-1","part_id":"part-1","order_item_id":"oi-1"}`
		req := httptest.NewRequest("POST", "/modifications", strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Order Item Status", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/order-items/oi-1/installed", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"installed":true`)
	})

	t.Run("List History", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/garage/item-1/modifications?user_id=user-1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"part_id":"part-1"`)
	})

	t.Run("Notes Too Long", func(t *testing.T) {
		body := `{"user_id":"user-1","garage_item_id":"item-1","part_id":"part-1","notes":"` +
			strings.Repeat("a", 501) + `"}`
		req := httptest.NewRequest("POST", "/modifications", strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
