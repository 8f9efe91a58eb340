package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trottparts/garage-api/internal/event"
	"github.com/trottparts/garage-api/internal/points"
)

func newPointsService(t *testing.T, seed int) points.Service {
	t.Helper()
	repo := points.NewFakeRepository()
	repo.SeedProfile("user-1", "rider", seed)
	return points.NewService(repo, event.NewMemoryBus())
}

func TestHandleAddPoints(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := newPointsService(t, 100)
		body := `{"user_id":"user-1","points":50,"action":"Achat de pièce"}`
		req := httptest.NewRequest("POST", "/api/v1/points/add", strings.NewReader(body))
		w := httptest.NewRecorder()

		HandleAddPoints(svc).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"previous_points":100`)
		assert.Contains(t, w.Body.String(), `"new_total":150`)
		assert.Contains(t, w.Body.String(), `"leveled_up":false`)
	})

	t.Run("Level Up", func(t *testing.T) {
		svc := newPointsService(t, 490)
		body := `{"user_id":"user-1","points":20,"action":"Achat de pièce"}`
		req := httptest.NewRequest("POST", "/api/v1/points/add", strings.NewReader(body))
		w := httptest.NewRecorder()

		HandleAddPoints(svc).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"leveled_up":true`)
		assert.Contains(t, w.Body.String(), `"Mécano"`)
	})

	t.Run("Negative Points Rejected", func(t *testing.T) {
		svc := newPointsService(t, 100)
		body := `{"user_id":"user-1","points":-10,"action":"x"}`
		req := httptest.NewRequest("POST", "/api/v1/points/add", strings.NewReader(body))
		w := httptest.NewRecorder()

		HandleAddPoints(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Cap Exceeded", func(t *testing.T) {
		svc := newPointsService(t, 100)
		body := `{"user_id":"user-1","points":501,"action":"x"}`
		req := httptest.NewRequest("POST", "/api/v1/points/add", strings.NewReader(body))
		w := httptest.NewRecorder()

		HandleAddPoints(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "per-call limit")
	})

	t.Run("Unknown Profile", func(t *testing.T) {
		svc := newPointsService(t, 0)
		body := `{"user_id":"ghost","points":10,"action":"x"}`
		req := httptest.NewRequest("POST", "/api/v1/points/add", strings.NewReader(body))
		w := httptest.NewRecorder()

		HandleAddPoints(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Invalid Body", func(t *testing.T) {
		svc := newPointsService(t, 0)
		req := httptest.NewRequest("POST", "/api/v1/points/add", strings.NewReader("{"))
		w := httptest.NewRecorder()

		HandleAddPoints(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleGetProfile(t *testing.T) {
	t.Run("Success With Progress", func(t *testing.T) {
		svc := newPointsService(t, 250)
		req := httptest.NewRequest("GET", "/api/v1/points/profile?user_id=user-1", nil)
		w := httptest.NewRecorder()

		HandleGetProfile(svc).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"points":250`)
		assert.Contains(t, w.Body.String(), `"Apprenti"`)
		assert.Contains(t, w.Body.String(), `"percentage":50`)
	})

	t.Run("Missing user_id", func(t *testing.T) {
		svc := newPointsService(t, 0)
		req := httptest.NewRequest("GET", "/api/v1/points/profile", nil)
		w := httptest.NewRecorder()

		HandleGetProfile(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleGetLevels(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/levels", nil)
	w := httptest.NewRecorder()

	HandleGetLevels().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	for _, name := range []string{"Apprenti", "Mécano", "Expert", "Légende"} {
		assert.Contains(t, w.Body.String(), name)
	}
}

func TestHandleXPPreview(t *testing.T) {
	t.Run("Known Category", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/xp/preview?difficulty=3&category=Batteries", nil)
		w := httptest.NewRecorder()

		HandleXPPreview().ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"min_xp":50`)
		assert.Contains(t, w.Body.String(), `"max_xp":70`)
	})

	t.Run("Clamped At Cap", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/xp/preview?difficulty=5&category=Batteries", nil)
		w := httptest.NewRecorder()

		HandleXPPreview().ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"min_xp":120`)
		assert.Contains(t, w.Body.String(), `"max_xp":100`)
	})

	t.Run("Defaults", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/xp/preview", nil)
		w := httptest.NewRecorder()

		HandleXPPreview().ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"min_xp":15`)
		assert.Contains(t, w.Body.String(), `"max_xp":35`)
	})

	t.Run("Bad Difficulty", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/xp/preview?difficulty=abc", nil)
		w := httptest.NewRecorder()

		HandleXPPreview().ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
