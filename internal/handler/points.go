package handler

import (
	"encoding/json"
	"net/http"

	"github.com/trottparts/garage-api/internal/level"
	"github.com/trottparts/garage-api/internal/logger"
	"github.com/trottparts/garage-api/internal/points"
)

// AddPointsRequest represents a points credit request
type AddPointsRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Points int    `json:"points" validate:"required,gt=0"`
	Action string `json:"action" validate:"required,max=200"`
}

// AddPointsResponse carries the before/after totals plus the resolved levels
// so clients can render the right toast without another round trip.
type AddPointsResponse struct {
	UserID         string      `json:"user_id"`
	PreviousPoints int         `json:"previous_points"`
	PointsAdded    int         `json:"points_added"`
	NewTotal       int         `json:"new_total"`
	Action         string      `json:"action"`
	LeveledUp      bool        `json:"leveled_up"`
	Level          level.Level `json:"level"`
}

// HandleAddPoints credits performance points to a user
func HandleAddPoints(pointsService points.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req AddPointsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Warn("Failed to decode add-points request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			respondJSON(w, http.StatusBadRequest, FormatValidationError(err))
			return
		}

		update, err := pointsService.AddPoints(r.Context(), req.UserID, req.Points, req.Action)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		before := level.Resolve(update.PreviousPoints)
		after := level.Resolve(update.NewTotal)
		respondJSON(w, http.StatusOK, AddPointsResponse{
			UserID:         update.UserID,
			PreviousPoints: update.PreviousPoints,
			PointsAdded:    update.PointsAdded,
			NewTotal:       update.NewTotal,
			Action:         update.Action,
			LeveledUp:      after.Ordinal > before.Ordinal,
			Level:          after,
		})
	}
}

// ProfileResponse combines the profile with level standing and progress
type ProfileResponse struct {
	UserID   string         `json:"user_id"`
	Username string         `json:"username"`
	Points   int            `json:"points"`
	Level    level.Level    `json:"level"`
	Progress level.Progress `json:"progress"`
}

// HandleGetProfile returns a user's points total and level standing
func HandleGetProfile(pointsService points.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user_id")
		if userID == "" {
			respondError(w, http.StatusBadRequest, "user_id is required")
			return
		}

		profile, err := pointsService.GetProfile(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, ProfileResponse{
			UserID:   profile.ID,
			Username: profile.Username,
			Points:   profile.PerformancePoints,
			Level:    level.Resolve(profile.PerformancePoints),
			Progress: level.ProgressToNext(profile.PerformancePoints),
		})
	}
}

// HandleGetLevels returns the full level table for display
func HandleGetLevels() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, level.All())
	}
}
