package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trottparts/garage-api/internal/garage"
	"github.com/trottparts/garage-api/internal/logger"
)

// GarageHandler holds dependencies for garage endpoints
type GarageHandler struct {
	garageService garage.Service
}

// NewGarageHandler creates a new garage handler
func NewGarageHandler(garageService garage.Service) *GarageHandler {
	return &GarageHandler{garageService: garageService}
}

// AddScooterRequest represents a request to add a scooter to the garage
type AddScooterRequest struct {
	UserID    string `json:"user_id" validate:"required"`
	ScooterID string `json:"scooter_id" validate:"required"`
	IsOwned   bool   `json:"is_owned"`
	Nickname  string `json:"nickname" validate:"max=100"`
}

// HandleAddScooter adds a scooter to the user's garage
func (h *GarageHandler) HandleAddScooter(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req AddScooterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Failed to decode add-scooter request", "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
		return
	}
	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, FormatValidationError(err))
		return
	}

	item, err := h.garageService.AddScooter(r.Context(), req.UserID, req.ScooterID, req.IsOwned, req.Nickname)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

// HandleListGarage lists the user's garage items
func (h *GarageHandler) HandleListGarage(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	items, err := h.garageService.ListByUser(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// SetOwnedRequest represents an ownership change
type SetOwnedRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	IsOwned bool   `json:"is_owned"`
}

// HandleSetOwned flips a garage item between wishlist and owned
func (h *GarageHandler) HandleSetOwned(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")

	var req SetOwnedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
		return
	}
	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, FormatValidationError(err))
		return
	}

	item, err := h.garageService.SetOwned(r.Context(), req.UserID, itemID, req.IsOwned)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// UpdateDetailsRequest represents a garage item detail update
type UpdateDetailsRequest struct {
	UserID      string `json:"user_id" validate:"required"`
	Nickname    string `json:"nickname" validate:"max=100"`
	Description string `json:"description" validate:"max=500"`
	OdometerKM  int    `json:"odometer_km" validate:"gte=0"`
}

// HandleUpdateDetails updates a garage item's nickname, description and odometer
func (h *GarageHandler) HandleUpdateDetails(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")

	var req UpdateDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
		return
	}
	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, FormatValidationError(err))
		return
	}

	if err := h.garageService.UpdateDetails(r.Context(), req.UserID, itemID, req.Nickname, req.Description, req.OdometerKM); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Garage item updated"})
}

// HandleRemoveScooter removes a garage item
func (h *GarageHandler) HandleRemoveScooter(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	if err := h.garageService.Remove(r.Context(), userID, itemID); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Scooter removed from garage"})
}
