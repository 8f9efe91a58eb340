package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/trottparts/garage-api/internal/logger"
	"github.com/trottparts/garage-api/internal/modification"
)

// ModificationHandler holds dependencies for modification-history endpoints
type ModificationHandler struct {
	modificationService modification.Service
}

// NewModificationHandler creates a new modification handler
func NewModificationHandler(modificationService modification.Service) *ModificationHandler {
	return &ModificationHandler{modificationService: modificationService}
}

// RecordModificationRequest represents a request to record an installation
type RecordModificationRequest struct {
	UserID       string     `json:"user_id" validate:"required"`
	GarageItemID string     `json:"garage_item_id" validate:"required"`
	PartID       string     `json:"part_id" validate:"required"`
	OrderItemID  *string    `json:"order_item_id,omitempty"`
	InstalledAt  *time.Time `json:"installed_at,omitempty"`
	Notes        string     `json:"notes" validate:"max=500"`
}

// HandleRecord records a part installation on a garage item
func (h *ModificationHandler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req RecordModificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Failed to decode record-modification request", "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
		return
	}
	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, FormatValidationError(err))
		return
	}

	recordReq := modification.RecordRequest{
		UserID:       req.UserID,
		GarageItemID: req.GarageItemID,
		PartID:       req.PartID,
		OrderItemID:  req.OrderItemID,
		Notes:        req.Notes,
	}
	if req.InstalledAt != nil {
		recordReq.InstalledAt = *req.InstalledAt
	}

	event, err := h.modificationService.Record(r.Context(), recordReq)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, event)
}

// HandleList lists a garage item's modification history, newest first
func (h *ModificationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "limit must be a number")
			return
		}
		limit = parsed
	}

	events, err := h.modificationService.ListByGarageItem(r.Context(), userID, itemID, limit)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, events)
}

// HandleOrderItemStatus reports whether an order item is already installed
func (h *ModificationHandler) HandleOrderItemStatus(w http.ResponseWriter, r *http.Request) {
	orderItemID := chi.URLParam(r, "orderItemID")

	installed, err := h.modificationService.OrderItemInstalled(r.Context(), orderItemID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"installed": installed})
}

// HandleDelete removes a modification event. Earned XP is kept.
func (h *ModificationHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	if err := h.modificationService.Delete(r.Context(), userID, eventID); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Modification deleted"})
}
