package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/trottparts/garage-api/internal/catalog"
	"github.com/trottparts/garage-api/internal/domain"
	"github.com/trottparts/garage-api/internal/logger"
)

// CatalogHandler holds dependencies for catalog endpoints
type CatalogHandler struct {
	catalogService catalog.Service
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// PartRequest represents a part create or update
type PartRequest struct {
	Name            string `json:"name" validate:"required,max=200"`
	CategoryID      int    `json:"category_id" validate:"gte=0"`
	CategoryName    string `json:"category_name" validate:"max=100"`
	DifficultyLevel int    `json:"difficulty_level" validate:"gte=0,lte=5"`
	PriceCents      int    `json:"price_cents" validate:"gte=0"`
	ImageURL        string `json:"image_url"`
}

func (req PartRequest) toDomain(id string) *domain.Part {
	return &domain.Part{
		ID:              id,
		Name:            req.Name,
		CategoryID:      req.CategoryID,
		CategoryName:    req.CategoryName,
		DifficultyLevel: req.DifficultyLevel,
		PriceCents:      req.PriceCents,
		ImageURL:        req.ImageURL,
	}
}

// HandleListParts lists the catalog, optionally filtered by the q query
// parameter (accent-insensitive match on name and category).
func (h *CatalogHandler) HandleListParts(w http.ResponseWriter, r *http.Request) {
	var (
		parts []domain.Part
		err   error
	)
	if query := r.URL.Query().Get("q"); query != "" {
		parts, err = h.catalogService.SearchParts(r.Context(), query)
	} else {
		parts, err = h.catalogService.ListParts(r.Context())
	}
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, parts)
}

// HandleGetPart returns a single part
func (h *CatalogHandler) HandleGetPart(w http.ResponseWriter, r *http.Request) {
	part, err := h.catalogService.GetPart(r.Context(), chi.URLParam(r, "partID"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, part)
}

// HandleCreatePart adds a part to the catalog
func (h *CatalogHandler) HandleCreatePart(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req PartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Failed to decode create-part request", "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
		return
	}
	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, FormatValidationError(err))
		return
	}

	part := req.toDomain(uuid.NewString())
	if err := h.catalogService.CreatePart(r.Context(), part); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, part)
}

// HandleUpdatePart replaces a part's catalog entry
func (h *CatalogHandler) HandleUpdatePart(w http.ResponseWriter, r *http.Request) {
	var req PartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
		return
	}
	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, FormatValidationError(err))
		return
	}

	part := req.toDomain(chi.URLParam(r, "partID"))
	if err := h.catalogService.UpdatePart(r.Context(), part); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, part)
}

// HandleDeletePart removes a part from the catalog
func (h *CatalogHandler) HandleDeletePart(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogService.DeletePart(r.Context(), chi.URLParam(r, "partID")); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Part deleted"})
}

// ScooterRequest represents a scooter create or update
type ScooterRequest struct {
	Brand    string `json:"brand" validate:"required,max=100"`
	Model    string `json:"model" validate:"required,max=100"`
	Year     int    `json:"year" validate:"gte=0"`
	ImageURL string `json:"image_url"`
}

// HandleListScooters lists every scooter model
func (h *CatalogHandler) HandleListScooters(w http.ResponseWriter, r *http.Request) {
	scooters, err := h.catalogService.ListScooters(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, scooters)
}

// HandleGetScooter returns a single scooter model
func (h *CatalogHandler) HandleGetScooter(w http.ResponseWriter, r *http.Request) {
	scooter, err := h.catalogService.GetScooter(r.Context(), chi.URLParam(r, "scooterID"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, scooter)
}

// HandleCreateScooter adds a scooter model
func (h *CatalogHandler) HandleCreateScooter(w http.ResponseWriter, r *http.Request) {
	var req ScooterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
		return
	}
	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, FormatValidationError(err))
		return
	}

	scooter := &domain.Scooter{
		ID:       uuid.NewString(),
		Brand:    req.Brand,
		Model:    req.Model,
		Year:     req.Year,
		ImageURL: req.ImageURL,
	}
	if err := h.catalogService.CreateScooter(r.Context(), scooter); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, scooter)
}

// HandleUpdateScooter replaces a scooter model's entry
func (h *CatalogHandler) HandleUpdateScooter(w http.ResponseWriter, r *http.Request) {
	var req ScooterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
		return
	}
	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, FormatValidationError(err))
		return
	}

	scooter := &domain.Scooter{
		ID:       chi.URLParam(r, "scooterID"),
		Brand:    req.Brand,
		Model:    req.Model,
		Year:     req.Year,
		ImageURL: req.ImageURL,
	}
	if err := h.catalogService.UpdateScooter(r.Context(), scooter); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, scooter)
}

// HandleDeleteScooter removes a scooter model
func (h *CatalogHandler) HandleDeleteScooter(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogService.DeleteScooter(r.Context(), chi.URLParam(r, "scooterID")); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Scooter deleted"})
}

// CompatibilityRequest links a part and a scooter
type CompatibilityRequest struct {
	PartID    string `json:"part_id" validate:"required"`
	ScooterID string `json:"scooter_id" validate:"required"`
}

// HandleLinkCompatibility marks a part as compatible with a scooter
func (h *CatalogHandler) HandleLinkCompatibility(w http.ResponseWriter, r *http.Request) {
	var req CompatibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
		return
	}
	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, FormatValidationError(err))
		return
	}

	if err := h.catalogService.LinkCompatibility(r.Context(), req.PartID, req.ScooterID); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Compatibility linked"})
}

// HandleUnlinkCompatibility removes a compatibility link
func (h *CatalogHandler) HandleUnlinkCompatibility(w http.ResponseWriter, r *http.Request) {
	var req CompatibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
		return
	}
	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, FormatValidationError(err))
		return
	}

	if err := h.catalogService.UnlinkCompatibility(r.Context(), req.PartID, req.ScooterID); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Compatibility unlinked"})
}

// HandleListCompatibleParts lists parts compatible with a scooter
func (h *CatalogHandler) HandleListCompatibleParts(w http.ResponseWriter, r *http.Request) {
	parts, err := h.catalogService.ListCompatibleParts(r.Context(), chi.URLParam(r, "scooterID"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, parts)
}

// HandleListCategories lists part categories
func (h *CatalogHandler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogService.ListCategories(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, categories)
}

// CreditPurchaseRequest credits the purchase XP bonus for an order
type CreditPurchaseRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	OrderID string `json:"order_id" validate:"required"`
}

// CreditPurchaseResponse reports whether the order was credited by this call
type CreditPurchaseResponse struct {
	Credited bool `json:"credited"`
}

// HandleCreditPurchase credits the post-checkout XP bonus, once per order
func (h *CatalogHandler) HandleCreditPurchase(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req CreditPurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Failed to decode credit-purchase request", "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
		return
	}
	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, FormatValidationError(err))
		return
	}

	credited, err := h.catalogService.CreditPurchase(r.Context(), req.UserID, req.OrderID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, CreditPurchaseResponse{Credited: credited})
}
