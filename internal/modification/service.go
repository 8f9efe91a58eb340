// Package modification records installation history: one append-only event
// per part installed on a garage item, with the XP award computed once at
// recording time.
package modification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trottparts/garage-api/internal/catalog"
	"github.com/trottparts/garage-api/internal/domain"
	"github.com/trottparts/garage-api/internal/event"
	"github.com/trottparts/garage-api/internal/logger"
	"github.com/trottparts/garage-api/internal/metrics"
	"github.com/trottparts/garage-api/internal/points"
	"github.com/trottparts/garage-api/internal/repository"
	"github.com/trottparts/garage-api/internal/xp"
)

// Evaluator computes the XP award for an installation.
type Evaluator interface {
	Evaluate(ctx context.Context, difficulty int, category string, firstInCategory bool) (int, error)
}

// RecordRequest carries the inputs for recording an installation.
type RecordRequest struct {
	UserID       string
	GarageItemID string
	PartID       string
	OrderItemID  *string
	InstalledAt  time.Time
	Notes        string
}

// Service defines the interface for modification-history operations
type Service interface {
	// Record persists an installation event and credits the XP award to the
	// user. The credit is asynchronous and best-effort: a points failure
	// never rolls the event back.
	Record(ctx context.Context, req RecordRequest) (*domain.ModificationEvent, error)

	// Get returns a single event.
	Get(ctx context.Context, eventID string) (*domain.ModificationEvent, error)

	// ListByGarageItem returns the item's history, newest first.
	ListByGarageItem(ctx context.Context, userID, garageItemID string, limit int) ([]domain.ModificationEvent, error)

	// OrderItemInstalled reports whether an order item already has an event.
	OrderItemInstalled(ctx context.Context, orderItemID string) (bool, error)

	// Delete removes an event. XP earned from it is not reversed.
	Delete(ctx context.Context, userID, eventID string) error
}

type service struct {
	repo       repository.Modification
	garageRepo repository.Garage
	catalogSvc catalog.Service
	pointsSvc  points.Service
	evaluator  Evaluator
	publisher  event.Bus
}

// NewService creates a new modification service
func NewService(repo repository.Modification, garageRepo repository.Garage, catalogSvc catalog.Service, pointsSvc points.Service, evaluator Evaluator, publisher event.Bus) Service {
	return &service{
		repo:       repo,
		garageRepo: garageRepo,
		catalogSvc: catalogSvc,
		pointsSvc:  pointsSvc,
		evaluator:  evaluator,
		publisher:  publisher,
	}
}

func (s *service) Record(ctx context.Context, req RecordRequest) (*domain.ModificationEvent, error) {
	log := logger.FromContext(ctx)

	if req.UserID == "" || req.GarageItemID == "" || req.PartID == "" {
		return nil, fmt.Errorf("%w: user id, garage item id and part id are required", domain.ErrInvalidInput)
	}
	if len(req.Notes) > MaxNotesLength {
		return nil, fmt.Errorf("%w: notes exceed %d characters", domain.ErrNotesTooLong, MaxNotesLength)
	}

	item, err := s.garageRepo.GetItem(ctx, req.GarageItemID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFetchFailed, err)
	}
	if item.UserID != req.UserID {
		return nil, domain.ErrNotGarageOwner
	}

	// An order item can be marked installed at most once.
	if req.OrderItemID != nil && *req.OrderItemID != "" {
		existing, err := s.repo.GetByOrderItem(ctx, *req.OrderItemID)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgFetchFailed, err)
		}
		if existing != nil {
			return nil, domain.ErrOrderItemInstalled
		}
	}

	part, err := s.catalogSvc.GetPart(ctx, req.PartID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFetchFailed, err)
	}

	category := part.CategoryName
	if category == "" {
		category = xp.DefaultCategory
	}
	difficulty := part.DifficultyLevel
	if difficulty < xp.MinDifficulty || difficulty > xp.MaxDifficulty {
		difficulty = xp.DefaultDifficulty
	}

	firstInCategory, err := s.isFirstInCategory(ctx, req.GarageItemID, category)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListFailed, err)
	}

	award, err := s.evaluator.Evaluate(ctx, difficulty, category, firstInCategory)
	if err != nil {
		// The evaluator failing must not block the user from recording their
		// work; fall back to the flat award.
		log.Error(LogMsgEvaluatorFallback, "error", err, "part_id", req.PartID)
		metrics.EvaluatorFallbacks.Inc()
		award = xp.DefaultXP
	}

	installedAt := req.InstalledAt
	if installedAt.IsZero() {
		installedAt = time.Now()
	}

	evt := &domain.ModificationEvent{
		ID:              uuid.NewString(),
		GarageItemID:    req.GarageItemID,
		PartID:          req.PartID,
		OrderItemID:     req.OrderItemID,
		InstalledAt:     installedAt,
		DifficultyLevel: difficulty,
		Notes:           req.Notes,
		XPEarned:        award,
		PartName:        part.Name,
		CategoryName:    category,
	}
	if err := s.repo.Insert(ctx, evt); err != nil {
		return nil, fmt.Errorf(ErrMsgRecordFailed, err)
	}

	log.Info(LogMsgRecorded,
		"user_id", req.UserID,
		"garage_item_id", req.GarageItemID,
		"part_id", req.PartID,
		"category", category,
		"xp_earned", award,
		"first_in_category", firstInCategory)

	// Credit the award off the request path. WithoutCancel keeps the credit
	// alive if the caller disconnects right after the event persists.
	creditCtx := context.WithoutCancel(ctx)
	go s.creditAward(creditCtx, req.UserID, award, part.Name, evt.ID)

	if s.publisher != nil {
		published := event.NewModificationRecordedEvent(req.UserID, evt.GarageItemID, evt.ID, evt.PartID, category, award, firstInCategory)
		if err := s.publisher.Publish(ctx, published); err != nil {
			log.Error(LogMsgPublishFailed, "error", err, "modification_id", evt.ID)
		}
	}

	return evt, nil
}

func (s *service) creditAward(ctx context.Context, userID string, award int, partName, eventID string) {
	action := ActionInstallPrefix + partName
	if _, err := s.pointsSvc.AddPoints(ctx, userID, award, action); err != nil {
		logger.FromContext(ctx).Error(LogMsgCreditFailed,
			"error", err,
			"user_id", userID,
			"modification_id", eventID)
	}
}

func (s *service) Get(ctx context.Context, eventID string) (*domain.ModificationEvent, error) {
	evt, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFetchFailed, err)
	}
	return evt, nil
}

func (s *service) ListByGarageItem(ctx context.Context, userID, garageItemID string, limit int) ([]domain.ModificationEvent, error) {
	item, err := s.garageRepo.GetItem(ctx, garageItemID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFetchFailed, err)
	}
	if item.UserID != userID {
		return nil, domain.ErrNotGarageOwner
	}

	if limit <= 0 {
		limit = DefaultListLimit
	}
	events, err := s.repo.ListByGarageItem(ctx, garageItemID, limit)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListFailed, err)
	}
	return events, nil
}

func (s *service) OrderItemInstalled(ctx context.Context, orderItemID string) (bool, error) {
	if orderItemID == "" {
		return false, fmt.Errorf("%w: order item id is required", domain.ErrInvalidInput)
	}
	evt, err := s.repo.GetByOrderItem(ctx, orderItemID)
	if err != nil {
		return false, fmt.Errorf(ErrMsgFetchFailed, err)
	}
	return evt != nil, nil
}

func (s *service) Delete(ctx context.Context, userID, eventID string) error {
	evt, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf(ErrMsgFetchFailed, err)
	}
	item, err := s.garageRepo.GetItem(ctx, evt.GarageItemID)
	if err != nil {
		return fmt.Errorf(ErrMsgFetchFailed, err)
	}
	if item.UserID != userID {
		return domain.ErrNotGarageOwner
	}

	if err := s.repo.Delete(ctx, eventID); err != nil {
		return fmt.Errorf(ErrMsgDeleteFailed, err)
	}

	// XP earned by the deleted event is intentionally kept.
	logger.FromContext(ctx).Info(LogMsgDeleted, "user_id", userID, "modification_id", eventID)
	return nil
}

// isFirstInCategory reports whether the garage item has no prior event in
// the category. Scoped per item, not per user: installing brakes on a second
// scooter earns the bonus again.
func (s *service) isFirstInCategory(ctx context.Context, garageItemID, category string) (bool, error) {
	events, err := s.repo.ListByGarageItem(ctx, garageItemID, 0)
	if err != nil {
		return false, err
	}
	for _, e := range events {
		if e.CategoryName == category {
			return false, nil
		}
	}
	return true, nil
}
