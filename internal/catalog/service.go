// Package catalog serves part, scooter and compatibility data, and credits
// purchase XP once per completed order.
package catalog

import (
	"context"
	"fmt"

	"github.com/trottparts/garage-api/internal/domain"
	"github.com/trottparts/garage-api/internal/event"
	"github.com/trottparts/garage-api/internal/logger"
	"github.com/trottparts/garage-api/internal/points"
	"github.com/trottparts/garage-api/internal/repository"
)

// Service defines the interface for catalog operations
type Service interface {
	GetPart(ctx context.Context, partID string) (*domain.Part, error)
	ListParts(ctx context.Context) ([]domain.Part, error)
	SearchParts(ctx context.Context, query string) ([]domain.Part, error)
	CreatePart(ctx context.Context, part *domain.Part) error
	UpdatePart(ctx context.Context, part *domain.Part) error
	DeletePart(ctx context.Context, partID string) error

	GetScooter(ctx context.Context, scooterID string) (*domain.Scooter, error)
	ListScooters(ctx context.Context) ([]domain.Scooter, error)
	CreateScooter(ctx context.Context, scooter *domain.Scooter) error
	UpdateScooter(ctx context.Context, scooter *domain.Scooter) error
	DeleteScooter(ctx context.Context, scooterID string) error

	LinkCompatibility(ctx context.Context, partID, scooterID string) error
	UnlinkCompatibility(ctx context.Context, partID, scooterID string) error
	ListCompatibleParts(ctx context.Context, scooterID string) ([]domain.Part, error)

	ListCategories(ctx context.Context) ([]domain.Category, error)

	// CreditPurchase awards the flat purchase XP for an order, exactly once
	// per order id. Safe to call again on page reloads.
	CreditPurchase(ctx context.Context, userID, orderID string) (credited bool, err error)
}

type service struct {
	repo       repository.Catalog
	pointsRepo repository.Points
	pointsSvc  points.Service
	cache      *partCache
	publisher  event.Bus
}

// NewService creates a new catalog service
func NewService(repo repository.Catalog, pointsRepo repository.Points, pointsSvc points.Service, publisher event.Bus) Service {
	return &service{
		repo:       repo,
		pointsRepo: pointsRepo,
		pointsSvc:  pointsSvc,
		cache:      newPartCache(PartCacheSize, PartCacheTTL),
		publisher:  publisher,
	}
}

func (s *service) GetPart(ctx context.Context, partID string) (*domain.Part, error) {
	if part, ok := s.cache.Get(partID); ok {
		return part, nil
	}

	part, err := s.repo.GetPart(ctx, partID)
	if err != nil {
		return nil, fmt.Errorf("failed to get part: %w", err)
	}

	s.cache.Set(part)
	return part, nil
}

func (s *service) ListParts(ctx context.Context) ([]domain.Part, error) {
	return s.repo.ListParts(ctx)
}

func (s *service) CreatePart(ctx context.Context, part *domain.Part) error {
	if err := s.repo.CreatePart(ctx, part); err != nil {
		return fmt.Errorf("failed to create part: %w", err)
	}
	return nil
}

func (s *service) UpdatePart(ctx context.Context, part *domain.Part) error {
	if err := s.repo.UpdatePart(ctx, part); err != nil {
		return fmt.Errorf("failed to update part: %w", err)
	}
	s.cache.Invalidate(part.ID)
	return nil
}

func (s *service) DeletePart(ctx context.Context, partID string) error {
	if err := s.repo.DeletePart(ctx, partID); err != nil {
		return fmt.Errorf("failed to delete part: %w", err)
	}
	s.cache.Invalidate(partID)
	return nil
}

func (s *service) GetScooter(ctx context.Context, scooterID string) (*domain.Scooter, error) {
	return s.repo.GetScooter(ctx, scooterID)
}

func (s *service) ListScooters(ctx context.Context) ([]domain.Scooter, error) {
	return s.repo.ListScooters(ctx)
}

func (s *service) CreateScooter(ctx context.Context, scooter *domain.Scooter) error {
	return s.repo.CreateScooter(ctx, scooter)
}

func (s *service) UpdateScooter(ctx context.Context, scooter *domain.Scooter) error {
	return s.repo.UpdateScooter(ctx, scooter)
}

func (s *service) DeleteScooter(ctx context.Context, scooterID string) error {
	return s.repo.DeleteScooter(ctx, scooterID)
}

func (s *service) LinkCompatibility(ctx context.Context, partID, scooterID string) error {
	return s.repo.LinkCompatibility(ctx, partID, scooterID)
}

func (s *service) UnlinkCompatibility(ctx context.Context, partID, scooterID string) error {
	return s.repo.UnlinkCompatibility(ctx, partID, scooterID)
}

func (s *service) ListCompatibleParts(ctx context.Context, scooterID string) ([]domain.Part, error) {
	return s.repo.ListCompatibleParts(ctx, scooterID)
}

func (s *service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *service) CreditPurchase(ctx context.Context, userID, orderID string) (bool, error) {
	log := logger.FromContext(ctx)

	if userID == "" || orderID == "" {
		return false, fmt.Errorf("%w: user id and order id are required", domain.ErrInvalidInput)
	}

	// The credit marker is written first; a second call for the same order
	// sees it and returns without touching the ledger.
	credited, err := s.pointsRepo.RecordPurchaseCredit(ctx, orderID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to record purchase credit: %w", err)
	}
	if !credited {
		log.Debug(LogMsgPurchaseAlreadyDone, "order_id", orderID, "user_id", userID)
		return false, nil
	}

	if _, err := s.pointsSvc.AddPoints(ctx, userID, PurchaseXP, points.ActionPurchase); err != nil {
		// The marker stays in place; purchase crediting is best-effort and
		// is not retried, matching the installation reward path.
		log.Error(LogMsgPurchaseCreditFailed, "error", err, "order_id", orderID, "user_id", userID)
		return false, fmt.Errorf("failed to credit purchase: %w", err)
	}

	log.Info(LogMsgPurchaseCredited, "order_id", orderID, "user_id", userID, "points", PurchaseXP)

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, event.NewPurchaseCreditedEvent(userID, orderID, PurchaseXP)); err != nil {
			log.Error(LogMsgPurchasePublishFailed, "error", err, "order_id", orderID)
		}
	}

	return true, nil
}
