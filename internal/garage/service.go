// Package garage manages the user's scooter collection: owned machines and
// the wishlist, including the ownership promotion that carries a small
// performance-points bonus.
package garage

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/trottparts/garage-api/internal/domain"
	"github.com/trottparts/garage-api/internal/logger"
	"github.com/trottparts/garage-api/internal/points"
	"github.com/trottparts/garage-api/internal/repository"
)

// Service defines the interface for garage operations
type Service interface {
	// AddScooter puts a scooter in the user's garage. Adding a scooter never
	// awards points; only installations and promotions do.
	AddScooter(ctx context.Context, userID, scooterID string, isOwned bool, nickname string) (*domain.GarageItem, error)

	// GetItem returns a single garage item.
	GetItem(ctx context.Context, itemID string) (*domain.GarageItem, error)

	// ListByUser returns every garage item belonging to the user.
	ListByUser(ctx context.Context, userID string) ([]domain.GarageItem, error)

	// SetOwned flips the owned flag. Promoting wishlist to owned credits the
	// promotion bonus; demoting or re-setting the same value credits nothing.
	SetOwned(ctx context.Context, userID, itemID string, isOwned bool) (*domain.GarageItem, error)

	// UpdateDetails replaces the item's nickname, description and odometer.
	UpdateDetails(ctx context.Context, userID, itemID, nickname, description string, odometerKM int) error

	// Remove deletes the item. Points earned on the scooter are kept.
	Remove(ctx context.Context, userID, itemID string) error
}

type service struct {
	repo      repository.Garage
	pointsSvc points.Service
}

// NewService creates a new garage service
func NewService(repo repository.Garage, pointsSvc points.Service) Service {
	return &service{
		repo:      repo,
		pointsSvc: pointsSvc,
	}
}

func (s *service) AddScooter(ctx context.Context, userID, scooterID string, isOwned bool, nickname string) (*domain.GarageItem, error) {
	if userID == "" || scooterID == "" {
		return nil, fmt.Errorf("%w: user id and scooter id are required", domain.ErrInvalidInput)
	}

	item := &domain.GarageItem{
		ID:        uuid.NewString(),
		UserID:    userID,
		ScooterID: scooterID,
		IsOwned:   isOwned,
		Nickname:  nickname,
	}
	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, fmt.Errorf(ErrMsgCreateFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgItemAdded,
		"user_id", userID,
		"scooter_id", scooterID,
		"is_owned", isOwned)
	return item, nil
}

func (s *service) GetItem(ctx context.Context, itemID string) (*domain.GarageItem, error) {
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFetchFailed, err)
	}
	return item, nil
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]domain.GarageItem, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListFailed, err)
	}
	return items, nil
}

func (s *service) SetOwned(ctx context.Context, userID, itemID string, isOwned bool) (*domain.GarageItem, error) {
	log := logger.FromContext(ctx)

	item, err := s.ownedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	promoted := isOwned && !item.IsOwned
	if item.IsOwned != isOwned {
		if err := s.repo.UpdateOwnership(ctx, itemID, isOwned); err != nil {
			return nil, fmt.Errorf(ErrMsgOwnershipFailed, err)
		}
		item.IsOwned = isOwned
		log.Info(LogMsgOwnershipChanged, "item_id", itemID, "is_owned", isOwned)
	}

	// The promotion bonus is best-effort: a points failure does not undo the
	// ownership change the user asked for.
	if promoted {
		if _, err := s.pointsSvc.AddPoints(ctx, userID, PromotionBonusXP, points.ActionPromotion); err != nil {
			log.Error(LogMsgPromotionFailed, "error", err, "user_id", userID, "item_id", itemID)
		}
	}

	return item, nil
}

func (s *service) UpdateDetails(ctx context.Context, userID, itemID, nickname, description string, odometerKM int) error {
	if len(description) > MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", domain.ErrNotesTooLong, MaxDescriptionLength)
	}
	if odometerKM < 0 {
		return fmt.Errorf("%w: odometer cannot be negative", domain.ErrInvalidInput)
	}

	if _, err := s.ownedItem(ctx, userID, itemID); err != nil {
		return err
	}
	if err := s.repo.UpdateDetails(ctx, itemID, nickname, description, odometerKM); err != nil {
		return fmt.Errorf(ErrMsgUpdateFailed, err)
	}
	return nil
}

func (s *service) Remove(ctx context.Context, userID, itemID string) error {
	if _, err := s.ownedItem(ctx, userID, itemID); err != nil {
		return err
	}
	if err := s.repo.DeleteItem(ctx, itemID); err != nil {
		return fmt.Errorf(ErrMsgDeleteFailed, err)
	}

	// Points earned on this scooter's installations are intentionally kept.
	logger.FromContext(ctx).Info(LogMsgItemRemoved, "user_id", userID, "item_id", itemID)
	return nil
}

// ownedItem fetches the item and enforces that it belongs to the caller.
func (s *service) ownedItem(ctx context.Context, userID, itemID string) (*domain.GarageItem, error) {
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFetchFailed, err)
	}
	if item.UserID != userID {
		return nil, domain.ErrNotGarageOwner
	}
	return item, nil
}
