package repository

import (
	"context"

	"github.com/trottparts/garage-api/internal/domain"
)

// Garage defines persistence for garage items.
type Garage interface {
	CreateItem(ctx context.Context, item *domain.GarageItem) error
	GetItem(ctx context.Context, itemID string) (*domain.GarageItem, error)
	ListByUser(ctx context.Context, userID string) ([]domain.GarageItem, error)
	UpdateOwnership(ctx context.Context, itemID string, isOwned bool) error
	UpdateDetails(ctx context.Context, itemID, nickname, description string, odometerKM int) error
	DeleteItem(ctx context.Context, itemID string) error
}
