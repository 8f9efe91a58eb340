package repository

import (
	"context"

	"github.com/trottparts/garage-api/internal/domain"
)

// Modification defines persistence for modification events. Events are
// append-only: there is no update operation, only insert and delete.
type Modification interface {
	Insert(ctx context.Context, event *domain.ModificationEvent) error
	GetByID(ctx context.Context, eventID string) (*domain.ModificationEvent, error)

	// ListByGarageItem returns events for a garage item ordered by
	// installation timestamp descending, with part name and category
	// populated. limit <= 0 means no limit.
	ListByGarageItem(ctx context.Context, garageItemID string, limit int) ([]domain.ModificationEvent, error)

	// GetByOrderItem returns the event linked to an order item, or nil when
	// the order item has not been marked as installed.
	GetByOrderItem(ctx context.Context, orderItemID string) (*domain.ModificationEvent, error)

	Delete(ctx context.Context, eventID string) error
}
