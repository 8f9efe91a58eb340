package repository

import (
	"context"

	"github.com/trottparts/garage-api/internal/domain"
)

// Catalog defines persistence for parts, scooters and compatibility links.
type Catalog interface {
	// Parts
	GetPart(ctx context.Context, partID string) (*domain.Part, error)
	ListParts(ctx context.Context) ([]domain.Part, error)
	CreatePart(ctx context.Context, part *domain.Part) error
	UpdatePart(ctx context.Context, part *domain.Part) error
	DeletePart(ctx context.Context, partID string) error

	// Scooters
	GetScooter(ctx context.Context, scooterID string) (*domain.Scooter, error)
	ListScooters(ctx context.Context) ([]domain.Scooter, error)
	CreateScooter(ctx context.Context, scooter *domain.Scooter) error
	UpdateScooter(ctx context.Context, scooter *domain.Scooter) error
	DeleteScooter(ctx context.Context, scooterID string) error

	// Compatibility links
	LinkCompatibility(ctx context.Context, partID, scooterID string) error
	UnlinkCompatibility(ctx context.Context, partID, scooterID string) error
	ListCompatibleParts(ctx context.Context, scooterID string) ([]domain.Part, error)

	// Categories
	ListCategories(ctx context.Context) ([]domain.Category, error)
}
