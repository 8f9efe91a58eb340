package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trottparts/garage-api/internal/database/postgres"
	"github.com/trottparts/garage-api/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Points       repository.Points
	Catalog      repository.Catalog
	Garage       repository.Garage
	Modification repository.Modification
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Points:       postgres.NewPointsRepository(dbPool),
		Catalog:      postgres.NewCatalogRepository(dbPool),
		Garage:       postgres.NewGarageRepository(dbPool),
		Modification: postgres.NewModificationRepository(dbPool),
	}
}
