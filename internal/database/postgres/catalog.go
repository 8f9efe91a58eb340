package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trottparts/garage-api/internal/domain"
)

// CatalogRepository implements the catalog repository for PostgreSQL
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

const partColumns = `
	p.part_id, p.name, COALESCE(p.category_id, 0), COALESCE(c.name, ''),
	p.difficulty_level, p.price_cents, p.image_url, p.created_at
`

func scanPart(row pgx.Row) (*domain.Part, error) {
	var part domain.Part
	err := row.Scan(
		&part.ID, &part.Name, &part.CategoryID, &part.CategoryName,
		&part.DifficultyLevel, &part.PriceCents, &part.ImageURL, &part.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &part, nil
}

// ensureCategory resolves the category id for a part, upserting the category
// by name when only the name is provided. Returns nil for uncategorized parts.
func (r *CatalogRepository) ensureCategory(ctx context.Context, part *domain.Part) (interface{}, error) {
	if part.CategoryID != 0 {
		return part.CategoryID, nil
	}
	if part.CategoryName == "" {
		return nil, nil
	}

	query := `
		INSERT INTO categories (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING category_id
	`
	var categoryID int
	if err := r.db.QueryRow(ctx, query, part.CategoryName).Scan(&categoryID); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpsertCategory, err)
	}
	part.CategoryID = categoryID
	return categoryID, nil
}

func (r *CatalogRepository) GetPart(ctx context.Context, partID string) (*domain.Part, error) {
	query := `
		SELECT ` + partColumns + `
		FROM parts p
		LEFT JOIN categories c ON p.category_id = c.category_id
		WHERE p.part_id = $1
	`
	part, err := scanPart(r.db.QueryRow(ctx, query, partID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPartNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPart, err)
	}
	return part, nil
}

func (r *CatalogRepository) ListParts(ctx context.Context) ([]domain.Part, error) {
	query := `
		SELECT ` + partColumns + `
		FROM parts p
		LEFT JOIN categories c ON p.category_id = c.category_id
		ORDER BY p.name
	`
	return r.queryParts(ctx, query)
}

func (r *CatalogRepository) queryParts(ctx context.Context, query string, args ...interface{}) ([]domain.Part, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListParts, err)
	}
	defer rows.Close()

	var parts []domain.Part
	for rows.Next() {
		part, err := scanPart(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListParts, err)
		}
		parts = append(parts, *part)
	}
	return parts, rows.Err()
}

func (r *CatalogRepository) CreatePart(ctx context.Context, part *domain.Part) error {
	categoryID, err := r.ensureCategory(ctx, part)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO parts (part_id, name, category_id, difficulty_level, price_cents, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`
	err = r.db.QueryRow(ctx, query,
		part.ID, part.Name, categoryID, part.DifficultyLevel, part.PriceCents, part.ImageURL).Scan(&part.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertPart, err)
	}
	return nil
}

func (r *CatalogRepository) UpdatePart(ctx context.Context, part *domain.Part) error {
	categoryID, err := r.ensureCategory(ctx, part)
	if err != nil {
		return err
	}

	query := `
		UPDATE parts
		SET name = $2, category_id = $3, difficulty_level = $4, price_cents = $5, image_url = $6
		WHERE part_id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		part.ID, part.Name, categoryID, part.DifficultyLevel, part.PriceCents, part.ImageURL)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdatePart, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPartNotFound
	}
	return nil
}

func (r *CatalogRepository) DeletePart(ctx context.Context, partID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM parts WHERE part_id = $1`, partID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeletePart, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPartNotFound
	}
	return nil
}

func (r *CatalogRepository) GetScooter(ctx context.Context, scooterID string) (*domain.Scooter, error) {
	query := `
		SELECT scooter_id, brand, model, year, image_url, created_at
		FROM scooters
		WHERE scooter_id = $1
	`
	var s domain.Scooter
	err := r.db.QueryRow(ctx, query, scooterID).Scan(
		&s.ID, &s.Brand, &s.Model, &s.Year, &s.ImageURL, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrScooterNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetScooter, err)
	}
	return &s, nil
}

func (r *CatalogRepository) ListScooters(ctx context.Context) ([]domain.Scooter, error) {
	query := `
		SELECT scooter_id, brand, model, year, image_url, created_at
		FROM scooters
		ORDER BY brand, model
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListScooters, err)
	}
	defer rows.Close()

	var scooters []domain.Scooter
	for rows.Next() {
		var s domain.Scooter
		if err := rows.Scan(&s.ID, &s.Brand, &s.Model, &s.Year, &s.ImageURL, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListScooters, err)
		}
		scooters = append(scooters, s)
	}
	return scooters, rows.Err()
}

func (r *CatalogRepository) CreateScooter(ctx context.Context, scooter *domain.Scooter) error {
	query := `
		INSERT INTO scooters (scooter_id, brand, model, year, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query,
		scooter.ID, scooter.Brand, scooter.Model, scooter.Year, scooter.ImageURL).Scan(&scooter.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertScooter, err)
	}
	return nil
}

func (r *CatalogRepository) UpdateScooter(ctx context.Context, scooter *domain.Scooter) error {
	query := `
		UPDATE scooters
		SET brand = $2, model = $3, year = $4, image_url = $5
		WHERE scooter_id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		scooter.ID, scooter.Brand, scooter.Model, scooter.Year, scooter.ImageURL)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateScooter, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrScooterNotFound
	}
	return nil
}

func (r *CatalogRepository) DeleteScooter(ctx context.Context, scooterID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM scooters WHERE scooter_id = $1`, scooterID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteScooter, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrScooterNotFound
	}
	return nil
}

func (r *CatalogRepository) LinkCompatibility(ctx context.Context, partID, scooterID string) error {
	query := `
		INSERT INTO part_compatibility (part_id, scooter_id)
		VALUES ($1, $2)
		ON CONFLICT (part_id, scooter_id) DO NOTHING
	`
	if _, err := r.db.Exec(ctx, query, partID, scooterID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLinkCompat, err)
	}
	return nil
}

func (r *CatalogRepository) UnlinkCompatibility(ctx context.Context, partID, scooterID string) error {
	query := `DELETE FROM part_compatibility WHERE part_id = $1 AND scooter_id = $2`
	if _, err := r.db.Exec(ctx, query, partID, scooterID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUnlinkCompat, err)
	}
	return nil
}

func (r *CatalogRepository) ListCompatibleParts(ctx context.Context, scooterID string) ([]domain.Part, error) {
	query := `
		SELECT ` + partColumns + `
		FROM parts p
		JOIN part_compatibility pc ON p.part_id = pc.part_id
		LEFT JOIN categories c ON p.category_id = c.category_id
		WHERE pc.scooter_id = $1
		ORDER BY p.name
	`
	parts, err := r.queryParts(ctx, query, scooterID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCompat, err)
	}
	return parts, nil
}

func (r *CatalogRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT category_id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCategories, err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCategories, err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
