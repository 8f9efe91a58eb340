package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trottparts/garage-api/internal/domain"
)

// GarageRepository implements the garage repository for PostgreSQL
type GarageRepository struct {
	db *pgxpool.Pool
}

// NewGarageRepository creates a new GarageRepository
func NewGarageRepository(db *pgxpool.Pool) *GarageRepository {
	return &GarageRepository{db: db}
}

func (r *GarageRepository) CreateItem(ctx context.Context, item *domain.GarageItem) error {
	query := `
		INSERT INTO user_garage (item_id, user_id, scooter_id, is_owned, nickname, description, odometer_km, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query,
		item.ID, item.UserID, item.ScooterID, item.IsOwned,
		item.Nickname, item.Description, item.OdometerKM).Scan(&item.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertGarageItem, err)
	}
	return nil
}

func (r *GarageRepository) GetItem(ctx context.Context, itemID string) (*domain.GarageItem, error) {
	query := `
		SELECT item_id, user_id, scooter_id, is_owned, nickname, description, odometer_km, created_at
		FROM user_garage
		WHERE item_id = $1
	`
	var item domain.GarageItem
	err := r.db.QueryRow(ctx, query, itemID).Scan(
		&item.ID, &item.UserID, &item.ScooterID, &item.IsOwned,
		&item.Nickname, &item.Description, &item.OdometerKM, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGarageItemNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetGarageItem, err)
	}
	return &item, nil
}

func (r *GarageRepository) ListByUser(ctx context.Context, userID string) ([]domain.GarageItem, error) {
	query := `
		SELECT item_id, user_id, scooter_id, is_owned, nickname, description, odometer_km, created_at
		FROM user_garage
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListGarageItems, err)
	}
	defer rows.Close()

	var items []domain.GarageItem
	for rows.Next() {
		var item domain.GarageItem
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.ScooterID, &item.IsOwned,
			&item.Nickname, &item.Description, &item.OdometerKM, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListGarageItems, err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *GarageRepository) UpdateOwnership(ctx context.Context, itemID string, isOwned bool) error {
	query := `UPDATE user_garage SET is_owned = $2 WHERE item_id = $1`
	tag, err := r.db.Exec(ctx, query, itemID, isOwned)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateOwnership, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrGarageItemNotFound
	}
	return nil
}

func (r *GarageRepository) UpdateDetails(ctx context.Context, itemID, nickname, description string, odometerKM int) error {
	query := `
		UPDATE user_garage
		SET nickname = $2, description = $3, odometer_km = $4
		WHERE item_id = $1
	`
	tag, err := r.db.Exec(ctx, query, itemID, nickname, description, odometerKM)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateGarageItem, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrGarageItemNotFound
	}
	return nil
}

func (r *GarageRepository) DeleteItem(ctx context.Context, itemID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM user_garage WHERE item_id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteGarageItem, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrGarageItemNotFound
	}
	return nil
}
