package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trottparts/garage-api/internal/domain"
)

// PointsRepository implements the points repository for PostgreSQL
type PointsRepository struct {
	db *pgxpool.Pool
}

// NewPointsRepository creates a new PointsRepository
func NewPointsRepository(db *pgxpool.Pool) *PointsRepository {
	return &PointsRepository{db: db}
}

// GetProfile fetches a user's profile with their current points total
func (r *PointsRepository) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `
		SELECT user_id, username, performance_points, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`
	var p domain.Profile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.Username, &p.PerformancePoints, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetProfile, err)
	}
	return &p, nil
}

// AddPoints applies the delta in a single statement so concurrent credits
// from multiple processes never lose an update. The previous total is
// derived from the returned value.
func (r *PointsRepository) AddPoints(ctx context.Context, userID string, delta int) (int, int, error) {
	query := `
		UPDATE profiles
		SET performance_points = performance_points + $2, updated_at = NOW()
		WHERE user_id = $1
		RETURNING performance_points
	`
	var newTotal int
	err := r.db.QueryRow(ctx, query, userID, delta).Scan(&newTotal)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, 0, domain.ErrProfileNotFound
		}
		return 0, 0, fmt.Errorf("%s: %w", ErrMsgFailedToUpdatePoints, err)
	}
	return newTotal - delta, newTotal, nil
}

// RecordPurchaseCredit inserts the idempotency marker for an order. The
// first caller wins; later calls see the conflict and report credited=false.
func (r *PointsRepository) RecordPurchaseCredit(ctx context.Context, orderID, userID string) (bool, error) {
	query := `
		INSERT INTO purchase_credits (order_id, user_id, credited_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (order_id) DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query, orderID, userID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToRecordCredit, err)
	}
	return tag.RowsAffected() == 1, nil
}
