package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trottparts/garage-api/internal/domain"
)

// ModificationRepository implements the modification repository for PostgreSQL
type ModificationRepository struct {
	db *pgxpool.Pool
}

// NewModificationRepository creates a new ModificationRepository
func NewModificationRepository(db *pgxpool.Pool) *ModificationRepository {
	return &ModificationRepository{db: db}
}

func (r *ModificationRepository) Insert(ctx context.Context, event *domain.ModificationEvent) error {
	query := `
		INSERT INTO garage_modifications
			(event_id, garage_item_id, part_id, order_item_id, installed_at, difficulty_level, notes, xp_earned, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query,
		event.ID, event.GarageItemID, event.PartID, event.OrderItemID,
		event.InstalledAt, event.DifficultyLevel, event.Notes, event.XPEarned).Scan(&event.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertModification, err)
	}
	return nil
}

const modificationColumns = `
	m.event_id, m.garage_item_id, m.part_id, m.order_item_id, m.installed_at,
	m.difficulty_level, m.notes, m.xp_earned, m.created_at,
	p.name, COALESCE(c.name, '')
`

func (r *ModificationRepository) scanEvent(row pgx.Row) (*domain.ModificationEvent, error) {
	var event domain.ModificationEvent
	err := row.Scan(
		&event.ID, &event.GarageItemID, &event.PartID, &event.OrderItemID, &event.InstalledAt,
		&event.DifficultyLevel, &event.Notes, &event.XPEarned, &event.CreatedAt,
		&event.PartName, &event.CategoryName)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *ModificationRepository) GetByID(ctx context.Context, eventID string) (*domain.ModificationEvent, error) {
	query := `
		SELECT ` + modificationColumns + `
		FROM garage_modifications m
		JOIN parts p ON m.part_id = p.part_id
		LEFT JOIN categories c ON p.category_id = c.category_id
		WHERE m.event_id = $1
	`
	event, err := r.scanEvent(r.db.QueryRow(ctx, query, eventID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrModificationNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetModification, err)
	}
	return event, nil
}

func (r *ModificationRepository) ListByGarageItem(ctx context.Context, garageItemID string, limit int) ([]domain.ModificationEvent, error) {
	query := `
		SELECT ` + modificationColumns + `
		FROM garage_modifications m
		JOIN parts p ON m.part_id = p.part_id
		LEFT JOIN categories c ON p.category_id = c.category_id
		WHERE m.garage_item_id = $1
		ORDER BY m.installed_at DESC
	`
	args := []interface{}{garageItemID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListModifications, err)
	}
	defer rows.Close()

	var events []domain.ModificationEvent
	for rows.Next() {
		event, err := r.scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListModifications, err)
		}
		events = append(events, *event)
	}
	return events, rows.Err()
}

// GetByOrderItem returns nil, nil when the order item has no event yet.
func (r *ModificationRepository) GetByOrderItem(ctx context.Context, orderItemID string) (*domain.ModificationEvent, error) {
	query := `
		SELECT ` + modificationColumns + `
		FROM garage_modifications m
		JOIN parts p ON m.part_id = p.part_id
		LEFT JOIN categories c ON p.category_id = c.category_id
		WHERE m.order_item_id = $1
	`
	event, err := r.scanEvent(r.db.QueryRow(ctx, query, orderItemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetModification, err)
	}
	return event, nil
}

func (r *ModificationRepository) Delete(ctx context.Context, eventID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM garage_modifications WHERE event_id = $1`, eventID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteModification, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrModificationNotFound
	}
	return nil
}
