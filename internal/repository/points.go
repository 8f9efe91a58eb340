package repository

import (
	"context"

	"github.com/trottparts/garage-api/internal/domain"
)

// Points defines persistence for user profiles and their points totals.
type Points interface {
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)

	// AddPoints applies a positive delta to the user's total with a single
	// atomic read-modify-write on the database side and returns the totals
	// before and after. Implementations must never compute the new total
	// client-side from a previously read value.
	AddPoints(ctx context.Context, userID string, delta int) (previous, newTotal int, err error)

	// RecordPurchaseCredit records that an order has been credited purchase
	// XP. Returns false without error when the order was already credited,
	// so purchase crediting stays idempotent across page reloads.
	RecordPurchaseCredit(ctx context.Context, orderID, userID string) (credited bool, err error)
}
