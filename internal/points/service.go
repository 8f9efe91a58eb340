// Package points owns the per-user performance-points ledger. The running
// total is server-owned mutable state reached from several entry points
// (installations, purchases, ownership promotions); every mutation goes
// through this single code path and the repository's atomic increment.
package points

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/trottparts/garage-api/internal/concurrency"
	"github.com/trottparts/garage-api/internal/domain"
	"github.com/trottparts/garage-api/internal/event"
	"github.com/trottparts/garage-api/internal/logger"
	"github.com/trottparts/garage-api/internal/metrics"
	"github.com/trottparts/garage-api/internal/repository"
)

// Service defines the interface for points-ledger operations
type Service interface {
	// AddPoints applies a positive delta to the user's total and returns the
	// totals before and after. The delta must be in (0, MaxPointsPerCall].
	AddPoints(ctx context.Context, userID string, pointsToAdd int, action string) (*domain.PointsUpdate, error)

	// GetProfile returns the user's profile with their current total.
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
}

type service struct {
	repo      repository.Points
	locks     *concurrency.LockManager
	publisher event.Bus
}

// NewService creates a new points service
func NewService(repo repository.Points, publisher event.Bus) Service {
	return &service{
		repo:      repo,
		locks:     concurrency.NewLockManager(),
		publisher: publisher,
	}
}

func (s *service) AddPoints(ctx context.Context, userID string, pointsToAdd int, action string) (*domain.PointsUpdate, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	if pointsToAdd <= 0 {
		log.Warn(LogMsgPointsRejected, "user_id", userID, "points", pointsToAdd, "reason", "non-positive delta")
		metrics.PointsRejected.WithLabelValues(metrics.RejectReasonInvalidDelta).Inc()
		return nil, domain.ErrInvalidPointsDelta
	}
	if pointsToAdd > MaxPointsPerCall {
		log.Warn(LogMsgPointsRejected, "user_id", userID, "points", pointsToAdd, "reason", "cap exceeded")
		metrics.PointsRejected.WithLabelValues(metrics.RejectReasonCapExceeded).Inc()
		return nil, fmt.Errorf("%w: %d > %d", domain.ErrPointsCapExceeded, pointsToAdd, MaxPointsPerCall)
	}

	// Serialize mutations per user within this process. The database-side
	// atomic increment is the real correctness guarantee across processes;
	// the lock keeps previous/new pairs coherent for concurrent local calls.
	lock := s.locks.GetLock(userID)
	lock.Lock()
	defer lock.Unlock()

	previous, newTotal, err := s.repo.AddPoints(ctx, userID, pointsToAdd)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgAddPointsFailed, err)
	}

	update := &domain.PointsUpdate{
		UserID:         userID,
		PreviousPoints: previous,
		PointsAdded:    pointsToAdd,
		NewTotal:       newTotal,
		Action:         action,
	}

	log.Info(LogMsgPointsAwarded,
		"user_id", userID,
		"points", pointsToAdd,
		"action", action,
		"new_total", newTotal)
	metrics.XPAwarded.WithLabelValues(action).Add(float64(pointsToAdd))

	// Notification is observational: a publish failure must never fail the
	// mutation that triggered it.
	if s.publisher != nil {
		evt := event.NewPointsAwardedEvent(userID, previous, pointsToAdd, newTotal, action)
		if err := s.publisher.Publish(ctx, evt); err != nil {
			log.Error(LogMsgPublishFailed, "error", err, "user_id", userID)
		}
	}

	return update, nil
}

func (s *service) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	// Reads are retried on transient failures; writes never are, the caller
	// must not see a double credit.
	var lastErr error
	for attempt := 0; attempt < ProfileReadAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * ProfileReadBackoff):
			}
		}

		profile, err := s.repo.GetProfile(ctx, userID)
		if err == nil {
			return profile, nil
		}
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, fmt.Errorf(ErrMsgProfileFetchFailed, err)
		}
		lastErr = err
	}
	return nil, fmt.Errorf(ErrMsgProfileFetchFailed, lastErr)
}
