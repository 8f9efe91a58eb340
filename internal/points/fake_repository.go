package points

import (
	"context"
	"sync"
	"time"

	"github.com/trottparts/garage-api/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of repository.Points
// for testing. It mirrors the database-side atomic increment: AddPoints
// mutates the stored total under a mutex and returns before/after values.
type FakeRepository struct {
	mu       sync.Mutex
	profiles map[string]*domain.Profile
	credited map[string]string // orderID -> userID
}

// NewFakeRepository creates an empty fake repository.
func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		profiles: make(map[string]*domain.Profile),
		credited: make(map[string]string),
	}
}

// SeedProfile adds a profile with the given starting total.
func (f *FakeRepository) SeedProfile(userID, username string, points int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profiles[userID] = &domain.Profile{
		ID:                userID,
		Username:          username,
		PerformancePoints: points,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
}

func (f *FakeRepository) GetProfile(_ context.Context, userID string) (*domain.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *FakeRepository) AddPoints(_ context.Context, userID string, delta int) (int, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[userID]
	if !ok {
		return 0, 0, domain.ErrProfileNotFound
	}
	previous := p.PerformancePoints
	p.PerformancePoints += delta
	p.UpdatedAt = time.Now()
	return previous, p.PerformancePoints, nil
}

func (f *FakeRepository) RecordPurchaseCredit(_ context.Context, orderID, userID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.credited[orderID]; exists {
		return false, nil
	}
	f.credited[orderID] = userID
	return true, nil
}
