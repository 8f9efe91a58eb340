package garage

import (
	"context"
	"sync"
	"time"

	"github.com/trottparts/garage-api/internal/domain"
)

// FakeRepository is an in-memory repository.Garage used in tests.
type FakeRepository struct {
	mu    sync.Mutex
	items map[string]*domain.GarageItem
}

// NewFakeRepository creates an empty fake repository
func NewFakeRepository() *FakeRepository {
	return &FakeRepository{items: make(map[string]*domain.GarageItem)}
}

func (f *FakeRepository) CreateItem(_ context.Context, item *domain.GarageItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *item
	stored.CreatedAt = time.Now()
	f.items[item.ID] = &stored
	return nil
}

func (f *FakeRepository) GetItem(_ context.Context, itemID string) (*domain.GarageItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[itemID]
	if !ok {
		return nil, domain.ErrGarageItemNotFound
	}
	copied := *item
	return &copied, nil
}

func (f *FakeRepository) ListByUser(_ context.Context, userID string) ([]domain.GarageItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.GarageItem
	for _, item := range f.items {
		if item.UserID == userID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (f *FakeRepository) UpdateOwnership(_ context.Context, itemID string, isOwned bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[itemID]
	if !ok {
		return domain.ErrGarageItemNotFound
	}
	item.IsOwned = isOwned
	return nil
}

func (f *FakeRepository) UpdateDetails(_ context.Context, itemID, nickname, description string, odometerKM int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[itemID]
	if !ok {
		return domain.ErrGarageItemNotFound
	}
	item.Nickname = nickname
	item.Description = description
	item.OdometerKM = odometerKM
	return nil
}

func (f *FakeRepository) DeleteItem(_ context.Context, itemID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[itemID]; !ok {
		return domain.ErrGarageItemNotFound
	}
	delete(f.items, itemID)
	return nil
}
