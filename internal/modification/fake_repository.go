package modification

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/trottparts/garage-api/internal/domain"
)

// FakeRepository is an in-memory repository.Modification used in tests.
type FakeRepository struct {
	mu     sync.Mutex
	events map[string]*domain.ModificationEvent

	// InsertErr, when set, is returned by Insert.
	InsertErr error
}

// NewFakeRepository creates an empty fake repository
func NewFakeRepository() *FakeRepository {
	return &FakeRepository{events: make(map[string]*domain.ModificationEvent)}
}

func (f *FakeRepository) Insert(_ context.Context, event *domain.ModificationEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.InsertErr != nil {
		return f.InsertErr
	}
	stored := *event
	stored.CreatedAt = time.Now()
	f.events[event.ID] = &stored
	return nil
}

func (f *FakeRepository) GetByID(_ context.Context, eventID string) (*domain.ModificationEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	evt, ok := f.events[eventID]
	if !ok {
		return nil, domain.ErrModificationNotFound
	}
	copied := *evt
	return &copied, nil
}

func (f *FakeRepository) ListByGarageItem(_ context.Context, garageItemID string, limit int) ([]domain.ModificationEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.ModificationEvent
	for _, evt := range f.events {
		if evt.GarageItemID == garageItemID {
			out = append(out, *evt)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].InstalledAt.After(out[j].InstalledAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *FakeRepository) GetByOrderItem(_ context.Context, orderItemID string) (*domain.ModificationEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, evt := range f.events {
		if evt.OrderItemID != nil && *evt.OrderItemID == orderItemID {
			copied := *evt
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *FakeRepository) Delete(_ context.Context, eventID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.events[eventID]; !ok {
		return domain.ErrModificationNotFound
	}
	delete(f.events, eventID)
	return nil
}
