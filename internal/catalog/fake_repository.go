package catalog

import (
	"context"
	"sync"

	"github.com/trottparts/garage-api/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of
// repository.Catalog for testing.
type FakeRepository struct {
	mu       sync.Mutex
	parts    map[string]*domain.Part
	scooters map[string]*domain.Scooter
	links    map[string]map[string]bool // scooterID -> partID set
	GetCalls int                        // counts GetPart hits for cache assertions
}

// NewFakeRepository creates an empty fake repository.
func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		parts:    make(map[string]*domain.Part),
		scooters: make(map[string]*domain.Scooter),
		links:    make(map[string]map[string]bool),
	}
}

func (f *FakeRepository) GetPart(_ context.Context, partID string) (*domain.Part, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.GetCalls++
	p, ok := f.parts[partID]
	if !ok {
		return nil, domain.ErrPartNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *FakeRepository) ListParts(_ context.Context) ([]domain.Part, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Part, 0, len(f.parts))
	for _, p := range f.parts {
		out = append(out, *p)
	}
	return out, nil
}

func (f *FakeRepository) CreatePart(_ context.Context, part *domain.Part) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *part
	f.parts[part.ID] = &copied
	return nil
}

func (f *FakeRepository) UpdatePart(_ context.Context, part *domain.Part) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.parts[part.ID]; !ok {
		return domain.ErrPartNotFound
	}
	copied := *part
	f.parts[part.ID] = &copied
	return nil
}

func (f *FakeRepository) DeletePart(_ context.Context, partID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.parts[partID]; !ok {
		return domain.ErrPartNotFound
	}
	delete(f.parts, partID)
	return nil
}

func (f *FakeRepository) GetScooter(_ context.Context, scooterID string) (*domain.Scooter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.scooters[scooterID]
	if !ok {
		return nil, domain.ErrScooterNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *FakeRepository) ListScooters(_ context.Context) ([]domain.Scooter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Scooter, 0, len(f.scooters))
	for _, s := range f.scooters {
		out = append(out, *s)
	}
	return out, nil
}

func (f *FakeRepository) CreateScooter(_ context.Context, scooter *domain.Scooter) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *scooter
	f.scooters[scooter.ID] = &copied
	return nil
}

func (f *FakeRepository) UpdateScooter(_ context.Context, scooter *domain.Scooter) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.scooters[scooter.ID]; !ok {
		return domain.ErrScooterNotFound
	}
	copied := *scooter
	f.scooters[scooter.ID] = &copied
	return nil
}

func (f *FakeRepository) DeleteScooter(_ context.Context, scooterID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.scooters[scooterID]; !ok {
		return domain.ErrScooterNotFound
	}
	delete(f.scooters, scooterID)
	return nil
}

func (f *FakeRepository) LinkCompatibility(_ context.Context, partID, scooterID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.links[scooterID] == nil {
		f.links[scooterID] = make(map[string]bool)
	}
	f.links[scooterID][partID] = true
	return nil
}

func (f *FakeRepository) UnlinkCompatibility(_ context.Context, partID, scooterID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.links[scooterID], partID)
	return nil
}

func (f *FakeRepository) ListCompatibleParts(_ context.Context, scooterID string) ([]domain.Part, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Part
	for partID := range f.links[scooterID] {
		if p, ok := f.parts[partID]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *FakeRepository) ListCategories(_ context.Context) ([]domain.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seen := make(map[string]bool)
	var out []domain.Category
	for _, p := range f.parts {
		if !seen[p.CategoryName] {
			seen[p.CategoryName] = true
			out = append(out, domain.Category{ID: p.CategoryID, Name: p.CategoryName})
		}
	}
	return out, nil
}
