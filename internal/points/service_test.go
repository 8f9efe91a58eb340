package points_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trottparts/garage-api/internal/domain"
	"github.com/trottparts/garage-api/internal/event"
	"github.com/trottparts/garage-api/internal/points"
)

func newService(t *testing.T, startingPoints int) (points.Service, *points.FakeRepository, *event.MemoryBus) {
	t.Helper()
	repo := points.NewFakeRepository()
	repo.SeedProfile("user-1", "rider", startingPoints)
	bus := event.NewMemoryBus()
	return points.NewService(repo, bus), repo, bus
}

func TestAddPoints_Success(t *testing.T) {
	svc, _, _ := newService(t, 100)

	update, err := svc.AddPoints(context.Background(), "user-1", 50, "Pièce installée : Plaquettes")
	require.NoError(t, err)

	assert.Equal(t, 100, update.PreviousPoints)
	assert.Equal(t, 50, update.PointsAdded)
	assert.Equal(t, 150, update.NewTotal)
	assert.Equal(t, "Pièce installée : Plaquettes", update.Action)
}

func TestAddPoints_RejectsInvalidDeltas(t *testing.T) {
	svc, _, _ := newService(t, 100)

	tests := []struct {
		name    string
		delta   int
		wantErr error
	}{
		{name: "zero", delta: 0, wantErr: domain.ErrInvalidPointsDelta},
		{name: "negative", delta: -10, wantErr: domain.ErrInvalidPointsDelta},
		{name: "over cap", delta: 501, wantErr: domain.ErrPointsCapExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddPoints(context.Background(), "user-1", tt.delta, "x")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// Exactly at the cap succeeds
	update, err := svc.AddPoints(context.Background(), "user-1", points.MaxPointsPerCall, "x")
	require.NoError(t, err)
	assert.Equal(t, 600, update.NewTotal)
}

func TestAddPoints_UnknownProfile(t *testing.T) {
	svc, _, _ := newService(t, 0)

	_, err := svc.AddPoints(context.Background(), "nobody", 10, "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestAddPoints_SequentialAdditivity(t *testing.T) {
	svc, _, _ := newService(t, 200)

	first, err := svc.AddPoints(context.Background(), "user-1", 50, "a")
	require.NoError(t, err)
	assert.Equal(t, 200, first.PreviousPoints)
	assert.Equal(t, 250, first.NewTotal)

	second, err := svc.AddPoints(context.Background(), "user-1", 30, "b")
	require.NoError(t, err)
	assert.Equal(t, 250, second.PreviousPoints)
	assert.Equal(t, 280, second.NewTotal)
}

func TestAddPoints_NoLostUpdatesUnderConcurrency(t *testing.T) {
	svc, repo, _ := newService(t, 0)

	const workers = 20
	const perWorker = 10

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				_, err := svc.AddPoints(context.Background(), "user-1", 5, "concurrent")
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	profile, err := repo.GetProfile(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, workers*perWorker*5, profile.PerformancePoints)
}

func TestAddPoints_PublishesExactlyOneEvent(t *testing.T) {
	svc, _, bus := newService(t, 490)

	var published []event.PointsAwardedPayloadV1
	bus.Subscribe(event.PointsAwarded, func(_ context.Context, evt event.Event) error {
		payload, err := event.DecodePayload[event.PointsAwardedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		published = append(published, payload)
		return nil
	})

	_, err := svc.AddPoints(context.Background(), "user-1", 20, "Pièce installée : Frein")
	require.NoError(t, err)

	require.Len(t, published, 1)
	assert.Equal(t, 490, published[0].PreviousPoints)
	assert.Equal(t, 510, published[0].NewTotal)
}

func TestAddPoints_RejectionDoesNotPublish(t *testing.T) {
	svc, _, bus := newService(t, 100)

	count := 0
	bus.Subscribe(event.PointsAwarded, func(_ context.Context, _ event.Event) error {
		count++
		return nil
	})

	_, err := svc.AddPoints(context.Background(), "user-1", 0, "x")
	require.Error(t, err)
	assert.Zero(t, count)
}

func TestGetProfile(t *testing.T) {
	svc, _, _ := newService(t, 321)

	profile, err := svc.GetProfile(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 321, profile.PerformancePoints)

	_, err = svc.GetProfile(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}
