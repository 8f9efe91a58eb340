package event_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trottparts/garage-api/internal/event"
)

func TestMemoryBus_PublishDeliversOnce(t *testing.T) {
	bus := event.NewMemoryBus()

	var calls int32
	bus.Subscribe(event.PointsAwarded, func(_ context.Context, _ event.Event) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})

	evt := event.NewPointsAwardedEvent("user-1", 490, 20, 510, "Pièce installée : Frein arrière")
	require.NoError(t, bus.Publish(context.Background(), evt))

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := event.NewMemoryBus()
	err := bus.Publish(context.Background(), event.NewLevelUpEvent("user-1", 1, 2, "Apprenti", "Mécano"))
	assert.NoError(t, err)
}

func TestMemoryBus_HandlerErrorAggregated(t *testing.T) {
	bus := event.NewMemoryBus()

	bus.Subscribe(event.LevelUp, func(_ context.Context, _ event.Event) error {
		return errors.New("sse hub unavailable")
	})
	bus.Subscribe(event.LevelUp, func(_ context.Context, _ event.Event) error {
		return nil
	})

	err := bus.Publish(context.Background(), event.NewLevelUpEvent("user-1", 1, 2, "Apprenti", "Mécano"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "level.up")
}

func TestMemoryBus_TypeIsolation(t *testing.T) {
	bus := event.NewMemoryBus()

	var pointsCalls, levelCalls int32
	bus.Subscribe(event.PointsAwarded, func(_ context.Context, _ event.Event) error {
		atomic.AddInt32(&pointsCalls, 1)
		return nil
	})
	bus.Subscribe(event.LevelUp, func(_ context.Context, _ event.Event) error {
		atomic.AddInt32(&levelCalls, 1)
		return nil
	})

	require.NoError(t, bus.Publish(context.Background(), event.NewPointsAwardedEvent("u", 0, 10, 10, "x")))

	assert.Equal(t, int32(1), atomic.LoadInt32(&pointsCalls))
	assert.Equal(t, int32(0), atomic.LoadInt32(&levelCalls))
}

func TestDecodePayload_TypeAssertionFastPath(t *testing.T) {
	evt := event.NewPointsAwardedEvent("user-1", 100, 50, 150, "Achat de pièce")

	payload, err := event.DecodePayload[event.PointsAwardedPayloadV1](evt.Payload)
	require.NoError(t, err)
	assert.Equal(t, "user-1", payload.UserID)
	assert.Equal(t, 100, payload.PreviousPoints)
	assert.Equal(t, 150, payload.NewTotal)
}

func TestDecodePayload_JSONFallback(t *testing.T) {
	raw := map[string]interface{}{
		"user_id":         "user-2",
		"previous_points": 10,
		"points_added":    5,
		"new_total":       15,
		"action":          "test",
	}

	payload, err := event.DecodePayload[event.PointsAwardedPayloadV1](raw)
	require.NoError(t, err)
	assert.Equal(t, "user-2", payload.UserID)
	assert.Equal(t, 15, payload.NewTotal)
}
