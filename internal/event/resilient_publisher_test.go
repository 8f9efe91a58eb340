package event_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trottparts/garage-api/internal/event"
)

// flakyBus fails the first n publishes then succeeds
type flakyBus struct {
	failures int32
	calls    int32
}

func (b *flakyBus) Publish(_ context.Context, _ event.Event) error {
	n := atomic.AddInt32(&b.calls, 1)
	if n <= atomic.LoadInt32(&b.failures) {
		return errors.New("bus unavailable")
	}
	return nil
}

func (b *flakyBus) Subscribe(_ event.Type, _ event.Handler) {}

func TestResilientPublisher_FirstAttemptSucceeds(t *testing.T) {
	inner := &flakyBus{}
	p := event.NewResilientPublisher(inner, event.ResilientConfig{
		MaxRetries: 3,
		RetryDelay: time.Millisecond,
	})

	err := p.Publish(context.Background(), event.NewPointsAwardedEvent("u", 0, 10, 10, "x"))
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&inner.calls))
}

func TestResilientPublisher_RetriesInBackground(t *testing.T) {
	inner := &flakyBus{failures: 2}
	p := event.NewResilientPublisher(inner, event.ResilientConfig{
		MaxRetries: 3,
		RetryDelay: time.Millisecond,
	})

	// Caller is never blocked by a failing first attempt
	err := p.Publish(context.Background(), event.NewPointsAwardedEvent("u", 0, 10, 10, "x"))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, p.Shutdown(ctx))

	// First attempt + retries until success
	assert.Equal(t, int32(3), atomic.LoadInt32(&inner.calls))
}

func TestResilientPublisher_DeadLetterAfterExhaustion(t *testing.T) {
	deadLetter := filepath.Join(t.TempDir(), "deadletter.jsonl")

	inner := &flakyBus{failures: 100}
	p := event.NewResilientPublisher(inner, event.ResilientConfig{
		MaxRetries:     2,
		RetryDelay:     time.Millisecond,
		DeadLetterPath: deadLetter,
	})

	require.NoError(t, p.Publish(context.Background(), event.NewLevelUpEvent("u", 1, 2, "Apprenti", "Mécano")))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, p.Shutdown(ctx))

	data, err := os.ReadFile(deadLetter)
	require.NoError(t, err)
	assert.Contains(t, string(data), "level.up")
}
