package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trottparts/garage-api/internal/logger"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := context.Background()

	_, ok := logger.RequestIDFromContext(ctx)
	assert.False(t, ok)

	id := logger.GenerateRequestID()
	require.NotEmpty(t, id)

	ctx = logger.WithRequestID(ctx, id)
	got, ok := logger.RequestIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, id, got)
}

func TestGenerateRequestID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := logger.GenerateRequestID()
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestFromContext_NoRequestID(t *testing.T) {
	// Should fall back to the default logger without panicking
	log := logger.FromContext(context.Background())
	require.NotNil(t, log)
	log.Debug("no request id")
}

func TestConfigLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  string
	}{
		{level: "debug", want: "DEBUG"},
		{level: "info", want: "INFO"},
		{level: "WARN", want: "WARN"},
		{level: "warning", want: "WARN"},
		{level: "error", want: "ERROR"},
		{level: "nonsense", want: "INFO"},
	}

	for _, tt := range tests {
		cfg := logger.Config{Level: tt.level}
		assert.Equal(t, tt.want, cfg.LogLevel().String(), "level=%q", tt.level)
	}
}

func TestConfigIsJSON(t *testing.T) {
	assert.True(t, logger.Config{Format: "json"}.IsJSON())
	assert.True(t, logger.Config{Format: "JSON"}.IsJSON())
	assert.False(t, logger.Config{Format: "text"}.IsJSON())
}
