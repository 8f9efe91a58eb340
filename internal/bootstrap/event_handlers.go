package bootstrap

import (
	"log/slog"

	"github.com/trottparts/garage-api/internal/event"
	"github.com/trottparts/garage-api/internal/metrics"
	"github.com/trottparts/garage-api/internal/reward"
	"github.com/trottparts/garage-api/internal/sse"
)

// RegisterEventHandlers sets up all event subscribers:
// - Reward notifier (pushes XP and level-up toasts over SSE)
// - Metrics collector (counts business events)
func RegisterEventHandlers(eventBus event.Bus, hub *sse.Hub) {
	reward.NewNotifier(eventBus, hub)
	slog.Info(LogMsgNotifierRegistered)

	metrics.NewEventCollector().Subscribe(eventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)
}
