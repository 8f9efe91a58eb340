package metrics

import (
	"context"

	"github.com/trottparts/garage-api/internal/event"
	"github.com/trottparts/garage-api/internal/logger"
)

// EventCollector subscribes to bus events and records business metrics
type EventCollector struct{}

// NewEventCollector creates a new event metrics collector
func NewEventCollector() *EventCollector {
	return &EventCollector{}
}

// Subscribe registers metric handlers on the bus
func (c *EventCollector) Subscribe(bus event.Bus) {
	bus.Subscribe(event.LevelUp, c.handleLevelUp)
	bus.Subscribe(event.ModificationRecorded, c.handleModificationRecorded)
	bus.Subscribe(event.PurchaseCredited, c.handlePurchaseCredited)
}

func (c *EventCollector) handleLevelUp(_ context.Context, _ event.Event) error {
	LevelUps.Inc()
	return nil
}

func (c *EventCollector) handleModificationRecorded(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.ModificationRecordedPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn("Invalid modification recorded payload", "error", err)
		return nil
	}
	ModificationsRecorded.WithLabelValues(payload.CategoryName).Inc()
	return nil
}

func (c *EventCollector) handlePurchaseCredited(_ context.Context, _ event.Event) error {
	PurchaseCredits.Inc()
	return nil
}
