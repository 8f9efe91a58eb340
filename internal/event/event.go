package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Common event types
const (
	PointsAwarded        Type = "points.awarded"
	LevelUp              Type = "level.up"
	ModificationRecorded Type = "modification.recorded"
	PurchaseCredited     Type = "purchase.credited"
)

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Typed event payloads for type safety

// PointsAwardedPayloadV1 carries the before/after totals of a points
// mutation so subscribers can detect level transitions without re-querying.
type PointsAwardedPayloadV1 struct {
	UserID         string `json:"user_id"`
	PreviousPoints int    `json:"previous_points"`
	PointsAdded    int    `json:"points_added"`
	NewTotal       int    `json:"new_total"`
	Action         string `json:"action"`
	Timestamp      int64  `json:"timestamp"`
}

// LevelUpPayloadV1 is the typed payload for level-up events
type LevelUpPayloadV1 struct {
	UserID       string `json:"user_id"`
	OldLevel     int    `json:"old_level"`
	NewLevel     int    `json:"new_level"`
	OldLevelName string `json:"old_level_name"`
	NewLevelName string `json:"new_level_name"`
}

// ModificationRecordedPayloadV1 is the typed payload for recorded installations
type ModificationRecordedPayloadV1 struct {
	UserID          string `json:"user_id"`
	GarageItemID    string `json:"garage_item_id"`
	ModificationID  string `json:"modification_id"`
	PartID          string `json:"part_id"`
	CategoryName    string `json:"category_name"`
	XPEarned        int    `json:"xp_earned"`
	FirstInCategory bool   `json:"first_in_category"`
}

// PurchaseCreditedPayloadV1 is the typed payload for purchase XP credits
type PurchaseCreditedPayloadV1 struct {
	UserID  string `json:"user_id"`
	OrderID string `json:"order_id"`
	Points  int    `json:"points"`
}

// Type-safe event constructors

// NewPointsAwardedEvent creates a points-awarded event
func NewPointsAwardedEvent(userID string, previous, added, newTotal int, action string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PointsAwarded,
		Payload: PointsAwardedPayloadV1{
			UserID:         userID,
			PreviousPoints: previous,
			PointsAdded:    added,
			NewTotal:       newTotal,
			Action:         action,
			Timestamp:      time.Now().Unix(),
		},
	}
}

// NewLevelUpEvent creates a level-up event
func NewLevelUpEvent(userID string, oldLevel, newLevel int, oldName, newName string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    LevelUp,
		Payload: LevelUpPayloadV1{
			UserID:       userID,
			OldLevel:     oldLevel,
			NewLevel:     newLevel,
			OldLevelName: oldName,
			NewLevelName: newName,
		},
	}
}

// NewModificationRecordedEvent creates a modification-recorded event
func NewModificationRecordedEvent(userID, garageItemID, modificationID, partID, categoryName string, xpEarned int, firstInCategory bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ModificationRecorded,
		Payload: ModificationRecordedPayloadV1{
			UserID:          userID,
			GarageItemID:    garageItemID,
			ModificationID:  modificationID,
			PartID:          partID,
			CategoryName:    categoryName,
			XPEarned:        xpEarned,
			FirstInCategory: firstInCategory,
		},
	}
}

// NewPurchaseCreditedEvent creates a purchase-credited event
func NewPurchaseCreditedEvent(userID, orderID string, points int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PurchaseCredited,
		Payload: PurchaseCreditedPayloadV1{
			UserID:  userID,
			OrderID: orderID,
			Points:  points,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously
// in subscription order; each subscriber sees a published event exactly once.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
