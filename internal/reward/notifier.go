// Package reward turns points mutations into user-facing notifications. It
// distinguishes routine credits from level-ups: the same wire mechanism
// carries both, tagged so clients pick the right treatment.
package reward

import (
	"context"
	"fmt"

	"github.com/trottparts/garage-api/internal/event"
	"github.com/trottparts/garage-api/internal/level"
	"github.com/trottparts/garage-api/internal/logger"
	"github.com/trottparts/garage-api/internal/sse"
)

// Kind discriminates notification variants.
type Kind int

const (
	KindRoutine Kind = iota
	KindLevelUp
)

// Notification is the decided outcome for one points credit. Previous and
// New are only meaningful for KindLevelUp.
type Notification struct {
	Kind     Kind
	UserID   string
	Points   int
	Action   string
	NewTotal int
	Previous level.Level
	New      level.Level
}

// Decide classifies a points credit as routine or level-up by resolving the
// levels of the before and after totals. Pure; safe to call from anywhere.
func Decide(userID string, previousPoints, pointsAdded, newTotal int, action string) Notification {
	before := level.Resolve(previousPoints)
	after := level.Resolve(newTotal)

	n := Notification{
		Kind:     KindRoutine,
		UserID:   userID,
		Points:   pointsAdded,
		Action:   action,
		NewTotal: newTotal,
		Previous: before,
		New:      after,
	}
	if after.Ordinal > before.Ordinal {
		n.Kind = KindLevelUp
	}
	return n
}

// Notifier subscribes to points-awarded events and pushes toasts over SSE.
type Notifier struct {
	hub       *sse.Hub
	publisher event.Bus
}

// NewNotifier creates a Notifier and wires it to the bus.
func NewNotifier(bus event.Bus, hub *sse.Hub) *Notifier {
	n := &Notifier{hub: hub, publisher: bus}
	bus.Subscribe(event.PointsAwarded, n.handlePointsAwarded)
	return n
}

func (n *Notifier) handlePointsAwarded(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.PointsAwardedPayloadV1](evt.Payload)
	if err != nil {
		return fmt.Errorf("%s: %w", LogMsgDecodeFailed, err)
	}

	decision := Decide(payload.UserID, payload.PreviousPoints, payload.PointsAdded, payload.NewTotal, payload.Action)
	n.push(ctx, decision)
	return nil
}

// push delivers the notification. Delivery is fire-and-forget: a user with
// no open connection simply misses the toast.
func (n *Notifier) push(ctx context.Context, decision Notification) {
	log := logger.FromContext(ctx)

	switch decision.Kind {
	case KindLevelUp:
		n.hub.BroadcastToUser(decision.UserID, sse.EventTypeLevelUpToast, sse.LevelUpToastPayload{
			UserID:       decision.UserID,
			Points:       decision.Points,
			Action:       decision.Action,
			NewTotal:     decision.NewTotal,
			OldLevel:     decision.Previous.Ordinal,
			NewLevel:     decision.New.Ordinal,
			NewLevelName: decision.New.Name,
			Icon:         decision.New.Icon,
			Color:        decision.New.Color,
			DurationMS:   LevelUpToastDurationMS,
			Celebrate:    true,
		})

		log.Info(LogMsgLevelUp,
			"user_id", decision.UserID,
			"old_level", decision.Previous.Ordinal,
			"new_level", decision.New.Ordinal,
			"new_total", decision.NewTotal)

		if n.publisher != nil {
			levelUp := event.NewLevelUpEvent(decision.UserID,
				decision.Previous.Ordinal, decision.New.Ordinal,
				decision.Previous.Name, decision.New.Name)
			if err := n.publisher.Publish(ctx, levelUp); err != nil {
				log.Error(LogMsgPublishFailed, "error", err, "user_id", decision.UserID)
			}
		}

	default:
		n.hub.BroadcastToUser(decision.UserID, sse.EventTypeXPToast, sse.XPToastPayload{
			UserID:     decision.UserID,
			Points:     decision.Points,
			Action:     decision.Action,
			NewTotal:   decision.NewTotal,
			DurationMS: RoutineToastDurationMS,
		})
	}
}
