package notifications

import (
	"context"

	"eventbook/pkg/kafka"
	"eventbook/pkg/logger"
	"eventbook/pkg/model"
)

const (
	SchemaVersion = "1"

	TypeEventCreated     = "event.created"
	TypeEventUpdated     = "event.updated"
	TypeEventDeleted     = "event.deleted"
	TypeBookingCreated   = "booking.created"
	TypeBookingCancelled = "booking.cancelled"
)

// Publisher is the producer surface the notifier needs.
type Publisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

// Notifier publishes record lifecycle messages. A nil Notifier or a nil
// publisher disables publishing entirely, so services can treat it as
// always present. Publish failures are logged and never abort a save.
type Notifier struct {
	publisher Publisher
	log       *logger.Logger
	source    string
}

func New(publisher Publisher, log *logger.Logger, source string) *Notifier {
	return &Notifier{
		publisher: publisher,
		log:       log,
		source:    source,
	}
}

func (n *Notifier) EventCreated(ctx context.Context, event *model.Event) {
	n.publish(ctx, TypeEventCreated, event.ID, event)
}

func (n *Notifier) EventUpdated(ctx context.Context, event *model.Event) {
	n.publish(ctx, TypeEventUpdated, event.ID, event)
}

func (n *Notifier) EventDeleted(ctx context.Context, id string) {
	n.publish(ctx, TypeEventDeleted, id, map[string]string{"id": id})
}

func (n *Notifier) BookingCreated(ctx context.Context, booking *model.Booking) {
	n.publish(ctx, TypeBookingCreated, booking.ID, booking)
}

func (n *Notifier) BookingCancelled(ctx context.Context, id string) {
	n.publish(ctx, TypeBookingCancelled, id, map[string]string{"id": id})
}

func (n *Notifier) publish(ctx context.Context, eventType, key string, payload any) {
	if n == nil || n.publisher == nil {
		return
	}

	msg := kafka.NewMessage().
		WithKey(key).
		WithValue(payload).
		WithEventType(eventType).
		WithSchemaVersion(SchemaVersion).
		WithSource(n.source).
		Build()

	if err := n.publisher.Publish(ctx, msg); err != nil {
		n.log.Warn("Failed to publish lifecycle message",
			"type", eventType,
			"key", key,
			"error", err,
		)
	}
}
