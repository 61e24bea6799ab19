package adapter

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/viajabus/booking/pkg/application"
	"github.com/viajabus/booking/pkg/domain"
	"github.com/viajabus/booking/pkg/infrastructure"
)

// WatermillEventBus publishes events to a topic named after the event; every
// registered handler consumes from its own subscription.
type WatermillEventBus[E domain.Event[D], D any] struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	logger     application.AppLogger
}

func NewWatermillEventBus[E domain.Event[D], D any](
	publisher message.Publisher,
	subscriber message.Subscriber,
	logger application.AppLogger,
) *WatermillEventBus[E, D] {
	return &WatermillEventBus[E, D]{
		publisher:  publisher,
		subscriber: subscriber,
		logger:     logger,
	}
}

func (bus *WatermillEventBus[E, D]) RegisterHandler(eventName string, handler application.EventHandler[E, D]) {
	go bus.subscribeAndHandle(eventName, handler)
}

func (bus *WatermillEventBus[E, D]) subscribeAndHandle(eventName string, handler application.EventHandler[E, D]) {
	ctx := context.Background()

	messages, err := bus.subscriber.Subscribe(ctx, eventName)
	if err != nil {
		application.LogError(ctx, bus.logger, "error subscribing to event topic", err, map[string]interface{}{
			"event_name": eventName,
		})
		return
	}

	for msg := range messages {
		bus.handleMessage(ctx, eventName, handler, msg)
	}
}

func (bus *WatermillEventBus[E, D]) handleMessage(
	ctx context.Context,
	eventName string,
	handler application.EventHandler[E, D],
	msg *message.Message,
) {
	var payload D
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		application.LogError(ctx, bus.logger, "error unmarshalling event payload", err, map[string]interface{}{
			"event_name": eventName,
			"message_id": msg.UUID,
		})
		msg.Nack()
		return
	}

	event := &dynamicEvent[D]{name: eventName, payload: payload}
	typedEvent, ok := interface{}(event).(E)
	if !ok {
		bus.logger.Error(ctx, "event does not satisfy the bus event type", map[string]interface{}{
			"event_name": eventName,
		})
		msg.Nack()
		return
	}

	if err := handler.Handle(ctx, typedEvent); err != nil {
		application.LogError(ctx, bus.logger, "error handling event", err, map[string]interface{}{
			"event_name": eventName,
			"message_id": msg.UUID,
		})
		msg.Nack()
		return
	}

	msg.Ack()
}

func (bus *WatermillEventBus[E, D]) Publish(ctx context.Context, event E) error {
	payload, err := infrastructure.MarshalPayload(event.Payload())
	if err != nil {
		application.LogError(ctx, bus.logger, "error marshalling event payload", err, map[string]interface{}{
			"event_name": event.EventName(),
		})
		return err
	}

	msg := message.NewMessage(infrastructure.NewMessageID(), payload)
	if err := bus.publisher.Publish(event.EventName(), msg); err != nil {
		application.LogError(ctx, bus.logger, "error publishing event", err, map[string]interface{}{
			"event_name": event.EventName(),
		})
		return err
	}

	bus.logger.Info(ctx, "event published", map[string]interface{}{
		"event_name": event.EventName(),
		"message_id": msg.UUID,
	})
	return nil
}

type dynamicEvent[D any] struct {
	name    string
	payload D
}

func (e *dynamicEvent[D]) EventName() string {
	return e.name
}

func (e *dynamicEvent[D]) Payload() D {
	return e.payload
}
