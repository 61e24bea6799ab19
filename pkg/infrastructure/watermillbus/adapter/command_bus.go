// Package adapter implements the command, query and event buses on top of
// watermill publishers and subscribers. Any watermill transport (gochannel,
// kafka, redis streams) plugs in unchanged.
package adapter

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/viajabus/booking/pkg/application"
	"github.com/viajabus/booking/pkg/domain"
	"github.com/viajabus/booking/pkg/infrastructure"
)

// WatermillCommandBus dispatches commands through a watermill topic named
// after the command. Handlers run on the subscriber side.
type WatermillCommandBus[C domain.Command[T], T any] struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	logger     application.AppLogger
}

func NewWatermillCommandBus[C domain.Command[T], T any](
	publisher message.Publisher,
	subscriber message.Subscriber,
	logger application.AppLogger,
) *WatermillCommandBus[C, T] {
	return &WatermillCommandBus[C, T]{
		publisher:  publisher,
		subscriber: subscriber,
		logger:     logger,
	}
}

func (bus *WatermillCommandBus[C, T]) RegisterHandler(commandName string, handler application.CommandHandler[C, T]) {
	go bus.subscribeAndHandle(commandName, handler)
}

func (bus *WatermillCommandBus[C, T]) subscribeAndHandle(commandName string, handler application.CommandHandler[C, T]) {
	ctx := context.Background()

	messages, err := bus.subscriber.Subscribe(ctx, commandName)
	if err != nil {
		application.LogError(ctx, bus.logger, "error subscribing to command topic", err, map[string]interface{}{
			"command_name": commandName,
		})
		return
	}

	for msg := range messages {
		bus.handleMessage(ctx, commandName, handler, msg)
	}
}

func (bus *WatermillCommandBus[C, T]) handleMessage(
	ctx context.Context,
	commandName string,
	handler application.CommandHandler[C, T],
	msg *message.Message,
) {
	var payload T
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		application.LogError(ctx, bus.logger, "error unmarshalling command payload", err, map[string]interface{}{
			"command_name": commandName,
			"message_id":   msg.UUID,
		})
		msg.Nack()
		return
	}

	command := &dynamicCommand[T]{name: commandName, payload: payload}
	typedCommand, ok := interface{}(command).(C)
	if !ok {
		bus.logger.Error(ctx, "command does not satisfy the bus command type", map[string]interface{}{
			"command_name": commandName,
		})
		msg.Nack()
		return
	}

	if err := handler.Handle(ctx, typedCommand); err != nil {
		application.LogError(ctx, bus.logger, "error handling command", err, map[string]interface{}{
			"command_name": commandName,
			"message_id":   msg.UUID,
		})
		msg.Nack()
		return
	}

	bus.logger.Info(ctx, "command handled", map[string]interface{}{
		"command_name": commandName,
		"message_id":   msg.UUID,
	})
	msg.Ack()
}

func (bus *WatermillCommandBus[C, T]) Dispatch(ctx context.Context, command C) error {
	payload, err := infrastructure.MarshalPayload(command.Payload())
	if err != nil {
		application.LogError(ctx, bus.logger, "error marshalling command payload", err, map[string]interface{}{
			"command_name": command.CommandName(),
		})
		return err
	}

	msg := message.NewMessage(infrastructure.NewMessageID(), payload)
	if err := bus.publisher.Publish(command.CommandName(), msg); err != nil {
		application.LogError(ctx, bus.logger, "error publishing command", err, map[string]interface{}{
			"command_name": command.CommandName(),
		})
		return err
	}

	bus.logger.Info(ctx, "command dispatched", map[string]interface{}{
		"command_name": command.CommandName(),
		"message_id":   msg.UUID,
	})
	return nil
}

type dynamicCommand[T any] struct {
	name    string
	payload T
}

func (c *dynamicCommand[T]) CommandName() string {
	return c.name
}

func (c *dynamicCommand[T]) Payload() T {
	return c.payload
}
