package adapter

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/viajabus/booking/pkg/application"
	"github.com/viajabus/booking/pkg/domain"
	"github.com/viajabus/booking/pkg/infrastructure"
)

// WatermillQueryBus dispatches queries through a topic named after the query
// and waits for the answer on "<query>_response".
type WatermillQueryBus[Q domain.Query[D], D any, R any] struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	logger     application.AppLogger
}

func NewWatermillQueryBus[Q domain.Query[D], D any, R any](
	publisher message.Publisher,
	subscriber message.Subscriber,
	logger application.AppLogger,
) *WatermillQueryBus[Q, D, R] {
	return &WatermillQueryBus[Q, D, R]{
		publisher:  publisher,
		subscriber: subscriber,
		logger:     logger,
	}
}

func (bus *WatermillQueryBus[Q, D, R]) RegisterHandler(queryName string, handler application.QueryHandler[Q, D, R]) {
	go bus.subscribeAndHandle(queryName, handler)
}

func (bus *WatermillQueryBus[Q, D, R]) subscribeAndHandle(queryName string, handler application.QueryHandler[Q, D, R]) {
	ctx := context.Background()

	messages, err := bus.subscriber.Subscribe(ctx, queryName)
	if err != nil {
		application.LogError(ctx, bus.logger, "error subscribing to query topic", err, map[string]interface{}{
			"query_name": queryName,
		})
		return
	}

	for msg := range messages {
		bus.handleMessage(ctx, queryName, handler, msg)
	}
}

func (bus *WatermillQueryBus[Q, D, R]) handleMessage(
	ctx context.Context,
	queryName string,
	handler application.QueryHandler[Q, D, R],
	msg *message.Message,
) {
	var payload D
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		application.LogError(ctx, bus.logger, "error unmarshalling query payload", err, map[string]interface{}{
			"query_name": queryName,
			"message_id": msg.UUID,
		})
		msg.Nack()
		return
	}

	query := &dynamicQuery[D]{name: queryName, payload: payload}
	typedQuery, ok := interface{}(query).(Q)
	if !ok {
		bus.logger.Error(ctx, "query does not satisfy the bus query type", map[string]interface{}{
			"query_name": queryName,
		})
		msg.Nack()
		return
	}

	result, err := handler.Handle(ctx, typedQuery)
	if err != nil {
		application.LogError(ctx, bus.logger, "error handling query", err, map[string]interface{}{
			"query_name": queryName,
			"message_id": msg.UUID,
		})
		msg.Nack()
		return
	}

	responsePayload, err := infrastructure.MarshalPayload(result)
	if err != nil {
		application.LogError(ctx, bus.logger, "error marshalling query result", err, map[string]interface{}{
			"query_name": queryName,
		})
		msg.Nack()
		return
	}

	responseMsg := message.NewMessage(infrastructure.NewMessageID(), responsePayload)
	if err := bus.publisher.Publish(queryName+"_response", responseMsg); err != nil {
		application.LogError(ctx, bus.logger, "error publishing query response", err, map[string]interface{}{
			"query_name": queryName,
		})
		msg.Nack()
		return
	}

	bus.logger.Info(ctx, "query handled", map[string]interface{}{
		"query_name": queryName,
		"message_id": msg.UUID,
	})
	msg.Ack()
}

func (bus *WatermillQueryBus[Q, D, R]) Dispatch(ctx context.Context, query Q) (R, error) {
	var zero R

	// Subscribe to the response topic before publishing so the answer
	// cannot slip past us.
	responseMessages, err := bus.subscriber.Subscribe(ctx, query.QueryName()+"_response")
	if err != nil {
		application.LogError(ctx, bus.logger, "error subscribing to query response", err, map[string]interface{}{
			"query_name": query.QueryName(),
		})
		return zero, err
	}

	payload, err := infrastructure.MarshalPayload(query.Payload())
	if err != nil {
		application.LogError(ctx, bus.logger, "error marshalling query payload", err, map[string]interface{}{
			"query_name": query.QueryName(),
		})
		return zero, err
	}

	msg := message.NewMessage(infrastructure.NewMessageID(), payload)
	if err := bus.publisher.Publish(query.QueryName(), msg); err != nil {
		application.LogError(ctx, bus.logger, "error publishing query", err, map[string]interface{}{
			"query_name": query.QueryName(),
		})
		return zero, err
	}

	select {
	case responseMsg := <-responseMessages:
		var result R
		if err := json.Unmarshal(responseMsg.Payload, &result); err != nil {
			application.LogError(ctx, bus.logger, "error unmarshalling query response", err, map[string]interface{}{
				"query_name": query.QueryName(),
			})
			responseMsg.Nack()
			return zero, err
		}
		responseMsg.Ack()
		return result, nil
	case <-ctx.Done():
		application.LogError(ctx, bus.logger, "query dispatch cancelled", ctx.Err(), map[string]interface{}{
			"query_name": query.QueryName(),
		})
		return zero, ctx.Err()
	}
}

type dynamicQuery[D any] struct {
	name    string
	payload D
}

func (q *dynamicQuery[D]) QueryName() string {
	return q.name
}

func (q *dynamicQuery[D]) Payload() D {
	return q.payload
}
