package infrastructure_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viajabus/booking/pkg/domain"
	"github.com/viajabus/booking/pkg/infrastructure"
	zapAdapter "github.com/viajabus/booking/pkg/infrastructure/zaplogger/adapter"
)

type testCommand struct {
	name string
	data string
}

func (c testCommand) CommandName() string { return c.name }
func (c testCommand) Payload() string     { return c.data }

type testQuery struct {
	name string
	data string
}

func (q testQuery) QueryName() string { return q.name }
func (q testQuery) Payload() string   { return q.data }

type testEvent struct {
	name string
	data string
}

func (e testEvent) EventName() string { return e.name }
func (e testEvent) Payload() string   { return e.data }

type commandRecorder struct {
	mu       sync.Mutex
	payloads []string
	err      error
}

func (r *commandRecorder) Handle(ctx context.Context, command domain.Command[string]) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payloads = append(r.payloads, command.Payload())
	return r.err
}

type queryResponder struct {
	result []string
	err    error
	delay  time.Duration
}

func (r *queryResponder) Handle(ctx context.Context, query domain.Query[string]) ([]string, error) {
	if r.delay > 0 {
		select {
		case <-time.After(r.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return r.result, r.err
}

type eventRecorder struct {
	mu       sync.Mutex
	payloads []string
	err      error
}

func (r *eventRecorder) Handle(ctx context.Context, event domain.Event[string]) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payloads = append(r.payloads, event.Payload())
	return r.err
}

func (r *eventRecorder) received() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.payloads...)
}

func TestLocalCommandBus(t *testing.T) {
	ctx := context.Background()

	t.Run("dispatches to the registered handler", func(t *testing.T) {
		bus := infrastructure.NewLocalCommandBus[domain.Command[string], string]()
		recorder := &commandRecorder{}
		bus.RegisterHandler("DoThing", recorder)

		err := bus.Dispatch(ctx, testCommand{name: "DoThing", data: "payload"})

		require.NoError(t, err)
		assert.Equal(t, []string{"payload"}, recorder.payloads)
	})

	t.Run("fails when no handler is registered", func(t *testing.T) {
		bus := infrastructure.NewLocalCommandBus[domain.Command[string], string]()

		err := bus.Dispatch(ctx, testCommand{name: "Unknown"})

		assert.Error(t, err)
	})

	t.Run("propagates the handler error", func(t *testing.T) {
		bus := infrastructure.NewLocalCommandBus[domain.Command[string], string]()
		handlerErr := errors.New("boom")
		bus.RegisterHandler("DoThing", &commandRecorder{err: handlerErr})

		err := bus.Dispatch(ctx, testCommand{name: "DoThing"})

		assert.ErrorIs(t, err, handlerErr)
	})

	t.Run("refuses a cancelled context", func(t *testing.T) {
		bus := infrastructure.NewLocalCommandBus[domain.Command[string], string]()
		recorder := &commandRecorder{}
		bus.RegisterHandler("DoThing", recorder)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		err := bus.Dispatch(cancelled, testCommand{name: "DoThing"})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, recorder.payloads)
	})
}

func TestLocalQueryBus(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the handler result", func(t *testing.T) {
		bus := infrastructure.NewLocalQueryBus[domain.Query[string], string, []string]()
		bus.RegisterHandler("FindThings", &queryResponder{result: []string{"a", "b"}})

		result, err := bus.Dispatch(ctx, testQuery{name: "FindThings"})

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, result)
	})

	t.Run("fails when no handler is registered", func(t *testing.T) {
		bus := infrastructure.NewLocalQueryBus[domain.Query[string], string, []string]()

		_, err := bus.Dispatch(ctx, testQuery{name: "Unknown"})

		assert.Error(t, err)
	})

	t.Run("propagates the handler error", func(t *testing.T) {
		bus := infrastructure.NewLocalQueryBus[domain.Query[string], string, []string]()
		handlerErr := errors.New("boom")
		bus.RegisterHandler("FindThings", &queryResponder{err: handlerErr})

		_, err := bus.Dispatch(ctx, testQuery{name: "FindThings"})

		assert.ErrorIs(t, err, handlerErr)
	})

	t.Run("gives up when the context expires first", func(t *testing.T) {
		bus := infrastructure.NewLocalQueryBus[domain.Query[string], string, []string]()
		bus.RegisterHandler("FindThings", &queryResponder{result: []string{"a"}, delay: time.Second})

		timeoutCtx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
		defer cancel()

		_, err := bus.Dispatch(timeoutCtx, testQuery{name: "FindThings"})

		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestLocalEventBus(t *testing.T) {
	ctx := context.Background()
	logger := zapAdapter.NewNopAppLogger()

	t.Run("fans out to every handler for the event", func(t *testing.T) {
		bus := infrastructure.NewLocalEventBus[domain.Event[string], string](logger)
		first := &eventRecorder{}
		second := &eventRecorder{}
		bus.RegisterHandler("ThingHappened", first)
		bus.RegisterHandler("ThingHappened", second)

		err := bus.Publish(ctx, testEvent{name: "ThingHappened", data: "payload"})

		require.NoError(t, err)
		assert.Equal(t, []string{"payload"}, first.received())
		assert.Equal(t, []string{"payload"}, second.received())
	})

	t.Run("publishing without subscribers is not a failure", func(t *testing.T) {
		bus := infrastructure.NewLocalEventBus[domain.Event[string], string](logger)

		err := bus.Publish(ctx, testEvent{name: "NobodyListens"})

		assert.NoError(t, err)
	})

	t.Run("collects handler errors", func(t *testing.T) {
		bus := infrastructure.NewLocalEventBus[domain.Event[string], string](logger)
		bus.RegisterHandler("ThingHappened", &eventRecorder{err: errors.New("boom")})
		bus.RegisterHandler("ThingHappened", &eventRecorder{})

		err := bus.Publish(ctx, testEvent{name: "ThingHappened"})

		assert.Error(t, err)
	})

	t.Run("does not deliver to handlers of other events", func(t *testing.T) {
		bus := infrastructure.NewLocalEventBus[domain.Event[string], string](logger)
		recorder := &eventRecorder{}
		bus.RegisterHandler("OtherThing", recorder)

		err := bus.Publish(ctx, testEvent{name: "ThingHappened"})

		require.NoError(t, err)
		assert.Empty(t, recorder.received())
	})
}
