package infrastructure

import (
	"context"
	"fmt"
	"sync"

	"github.com/viajabus/booking/pkg/application"
	"github.com/viajabus/booking/pkg/domain"
)

type localEventBus[E domain.Event[T], T any] struct {
	handlers map[string][]application.EventHandler[E, T]
	mu       sync.RWMutex
	logger   application.AppLogger
}

// NewLocalEventBus returns an in-process event bus that fans each event out to
// every handler registered for its name, one goroutine per handler.
func NewLocalEventBus[E domain.Event[T], T any](logger application.AppLogger) application.EventBus[E, T] {
	return &localEventBus[E, T]{
		handlers: make(map[string][]application.EventHandler[E, T]),
		logger:   logger,
	}
}

func (bus *localEventBus[E, T]) RegisterHandler(eventName string, handler application.EventHandler[E, T]) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.handlers[eventName] = append(bus.handlers[eventName], handler)
}

func (bus *localEventBus[E, T]) Publish(ctx context.Context, event E) error {
	bus.mu.RLock()
	handlers := bus.handlers[event.EventName()]
	bus.mu.RUnlock()

	if len(handlers) == 0 {
		// No subscriber is not a failure.
		bus.logger.Debug(ctx, "no handler registered for event", map[string]interface{}{
			"event_name": event.EventName(),
		})
		return nil
	}

	var wg sync.WaitGroup
	errChan := make(chan error, len(handlers))

	for _, handler := range handlers {
		wg.Add(1)
		go func(h application.EventHandler[E, T]) {
			defer wg.Done()
			if err := h.Handle(ctx, event); err != nil {
				errChan <- err
			}
		}(handler)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(errChan)
		close(done)
	}()

	select {
	case <-ctx.Done():
		application.LogError(ctx, bus.logger, "event publication interrupted", ctx.Err(), map[string]interface{}{
			"event_name": event.EventName(),
		})
		return ctx.Err()
	case <-done:
		return bus.collectErrors(ctx, event.EventName(), errChan)
	}
}

func (bus *localEventBus[E, T]) collectErrors(ctx context.Context, eventName string, errChan <-chan error) error {
	var errs []error
	for err := range errChan {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		bus.logger.Error(ctx, "event handlers failed", map[string]interface{}{
			"event_name": eventName,
			"errors":     errs,
		})
		return fmt.Errorf("event %q: handler errors: %v", eventName, errs)
	}
	return nil
}
