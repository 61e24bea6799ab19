package infrastructure

import (
	"context"
	"fmt"
	"sync"

	"github.com/viajabus/booking/pkg/application"
	"github.com/viajabus/booking/pkg/domain"
)

type localQueryBus[Q domain.Query[D], D any, R any] struct {
	handlers map[string]application.QueryHandler[Q, D, R]
	mu       sync.RWMutex
}

// NewLocalQueryBus returns an in-process query bus. The handler runs on its
// own goroutine so a hung handler cannot outlive the caller's context.
func NewLocalQueryBus[Q domain.Query[D], D any, R any]() application.QueryBus[Q, D, R] {
	return &localQueryBus[Q, D, R]{
		handlers: make(map[string]application.QueryHandler[Q, D, R]),
	}
}

func (bus *localQueryBus[Q, D, R]) RegisterHandler(queryName string, handler application.QueryHandler[Q, D, R]) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.handlers[queryName] = handler
}

func (bus *localQueryBus[Q, D, R]) Dispatch(ctx context.Context, query Q) (R, error) {
	bus.mu.RLock()
	handler, found := bus.handlers[query.QueryName()]
	bus.mu.RUnlock()

	var zero R
	if !found {
		return zero, fmt.Errorf("no handler registered for query %q", query.QueryName())
	}

	resultChan := make(chan R, 1)
	errChan := make(chan error, 1)

	go func() {
		result, err := handler.Handle(ctx, query)
		if err != nil {
			errChan <- err
			return
		}
		resultChan <- result
	}()

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case result := <-resultChan:
		return result, nil
	case err := <-errChan:
		return zero, err
	}
}
