package infrastructure

import (
	"context"
	"fmt"
	"sync"

	"github.com/viajabus/booking/pkg/application"
	"github.com/viajabus/booking/pkg/domain"
)

type localCommandBus[C domain.Command[D], D any] struct {
	handlers map[string]application.CommandHandler[C, D]
	mu       sync.RWMutex
}

// NewLocalCommandBus returns an in-process command bus that invokes handlers
// synchronously on the caller's goroutine.
func NewLocalCommandBus[C domain.Command[D], D any]() application.CommandBus[C, D] {
	return &localCommandBus[C, D]{
		handlers: make(map[string]application.CommandHandler[C, D]),
	}
}

func (bus *localCommandBus[C, D]) RegisterHandler(commandName string, handler application.CommandHandler[C, D]) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.handlers[commandName] = handler
}

func (bus *localCommandBus[C, D]) Dispatch(ctx context.Context, command C) error {
	bus.mu.RLock()
	handler, found := bus.handlers[command.CommandName()]
	bus.mu.RUnlock()

	if !found {
		return fmt.Errorf("no handler registered for command %q", command.CommandName())
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	return handler.Handle(ctx, command)
}
