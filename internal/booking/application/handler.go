package application

import (
	"context"

	"github.com/viajabus/booking/internal/booking/domain"
	pkgApp "github.com/viajabus/booking/pkg/application"
	pkgDomain "github.com/viajabus/booking/pkg/domain"
)

// Bus-facing handlers. They delegate to the use-cases so the same business
// rules apply whether a request arrives over HTTP or a message transport.

type bookSeatHandler struct {
	useCase *BookSeat
	logger  pkgApp.AppLogger
}

func NewBookSeatHandler(useCase *BookSeat, logger pkgApp.AppLogger) pkgApp.CommandHandler[pkgDomain.Command[BookSeatInput], BookSeatInput] {
	return &bookSeatHandler{useCase: useCase, logger: logger}
}

func (h *bookSeatHandler) Handle(ctx context.Context, command pkgDomain.Command[BookSeatInput]) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	passenger, err := h.useCase.Execute(ctx, command.Payload())
	if err != nil {
		pkgApp.LogError(ctx, h.logger, "error booking seat", err, map[string]interface{}{
			"command_name": command.CommandName(),
		})
		return err
	}
	h.logger.Info(ctx, "seat booked via command bus", map[string]interface{}{
		"passenger_id": passenger.ID,
	})
	return nil
}

type cancelBookingHandler struct {
	useCase *CancelBooking
	logger  pkgApp.AppLogger
}

func NewCancelBookingHandler(useCase *CancelBooking, logger pkgApp.AppLogger) pkgApp.CommandHandler[pkgDomain.Command[CancelBookingInput], CancelBookingInput] {
	return &cancelBookingHandler{useCase: useCase, logger: logger}
}

func (h *cancelBookingHandler) Handle(ctx context.Context, command pkgDomain.Command[CancelBookingInput]) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	passenger, err := h.useCase.Execute(ctx, command.Payload())
	if err != nil {
		pkgApp.LogError(ctx, h.logger, "error cancelling booking", err, map[string]interface{}{
			"command_name": command.CommandName(),
		})
		return err
	}
	h.logger.Info(ctx, "booking cancelled via command bus", map[string]interface{}{
		"passenger_id": passenger.ID,
	})
	return nil
}

type searchTravelsHandler struct {
	useCase *FindTravelsByDepartureDate
	logger  pkgApp.AppLogger
}

func NewSearchTravelsHandler(
	useCase *FindTravelsByDepartureDate,
	logger pkgApp.AppLogger,
) pkgApp.QueryHandler[pkgDomain.Query[FindTravelsByDepartureDateInput], FindTravelsByDepartureDateInput, []*domain.Travel] {
	return &searchTravelsHandler{useCase: useCase, logger: logger}
}

func (h *searchTravelsHandler) Handle(ctx context.Context, query pkgDomain.Query[FindTravelsByDepartureDateInput]) ([]*domain.Travel, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return h.useCase.Execute(ctx, query.Payload())
}

type loggingEventHandler struct {
	logger pkgApp.AppLogger
}

// NewLoggingEventHandler records every booking event it receives.
func NewLoggingEventHandler(logger pkgApp.AppLogger) pkgApp.EventHandler[pkgDomain.Event[string], string] {
	return &loggingEventHandler{logger: logger}
}

func (h *loggingEventHandler) Handle(ctx context.Context, event pkgDomain.Event[string]) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	h.logger.Info(ctx, "booking event received", map[string]interface{}{
		"event_name": event.EventName(),
		"payload":    event.Payload(),
	})
	return nil
}
