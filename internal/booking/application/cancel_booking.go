package application

import (
	"context"
	"fmt"
	"time"

	"github.com/viajabus/booking/internal/booking/domain"
	pkgApp "github.com/viajabus/booking/pkg/application"
)

// cancellationWindow is the minimum gap between now and departure for a
// booking to still be cancellable.
const cancellationWindow = 1.0 // hours

// CancelBookingInput identifies the passenger whose booking is cancelled.
type CancelBookingInput struct {
	PassengerID int64 `json:"passengerId"`
}

// CancelBooking removes a passenger's booking while the departure is more
// than one hour away. The gap is measured as an absolute difference, so a
// travel already in the past counts as far away and stays cancellable.
type CancelBooking struct {
	passengers domain.PassengerRepository
	travels    domain.TravelRepository
	events     EventBus
	logger     pkgApp.AppLogger
	now        func() time.Time
}

func NewCancelBooking(
	passengers domain.PassengerRepository,
	travels domain.TravelRepository,
	events EventBus,
	logger pkgApp.AppLogger,
) *CancelBooking {
	return &CancelBooking{
		passengers: passengers,
		travels:    travels,
		events:     events,
		logger:     logger,
		now:        time.Now,
	}
}

// WithClock overrides the time source. Tests use it to pin "now".
func (uc *CancelBooking) WithClock(now func() time.Time) *CancelBooking {
	uc.now = now
	return uc
}

func (uc *CancelBooking) Execute(ctx context.Context, input CancelBookingInput) (*domain.Passenger, error) {
	passenger, err := uc.passengers.FindByID(ctx, input.PassengerID)
	if err != nil {
		return nil, fmt.Errorf("loading passenger: %w", err)
	}
	if passenger == nil {
		return nil, domain.NewNotFoundError("passenger not found")
	}

	travel, err := uc.travels.FindByID(ctx, passenger.TravelID)
	if err != nil {
		return nil, fmt.Errorf("loading travel: %w", err)
	}
	if travel == nil {
		return nil, domain.NewNotFoundError("travel not found")
	}

	if passenger.HoursUntil(travel.DepartureDate, uc.now()) <= cancellationWindow {
		return nil, domain.NewBadRequestError("cancellation window closed: bookings can only be cancelled more than 1 hour before boarding")
	}

	deleted, err := uc.passengers.Delete(ctx, passenger.ID)
	if err != nil {
		return nil, fmt.Errorf("deleting passenger: %w", err)
	}

	uc.logger.Info(ctx, "booking cancelled", map[string]interface{}{
		"passenger_id": deleted.ID,
		"travel_id":    deleted.TravelID,
	})
	publish(ctx, uc.events, uc.logger, NewBookingCancelledEvent(
		fmt.Sprintf("booking %d on travel %d cancelled", deleted.ID, deleted.TravelID),
	))

	return deleted, nil
}
