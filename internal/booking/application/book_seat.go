package application

import (
	"context"
	"fmt"

	"github.com/viajabus/booking/internal/booking/domain"
	pkgApp "github.com/viajabus/booking/pkg/application"
)

// BookSeatInput carries the data to book a seat on a travel.
type BookSeatInput struct {
	Seat     int    `json:"seat"`
	Payment  string `json:"payment"`
	TravelID int64  `json:"travelId"`
	UserID   int64  `json:"userId"`
}

// BookSeat books a seat: it records who paid (buyer) and who rides
// (passenger, with name and document taken from the user). The two writes are
// not atomic; a failure between them leaves a buyer without a passenger.
// Seat numbers are not checked for uniqueness per travel.
type BookSeat struct {
	passengers domain.PassengerRepository
	buyers     domain.BuyerRepository
	travels    domain.TravelRepository
	users      domain.UserRepository
	events     EventBus
	logger     pkgApp.AppLogger
}

func NewBookSeat(
	passengers domain.PassengerRepository,
	buyers domain.BuyerRepository,
	travels domain.TravelRepository,
	users domain.UserRepository,
	events EventBus,
	logger pkgApp.AppLogger,
) *BookSeat {
	return &BookSeat{
		passengers: passengers,
		buyers:     buyers,
		travels:    travels,
		users:      users,
		events:     events,
		logger:     logger,
	}
}

// Execute fails with not-found when the travel or the user does not exist.
func (uc *BookSeat) Execute(ctx context.Context, input BookSeatInput) (*domain.Passenger, error) {
	travel, err := uc.travels.FindByID(ctx, input.TravelID)
	if err != nil {
		return nil, fmt.Errorf("loading travel: %w", err)
	}
	if travel == nil {
		return nil, domain.NewNotFoundError("travel not found")
	}

	user, err := uc.users.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("loading user: %w", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError("user not found")
	}

	buyer, err := domain.NewBuyer(input.Payment, user.ID, travel.ID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.buyers.Create(ctx, buyer); err != nil {
		return nil, fmt.Errorf("persisting buyer: %w", err)
	}

	passenger, err := domain.NewPassenger(user.Name, user.CPF, input.Seat, travel.ID)
	if err != nil {
		return nil, err
	}
	created, err := uc.passengers.Create(ctx, passenger)
	if err != nil {
		return nil, fmt.Errorf("persisting passenger: %w", err)
	}

	uc.logger.Info(ctx, "seat booked", map[string]interface{}{
		"passenger_id": created.ID,
		"travel_id":    travel.ID,
		"seat":         created.Seat,
	})
	publish(ctx, uc.events, uc.logger, NewSeatBookedEvent(
		fmt.Sprintf("seat %d booked on travel %d for %s", created.Seat, travel.ID, created.Name),
	))

	return created, nil
}
