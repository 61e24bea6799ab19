package application

import (
	"context"
	"fmt"
	"time"

	"github.com/viajabus/booking/internal/booking/domain"
	pkgApp "github.com/viajabus/booking/pkg/application"
	pkgDomain "github.com/viajabus/booking/pkg/domain"
)

// CreateTravelInput carries the data to schedule a travel.
type CreateTravelInput struct {
	DepartureDate      time.Time      `json:"departureDate"`
	BusSeat            domain.BusSeat `json:"busSeat"`
	Price              float64        `json:"price"`
	DepartureStationID int64          `json:"departureStationId"`
	ArrivalStationID   int64          `json:"arrivalStationId"`
}

// CreateTravel schedules a travel between two registered bus stations.
type CreateTravel struct {
	travels  domain.TravelRepository
	stations domain.BusStationRepository
	events   EventBus
	logger   pkgApp.AppLogger
}

func NewCreateTravel(
	travels domain.TravelRepository,
	stations domain.BusStationRepository,
	events EventBus,
	logger pkgApp.AppLogger,
) *CreateTravel {
	return &CreateTravel{
		travels:  travels,
		stations: stations,
		events:   events,
		logger:   logger,
	}
}

// Execute fails with a not-found error when either station is unknown and a
// bad-request error when departure and arrival are the same station.
func (uc *CreateTravel) Execute(ctx context.Context, input CreateTravelInput) (*domain.Travel, error) {
	departure, err := uc.stations.FindByID(ctx, input.DepartureStationID)
	if err != nil {
		return nil, fmt.Errorf("loading departure station: %w", err)
	}
	if departure == nil {
		return nil, domain.NewNotFoundError("departure bus station not found")
	}

	arrival, err := uc.stations.FindByID(ctx, input.ArrivalStationID)
	if err != nil {
		return nil, fmt.Errorf("loading arrival station: %w", err)
	}
	if arrival == nil {
		return nil, domain.NewNotFoundError("arrival bus station not found")
	}

	if input.DepartureStationID == input.ArrivalStationID {
		return nil, domain.NewBadRequestError("departure and arrival stations must differ")
	}

	travel, err := domain.NewTravel(
		input.DepartureDate,
		input.BusSeat,
		input.Price,
		input.DepartureStationID,
		input.ArrivalStationID,
	)
	if err != nil {
		return nil, err
	}

	created, err := uc.travels.Create(ctx, travel)
	if err != nil {
		return nil, fmt.Errorf("persisting travel: %w", err)
	}

	uc.logger.Info(ctx, "travel created", map[string]interface{}{
		"travel_id":      created.ID,
		"departure_date": created.DepartureDate,
	})
	publish(ctx, uc.events, uc.logger, NewTravelCreatedEvent(fmt.Sprintf("travel %d scheduled", created.ID)))

	return created, nil
}

// publish sends an event when a bus is wired; event delivery never fails the
// business operation.
func publish(ctx context.Context, events EventBus, logger pkgApp.AppLogger, event pkgDomain.Event[string]) {
	if events == nil {
		return
	}
	if err := events.Publish(ctx, event); err != nil {
		pkgApp.LogError(ctx, logger, "error publishing event", err, map[string]interface{}{
			"event_name": event.EventName(),
		})
	}
}
