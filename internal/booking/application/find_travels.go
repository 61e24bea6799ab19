package application

import (
	"context"
	"fmt"
	"time"

	"github.com/viajabus/booking/internal/booking/domain"
	pkgApp "github.com/viajabus/booking/pkg/application"
)

// FindTravels lists every scheduled travel.
type FindTravels struct {
	travels domain.TravelRepository
	logger  pkgApp.AppLogger
}

func NewFindTravels(travels domain.TravelRepository, logger pkgApp.AppLogger) *FindTravels {
	return &FindTravels{travels: travels, logger: logger}
}

func (uc *FindTravels) Execute(ctx context.Context) ([]*domain.Travel, error) {
	travels, err := uc.travels.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing travels: %w", err)
	}
	return travels, nil
}

// FindTravelByIDInput identifies the travel to load.
type FindTravelByIDInput struct {
	ID int64 `json:"id"`
}

// FindTravelByID loads a single travel, failing with not-found when absent.
type FindTravelByID struct {
	travels domain.TravelRepository
	logger  pkgApp.AppLogger
}

func NewFindTravelByID(travels domain.TravelRepository, logger pkgApp.AppLogger) *FindTravelByID {
	return &FindTravelByID{travels: travels, logger: logger}
}

func (uc *FindTravelByID) Execute(ctx context.Context, input FindTravelByIDInput) (*domain.Travel, error) {
	travel, err := uc.travels.FindByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("loading travel: %w", err)
	}
	if travel == nil {
		return nil, domain.NewNotFoundError("travel not found")
	}
	return travel, nil
}

// FindTravelsByCityInput carries the city filter for origin/destination searches.
type FindTravelsByCityInput struct {
	City string `json:"city"`
}

// FindTravelsByOriginCity lists travels departing from a city. An unknown
// city yields an empty list, not an error.
type FindTravelsByOriginCity struct {
	travels domain.TravelRepository
	logger  pkgApp.AppLogger
}

func NewFindTravelsByOriginCity(travels domain.TravelRepository, logger pkgApp.AppLogger) *FindTravelsByOriginCity {
	return &FindTravelsByOriginCity{travels: travels, logger: logger}
}

func (uc *FindTravelsByOriginCity) Execute(ctx context.Context, input FindTravelsByCityInput) ([]*domain.Travel, error) {
	travels, err := uc.travels.FindByOriginCity(ctx, input.City)
	if err != nil {
		return nil, fmt.Errorf("listing travels by origin city: %w", err)
	}
	return travels, nil
}

// FindTravelsByDestinationCity lists travels arriving at a city.
type FindTravelsByDestinationCity struct {
	travels domain.TravelRepository
	logger  pkgApp.AppLogger
}

func NewFindTravelsByDestinationCity(travels domain.TravelRepository, logger pkgApp.AppLogger) *FindTravelsByDestinationCity {
	return &FindTravelsByDestinationCity{travels: travels, logger: logger}
}

func (uc *FindTravelsByDestinationCity) Execute(ctx context.Context, input FindTravelsByCityInput) ([]*domain.Travel, error) {
	travels, err := uc.travels.FindByDestinationCity(ctx, input.City)
	if err != nil {
		return nil, fmt.Errorf("listing travels by destination city: %w", err)
	}
	return travels, nil
}

// FindTravelsByDepartureDateInput filters by exact departure instant and
// departure city.
type FindTravelsByDepartureDateInput struct {
	Date time.Time `json:"date"`
	City string    `json:"city"`
}

// FindTravelsByDepartureDate lists travels leaving a city at an exact
// departure instant. Nothing matching yields an empty list.
type FindTravelsByDepartureDate struct {
	travels domain.TravelRepository
	logger  pkgApp.AppLogger
}

func NewFindTravelsByDepartureDate(travels domain.TravelRepository, logger pkgApp.AppLogger) *FindTravelsByDepartureDate {
	return &FindTravelsByDepartureDate{travels: travels, logger: logger}
}

func (uc *FindTravelsByDepartureDate) Execute(ctx context.Context, input FindTravelsByDepartureDateInput) ([]*domain.Travel, error) {
	travels, err := uc.travels.FindByDepartureDateAndCity(ctx, input.Date, input.City)
	if err != nil {
		return nil, fmt.Errorf("listing travels by departure date: %w", err)
	}
	return travels, nil
}
