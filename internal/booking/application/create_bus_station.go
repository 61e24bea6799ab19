package application

import (
	"context"
	"fmt"

	"github.com/viajabus/booking/internal/booking/domain"
	pkgApp "github.com/viajabus/booking/pkg/application"
)

// CreateBusStationInput carries the data to register a bus station.
type CreateBusStationInput struct {
	Name string `json:"name"`
	City string `json:"city"`
	UF   string `json:"uf"`
}

// CreateBusStation registers a station after confirming its city exists in
// the external city directory.
type CreateBusStation struct {
	stations domain.BusStationRepository
	cities   CityLookup
	logger   pkgApp.AppLogger
}

func NewCreateBusStation(stations domain.BusStationRepository, cities CityLookup, logger pkgApp.AppLogger) *CreateBusStation {
	return &CreateBusStation{stations: stations, cities: cities, logger: logger}
}

func (uc *CreateBusStation) Execute(ctx context.Context, input CreateBusStationInput) (*domain.BusStation, error) {
	exists, err := uc.cities.Exists(ctx, input.City)
	if err != nil {
		return nil, fmt.Errorf("looking up city: %w", err)
	}
	if !exists {
		return nil, domain.NewBadRequestError("city not recognized")
	}

	station, err := domain.NewBusStation(input.Name, input.City, input.UF)
	if err != nil {
		return nil, err
	}

	created, err := uc.stations.Create(ctx, station)
	if err != nil {
		return nil, fmt.Errorf("persisting bus station: %w", err)
	}

	uc.logger.Info(ctx, "bus station created", map[string]interface{}{
		"station_id": created.ID,
		"city":       created.City,
	})
	return created, nil
}

// FindBusStations lists every registered station.
type FindBusStations struct {
	stations domain.BusStationRepository
	logger   pkgApp.AppLogger
}

func NewFindBusStations(stations domain.BusStationRepository, logger pkgApp.AppLogger) *FindBusStations {
	return &FindBusStations{stations: stations, logger: logger}
}

func (uc *FindBusStations) Execute(ctx context.Context) ([]*domain.BusStation, error) {
	stations, err := uc.stations.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing bus stations: %w", err)
	}
	return stations, nil
}
