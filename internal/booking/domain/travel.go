package domain

import "time"

// BusSeat is the seat class sold for a travel.
type BusSeat string

const (
	BusSeatConventional BusSeat = "Convencional"
	BusSeatSemiSleeper  BusSeat = "Semi-leito"
	BusSeatSleeper      BusSeat = "Leito"
	BusSeatBed          BusSeat = "Cama"
)

// Valid reports whether s is one of the seat classes the company sells.
func (s BusSeat) Valid() bool {
	switch s {
	case BusSeatConventional, BusSeatSemiSleeper, BusSeatSleeper, BusSeatBed:
		return true
	}
	return false
}

// Travel is a scheduled trip between two bus stations. ID is zero until the
// travel is persisted.
type Travel struct {
	ID                 int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	DepartureDate      time.Time `json:"departureDate" gorm:"index"`
	BusSeat            BusSeat   `json:"busSeat"`
	Price              float64   `json:"price"`
	DepartureStationID int64     `json:"departureStationId" gorm:"index"`
	ArrivalStationID   int64     `json:"arrivalStationId" gorm:"index"`
}

// NewTravel builds an unpersisted travel, enforcing the entity invariants.
// Departure and arrival being different stations is a scheduling rule checked
// by the use-case, not here.
func NewTravel(departureDate time.Time, busSeat BusSeat, price float64, departureStationID, arrivalStationID int64) (*Travel, error) {
	if !busSeat.Valid() {
		return nil, NewBadRequestError("invalid bus seat class")
	}
	if price <= 0 {
		return nil, NewBadRequestError("price must be greater than zero")
	}
	if departureStationID <= 0 || arrivalStationID <= 0 {
		return nil, NewBadRequestError("station ids must be positive")
	}
	return &Travel{
		DepartureDate:      departureDate,
		BusSeat:            busSeat,
		Price:              price,
		DepartureStationID: departureStationID,
		ArrivalStationID:   arrivalStationID,
	}, nil
}

// RestoreTravel rehydrates a persisted travel without re-validating it.
func RestoreTravel(id int64, departureDate time.Time, busSeat BusSeat, price float64, departureStationID, arrivalStationID int64) *Travel {
	return &Travel{
		ID:                 id,
		DepartureDate:      departureDate,
		BusSeat:            busSeat,
		Price:              price,
		DepartureStationID: departureStationID,
		ArrivalStationID:   arrivalStationID,
	}
}
