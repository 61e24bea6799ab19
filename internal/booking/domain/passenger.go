package domain

import (
	"math"
	"time"
)

// Passenger is a booked seat on a travel. Name and RG come from the user who
// booked it. ID is zero until persisted.
type Passenger struct {
	ID       int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string `json:"name"`
	RG       string `json:"rg"`
	Seat     int    `json:"seat"`
	TravelID int64  `json:"travelId" gorm:"index"`
}

// NewPassenger builds an unpersisted passenger.
func NewPassenger(name, rg string, seat int, travelID int64) (*Passenger, error) {
	if name == "" {
		return nil, NewBadRequestError("passenger name must not be empty")
	}
	if seat <= 0 {
		return nil, NewBadRequestError("seat number must be positive")
	}
	if travelID <= 0 {
		return nil, NewBadRequestError("travel id must be positive")
	}
	return &Passenger{
		Name:     name,
		RG:       rg,
		Seat:     seat,
		TravelID: travelID,
	}, nil
}

// RestorePassenger rehydrates a persisted passenger.
func RestorePassenger(id int64, name, rg string, seat int, travelID int64) *Passenger {
	return &Passenger{
		ID:       id,
		Name:     name,
		RG:       rg,
		Seat:     seat,
		TravelID: travelID,
	}
}

// HoursUntil returns the distance in hours between the departure instant and
// now. The result is an absolute value, so departures in the past also yield
// a positive gap.
func (p *Passenger) HoursUntil(departure, now time.Time) float64 {
	return math.Abs(departure.Sub(now).Hours())
}
