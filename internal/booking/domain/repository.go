package domain

import (
	"context"
	"time"
)

// Repository contracts. FindByID returns (nil, nil) when the record is
// absent; callers decide whether that is an error. Create fills the entity ID
// and returns the persisted entity. Delete returns the removed entity or a
// not-found domain error.

// TravelRepository persists travels. The city-based finders join travels
// against the station directory; implementations that keep travels and
// stations apart (such as the in-memory one) are seeded through
// AddBusStations, while SQL-backed ones join directly and may ignore it.
type TravelRepository interface {
	FindAll(ctx context.Context) ([]*Travel, error)
	FindByID(ctx context.Context, id int64) (*Travel, error)
	Create(ctx context.Context, travel *Travel) (*Travel, error)
	Delete(ctx context.Context, id int64) (*Travel, error)
	FindByOriginCity(ctx context.Context, city string) ([]*Travel, error)
	FindByDestinationCity(ctx context.Context, city string) ([]*Travel, error)
	FindByDepartureDateAndCity(ctx context.Context, date time.Time, city string) ([]*Travel, error)
	AddBusStations(ctx context.Context, stations []*BusStation) error
}

// PassengerRepository persists passengers.
type PassengerRepository interface {
	FindAll(ctx context.Context) ([]*Passenger, error)
	FindByID(ctx context.Context, id int64) (*Passenger, error)
	Create(ctx context.Context, passenger *Passenger) (*Passenger, error)
	Delete(ctx context.Context, id int64) (*Passenger, error)
}

// BuyerRepository persists buyers.
type BuyerRepository interface {
	FindAll(ctx context.Context) ([]*Buyer, error)
	FindByID(ctx context.Context, id int64) (*Buyer, error)
	Create(ctx context.Context, buyer *Buyer) (*Buyer, error)
}

// BusStationRepository persists bus stations.
type BusStationRepository interface {
	FindAll(ctx context.Context) ([]*BusStation, error)
	FindByID(ctx context.Context, id int64) (*BusStation, error)
	Create(ctx context.Context, station *BusStation) (*BusStation, error)
}

// UserRepository persists users.
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByCPF(ctx context.Context, cpf string) (*User, error)
	Create(ctx context.Context, user *User) (*User, error)
}
