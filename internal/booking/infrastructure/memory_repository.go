package infrastructure

import (
	"context"
	"sync"
	"time"

	"github.com/viajabus/booking/internal/booking/domain"
)

// In-memory repository variants. They back the unit tests and the bus demos;
// ids are sequential per repository, mirroring a serial primary key.

// MemoryTravelRepository keeps travels in a map. City searches join against
// the station directory seeded through AddBusStations.
type MemoryTravelRepository struct {
	mu       sync.RWMutex
	nextID   int64
	travels  map[int64]domain.Travel
	stations map[int64]domain.BusStation
}

func NewMemoryTravelRepository() *MemoryTravelRepository {
	return &MemoryTravelRepository{
		travels:  make(map[int64]domain.Travel),
		stations: make(map[int64]domain.BusStation),
	}
}

func (r *MemoryTravelRepository) FindAll(ctx context.Context) ([]*domain.Travel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	travels := make([]*domain.Travel, 0, len(r.travels))
	for _, travel := range r.travels {
		t := travel
		travels = append(travels, &t)
	}
	return travels, nil
}

func (r *MemoryTravelRepository) FindByID(ctx context.Context, id int64) (*domain.Travel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	travel, exists := r.travels[id]
	if !exists {
		return nil, nil
	}
	return &travel, nil
}

func (r *MemoryTravelRepository) Create(ctx context.Context, travel *domain.Travel) (*domain.Travel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	created := *travel
	created.ID = r.nextID
	r.travels[created.ID] = created
	return &created, nil
}

func (r *MemoryTravelRepository) Delete(ctx context.Context, id int64) (*domain.Travel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	travel, exists := r.travels[id]
	if !exists {
		return nil, domain.NewNotFoundError("travel not found")
	}
	delete(r.travels, id)
	return &travel, nil
}

func (r *MemoryTravelRepository) FindByOriginCity(ctx context.Context, city string) ([]*domain.Travel, error) {
	return r.findByCity(city, func(t domain.Travel) int64 { return t.DepartureStationID }), nil
}

func (r *MemoryTravelRepository) FindByDestinationCity(ctx context.Context, city string) ([]*domain.Travel, error) {
	return r.findByCity(city, func(t domain.Travel) int64 { return t.ArrivalStationID }), nil
}

func (r *MemoryTravelRepository) FindByDepartureDateAndCity(ctx context.Context, date time.Time, city string) ([]*domain.Travel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	travels := make([]*domain.Travel, 0)
	for _, travel := range r.travels {
		if !travel.DepartureDate.Equal(date) {
			continue
		}
		station, exists := r.stations[travel.DepartureStationID]
		if !exists || station.City != city {
			continue
		}
		t := travel
		travels = append(travels, &t)
	}
	return travels, nil
}

func (r *MemoryTravelRepository) AddBusStations(ctx context.Context, stations []*domain.BusStation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, station := range stations {
		r.stations[station.ID] = *station
	}
	return nil
}

func (r *MemoryTravelRepository) findByCity(city string, stationID func(domain.Travel) int64) []*domain.Travel {
	r.mu.RLock()
	defer r.mu.RUnlock()

	travels := make([]*domain.Travel, 0)
	for _, travel := range r.travels {
		station, exists := r.stations[stationID(travel)]
		if !exists || station.City != city {
			continue
		}
		t := travel
		travels = append(travels, &t)
	}
	return travels
}

// MemoryPassengerRepository keeps passengers in a map.
type MemoryPassengerRepository struct {
	mu         sync.RWMutex
	nextID     int64
	passengers map[int64]domain.Passenger
}

func NewMemoryPassengerRepository() *MemoryPassengerRepository {
	return &MemoryPassengerRepository{passengers: make(map[int64]domain.Passenger)}
}

func (r *MemoryPassengerRepository) FindAll(ctx context.Context) ([]*domain.Passenger, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	passengers := make([]*domain.Passenger, 0, len(r.passengers))
	for _, passenger := range r.passengers {
		p := passenger
		passengers = append(passengers, &p)
	}
	return passengers, nil
}

func (r *MemoryPassengerRepository) FindByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	passenger, exists := r.passengers[id]
	if !exists {
		return nil, nil
	}
	return &passenger, nil
}

func (r *MemoryPassengerRepository) Create(ctx context.Context, passenger *domain.Passenger) (*domain.Passenger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	created := *passenger
	created.ID = r.nextID
	r.passengers[created.ID] = created
	return &created, nil
}

func (r *MemoryPassengerRepository) Delete(ctx context.Context, id int64) (*domain.Passenger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	passenger, exists := r.passengers[id]
	if !exists {
		return nil, domain.NewNotFoundError("passenger not found")
	}
	delete(r.passengers, id)
	return &passenger, nil
}

// MemoryBuyerRepository keeps buyers in a map.
type MemoryBuyerRepository struct {
	mu     sync.RWMutex
	nextID int64
	buyers map[int64]domain.Buyer
}

func NewMemoryBuyerRepository() *MemoryBuyerRepository {
	return &MemoryBuyerRepository{buyers: make(map[int64]domain.Buyer)}
}

func (r *MemoryBuyerRepository) FindAll(ctx context.Context) ([]*domain.Buyer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	buyers := make([]*domain.Buyer, 0, len(r.buyers))
	for _, buyer := range r.buyers {
		b := buyer
		buyers = append(buyers, &b)
	}
	return buyers, nil
}

func (r *MemoryBuyerRepository) FindByID(ctx context.Context, id int64) (*domain.Buyer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	buyer, exists := r.buyers[id]
	if !exists {
		return nil, nil
	}
	return &buyer, nil
}

func (r *MemoryBuyerRepository) Create(ctx context.Context, buyer *domain.Buyer) (*domain.Buyer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	created := *buyer
	created.ID = r.nextID
	r.buyers[created.ID] = created
	return &created, nil
}

// MemoryBusStationRepository keeps stations in a map.
type MemoryBusStationRepository struct {
	mu       sync.RWMutex
	nextID   int64
	stations map[int64]domain.BusStation
}

func NewMemoryBusStationRepository() *MemoryBusStationRepository {
	return &MemoryBusStationRepository{stations: make(map[int64]domain.BusStation)}
}

func (r *MemoryBusStationRepository) FindAll(ctx context.Context) ([]*domain.BusStation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stations := make([]*domain.BusStation, 0, len(r.stations))
	for _, station := range r.stations {
		s := station
		stations = append(stations, &s)
	}
	return stations, nil
}

func (r *MemoryBusStationRepository) FindByID(ctx context.Context, id int64) (*domain.BusStation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	station, exists := r.stations[id]
	if !exists {
		return nil, nil
	}
	return &station, nil
}

func (r *MemoryBusStationRepository) Create(ctx context.Context, station *domain.BusStation) (*domain.BusStation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	created := *station
	created.ID = r.nextID
	r.stations[created.ID] = created
	return &created, nil
}

// MemoryUserRepository keeps users in a map.
type MemoryUserRepository struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]domain.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[int64]domain.User)}
}

func (r *MemoryUserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[id]
	if !exists {
		return nil, nil
	}
	return &user, nil
}

func (r *MemoryUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findBy(func(u domain.User) bool { return u.Email == email }), nil
}

func (r *MemoryUserRepository) FindByCPF(ctx context.Context, cpf string) (*domain.User, error) {
	return r.findBy(func(u domain.User) bool { return u.CPF == cpf }), nil
}

func (r *MemoryUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	created := *user
	created.ID = r.nextID
	r.users[created.ID] = created
	return &created, nil
}

func (r *MemoryUserRepository) findBy(match func(domain.User) bool) *domain.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if match(user) {
			u := user
			return &u
		}
	}
	return nil
}
