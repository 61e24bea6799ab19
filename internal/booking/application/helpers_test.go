package application_test

import (
	"context"
	"sync"
	"time"

	"github.com/viajabus/booking/internal/booking/application"
	"github.com/viajabus/booking/internal/booking/domain"
	"github.com/viajabus/booking/internal/booking/infrastructure"
	pkgApp "github.com/viajabus/booking/pkg/application"
	pkgDomain "github.com/viajabus/booking/pkg/domain"
	zapAdapter "github.com/viajabus/booking/pkg/infrastructure/zaplogger/adapter"
)

var testLogger = zapAdapter.NewNopAppLogger()

// stubCityLookup answers from a fixed set of known cities.
type stubCityLookup struct {
	known map[string]bool
}

func newStubCityLookup(cities ...string) *stubCityLookup {
	known := make(map[string]bool, len(cities))
	for _, city := range cities {
		known[city] = true
	}
	return &stubCityLookup{known: known}
}

func (l *stubCityLookup) Exists(ctx context.Context, city string) (bool, error) {
	return l.known[city], nil
}

// stubHasher marks the input instead of hashing it, so tests can see that the
// plain text never reaches the entity.
type stubHasher struct{}

func (stubHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

func (stubHasher) Compare(plain, hash string) bool { return "hashed:"+plain == hash }

// recordingEventBus captures published event names.
type recordingEventBus struct {
	mu     sync.Mutex
	events []string
}

func (b *recordingEventBus) RegisterHandler(eventName string, handler pkgApp.EventHandler[pkgDomain.Event[string], string]) {
}

func (b *recordingEventBus) Publish(ctx context.Context, event pkgDomain.Event[string]) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event.EventName())
	return nil
}

func (b *recordingEventBus) published() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.events...)
}

// fixture bundles the in-memory repositories every use-case test runs against.
type fixture struct {
	travels    *infrastructure.MemoryTravelRepository
	passengers *infrastructure.MemoryPassengerRepository
	buyers     *infrastructure.MemoryBuyerRepository
	stations   *infrastructure.MemoryBusStationRepository
	users      *infrastructure.MemoryUserRepository
	events     *recordingEventBus
}

func newFixture() *fixture {
	return &fixture{
		travels:    infrastructure.NewMemoryTravelRepository(),
		passengers: infrastructure.NewMemoryPassengerRepository(),
		buyers:     infrastructure.NewMemoryBuyerRepository(),
		stations:   infrastructure.NewMemoryBusStationRepository(),
		users:      infrastructure.NewMemoryUserRepository(),
		events:     &recordingEventBus{},
	}
}

// seedStations persists two stations and registers them in the travel
// repository's station directory.
func (f *fixture) seedStations(ctx context.Context) (origin, arrival *domain.BusStation) {
	origin, _ = domain.NewBusStation("Rodoviária do Tiête", "São Paulo", "SP")
	arrival, _ = domain.NewBusStation("Terminal de Vila Velha", "Vila Velha", "ES")
	origin, _ = f.stations.Create(ctx, origin)
	arrival, _ = f.stations.Create(ctx, arrival)
	_ = f.travels.AddBusStations(ctx, []*domain.BusStation{origin, arrival})
	return origin, arrival
}

// seedTravel persists a travel between the two stations.
func (f *fixture) seedTravel(ctx context.Context, departure time.Time, seat domain.BusSeat, originID, arrivalID int64) *domain.Travel {
	travel, _ := domain.NewTravel(departure, seat, 120, originID, arrivalID)
	travel, _ = f.travels.Create(ctx, travel)
	return travel
}

// seedUser persists a user with an already hashed password.
func (f *fixture) seedUser(ctx context.Context) *domain.User {
	user, _ := domain.NewUser("Matheus", "matheus@gmail.com", "hashed:12345678", "12345678910", "11977778888")
	user, _ = f.users.Create(ctx, user)
	return user
}

func (f *fixture) createTravel() *application.CreateTravel {
	return application.NewCreateTravel(f.travels, f.stations, f.events, testLogger)
}

func (f *fixture) bookSeat() *application.BookSeat {
	return application.NewBookSeat(f.passengers, f.buyers, f.travels, f.users, f.events, testLogger)
}

func (f *fixture) cancelBooking() *application.CancelBooking {
	return application.NewCancelBooking(f.passengers, f.travels, f.events, testLogger)
}
