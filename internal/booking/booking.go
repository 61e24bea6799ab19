// Package booking wires the travel-booking slice: use-cases over the
// repository ports, bus handlers, and the HTTP surface.
package booking

import (
	"github.com/go-chi/chi/v5"

	"github.com/viajabus/booking/internal/booking/application"
	"github.com/viajabus/booking/internal/booking/domain"
	"github.com/viajabus/booking/internal/booking/infrastructure"
	pkgApp "github.com/viajabus/booking/pkg/application"
	pkgDomain "github.com/viajabus/booking/pkg/domain"
)

// Deps carries everything the slice needs. The buses are optional: a nil bus
// simply leaves that integration unregistered.
type Deps struct {
	Travels    domain.TravelRepository
	Passengers domain.PassengerRepository
	Buyers     domain.BuyerRepository
	Stations   domain.BusStationRepository
	Users      domain.UserRepository

	Cities application.CityLookup
	Hasher application.PasswordHasher

	Events           application.EventBus
	BookSeatBus      pkgApp.CommandBus[pkgDomain.Command[application.BookSeatInput], application.BookSeatInput]
	CancelBookingBus pkgApp.CommandBus[pkgDomain.Command[application.CancelBookingInput], application.CancelBookingInput]
	SearchTravelsBus pkgApp.QueryBus[pkgDomain.Query[application.FindTravelsByDepartureDateInput], application.FindTravelsByDepartureDateInput, []*domain.Travel]

	Logger pkgApp.AppLogger
}

// Slice is the assembled booking module.
type Slice struct {
	UseCases    infrastructure.UseCases
	httpHandler *infrastructure.BookingHTTPHandler
}

func NewSlice(deps Deps) *Slice {
	useCases := infrastructure.UseCases{
		FindTravels:                  application.NewFindTravels(deps.Travels, deps.Logger),
		FindTravelByID:               application.NewFindTravelByID(deps.Travels, deps.Logger),
		FindTravelsByOriginCity:      application.NewFindTravelsByOriginCity(deps.Travels, deps.Logger),
		FindTravelsByDestinationCity: application.NewFindTravelsByDestinationCity(deps.Travels, deps.Logger),
		FindTravelsByDepartureDate:   application.NewFindTravelsByDepartureDate(deps.Travels, deps.Logger),
		CreateTravel:                 application.NewCreateTravel(deps.Travels, deps.Stations, deps.Events, deps.Logger),
		DeleteTravel:                 application.NewDeleteTravel(deps.Travels, deps.Events, deps.Logger),
		BookSeat:                     application.NewBookSeat(deps.Passengers, deps.Buyers, deps.Travels, deps.Users, deps.Events, deps.Logger),
		CancelBooking:                application.NewCancelBooking(deps.Passengers, deps.Travels, deps.Events, deps.Logger),
		CreateBusStation:             application.NewCreateBusStation(deps.Stations, deps.Cities, deps.Logger),
		FindBusStations:              application.NewFindBusStations(deps.Stations, deps.Logger),
		CreateUser:                   application.NewCreateUser(deps.Users, deps.Hasher, deps.Logger),
	}

	if deps.BookSeatBus != nil {
		deps.BookSeatBus.RegisterHandler(application.CommandBookSeat,
			application.NewBookSeatHandler(useCases.BookSeat, deps.Logger))
	}
	if deps.CancelBookingBus != nil {
		deps.CancelBookingBus.RegisterHandler(application.CommandCancelBooking,
			application.NewCancelBookingHandler(useCases.CancelBooking, deps.Logger))
	}
	if deps.SearchTravelsBus != nil {
		deps.SearchTravelsBus.RegisterHandler(application.QuerySearchTravels,
			application.NewSearchTravelsHandler(useCases.FindTravelsByDepartureDate, deps.Logger))
	}
	if deps.Events != nil {
		eventHandler := application.NewLoggingEventHandler(deps.Logger)
		for _, eventName := range []string{
			application.EventTravelCreated,
			application.EventTravelDeleted,
			application.EventSeatBooked,
			application.EventBookingCancelled,
		} {
			deps.Events.RegisterHandler(eventName, eventHandler)
		}
	}

	return &Slice{
		UseCases:    useCases,
		httpHandler: infrastructure.NewBookingHTTPHandler(useCases, deps.Logger),
	}
}

func (s *Slice) RegisterRoutes(router chi.Router) {
	s.httpHandler.RegisterRoutes(router)
}
