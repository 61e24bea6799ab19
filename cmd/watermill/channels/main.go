package main

import (
	"context"
	"time"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/viajabus/booking/internal/booking/application"
	"github.com/viajabus/booking/internal/booking/domain"
	"github.com/viajabus/booking/internal/booking/infrastructure"
	pkgApp "github.com/viajabus/booking/pkg/application"
	pkgDomain "github.com/viajabus/booking/pkg/domain"
	watermillLogAdapter "github.com/viajabus/booking/pkg/infrastructure/watermill/adapter"
	busAdapter "github.com/viajabus/booking/pkg/infrastructure/watermillbus/adapter"
	zapAdapter "github.com/viajabus/booking/pkg/infrastructure/zaplogger/adapter"
)

// Runs the booking flow end to end over the in-memory gochannel transport:
// seed stations, a user and a travel, then book a seat through the command
// bus, search travels through the query bus and cancel through the command
// bus again.
func main() {
	appLogger, err := zapAdapter.NewZapAppLogger()
	if err != nil {
		panic(err)
	}

	logger := watermillLogAdapter.NewWatermillLoggerAdapter(appLogger)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, logger)

	travels := infrastructure.NewMemoryTravelRepository()
	passengers := infrastructure.NewMemoryPassengerRepository()
	buyers := infrastructure.NewMemoryBuyerRepository()
	stations := infrastructure.NewMemoryBusStationRepository()
	users := infrastructure.NewMemoryUserRepository()

	eventBus := busAdapter.NewWatermillEventBus[pkgDomain.Event[string], string](pubSub, pubSub, appLogger)
	commandBus := busAdapter.NewWatermillCommandBus[pkgDomain.Command[application.BookSeatInput], application.BookSeatInput](pubSub, pubSub, appLogger)
	cancelBus := busAdapter.NewWatermillCommandBus[pkgDomain.Command[application.CancelBookingInput], application.CancelBookingInput](pubSub, pubSub, appLogger)
	queryBus := busAdapter.NewWatermillQueryBus[pkgDomain.Query[application.FindTravelsByDepartureDateInput], application.FindTravelsByDepartureDateInput, []*domain.Travel](pubSub, pubSub, appLogger)

	bookSeat := application.NewBookSeat(passengers, buyers, travels, users, eventBus, appLogger)
	cancelBooking := application.NewCancelBooking(passengers, travels, eventBus, appLogger)
	searchTravels := application.NewFindTravelsByDepartureDate(travels, appLogger)
	createTravel := application.NewCreateTravel(travels, stations, eventBus, appLogger)
	createUser := application.NewCreateUser(users, infrastructure.NewBcryptHasher(), appLogger)

	commandBus.RegisterHandler(application.CommandBookSeat, application.NewBookSeatHandler(bookSeat, appLogger))
	cancelBus.RegisterHandler(application.CommandCancelBooking, application.NewCancelBookingHandler(cancelBooking, appLogger))
	queryBus.RegisterHandler(application.QuerySearchTravels, application.NewSearchTravelsHandler(searchTravels, appLogger))

	eventHandler := application.NewLoggingEventHandler(appLogger)
	for _, eventName := range []string{
		application.EventTravelCreated,
		application.EventSeatBooked,
		application.EventBookingCancelled,
	} {
		eventBus.RegisterHandler(eventName, eventHandler)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	origin, arrival := seedStations(ctx, stations, travels, appLogger)

	user, err := createUser.Execute(ctx, application.CreateUserInput{
		Name:      "Matheus",
		Email:     "matheus@gmail.com",
		Password:  "12345678",
		CPF:       "12345678910",
		Telephone: "11977778888",
	})
	if err != nil {
		appLogger.Error(ctx, "error creating user", map[string]interface{}{"error": err})
		return
	}

	departure := time.Now().Add(48 * time.Hour).Truncate(time.Second)
	travel, err := createTravel.Execute(ctx, application.CreateTravelInput{
		DepartureDate:      departure,
		BusSeat:            domain.BusSeatSleeper,
		Price:              120,
		DepartureStationID: origin.ID,
		ArrivalStationID:   arrival.ID,
	})
	if err != nil {
		appLogger.Error(ctx, "error creating travel", map[string]interface{}{"error": err})
		return
	}

	command := application.NewBookSeatCommand(application.BookSeatInput{
		Seat:     1,
		Payment:  "Cartão",
		TravelID: travel.ID,
		UserID:   user.ID,
	})
	if err := commandBus.Dispatch(ctx, command); err != nil {
		appLogger.Error(ctx, "error dispatching booking command", map[string]interface{}{"error": err})
		return
	}

	// Give the subscriber side a moment to consume.
	time.Sleep(time.Second)

	booked, _ := passengers.FindAll(ctx)
	appLogger.Info(ctx, "passengers after booking", map[string]interface{}{"count": len(booked)})

	query := application.NewSearchTravelsQuery(application.FindTravelsByDepartureDateInput{
		Date: departure,
		City: origin.City,
	})
	found, err := queryBus.Dispatch(ctx, query)
	if err != nil {
		appLogger.Error(ctx, "error dispatching travel search", map[string]interface{}{"error": err})
		return
	}
	appLogger.Info(ctx, "travels found", map[string]interface{}{"count": len(found)})

	if len(booked) > 0 {
		cancelCommand := application.NewCancelBookingCommand(application.CancelBookingInput{
			PassengerID: booked[0].ID,
		})
		if err := cancelBus.Dispatch(ctx, cancelCommand); err != nil {
			appLogger.Error(ctx, "error dispatching cancellation", map[string]interface{}{"error": err})
			return
		}
		time.Sleep(time.Second)

		remaining, _ := passengers.FindAll(ctx)
		appLogger.Info(ctx, "passengers after cancellation", map[string]interface{}{"count": len(remaining)})
	}
}

func seedStations(
	ctx context.Context,
	stations *infrastructure.MemoryBusStationRepository,
	travels *infrastructure.MemoryTravelRepository,
	logger pkgApp.AppLogger,
) (*domain.BusStation, *domain.BusStation) {
	origin, err := domain.NewBusStation("Rodoviária do Tiête", "São Paulo", "SP")
	if err != nil {
		logger.Error(ctx, "error building origin station", map[string]interface{}{"error": err})
		panic(err)
	}
	arrival, err := domain.NewBusStation("Terminal de Vila Velha", "Vila Velha", "ES")
	if err != nil {
		logger.Error(ctx, "error building arrival station", map[string]interface{}{"error": err})
		panic(err)
	}

	origin, _ = stations.Create(ctx, origin)
	arrival, _ = stations.Create(ctx, arrival)
	_ = travels.AddBusStations(ctx, []*domain.BusStation{origin, arrival})
	return origin, arrival
}
