package main

import (
	"context"
	"log"
	"time"

	"github.com/viajabus/booking/internal/booking/application"
	"github.com/viajabus/booking/internal/booking/domain"
	"github.com/viajabus/booking/internal/booking/infrastructure"
	"github.com/viajabus/booking/pkg/config"
	pkgDomain "github.com/viajabus/booking/pkg/domain"
	kafkaAdapter "github.com/viajabus/booking/pkg/infrastructure/kafka/adapter"
	watermillLogAdapter "github.com/viajabus/booking/pkg/infrastructure/watermill/adapter"
	busAdapter "github.com/viajabus/booking/pkg/infrastructure/watermillbus/adapter"
	zapAdapter "github.com/viajabus/booking/pkg/infrastructure/zaplogger/adapter"
)

// Runs the booking flow over kafka: a seat is booked through the command bus
// and travels are searched through the query bus. Expects brokers reachable
// at KAFKA_BROKERS (default localhost:9092).
func main() {
	appLogger, err := zapAdapter.NewZapAppLogger()
	if err != nil {
		panic(err)
	}
	logger := watermillLogAdapter.NewWatermillLoggerAdapter(appLogger)

	cfg := config.Load()

	publisher, err := kafkaAdapter.NewPublisher(cfg.KafkaBrokers, logger)
	if err != nil {
		log.Fatalf("failed to create kafka publisher: %v", err)
	}
	defer publisher.Close()

	subscriber, err := kafkaAdapter.NewSubscriber(cfg.KafkaBrokers, "booking_consumer_group", logger)
	if err != nil {
		log.Fatalf("failed to create kafka subscriber: %v", err)
	}
	defer subscriber.Close()

	// Topics must exist before the first publish.
	for _, topic := range []string{
		application.CommandBookSeat,
		application.QuerySearchTravels,
		application.QuerySearchTravels + "_response",
		application.EventSeatBooked,
		application.EventTravelCreated,
	} {
		if err := subscriber.SubscribeInitialize(topic); err != nil {
			log.Fatalf("failed to initialize kafka topic %q: %v", topic, err)
		}
	}

	travels := infrastructure.NewMemoryTravelRepository()
	passengers := infrastructure.NewMemoryPassengerRepository()
	buyers := infrastructure.NewMemoryBuyerRepository()
	stations := infrastructure.NewMemoryBusStationRepository()
	users := infrastructure.NewMemoryUserRepository()

	eventBus := busAdapter.NewWatermillEventBus[pkgDomain.Event[string], string](publisher, subscriber, appLogger)
	commandBus := busAdapter.NewWatermillCommandBus[pkgDomain.Command[application.BookSeatInput], application.BookSeatInput](publisher, subscriber, appLogger)
	queryBus := busAdapter.NewWatermillQueryBus[pkgDomain.Query[application.FindTravelsByDepartureDateInput], application.FindTravelsByDepartureDateInput, []*domain.Travel](publisher, subscriber, appLogger)

	bookSeat := application.NewBookSeat(passengers, buyers, travels, users, eventBus, appLogger)
	searchTravels := application.NewFindTravelsByDepartureDate(travels, appLogger)
	createTravel := application.NewCreateTravel(travels, stations, eventBus, appLogger)
	createUser := application.NewCreateUser(users, infrastructure.NewBcryptHasher(), appLogger)

	commandBus.RegisterHandler(application.CommandBookSeat, application.NewBookSeatHandler(bookSeat, appLogger))
	queryBus.RegisterHandler(application.QuerySearchTravels, application.NewSearchTravelsHandler(searchTravels, appLogger))
	eventBus.RegisterHandler(application.EventSeatBooked, application.NewLoggingEventHandler(appLogger))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	origin, err := domain.NewBusStation("Rodoviária do Tiête", "São Paulo", "SP")
	if err != nil {
		log.Fatalf("failed to build origin station: %v", err)
	}
	arrival, err := domain.NewBusStation("Terminal de Vila Velha", "Vila Velha", "ES")
	if err != nil {
		log.Fatalf("failed to build arrival station: %v", err)
	}
	origin, _ = stations.Create(ctx, origin)
	arrival, _ = stations.Create(ctx, arrival)
	_ = travels.AddBusStations(ctx, []*domain.BusStation{origin, arrival})

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
		BusSeat:            domain.BusSeatSemiSleeper,
		Price:              89.9,
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

	// Kafka consumer groups take a while to rebalance on first run.
	time.Sleep(10 * time.Second)

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
}
