package main

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/viajabus/booking/internal/booking"
	"github.com/viajabus/booking/internal/booking/application"
	"github.com/viajabus/booking/internal/booking/domain"
	"github.com/viajabus/booking/internal/booking/infrastructure"
	"github.com/viajabus/booking/pkg/config"
	pkgDomain "github.com/viajabus/booking/pkg/domain"
	redisAdapter "github.com/viajabus/booking/pkg/infrastructure/redis/adapter"
	watermillLogAdapter "github.com/viajabus/booking/pkg/infrastructure/watermill/adapter"
	busAdapter "github.com/viajabus/booking/pkg/infrastructure/watermillbus/adapter"
	zapAdapter "github.com/viajabus/booking/pkg/infrastructure/zaplogger/adapter"
)

// Serves the booking HTTP API with the command, query and event buses backed
// by redis streams. Storage is in memory; state does not survive a restart.
func main() {
	appLogger, err := zapAdapter.NewZapAppLogger()
	if err != nil {
		panic(err)
	}
	logger := watermillLogAdapter.NewWatermillLoggerAdapter(appLogger)

	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	redisClient := redisAdapter.NewRedisClient(cfg.RedisAddr)
	defer redisClient.Close()

	publisher, err := redisAdapter.NewPublisher(redisClient, logger)
	if err != nil {
		appLogger.Error(ctx, "error creating redis publisher", map[string]interface{}{"error": err})
		panic(err)
	}
	defer publisher.Close()

	subscriber, err := redisAdapter.NewSubscriber(redisClient, "booking_group", logger)
	if err != nil {
		appLogger.Error(ctx, "error creating redis subscriber", map[string]interface{}{"error": err})
		panic(err)
	}
	defer subscriber.Close()

	eventBus := busAdapter.NewWatermillEventBus[pkgDomain.Event[string], string](publisher, subscriber, appLogger)
	bookSeatBus := busAdapter.NewWatermillCommandBus[pkgDomain.Command[application.BookSeatInput], application.BookSeatInput](publisher, subscriber, appLogger)
	cancelBookingBus := busAdapter.NewWatermillCommandBus[pkgDomain.Command[application.CancelBookingInput], application.CancelBookingInput](publisher, subscriber, appLogger)
	searchTravelsBus := busAdapter.NewWatermillQueryBus[pkgDomain.Query[application.FindTravelsByDepartureDateInput], application.FindTravelsByDepartureDateInput, []*domain.Travel](publisher, subscriber, appLogger)

	slice := booking.NewSlice(booking.Deps{
		Travels:          infrastructure.NewMemoryTravelRepository(),
		Passengers:       infrastructure.NewMemoryPassengerRepository(),
		Buyers:           infrastructure.NewMemoryBuyerRepository(),
		Stations:         infrastructure.NewMemoryBusStationRepository(),
		Users:            infrastructure.NewMemoryUserRepository(),
		Cities:           infrastructure.NewIBGECityLookup(cfg.CityLookupURL, appLogger),
		Hasher:           infrastructure.NewBcryptHasher(),
		Events:           eventBus,
		BookSeatBus:      bookSeatBus,
		CancelBookingBus: cancelBookingBus,
		SearchTravelsBus: searchTravelsBus,
		Logger:           appLogger,
	})

	router := chi.NewRouter()
	slice.RegisterRoutes(router)

	appLogger.Info(ctx, "server starting", map[string]interface{}{"addr": cfg.ServerAddr})
	if err := http.ListenAndServe(cfg.ServerAddr, router); err != nil {
		appLogger.Error(ctx, "error starting server", map[string]interface{}{"error": err})
	}
}
