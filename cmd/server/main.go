package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/viajabus/booking/internal/booking"
	"github.com/viajabus/booking/internal/booking/application"
	"github.com/viajabus/booking/internal/booking/domain"
	"github.com/viajabus/booking/internal/booking/infrastructure"
	"github.com/viajabus/booking/pkg/config"
	pkgDomain "github.com/viajabus/booking/pkg/domain"
	pkgInfra "github.com/viajabus/booking/pkg/infrastructure"
	zapAdapter "github.com/viajabus/booking/pkg/infrastructure/zaplogger/adapter"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	appLogger, err := zapAdapter.NewZapAppLogger()
	if err != nil {
		panic(err)
	}

	cfg := config.Load()

	db, err := infrastructure.NewGormDB(cfg.DatabaseDSN)
	if err != nil {
		appLogger.Error(ctx, "error opening database", map[string]interface{}{"error": err})
		panic(err)
	}

	eventBus := pkgInfra.NewLocalEventBus[pkgDomain.Event[string], string](appLogger)
	bookSeatBus := pkgInfra.NewLocalCommandBus[pkgDomain.Command[application.BookSeatInput], application.BookSeatInput]()
	cancelBookingBus := pkgInfra.NewLocalCommandBus[pkgDomain.Command[application.CancelBookingInput], application.CancelBookingInput]()
	searchTravelsBus := pkgInfra.NewLocalQueryBus[pkgDomain.Query[application.FindTravelsByDepartureDateInput], application.FindTravelsByDepartureDateInput, []*domain.Travel]()

	slice := booking.NewSlice(booking.Deps{
		Travels:          infrastructure.NewGormTravelRepository(db, appLogger),
		Passengers:       infrastructure.NewGormPassengerRepository(db, appLogger),
		Buyers:           infrastructure.NewGormBuyerRepository(db, appLogger),
		Stations:         infrastructure.NewGormBusStationRepository(db, appLogger),
		Users:            infrastructure.NewGormUserRepository(db, appLogger),
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

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		appLogger.Info(ctx, "signal received, shutting down", map[string]interface{}{"signal": sig.String()})
		cancel()
	}()

	server := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: router,
	}

	go func() {
		appLogger.Info(ctx, "server starting", map[string]interface{}{"addr": cfg.ServerAddr})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error(ctx, "error starting server", map[string]interface{}{"error": err})
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error(context.Background(), "error shutting down server", map[string]interface{}{"error": err})
	}

	appLogger.Info(context.Background(), "server stopped", nil)
}
