package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viajabus/booking/internal/booking/application"
	"github.com/viajabus/booking/internal/booking/domain"
)

func TestDeleteTravel(t *testing.T) {
	ctx := context.Background()
	departure := time.Date(2024, 7, 10, 20, 0, 0, 0, time.UTC)

	t.Run("removes the travel", func(t *testing.T) {
		f := newFixture()
		origin, arrival := f.seedStations(ctx)
		travel := f.seedTravel(ctx, departure, domain.BusSeatSleeper, origin.ID, arrival.ID)

		useCase := application.NewDeleteTravel(f.travels, f.events, testLogger)
		deleted, err := useCase.Execute(ctx, application.DeleteTravelInput{ID: travel.ID})

		require.NoError(t, err)
		assert.Equal(t, travel.ID, deleted.ID)
		assert.Equal(t, []string{application.EventTravelDeleted}, f.events.published())

		_, err = application.NewFindTravelByID(f.travels, testLogger).
			Execute(ctx, application.FindTravelByIDInput{ID: travel.ID})
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("fails with not-found for an unknown travel", func(t *testing.T) {
		f := newFixture()

		useCase := application.NewDeleteTravel(f.travels, f.events, testLogger)
		_, err := useCase.Execute(ctx, application.DeleteTravelInput{ID: 99})

		assert.True(t, domain.IsNotFound(err))
		assert.Empty(t, f.events.published())
	})

	t.Run("leaves booked passengers in place", func(t *testing.T) {
		f := newFixture()
		origin, arrival := f.seedStations(ctx)
		travel := f.seedTravel(ctx, departure, domain.BusSeatSleeper, origin.ID, arrival.ID)
		user := f.seedUser(ctx)

		_, err := f.bookSeat().Execute(ctx, application.BookSeatInput{
			Seat:     1,
			Payment:  "Cartão",
			TravelID: travel.ID,
			UserID:   user.ID,
		})
		require.NoError(t, err)

		useCase := application.NewDeleteTravel(f.travels, f.events, testLogger)
		_, err = useCase.Execute(ctx, application.DeleteTravelInput{ID: travel.ID})
		require.NoError(t, err)

		passengers, err := f.passengers.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, passengers, 1, "deletion does not cascade to passengers")
	})
}
