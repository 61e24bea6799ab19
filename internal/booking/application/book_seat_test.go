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

func TestBookSeat(t *testing.T) {
	ctx := context.Background()
	departure := time.Date(2024, 7, 10, 20, 0, 0, 0, time.UTC)

	t.Run("records a buyer and a passenger for the user", func(t *testing.T) {
		f := newFixture()
		origin, arrival := f.seedStations(ctx)
		travel := f.seedTravel(ctx, departure, domain.BusSeatSleeper, origin.ID, arrival.ID)
		user := f.seedUser(ctx)

		passenger, err := f.bookSeat().Execute(ctx, application.BookSeatInput{
			Seat:     1,
			Payment:  "Cartão",
			TravelID: travel.ID,
			UserID:   user.ID,
		})

		require.NoError(t, err)
		assert.NotZero(t, passenger.ID)
		assert.Equal(t, user.Name, passenger.Name)
		assert.Equal(t, user.CPF, passenger.RG)
		assert.Equal(t, 1, passenger.Seat)
		assert.Equal(t, travel.ID, passenger.TravelID)

		buyers, err := f.buyers.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, buyers, 1)
		assert.Equal(t, "Cartão", buyers[0].Payment)
		assert.Equal(t, user.ID, buyers[0].UserID)
		assert.Equal(t, travel.ID, buyers[0].TravelID)

		assert.Equal(t, []string{application.EventSeatBooked}, f.events.published())
	})

	t.Run("fails with not-found for an unknown travel", func(t *testing.T) {
		f := newFixture()
		user := f.seedUser(ctx)

		_, err := f.bookSeat().Execute(ctx, application.BookSeatInput{
			Seat:     1,
			Payment:  "Cartão",
			TravelID: 99,
			UserID:   user.ID,
		})

		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("fails with not-found for an unknown user", func(t *testing.T) {
		f := newFixture()
		origin, arrival := f.seedStations(ctx)
		travel := f.seedTravel(ctx, departure, domain.BusSeatSleeper, origin.ID, arrival.ID)

		_, err := f.bookSeat().Execute(ctx, application.BookSeatInput{
			Seat:     1,
			Payment:  "Cartão",
			TravelID: travel.ID,
			UserID:   99,
		})

		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("fails with bad-request on an empty payment method", func(t *testing.T) {
		f := newFixture()
		origin, arrival := f.seedStations(ctx)
		travel := f.seedTravel(ctx, departure, domain.BusSeatSleeper, origin.ID, arrival.ID)
		user := f.seedUser(ctx)

		_, err := f.bookSeat().Execute(ctx, application.BookSeatInput{
			Seat:     1,
			Payment:  "",
			TravelID: travel.ID,
			UserID:   user.ID,
		})

		assert.True(t, domain.IsBadRequest(err))
	})

	t.Run("allows the same seat to be booked twice on one travel", func(t *testing.T) {
		f := newFixture()
		origin, arrival := f.seedStations(ctx)
		travel := f.seedTravel(ctx, departure, domain.BusSeatSleeper, origin.ID, arrival.ID)
		user := f.seedUser(ctx)

		input := application.BookSeatInput{
			Seat:     1,
			Payment:  "Cartão",
			TravelID: travel.ID,
			UserID:   user.ID,
		}
		_, err := f.bookSeat().Execute(ctx, input)
		require.NoError(t, err)
		_, err = f.bookSeat().Execute(ctx, input)
		require.NoError(t, err)

		passengers, err := f.passengers.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, passengers, 2, "seat numbers are not unique per travel")
	})
}
