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

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()
	departure := time.Date(2024, 7, 10, 20, 0, 0, 0, time.UTC)

	book := func(f *fixture) *domain.Passenger {
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
		return passenger
	}

	t.Run("removes the booking when departure is more than an hour away", func(t *testing.T) {
		f := newFixture()
		passenger := book(f)

		useCase := f.cancelBooking().WithClock(func() time.Time {
			return departure.Add(-2 * time.Hour)
		})
		cancelled, err := useCase.Execute(ctx, application.CancelBookingInput{PassengerID: passenger.ID})

		require.NoError(t, err)
		assert.Equal(t, passenger.ID, cancelled.ID)
		assert.Contains(t, f.events.published(), application.EventBookingCancelled)

		remaining, err := f.passengers.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})

	t.Run("rejects cancellation within an hour of departure", func(t *testing.T) {
		f := newFixture()
		passenger := book(f)

		useCase := f.cancelBooking().WithClock(func() time.Time {
			return departure.Add(-30 * time.Minute)
		})
		_, err := useCase.Execute(ctx, application.CancelBookingInput{PassengerID: passenger.ID})

		assert.True(t, domain.IsBadRequest(err))

		remaining, err := f.passengers.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, remaining, 1, "the booking stays when cancellation is rejected")
	})

	t.Run("rejects cancellation exactly an hour before departure", func(t *testing.T) {
		f := newFixture()
		passenger := book(f)

		useCase := f.cancelBooking().WithClock(func() time.Time {
			return departure.Add(-time.Hour)
		})
		_, err := useCase.Execute(ctx, application.CancelBookingInput{PassengerID: passenger.ID})

		assert.True(t, domain.IsBadRequest(err))
	})

	t.Run("allows cancelling a booking whose departure already passed", func(t *testing.T) {
		f := newFixture()
		passenger := book(f)

		// The gap is an absolute difference, so two hours after boarding the
		// booking is as cancellable as two hours before.
		useCase := f.cancelBooking().WithClock(func() time.Time {
			return departure.Add(2 * time.Hour)
		})
		_, err := useCase.Execute(ctx, application.CancelBookingInput{PassengerID: passenger.ID})

		require.NoError(t, err)
	})

	t.Run("fails with not-found for an unknown passenger", func(t *testing.T) {
		f := newFixture()

		_, err := f.cancelBooking().Execute(ctx, application.CancelBookingInput{PassengerID: 99})

		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("fails with not-found when the travel was deleted", func(t *testing.T) {
		f := newFixture()
		passenger := book(f)

		_, err := f.travels.Delete(ctx, passenger.TravelID)
		require.NoError(t, err)

		_, err = f.cancelBooking().Execute(ctx, application.CancelBookingInput{PassengerID: passenger.ID})
		assert.True(t, domain.IsNotFound(err))
	})
}
