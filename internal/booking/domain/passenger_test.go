package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viajabus/booking/internal/booking/domain"
)

func TestNewPassenger(t *testing.T) {
	t.Run("builds an unpersisted passenger", func(t *testing.T) {
		passenger, err := domain.NewPassenger("Matheus", "12345678910", 1, 7)

		require.NoError(t, err)
		assert.Zero(t, passenger.ID)
		assert.Equal(t, "Matheus", passenger.Name)
		assert.Equal(t, 1, passenger.Seat)
		assert.Equal(t, int64(7), passenger.TravelID)
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		_, err := domain.NewPassenger("", "12345678910", 1, 7)
		assert.True(t, domain.IsBadRequest(err))
	})

	t.Run("rejects a non-positive seat", func(t *testing.T) {
		_, err := domain.NewPassenger("Matheus", "12345678910", 0, 7)
		assert.True(t, domain.IsBadRequest(err))
	})

	t.Run("rejects a non-positive travel id", func(t *testing.T) {
		_, err := domain.NewPassenger("Matheus", "12345678910", 1, 0)
		assert.True(t, domain.IsBadRequest(err))
	})
}

func TestPassengerHoursUntil(t *testing.T) {
	passenger := domain.RestorePassenger(1, "Matheus", "12345678910", 1, 7)
	departure := time.Date(2024, 7, 10, 20, 0, 0, 0, time.UTC)

	t.Run("future departure yields the remaining hours", func(t *testing.T) {
		now := departure.Add(-3 * time.Hour)
		assert.InDelta(t, 3, passenger.HoursUntil(departure, now), 1e-9)
	})

	t.Run("past departure yields the same positive gap", func(t *testing.T) {
		now := departure.Add(3 * time.Hour)
		assert.InDelta(t, 3, passenger.HoursUntil(departure, now), 1e-9)
	})

	t.Run("departure now yields zero", func(t *testing.T) {
		assert.Zero(t, passenger.HoursUntil(departure, departure))
	})
}
