package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viajabus/booking/internal/booking/domain"
)

func TestNewUser(t *testing.T) {
	t.Run("builds an unpersisted user from a hashed password", func(t *testing.T) {
		user, err := domain.NewUser("Matheus", "matheus@gmail.com", "$2a$10$hash", "12345678910", "11977778888")

		require.NoError(t, err)
		assert.Zero(t, user.ID)
		assert.Equal(t, "matheus@gmail.com", user.Email)
		assert.Equal(t, "$2a$10$hash", user.Password)
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		_, err := domain.NewUser("", "matheus@gmail.com", "$2a$10$hash", "12345678910", "11977778888")
		assert.True(t, domain.IsBadRequest(err))
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		_, err := domain.NewUser("Matheus", "not-an-email", "$2a$10$hash", "12345678910", "11977778888")
		assert.True(t, domain.IsBadRequest(err))
	})

	t.Run("rejects an empty password hash", func(t *testing.T) {
		_, err := domain.NewUser("Matheus", "matheus@gmail.com", "", "12345678910", "11977778888")
		assert.True(t, domain.IsBadRequest(err))
	})
}

func TestRestoreUser(t *testing.T) {
	user := domain.RestoreUser(3, "Matheus", "matheus@gmail.com", "$2a$10$hash", "12345678910", "11977778888")

	assert.Equal(t, int64(3), user.ID)
	assert.Equal(t, "12345678910", user.CPF)
}

func TestNewBusStation(t *testing.T) {
	t.Run("builds an unpersisted station", func(t *testing.T) {
		station, err := domain.NewBusStation("Rodoviária do Tiête", "São Paulo", "SP")

		require.NoError(t, err)
		assert.Zero(t, station.ID)
		assert.Equal(t, "São Paulo", station.City)
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		_, err := domain.NewBusStation("", "São Paulo", "SP")
		assert.True(t, domain.IsBadRequest(err))
	})

	t.Run("rejects an empty city", func(t *testing.T) {
		_, err := domain.NewBusStation("Rodoviária do Tiête", "", "SP")
		assert.True(t, domain.IsBadRequest(err))
	})

	t.Run("rejects a uf that is not two letters", func(t *testing.T) {
		_, err := domain.NewBusStation("Rodoviária do Tiête", "São Paulo", "SPO")
		assert.True(t, domain.IsBadRequest(err))
	})
}

func TestNewBuyer(t *testing.T) {
	t.Run("builds an unpersisted buyer", func(t *testing.T) {
		buyer, err := domain.NewBuyer("Cartão", 3, 7)

		require.NoError(t, err)
		assert.Zero(t, buyer.ID)
		assert.Equal(t, "Cartão", buyer.Payment)
	})

	t.Run("rejects an empty payment method", func(t *testing.T) {
		_, err := domain.NewBuyer("", 3, 7)
		assert.True(t, domain.IsBadRequest(err))
	})
}

func TestDomainErrors(t *testing.T) {
	notFound := domain.NewNotFoundError("travel not found")
	badRequest := domain.NewBadRequestError("price must be greater than zero")
	conflict := domain.NewConflictError("email already registered")

	assert.True(t, domain.IsNotFound(notFound))
	assert.True(t, domain.IsBadRequest(badRequest))
	assert.True(t, domain.IsConflict(conflict))
	assert.False(t, domain.IsNotFound(badRequest))

	assert.Equal(t, 404, notFound.StatusCode)
	assert.Equal(t, 400, badRequest.StatusCode)
	assert.Equal(t, 409, conflict.StatusCode)
	assert.Equal(t, "travel not found", notFound.Error())
}
