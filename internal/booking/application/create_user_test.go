package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viajabus/booking/internal/booking/application"
	"github.com/viajabus/booking/internal/booking/domain"
)

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	input := application.CreateUserInput{
		Name:      "Matheus",
		Email:     "matheus@gmail.com",
		Password:  "12345678",
		CPF:       "12345678910",
		Telephone: "11977778888",
	}

	t.Run("registers a user with a hashed password", func(t *testing.T) {
		f := newFixture()
		useCase := application.NewCreateUser(f.users, stubHasher{}, testLogger)

		user, err := useCase.Execute(ctx, input)

		require.NoError(t, err)
		assert.NotZero(t, user.ID)
		assert.Equal(t, "hashed:12345678", user.Password, "the plain text never reaches the entity")
	})

	t.Run("rejects a duplicate email with a conflict", func(t *testing.T) {
		f := newFixture()
		useCase := application.NewCreateUser(f.users, stubHasher{}, testLogger)

		_, err := useCase.Execute(ctx, input)
		require.NoError(t, err)

		second := input
		second.CPF = "10987654321"
		_, err = useCase.Execute(ctx, second)

		assert.True(t, domain.IsConflict(err))
	})

	t.Run("rejects a duplicate cpf with a conflict", func(t *testing.T) {
		f := newFixture()
		useCase := application.NewCreateUser(f.users, stubHasher{}, testLogger)

		_, err := useCase.Execute(ctx, input)
		require.NoError(t, err)

		second := input
		second.Email = "other@gmail.com"
		_, err = useCase.Execute(ctx, second)

		assert.True(t, domain.IsConflict(err))
	})

	t.Run("rejects a malformed email with a bad request", func(t *testing.T) {
		f := newFixture()
		useCase := application.NewCreateUser(f.users, stubHasher{}, testLogger)

		bad := input
		bad.Email = "not-an-email"
		_, err := useCase.Execute(ctx, bad)

		assert.True(t, domain.IsBadRequest(err))
	})
}
