package application

import (
	"context"
	"fmt"

	"github.com/viajabus/booking/internal/booking/domain"
	pkgApp "github.com/viajabus/booking/pkg/application"
)

// CreateUserInput carries the data to register a user. Password arrives in
// plain text and is hashed before it touches the entity.
type CreateUserInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	CPF       string `json:"cpf"`
	Telephone string `json:"telephone"`
}

// CreateUser registers a user, rejecting duplicate emails and documents.
type CreateUser struct {
	users  domain.UserRepository
	hasher PasswordHasher
	logger pkgApp.AppLogger
}

func NewCreateUser(users domain.UserRepository, hasher PasswordHasher, logger pkgApp.AppLogger) *CreateUser {
	return &CreateUser{users: users, hasher: hasher, logger: logger}
}

func (uc *CreateUser) Execute(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	existing, err := uc.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("checking email: %w", err)
	}
	if existing != nil {
		return nil, domain.NewConflictError("email already registered")
	}

	existing, err = uc.users.FindByCPF(ctx, input.CPF)
	if err != nil {
		return nil, fmt.Errorf("checking cpf: %w", err)
	}
	if existing != nil {
		return nil, domain.NewConflictError("cpf already registered")
	}

	hashed, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user, err := domain.NewUser(input.Name, input.Email, hashed, input.CPF, input.Telephone)
	if err != nil {
		return nil, err
	}

	created, err := uc.users.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("persisting user: %w", err)
	}

	uc.logger.Info(ctx, "user created", map[string]interface{}{"user_id": created.ID})
	return created, nil
}
