package domain

import "net/mail"

// User is an account that can book seats. Password always holds a hash; the
// plain text never reaches the entity. ID is zero until persisted.
type User struct {
	ID        int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string `json:"name"`
	Email     string `json:"email" gorm:"uniqueIndex"`
	Password  string `json:"-"`
	CPF       string `json:"cpf" gorm:"uniqueIndex"`
	Telephone string `json:"telephone"`
}

// NewUser builds an unpersisted user from an already hashed password.
func NewUser(name, email, hashedPassword, cpf, telephone string) (*User, error) {
	if name == "" {
		return nil, NewBadRequestError("name must not be empty")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, NewBadRequestError("invalid email address")
	}
	if hashedPassword == "" {
		return nil, NewBadRequestError("password hash must not be empty")
	}
	return &User{
		Name:      name,
		Email:     email,
		Password:  hashedPassword,
		CPF:       cpf,
		Telephone: telephone,
	}, nil
}

// RestoreUser rehydrates a persisted user.
func RestoreUser(id int64, name, email, hashedPassword, cpf, telephone string) *User {
	return &User{
		ID:        id,
		Name:      name,
		Email:     email,
		Password:  hashedPassword,
		CPF:       cpf,
		Telephone: telephone,
	}
}
