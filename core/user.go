package core

import (
	"context"
	"errors"
)

// User is the stored identity record. PasswordHash never leaves the auth
// boundary; handlers only ever see UserWithoutSecrets.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

type UserWithoutSecrets struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (u User) WithoutSecrets() UserWithoutSecrets {
	return UserWithoutSecrets{ID: u.ID, Email: u.Email}
}

var (
	ErrDuplicateUser = errors.New("user already exists")
)

type UserStore interface {
	// CreateUser inserts a new identity record. It returns ErrDuplicateUser
	// if a user with the same email already exists. The uniqueness guarantee
	// comes from the store itself, not from a prior lookup.
	CreateUser(ctx context.Context, email, passwordHash string) (*UserWithoutSecrets, error)

	// GetUserByEmail returns nil, nil when no user with the email exists.
	GetUserByEmail(ctx context.Context, email string) (*User, error)
}
