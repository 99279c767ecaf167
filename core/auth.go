package core

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"
)

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrBadCredentials     = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
)

// Session is the identity resolved from a valid token. It is attached to the
// request context by JWTMiddleware and never persisted.
type Session struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
}

type Auth interface {
	// Register creates a new identity. It does not issue a token; login is a
	// separate step.
	Register(ctx context.Context, email, password string) (*UserWithoutSecrets, error)

	// Login verifies the credentials and issues a signed token. Unknown
	// email and wrong password both fail with ErrBadCredentials so callers
	// cannot probe which emails are registered.
	Login(ctx context.Context, email, password string) (token string, exp time.Time, err error)

	// Session verifies a token and reconstructs the session from its claims.
	Session(ctx context.Context, token string) (*Session, error)
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type SimpleAuth struct {
	userStore UserStore
	hasher    PasswordHasher
	tokenExp  time.Duration
	secret    []byte
}

type AuthOption func(*SimpleAuth)

func WithTokenExp(exp time.Duration) AuthOption {
	return func(a *SimpleAuth) {
		a.tokenExp = exp
	}
}

func NewSimpleAuth(userStore UserStore, hasher PasswordHasher, secret []byte, opts ...AuthOption) *SimpleAuth {
	auth := &SimpleAuth{
		userStore: userStore,
		hasher:    hasher,
		tokenExp:  DefaultTokenExp,
		secret:    secret,
	}
	for _, opt := range opts {
		opt(auth)
	}
	return auth
}

func (a *SimpleAuth) Register(ctx context.Context, email, password string) (*UserWithoutSecrets, error) {
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	// Best-effort pre-check. The users table carries a unique constraint on
	// email, so a concurrent register racing past this check still fails in
	// CreateUser with ErrDuplicateUser.
	existing, err := a.userStore.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("checking if user exists: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateUser
	}

	hashed, err := a.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user, err := a.userStore.CreateUser(ctx, email, hashed)
	if err != nil {
		if errors.Is(err, ErrDuplicateUser) {
			return nil, ErrDuplicateUser
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return user, nil
}

func (a *SimpleAuth) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	var exp time.Time

	if email == "" || password == "" {
		return "", exp, ErrMissingCredentials
	}

	user, err := a.userStore.GetUserByEmail(ctx, email)
	if err != nil {
		return "", exp, fmt.Errorf("get user by email: %w", err)
	}
	if user == nil {
		return "", exp, ErrBadCredentials
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		return "", exp, ErrBadCredentials
	}

	token, exp, err := NewToken(user.WithoutSecrets(), a.tokenExp, a.secret)
	if err != nil {
		return "", exp, fmt.Errorf("creating token: %w", err)
	}

	return token, exp, nil
}

func (a *SimpleAuth) Session(ctx context.Context, token string) (*Session, error) {
	claims, err := VerifyToken(token, a.secret)
	if err != nil {
		// Every verification failure is an authentication failure; the
		// distinct sentinels exist for observability, not for callers.
		if errors.Is(err, ErrTokenExpired) || errors.Is(err, ErrTokenInvalid) || errors.Is(err, ErrUnrecognizedToken) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("verifying token: %w", err)
	}

	return &Session{
		UserID: claims.Subject,
		Email:  claims.Email,
	}, nil
}
