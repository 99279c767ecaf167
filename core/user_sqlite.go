package core

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
)

type SQLiteUserStore struct {
	db *sql.DB
}

func NewSQLiteUserStore(db *sql.DB) *SQLiteUserStore {
	return &SQLiteUserStore{
		db: db,
	}
}

func (s *SQLiteUserStore) CreateUser(ctx context.Context, email, passwordHash string) (*UserWithoutSecrets, error) {
	id := uuid.NewString()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users (id, email, password_hash) VALUES (@id, @email, @password_hash)",
		sql.Named("id", id), sql.Named("email", email), sql.Named("password_hash", passwordHash))
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return nil, ErrDuplicateUser
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return &UserWithoutSecrets{ID: id, Email: email}, nil
}

func (s *SQLiteUserStore) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, email, password_hash FROM users WHERE email = ? LIMIT 1", email)

	user := new(User)

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("scanning user: %w", err)
	}

	return user, nil
}
