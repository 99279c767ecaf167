package core

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

type SQLiteScheduleStore struct {
	db *sql.DB
}

func NewSQLiteScheduleStore(db *sql.DB) *SQLiteScheduleStore {
	return &SQLiteScheduleStore{
		db: db,
	}
}

func (s *SQLiteScheduleStore) CreateEntry(ctx context.Context, entry ScheduleEntry) (*ScheduleEntry, error) {
	entry.ID = uuid.NewString()
	if entry.Date == "" {
		entry.Date = Today()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO schedules (id, user_id, date, title, starts_at, ends_at, description)
		VALUES (@id, @user_id, @date, @title, @starts_at, @ends_at, @description)`,
		sql.Named("id", entry.ID),
		sql.Named("user_id", entry.UserID),
		sql.Named("date", entry.Date),
		sql.Named("title", entry.Title),
		sql.Named("starts_at", entry.StartsAt),
		sql.Named("ends_at", entry.EndsAt),
		sql.Named("description", entry.Description))
	if err != nil {
		return nil, fmt.Errorf("creating schedule entry: %w", err)
	}

	return &entry, nil
}

func (s *SQLiteScheduleStore) GetEntriesByUserAndDate(ctx context.Context, userID, date string) ([]ScheduleEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, date, title, starts_at, ends_at, description
		FROM schedules WHERE user_id = @user_id AND date = @date
		ORDER BY starts_at`,
		sql.Named("user_id", userID), sql.Named("date", date))
	if err != nil {
		return nil, fmt.Errorf("querying schedule entries: %w", err)
	}
	defer rows.Close()

	entries := []ScheduleEntry{}

	for rows.Next() {
		var entry ScheduleEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Date,
			&entry.Title,
			&entry.StartsAt,
			&entry.EndsAt,
			&entry.Description,
		); err != nil {
			return nil, fmt.Errorf("scanning schedule entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedule entries: %w", err)
	}

	return entries, nil
}
