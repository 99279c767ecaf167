package core

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

type BaseFixture struct {
	ctx      context.Context
	db       *sql.DB
	t        *testing.T
	tearDown func()
}

func NewBaseFixture(t *testing.T) *BaseFixture {

	ctx, cancel := context.WithCancel(context.Background())

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	// a fresh pool connection would see an empty in-memory database
	db.SetMaxOpenConns(1)

	migrationfs := os.DirFS("../migrations")
	goose.SetBaseFS(migrationfs)

	if err := goose.SetDialect("sqlite3"); err != nil {
		t.Fatal(err)
	}

	if err := goose.Up(db, "."); err != nil {
		t.Fatal(err)
	}

	return &BaseFixture{
		ctx: ctx,
		db:  db,
		t:   t,
		tearDown: func() {
			cancel()
			db.Close()
		},
	}
}

type AuthFixture struct {
	*BaseFixture
	userStore UserStore
	auth      Auth
}

var secret = []byte("c2VjcmV0")

func NewAuthFixture(t *testing.T, opts ...AuthOption) *AuthFixture {
	base := NewBaseFixture(t)

	userStore := NewSQLiteUserStore(base.db)
	auth := NewSimpleAuth(userStore, newTestHasher(), secret, opts...)

	return &AuthFixture{
		BaseFixture: base,
		userStore:   userStore,
		auth:        auth,
	}
}

type ScheduleFixture struct {
	*BaseFixture
	userStore     UserStore
	scheduleStore ScheduleStore
}

func NewScheduleFixture(t *testing.T) *ScheduleFixture {
	base := NewBaseFixture(t)
	return &ScheduleFixture{
		BaseFixture:   base,
		userStore:     NewSQLiteUserStore(base.db),
		scheduleStore: NewSQLiteScheduleStore(base.db),
	}
}
