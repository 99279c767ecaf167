package schedly

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/cors"
	"github.com/putto11262002/schedly/core"
	"github.com/putto11262002/schedly/pkg/router"
)

type App struct {
	config  *Config
	db      *core.SQLiteDB
	context context.Context
	server  *http.Server
	logger  *slog.Logger
	router  *router.Router

	exit chan int

	userStore     core.UserStore
	scheduleStore core.ScheduleStore
	auth          core.Auth

	authHandler     *AuthHandler
	scheduleHandler *ScheduleHandler

	cleanupFuncs []func(context.Context)
}

func New(ctx context.Context, config *Config) *App {
	var err error
	app := &App{
		exit: make(chan int),
	}
	if ctx == nil {
		ctx, _ = signal.NotifyContext(
			context.Background(),
			syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP)
	}
	app.context = ctx

	if config == nil {
		var err error
		config, err = LoadConfig()
		if err != nil {
			failed(1, "failed to load config: %v\n", err)
		}
	}
	if err := config.Validate(); err != nil {
		failed(1, FormatValidationErrors(err))
	}
	app.config = config

	app.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				source, _ := a.Value.Any().(*slog.Source)
				if source != nil {
					source.File = filepath.Base(source.File)
				}
			}
			return a
		},
	}))

	sqliteOptions := &core.SQLiteDBOption{
		Mode:        "rwc",
		Cache:       "shared",
		JournalMode: "WAL",
	}
	app.db, err = core.NewSQLiteDB(app.config.SQLite.File, app.config.SQLite.Migrations, sqliteOptions)
	if err != nil {
		failed(1, "failed to open database: %v\n", err)
	}
	app.AddCleanupFunc(func(ctx context.Context) {
		app.db.Close()
	})
	if err := app.db.Migrate(); err != nil {
		failed(1, "failed to migrate database: %v\n", err)
	}

	app.userStore = core.NewSQLiteUserStore(app.db.DB)
	app.scheduleStore = core.NewSQLiteScheduleStore(app.db.DB)
	app.auth = core.NewSimpleAuth(
		app.userStore,
		core.NewBcryptHasher(core.DefaultBcryptCost),
		[]byte(app.config.Auth.Secret))

	app.authHandler = NewAuthHandler(app.auth)
	app.scheduleHandler = NewScheduleHandler(app.scheduleStore)
	authMiddleware := core.JWTMiddleware(app.auth)

	app.router = router.New(router.WithLogger(app.logger))

	app.router.Router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	app.router.Post("/register", app.authHandler.RegisterHandler)
	app.router.Post("/login", app.authHandler.LoginHandler)

	app.router.Group(func(r *router.Router) {
		r.Use(authMiddleware)
		r.Get("/schedule", app.scheduleHandler.GetMyScheduleHandler)
		r.Post("/schedule", app.scheduleHandler.CreateEntryHandler)
	})

	app.server = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", app.config.Hostname, app.config.Port),
		Handler: app.router.Router,
		BaseContext: func(listener net.Listener) context.Context {
			return app.context
		},
	}
	if app.config.Mode == ProdMode {
		app.server.TLSConfig = &defaultTLSConfig
	}

	return app
}

// Handler returns the root HTTP handler. It exists so tests can mount the
// app on an httptest server without binding a listener.
func (app *App) Handler() http.Handler {
	return app.router.Router
}

func (app *App) Start() {
	// listen for shutdown signal
	go func() {
		<-app.context.Done()
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer closeCancel()
		var wg sync.WaitGroup

		for _, f := range app.cleanupFuncs {
			wg.Add(1)
			go func(f func(context.Context)) {
				defer wg.Done()
				f(closeCtx)
			}(f)
		}

		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			app.logger.Info("app shutdown gracefully")
			app.exit <- 0
		case <-closeCtx.Done():
			app.logger.Info("app shutdown timed out")
			app.exit <- 1
		}
	}()

	app.AddCleanupFunc(func(ctx context.Context) {
		app.server.Shutdown(ctx)
	})
	app.logger.Info(fmt.Sprintf("app running in %s mode on: %s:%d",
		app.config.Mode, app.config.Hostname, app.config.Port))

	var err error
	if app.config.TLS.Key != "" && app.config.TLS.Crt != "" {
		err = app.server.ListenAndServeTLS(app.config.TLS.Crt, app.config.TLS.Key)
	} else {
		err = app.server.ListenAndServe()
	}
	if err != nil && err != http.ErrServerClosed {
		failed(1, "server error: %v\n", err)
	}

	code := <-app.exit
	os.Exit(code)
}

func (app *App) AddCleanupFunc(f func(context.Context)) {
	app.cleanupFuncs = append(app.cleanupFuncs, f)
}

func failed(code int, s string, args ...interface{}) {
	fmt.Printf(s, args...)
	os.Exit(code)
}
