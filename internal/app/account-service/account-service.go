// Package accountservice собирает приложение: хранилище пользователей,
// хранилище сессий, бизнес-сервисы и HTTP-сервер с graceful shutdown.
package accountservice

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/account-service/internal/config"
	authservice "github.com/magabrotheeeer/account-service/internal/services/auth"
	profileservice "github.com/magabrotheeeer/account-service/internal/services/profile"
	"github.com/magabrotheeeer/account-service/internal/sessions"
	"github.com/magabrotheeeer/account-service/internal/storage/mongodb"
)

// App инкапсулирует HTTP-сервер и внешние зависимости сервиса.
type App struct {
	server   *http.Server
	logger   *slog.Logger
	db       *mongodb.Storage
	sessions *sessions.Store
}

// New инициализирует зависимости и маршруты приложения.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := mongodb.New(ctx, cfg.MongoConnection.URI, cfg.MongoConnection.Database)
	if err != nil {
		return nil, err
	}

	sessionStore, err := sessions.InitServer(ctx, cfg.RedisConnection, cfg.Session)
	if err != nil {
		return nil, err
	}

	authService := authservice.NewAuthService(db)
	profileService := profileservice.NewProfileService(db)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, authService, profileService, sessionStore)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:   srv,
		logger:   logger,
		db:       db,
		sessions: sessionStore,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if dbErr := a.db.Close(timeoutCtx); dbErr != nil {
			a.logger.Error("failed to close mongodb connection", slog.Any("err", dbErr))
		}
		if rdErr := a.sessions.Db.Close(); rdErr != nil {
			a.logger.Error("failed to close redis connection", slog.Any("err", rdErr))
		}
		return err
	}
}
