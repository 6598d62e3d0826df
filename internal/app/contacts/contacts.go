package contacts

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/milenabadalyan-mb/contacts-backend/internal/config"
	"github.com/milenabadalyan-mb/contacts-backend/internal/lib/token"
	authservice "github.com/milenabadalyan-mb/contacts-backend/internal/services/auth"
	contactservice "github.com/milenabadalyan-mb/contacts-backend/internal/services/contact"
	"github.com/milenabadalyan-mb/contacts-backend/internal/storage/memory"
)

type App struct {
	server *http.Server
	logger *slog.Logger
}

// New собирает приложение: хранилище в памяти, сервисы, маршруты и HTTP-сервер.
// Хранилище живёт столько же, сколько процесс, поэтому каждый вызов New
// даёт полностью изолированное состояние.
func New(cfg *config.Config, logger *slog.Logger) *App {
	store := memory.New()
	tokenMaker := token.NewMaker()

	authService := authservice.NewAuthService(store, store, tokenMaker)
	contactService := contactservice.NewContactService(store, logger)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, authService, contactService)

	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
	}
}

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
		return a.server.Shutdown(timeoutCtx)
	}
}
