// Package main Contacts API
//
// @title           Contacts API
// @version         1.0
// @description     API для управления личной книгой контактов пользователей

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:5000
// @BasePath  /api

// @securityDefinitions.apikey TokenAuth
// @in header
// @name x-auth-token
// @description Сессионный токен, полученный при входе.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/milenabadalyan-mb/contacts-backend/docs"
	"github.com/milenabadalyan-mb/contacts-backend/internal/app/contacts"
	"github.com/milenabadalyan-mb/contacts-backend/internal/config"
)

func main() {
	cfg := config.MustLoad()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger.Info("starting contacts-backend", slog.String("env", cfg.Env), slog.String("port", cfg.Port))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := contacts.New(cfg, logger)

	if err := app.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("app stopped with error", slog.Any("err", err))
		os.Exit(1)
	}

	logger.Info("contacts-backend stopped gracefully")
}
