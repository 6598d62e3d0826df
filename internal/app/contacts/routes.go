// Package contacts предоставляет маршруты и сборку основного приложения.
package contacts

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/milenabadalyan-mb/contacts-backend/internal/http/handlers/auth/login"
	"github.com/milenabadalyan-mb/contacts-backend/internal/http/handlers/auth/register"
	"github.com/milenabadalyan-mb/contacts-backend/internal/http/handlers/contact/create"
	"github.com/milenabadalyan-mb/contacts-backend/internal/http/handlers/contact/list"
	"github.com/milenabadalyan-mb/contacts-backend/internal/http/handlers/contact/update"
	"github.com/milenabadalyan-mb/contacts-backend/internal/http/handlers/health"
	"github.com/milenabadalyan-mb/contacts-backend/internal/http/middlewarectx"
	authservice "github.com/milenabadalyan-mb/contacts-backend/internal/services/auth"
	contactservice "github.com/milenabadalyan-mb/contacts-backend/internal/services/contact"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, authService *authservice.AuthService, contactService *contactservice.ContactService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Get("/", health.New(logger).ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/auth/register", register.New(logger, authService).ServeHTTP)
		r.Post("/auth/login", login.New(logger, authService).ServeHTTP)

		// Группа с проверкой сессионного токена
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.AuthMiddleware(authService, logger))
			r.Get("/contacts", list.New(logger, contactService).ServeHTTP)
			r.Post("/contacts", create.New(logger, contactService).ServeHTTP)
			r.Put("/contacts/{id}", update.New(logger, contactService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
