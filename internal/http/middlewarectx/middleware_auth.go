// Package middlewarectx содержит HTTP middleware для проверки сессионного токена.
//
// AuthMiddleware проверяет наличие токена в заголовке x-auth-token,
// разрешает его в имя пользователя через сервис аутентификации и в случае
// успеха добавляет имя пользователя в контекст для дальнейшего
// использования в обработчиках.
//
// В случае ошибки проверки возвращает HTTP 401 Unauthorized.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/milenabadalyan-mb/contacts-backend/internal/http/response"
	"github.com/milenabadalyan-mb/contacts-backend/internal/lib/sl"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// User — ключ для имени пользователя в контексте.
const User Key = "username"

// TokenHeader — заголовок, в котором клиент передаёт сессионный токен.
const TokenHeader = "x-auth-token"

// Service описывает интерфейс сервиса для разрешения сессионного токена.
type Service interface {
	ResolveToken(ctx context.Context, token string) (string, error)
}

// AuthMiddleware возвращает HTTP middleware, который проверяет токен в заголовке x-auth-token.
//
// Если токен известен, добавляет имя пользователя в контекст запроса,
// иначе возвращает ошибку с HTTP статусом 401 Unauthorized.
func AuthMiddleware(auth Service, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.AuthMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			tokenStr := r.Header.Get(TokenHeader)
			if tokenStr == "" {
				log.Error("missing session token header")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("Unauthorized"))
				return
			}

			username, err := auth.ResolveToken(r.Context(), tokenStr)
			if err != nil {
				log.Error("unknown session token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("Unauthorized"))
				return
			}

			ctx := context.WithValue(r.Context(), User, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
