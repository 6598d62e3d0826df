package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/milenabadalyan-mb/contacts-backend/internal/http/middlewarectx"
	"github.com/milenabadalyan-mb/contacts-backend/internal/http/response"
	"github.com/milenabadalyan-mb/contacts-backend/internal/lib/sl"
	"github.com/milenabadalyan-mb/contacts-backend/internal/models"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	List(ctx context.Context, username string) ([]models.Contact, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список контактов
// @Description Возвращает все контакты текущего пользователя в порядке создания.
// @Tags Contacts
// @Produce  json
// @Success 200 {array} models.Contact "Книга контактов"
// @Failure 401 {object} response.Response "Пользователь не авторизован"
// @Failure 500 {object} response.Response "Ошибка сервера"
// @Security TokenAuth
// @Router /contacts [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.contact.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	username, ok := r.Context().Value(middlewarectx.User).(string)
	if !ok || username == "" {
		log.Error("username not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("Unauthorized"))
		return
	}

	contacts, err := h.service.List(r.Context(), username)
	if err != nil {
		log.Error("failed to list contacts", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list contacts"))
		return
	}

	log.Info("list contacts", slog.Int("count", len(contacts)))
	render.JSON(w, r, contacts)
}
