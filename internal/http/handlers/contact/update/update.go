package update

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/milenabadalyan-mb/contacts-backend/internal/http/middlewarectx"
	"github.com/milenabadalyan-mb/contacts-backend/internal/http/response"
	"github.com/milenabadalyan-mb/contacts-backend/internal/lib/sl"
	"github.com/milenabadalyan-mb/contacts-backend/internal/models"
	"github.com/milenabadalyan-mb/contacts-backend/internal/storage/memory"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	Update(ctx context.Context, username, id string, upd models.ContactUpdate) (*models.Contact, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Изменить контакт
// @Description Частично обновляет контакт текущего пользователя. Переданные поля перезаписываются, не переданные остаются без изменений.
// @Tags Contacts
// @Accept  json
// @Produce  json
// @Param id path string true "Идентификатор контакта"
// @Param request body models.ContactUpdate true "Изменяемые поля"
// @Success 200 {object} models.Contact "Обновлённый контакт"
// @Failure 400 {object} response.Response "Некорректный JSON"
// @Failure 401 {object} response.Response "Пользователь не авторизован"
// @Failure 404 {object} response.Response "Контакт не найден в книге пользователя"
// @Failure 500 {object} response.Response "Ошибка сервера"
// @Security TokenAuth
// @Router /contacts/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.contact.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.ContactUpdate
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	username, ok := r.Context().Value(middlewarectx.User).(string)
	if !ok || username == "" {
		log.Error("username not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("Unauthorized"))
		return
	}

	id := chi.URLParam(r, "id")

	contact, err := h.service.Update(r.Context(), username, id, req)
	if err != nil {
		if errors.Is(err, memory.ErrContactNotFound) {
			log.Error("contact not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("Contact not found"))
			return
		}
		log.Error("failed to update contact", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update contact"))
		return
	}

	log.Info("success to update contact", slog.String("id", id))
	render.JSON(w, r, contact)
}
