// Package create реализует HTTP-обработчик для создания новых контактов пользователя.
//
// Handler принимает JSON-запрос с данными контакта, валидирует их, извлекает
// имя пользователя из контекста, вызывает бизнес-логику создания контакта
// через сервис и возвращает созданную запись в JSON-формате.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/milenabadalyan-mb/contacts-backend/internal/http/middlewarectx"
	"github.com/milenabadalyan-mb/contacts-backend/internal/http/response"
	"github.com/milenabadalyan-mb/contacts-backend/internal/lib/sl"
	"github.com/milenabadalyan-mb/contacts-backend/internal/models"
)

// Handler управляет HTTP-запросами на создание новых контактов.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики для создания контактов
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики создания контакта.
type Service interface {
	Create(ctx context.Context, username string, req models.DummyContact) (*models.Contact, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создать новый контакт
// @Description Создает новый контакт в книге текущего пользователя. Возвращает созданную запись.
// @Tags Contacts
// @Accept  json
// @Produce  json
// @Param request body models.DummyContact true "Данные нового контакта"
// @Success 201 {object} models.Contact "Созданный контакт"
// @Failure 400 {object} response.Response "Некорректный JSON или отсутствующее имя"
// @Failure 401 {object} response.Response "Пользователь не авторизован"
// @Failure 500 {object} response.Response "Ошибка сервера при создании контакта"
// @Security TokenAuth
// @Router /contacts [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.contact.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyContact
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("Contact name is required"))
		return
	}

	username, ok := r.Context().Value(middlewarectx.User).(string)
	if !ok || username == "" {
		log.Error("username not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("Unauthorized"))
		return
	}

	contact, err := h.service.Create(r.Context(), username, req)
	if err != nil {
		log.Error("failed to create contact", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create contact"))
		return
	}

	log.Info("success to create contact", slog.String("id", contact.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, contact)
}
