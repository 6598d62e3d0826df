// Package services содержит бизнес-логику для управления книгой контактов.
// Все операции выполняются от имени уже авторизованного пользователя
// и затрагивают только его собственную книгу.
package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/milenabadalyan-mb/contacts-backend/internal/models"
)

// ContactRepository определяет методы для работы с контактами в хранилище.
type ContactRepository interface {
	// ListContacts возвращает книгу контактов пользователя в порядке создания.
	ListContacts(ctx context.Context, username string) ([]models.Contact, error)
	// AppendContact добавляет контакт в конец книги пользователя.
	AppendContact(ctx context.Context, username string, contact models.Contact) error
	// UpdateContact применяет частичное обновление и возвращает изменённый контакт.
	UpdateContact(ctx context.Context, username, id string, upd models.ContactUpdate) (*models.Contact, error)
}

// ContactService реализует бизнес-логику работы с контактами.
type ContactService struct {
	repo ContactRepository
	log  *slog.Logger
}

// NewContactService создает новый экземпляр ContactService.
func NewContactService(repo ContactRepository, log *slog.Logger) *ContactService {
	return &ContactService{
		repo: repo,
		log:  log,
	}
}

// List возвращает все контакты пользователя, без фильтра и пагинации.
func (s *ContactService) List(ctx context.Context, username string) ([]models.Contact, error) {
	return s.repo.ListContacts(ctx, username)
}

// Create создает новый контакт для пользователя и возвращает его.
// Необязательные поля получают пустые строки, идентификатор выдаётся
// случайный; уникальность гарантируется только в пределах книги владельца.
func (s *ContactService) Create(ctx context.Context, username string, req models.DummyContact) (*models.Contact, error) {
	contact := models.Contact{
		ID:    uuid.NewString(),
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	if err := s.repo.AppendContact(ctx, username, contact); err != nil {
		return nil, err
	}
	s.log.Info("created new contact", slog.String("id", contact.ID))
	return &contact, nil
}

// Update изменяет контакт в книге пользователя и возвращает его новое
// состояние. Переданные поля перезаписываются, включая явную пустую
// строку; не переданные остаются как были.
func (s *ContactService) Update(ctx context.Context, username, id string, upd models.ContactUpdate) (*models.Contact, error) {
	contact, err := s.repo.UpdateContact(ctx, username, id, upd)
	if err != nil {
		return nil, err
	}
	s.log.Info("updated contact", slog.String("id", id))
	return contact, nil
}
