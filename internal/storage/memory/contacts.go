package memory

import (
	"context"
	"fmt"

	"github.com/milenabadalyan-mb/contacts-backend/internal/models"
)

// ListContacts возвращает копию книги контактов пользователя
// в порядке создания записей. Пустая книга — пустой срез, не nil.
func (s *Storage) ListContacts(ctx context.Context, username string) ([]models.Contact, error) {
	const op = "storage.ListContacts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[username]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	contacts := make([]models.Contact, len(u.Contacts))
	copy(contacts, u.Contacts)
	return contacts, nil
}

// AppendContact добавляет контакт в конец книги пользователя.
func (s *Storage) AppendContact(ctx context.Context, username string, contact models.Contact) error {
	const op = "storage.AppendContact"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[username]
	if !ok {
		return fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	u.Contacts = append(u.Contacts, contact)
	return nil
}

// UpdateContact применяет частичное обновление к контакту с данным id
// в книге пользователя и возвращает изменённую запись. Поиск идёт только
// по книге владельца: чужой id даёт ErrContactNotFound, даже если контакт
// с таким идентификатором существует у другого пользователя.
func (s *Storage) UpdateContact(ctx context.Context, username, id string, upd models.ContactUpdate) (*models.Contact, error) {
	const op = "storage.UpdateContact"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[username]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	for i := range u.Contacts {
		if u.Contacts[i].ID != id {
			continue
		}
		if upd.Name != nil {
			u.Contacts[i].Name = *upd.Name
		}
		if upd.Email != nil {
			u.Contacts[i].Email = *upd.Email
		}
		if upd.Phone != nil {
			u.Contacts[i].Phone = *upd.Phone
		}
		contact := u.Contacts[i]
		return &contact, nil
	}
	return nil, fmt.Errorf("%s: %w", op, ErrContactNotFound)
}
