package memory

import (
	"context"
	"fmt"

	"github.com/milenabadalyan-mb/contacts-backend/internal/models"
)

// RegisterUser сохраняет нового пользователя с пустой книгой контактов.
// Возвращает ErrUserExists, если имя уже занято; существующая запись
// при этом не меняется.
func (s *Storage) RegisterUser(ctx context.Context, user models.User) error {
	const op = "storage.RegisterUser"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Username]; ok {
		return fmt.Errorf("%s: %w", op, ErrUserExists)
	}
	if user.Contacts == nil {
		user.Contacts = []models.Contact{}
	}
	s.users[user.Username] = &user
	return nil
}

// GetUserByUsername возвращает пользователя по его username.
// Возвращаемая структура — копия, контакты в неё не входят.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.GetUserByUsername"
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
	return &models.User{
		Username: u.Username,
		Password: u.Password,
	}, nil
}
