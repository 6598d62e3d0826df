package memory

import (
	"context"
	"fmt"
)

// CreateSession записывает соответствие токен -> имя пользователя.
// Сессии не истекают и не отзываются; несколько живых сессий
// одного пользователя допустимы.
func (s *Storage) CreateSession(ctx context.Context, token, username string) error {
	const op = "storage.CreateSession"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[token] = username
	return nil
}

// ResolveSession возвращает имя пользователя, которому был выдан токен,
// или ErrSessionNotFound для неизвестного токена.
func (s *Storage) ResolveSession(ctx context.Context, token string) (string, error) {
	const op = "storage.ResolveSession"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	username, ok := s.sessions[token]
	if !ok {
		return "", fmt.Errorf("%s: %w", op, ErrSessionNotFound)
	}
	return username, nil
}
