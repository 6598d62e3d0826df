// Package services содержит логику бизнес-уровня для регистрации
// и аутентификации пользователей.
package services

import (
	"context"
	"errors"

	"github.com/milenabadalyan-mb/contacts-backend/internal/lib/token"
	"github.com/milenabadalyan-mb/contacts-backend/internal/models"
)

// ErrInvalidCredentials возвращается при неудачном входе. Ошибка одна
// и та же для незнакомого имени и для неверного пароля, чтобы ответ
// не выдавал, какой из двух случаев произошёл.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository описывает контракт для работы с пользователями в хранилище.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя.
	RegisterUser(ctx context.Context, user models.User) error

	// GetUserByUsername возвращает пользователя по имени или ошибку, если не найден.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// SessionRepository описывает контракт для работы с сессиями.
type SessionRepository interface {
	// CreateSession записывает соответствие токен -> имя пользователя.
	CreateSession(ctx context.Context, token, username string) error

	// ResolveSession возвращает имя пользователя по токену.
	ResolveSession(ctx context.Context, token string) (string, error)
}

// AuthService отвечает за регистрацию, вход и разрешение сессионных токенов.
type AuthService struct {
	users      UserRepository
	sessions   SessionRepository
	tokenMaker token.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, sessions SessionRepository, tokenMaker token.Maker) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		tokenMaker: tokenMaker,
	}
}

// Register создает нового пользователя с пустой книгой контактов.
// Пароль сохраняется как есть, без хэширования.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	user := models.User{
		Username: username,
		Password: password,
		Contacts: []models.Contact{},
	}
	return s.users.RegisterUser(ctx, user)
}

// Login сверяет пароль пользователя и выпускает новый сессионный токен.
// Каждый вход создаёт отдельную сессию; старые токены остаются действительными.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if user.Password != password {
		return "", ErrInvalidCredentials
	}
	tok, err := s.tokenMaker.GenerateToken()
	if err != nil {
		return "", err
	}
	if err := s.sessions.CreateSession(ctx, tok, username); err != nil {
		return "", err
	}
	return tok, nil
}

// ResolveToken возвращает имя пользователя, которому принадлежит сессия.
// Срок действия не проверяется — выданные токены живут до перезапуска процесса.
func (s *AuthService) ResolveToken(ctx context.Context, tok string) (string, error) {
	return s.sessions.ResolveSession(ctx, tok)
}
