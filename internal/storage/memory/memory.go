// Package memory реализует хранилище данных в памяти процесса
// для управления пользователями, их контактами и сессиями. Предоставляет
// методы регистрации и поиска пользователей, чтения и изменения книги
// контактов, а также выдачи и разрешения сессионных токенов.
//
// Все операции сериализуются одним мьютексом; перезапуск процесса
// стирает всех пользователей, сессии и контакты.
package memory

import (
	"errors"
	"sync"

	"github.com/milenabadalyan-mb/contacts-backend/internal/models"
)

// Ошибки уровня хранилища. Обработчики сопоставляют их
// с HTTP-статусами через errors.Is.
var (
	// ErrUserExists возвращается при регистрации занятого имени пользователя.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound возвращается, если пользователь с таким именем не зарегистрирован.
	ErrUserNotFound = errors.New("user not found")
	// ErrContactNotFound возвращается, если контакт отсутствует в книге владельца.
	ErrContactNotFound = errors.New("contact not found")
	// ErrSessionNotFound возвращается при разрешении неизвестного токена.
	ErrSessionNotFound = errors.New("session not found")
)

// Storage инкапсулирует всё состояние сервиса
// и реализует методы работы с пользователями, контактами и сессиями.
type Storage struct {
	mu       sync.Mutex
	users    map[string]*models.User
	sessions map[string]string // токен -> имя пользователя
}

// New создаёт пустое хранилище.
func New() *Storage {
	return &Storage{
		users:    make(map[string]*models.User),
		sessions: make(map[string]string),
	}
}
