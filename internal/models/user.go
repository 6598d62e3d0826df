// Package models содержит доменные структуры сервиса контактов:
// пользователя и его книгу контактов.
package models

// User представляет зарегистрированного пользователя системы.
//
// Пароль хранится открытым текстом и сравнивается посимвольно при входе —
// хэширование сознательно не применяется. Контакты принадлежат только
// этому пользователю и хранятся в порядке создания.
type User struct {
	Username string    // Имя пользователя (уникальное, с учётом регистра)
	Password string    // Пароль, как пришёл при регистрации
	Contacts []Contact // Книга контактов в порядке добавления
}
