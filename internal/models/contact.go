// Package models содержит доменные структуры, описывающие контакт,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

// Contact представляет запись в книге контактов пользователя.
// Идентификатор уникален только в пределах книги одного владельца.
type Contact struct {
	ID    string `json:"id"`    // Непрозрачный идентификатор, выдаётся при создании
	Name  string `json:"name"`  // Имя контакта, обязательное поле
	Email string `json:"email"` // Электронная почта, по умолчанию пустая строка
	Phone string `json:"phone"` // Телефон, по умолчанию пустая строка
}

// DummyContact используется для приёма данных контакта из JSON-запроса,
// прежде чем конвертировать их в Contact.
type DummyContact struct {
	Name  string `json:"name" validate:"required"` // Имя контакта
	Email string `json:"email"`                    // Электронная почта (необязательно)
	Phone string `json:"phone"`                    // Телефон (необязательно)
}

// ContactUpdate описывает частичное обновление контакта.
// Поля-указатели различают «поле не передано» (nil) и «передана пустая
// строка»: явная пустая строка затирает сохранённое значение.
type ContactUpdate struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}
