// Package token реализует генерацию непрозрачных сессионных токенов.
//
// Maker определяет интерфейс для выпуска токенов, MakerImpl — конкретная
// реализация на криптографически стойком источнике случайности.
// Токен — это hex-строка из 16 случайных байт; такой энтропии достаточно,
// чтобы коллизии между живыми сессиями можно было не обрабатывать.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Maker описывает интерфейс для генерации сессионных токенов.
type Maker interface {
	// GenerateToken возвращает новый непрозрачный токен.
	GenerateToken() (string, error)
}

// MakerImpl реализует интерфейс Maker поверх crypto/rand.
type MakerImpl struct {
	size int // Количество случайных байт в токене.
}

// NewMaker создаёт новый экземпляр MakerImpl со стандартным размером токена.
func NewMaker() *MakerImpl {
	return &MakerImpl{size: 16}
}

// GenerateToken генерирует токен из m.size случайных байт в hex-кодировке.
func (m *MakerImpl) GenerateToken() (string, error) {
	const op = "token.GenerateToken"
	buf := make([]byte, m.size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return hex.EncodeToString(buf), nil
}
