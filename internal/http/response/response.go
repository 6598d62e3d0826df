// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON‑ответов HTTP‑обработчиков. Сообщения об ошибках
// и служебные ответы сервер отдаёт в едином формате {"msg": "..."}.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

// Response описывает стандартную структуру служебного JSON‑ответа сервера.
type Response struct {
	Msg string `json:"msg" example:"User registered successfully"`
}

// TokenResponse — ответ на успешный вход, содержит сессионный токен.
type TokenResponse struct {
	Token string `json:"token"`
}

// OK возвращает Response с переданным сообщением.
func OK(msg string) Response {
	return Response{Msg: msg}
}

// Error возвращает Response с текстом ошибки.
func Error(msg string) Response {
	return Response{Msg: msg}
}

// ValidationError формирует Response на основе ошибок валидации.
// Каждое нарушение формируется в человеко‑читаемый текст, объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) Response {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return Response{Msg: strings.Join(errsMsgs, ", ")}
}
