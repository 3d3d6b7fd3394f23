package service

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError описывает прикладную ошибку сервиса:
// код для клиента, человекочитаемое сообщение, HTTP-статус и вложенная ошибка.
type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

// Error реализует интерфейс error для AppError.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap возвращает вложенную ошибку для поддержки errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// ErrBadRequest конструирует AppError для ошибок валидации или некорректных запросов клиента.
func ErrBadRequest(msg string) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: msg,
		Status:  http.StatusBadRequest,
	}
}

// ErrNotFound конструирует AppError для ситуации, когда ресурс не найден.
func ErrNotFound(msg string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: msg,
		Status:  http.StatusNotFound,
	}
}

// ErrUnauthorized возвращается для запроса без действительных учётных данных.
func ErrUnauthorized(msg string) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: msg,
		Status:  http.StatusUnauthorized,
	}
}

// ErrForbidden возвращается, если у пользователя нет прав на действие.
func ErrForbidden(msg string) *AppError {
	return &AppError{
		Code:    "FORBIDDEN",
		Message: msg,
		Status:  http.StatusForbidden,
	}
}

// ErrDomain конструирует AppError для доменных конфликтов (например, DRAW_CONFIRMED, SIGNUP_EXISTS).
// Нарушенные предусловия (мало записей, нет мест) отдаются как 422, остальное — 409.
func ErrDomain(code, msg string) *AppError {
	status := http.StatusConflict
	switch code {
	case "NOT_ENOUGH_SIGNUPS", "NOT_ENOUGH_PLAYERS", "EVENT_FULL", "EVENT_COMPLETED":
		status = http.StatusUnprocessableEntity
	case "EMAIL_TAKEN":
		status = http.StatusBadRequest
	}
	return &AppError{
		Code:    code,
		Message: msg,
		Status:  status,
	}
}

// errInternal оборачивает неожиданную ошибку хранилища.
func errInternal(msg string, err error) *AppError {
	return &AppError{
		Code:    "INTERNAL",
		Message: msg,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// IsNotFound помогает определить, соответствует ли ошибка HTTP-статусу 404.
func IsNotFound(err error) bool {
	var app *AppError
	if errors.As(err, &app) {
		return app.Status == http.StatusNotFound
	}
	return false
}
