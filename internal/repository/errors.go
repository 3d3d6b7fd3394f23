package repository

import "errors"

var (
	// ErrUserNotFound возвращается, если пользователь не найден в БД.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken возвращается при регистрации на уже занятый email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrPlayerNotFound возвращается, если игрок не найден или удалён.
	ErrPlayerNotFound = errors.New("player not found")

	// ErrEventNotFound возвращается, если событие не найдено или удалено.
	ErrEventNotFound = errors.New("event not found")

	// ErrSignupNotFound возвращается, если запись на событие не найдена.
	ErrSignupNotFound = errors.New("signup not found")

	// ErrSignupExists возвращается при повторной активной записи игрока на событие.
	ErrSignupExists = errors.New("player already signed up")

	// ErrDraftNotFound возвращается, если черновика жеребьёвки нет (или истёк TTL).
	ErrDraftNotFound = errors.New("draw draft not found")

	// ErrVersionConflict возвращается, если черновик изменён параллельно.
	ErrVersionConflict = errors.New("draw draft version conflict")
)

// pgUniqueViolation — код ошибки PostgreSQL при нарушении уникальности.
const pgUniqueViolation = "23505"
