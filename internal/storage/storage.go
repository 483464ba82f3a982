// Package storage определяет общие ошибки уровня хранилища.
// Конкретные реализации находятся в подпакетах (mongodb).
package storage

import "errors"

var (
	// ErrUserExists возвращается при нарушении уникальности username.
	// Единственный источник истины — уникальный индекс в хранилище,
	// предварительная проверка существования не выполняется.
	ErrUserExists = errors.New("user already exists")

	// ErrUserNotFound возвращается, если пользователь не найден.
	ErrUserNotFound = errors.New("user not found")
)
