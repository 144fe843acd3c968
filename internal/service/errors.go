package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Базовые виды доменных ошибок. Хендлеры сопоставляют их через errors.Is;
// всё остальное (ошибки стора и т.п.) наружу уходит как внутренняя ошибка.
var (
	// ErrNotFound — сущность с указанным id не существует.
	ErrNotFound = errors.New("not found")

	// ErrConflict — нарушение уникальности.
	ErrConflict = errors.New("conflict")

	// ErrUnauthenticated — учётные данные не подошли.
	ErrUnauthenticated = errors.New("unauthenticated")
)

// Уточнённые варианты: дают errors.Is по базовому виду и позволяют
// хендлерам подобрать точное сообщение.
var (
	ErrUserNotFound     = fmt.Errorf("user %w", ErrNotFound)
	ErrListingNotFound  = fmt.Errorf("listing %w", ErrNotFound)
	ErrFavoriteNotFound = fmt.Errorf("favorite %w", ErrNotFound)

	ErrEmailTaken     = fmt.Errorf("email %w", ErrConflict)
	ErrFavoriteExists = fmt.Errorf("favorite %w", ErrConflict)

	ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", ErrUnauthenticated)
)

// ValidationError перечисляет все нарушения входных данных разом,
// а не только первое. Ключ — имя поля, значение — сообщение.
type ValidationError struct {
	Violations map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Violations))
	for f := range e.Violations {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

// NewValidationError создаёт ошибку валидации с набором нарушений.
func NewValidationError(violations map[string]string) *ValidationError {
	return &ValidationError{Violations: violations}
}
