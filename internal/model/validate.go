package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation — базовая ошибка для некорректных полей записи.
var ErrValidation = errors.New("validation failed")

// FieldError описывает проблему с одним полем.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) String() string { return e.Field + ": " + e.Message }

// ValidationResult — результат проверки записи. Пустой список Problems означает, что запись корректна.
type ValidationResult struct {
	Problems []FieldError
}

// OK сообщает, что проблем не найдено.
func (r ValidationResult) OK() bool { return len(r.Problems) == 0 }

// Err возвращает *ValidationError или nil.
func (r ValidationResult) Err() error {
	if r.OK() {
		return nil
	}
	return &ValidationError{Problems: r.Problems}
}

// ValidationError оборачивает ErrValidation и перечисляет проблемные поля.
type ValidationError struct {
	Problems []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		parts = append(parts, p.String())
	}
	return fmt.Sprintf("%v: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Validate проверяет имя устройства и статус. Локация, серийный номер и ответственный не ограничиваются.
func Validate(f ItemFields) ValidationResult {
	var res ValidationResult
	if strings.TrimSpace(f.DeviceName) == "" {
		res.Problems = append(res.Problems, FieldError{Field: "device_name", Message: "is required"})
	}
	if _, ok := CanonicalStatus(f.Status); !ok {
		res.Problems = append(res.Problems, FieldError{
			Field:   "status",
			Message: fmt.Sprintf("%q is not one of %s", f.Status, strings.Join(Statuses(), ", ")),
		})
	}
	return res
}
