package pgerrors

import (
	"errors"

	"github.com/lib/pq"
)

// Коды ошибок PostgreSQL
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeNotNullViolation    = "23502"
	CodeCheckViolation      = "23514"
)

// Is проверяет код ошибки и, если constraint не пустой, имя ограничения
func Is(err error, code, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	if string(pqErr.Code) != code {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}

// IsUniqueViolation нарушение UNIQUE
func IsUniqueViolation(err error, constraint string) bool {
	return Is(err, CodeUniqueViolation, constraint)
}

// IsForeignKeyViolation нарушение FOREIGN KEY
func IsForeignKeyViolation(err error, constraint string) bool {
	return Is(err, CodeForeignKeyViolation, constraint)
}

// IsNotNullViolation нарушение NOT NULL
func IsNotNullViolation(err error) bool {
	return Is(err, CodeNotNullViolation, "")
}

// IsCheckViolation нарушение CHECK
func IsCheckViolation(err error, constraint string) bool {
	return Is(err, CodeCheckViolation, constraint)
}
