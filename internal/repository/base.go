// Package repository implements the data access layer for the application.
package repository

import (
	"strings"

	"inkwell/internal/observability"
)

var dbMetrics = observability.NewDatabaseMetrics()

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	// PostgreSQL unique violation SQLSTATE 23505; SQLite reports
	// "UNIQUE constraint failed".
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}

// likePattern builds a case-insensitive LIKE pattern for substring search.
func likePattern(query string) string {
	return "%" + strings.ToLower(query) + "%"
}
