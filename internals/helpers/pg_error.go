// file: internals/helpers/pg_error.go
package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// pgSQLErr matches pgconn.PgError without importing pgx directly.
type pgSQLErr interface {
	SQLState() string
	Error() string
}

// IsDuplicateKey detects a Postgres unique violation (SQLSTATE 23505).
// Falls back to substring checks so SQLite test databases behave the same.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) && pgErr.SQLState() == "23505" {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}

// IsForeignKeyViolation detects SQLSTATE 23503 (bad reference).
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) && pgErr.SQLState() == "23503" {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "foreign key") || strings.Contains(msg, "23503")
}

// WriteDBError maps store-level constraint errors to the HTTP boundary:
// unique violations surface as validation failures, FK violations as bad
// references, anything else as a 500.
func WriteDBError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case IsDuplicateKey(err):
		return JsonError(c, fiber.StatusBadRequest, "Duplicate value violates a uniqueness rule")
	case IsForeignKeyViolation(err):
		return JsonError(c, fiber.StatusBadRequest, "Referenced record not found")
	default:
		return JsonError(c, fiber.StatusInternalServerError, fallback)
	}
}
