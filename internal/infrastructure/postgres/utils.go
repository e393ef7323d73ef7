package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// pgConstraint devuelve el nombre de la constraint que rechazó la fila.
func pgConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// isForeignKeyViolation: la fila referenciada no existe (23503).
func isForeignKeyViolation(err error) bool { return pgCode(err) == "23503" }

// isCheckViolation: un CHECK de la tabla rechazó la fila (23514).
func isCheckViolation(err error) bool { return pgCode(err) == "23514" }
