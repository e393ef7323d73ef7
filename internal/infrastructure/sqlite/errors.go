package sqlite

import (
	"errors"

	sqlite3 "github.com/mattn/go-sqlite3"
)

func extendedCode(err error) sqlite3.ErrNoExtended {
	var sqlErr sqlite3.Error
	if errors.As(err, &sqlErr) {
		return sqlErr.ExtendedCode
	}
	return 0
}

func isForeignKeyViolation(err error) bool {
	return extendedCode(err) == sqlite3.ErrConstraintForeignKey
}

func isCheckViolation(err error) bool {
	return extendedCode(err) == sqlite3.ErrConstraintCheck
}
