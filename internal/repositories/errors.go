package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"ibrac/internal/domain"

	"github.com/go-sql-driver/mysql"
)

// MySQL server error numbers handled explicitly.
const (
	erDupEntry        = 1062
	erRowIsReferenced = 1451
	erNoReferencedRow = 1452
)

var errNoDB = errors.New("database not connected")

// mapError translates driver errors into domain errors. Anything unrecognized is
// wrapped with the resource name and passed through.
func mapError(resource string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: resource, Err: err}
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case erDupEntry:
			return domain.ConflictError{Resource: resource, Msg: "registro duplicado", Err: err}
		case erRowIsReferenced:
			return domain.ConflictError{Resource: resource, Msg: "registro em uso", Err: err}
		case erNoReferencedRow:
			return domain.ValidationError{Field: "material", Msg: "referência inexistente", Err: err}
		}
	}
	return fmt.Errorf("%s: %w", resource, err)
}
