package employee

import (
	"errors"
	"strings"

	employeeerrors "go-paydesk/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	// The memory store signals a full-name collision with gorm's sentinel.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return employeeerrors.ErrEmployeeAlreadyExists
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_employee_full_name" {
			return employeeerrors.ErrEmployeeAlreadyExists
		}
	}

	// sqlite reports constraint violations as plain error strings
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "unique") && strings.Contains(errMsg, "full_name") {
		return employeeerrors.ErrEmployeeAlreadyExists
	}

	return err
}
