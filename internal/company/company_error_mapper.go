package company

import (
	"errors"
	"strings"

	companyerrors "go-paydesk/internal/company/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return companyerrors.ErrCompanyNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_company_name" {
			return companyerrors.ErrCompanyAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "unique") && strings.Contains(errMsg, "companies.name") {
		return companyerrors.ErrCompanyAlreadyExists
	}

	return err
}
