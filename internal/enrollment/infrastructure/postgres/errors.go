package postgres

import (
	"errors"

	"github.com/Lexv0lk/course-store/internal/enrollment/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode  = "23505"
	checkViolationCode   = "23514"
	deadlockDetectedCode = "40P01"
	lockNotAvailableCode = "55P03"
	queryCanceledCode    = "57014"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

func isUniqueViolation(err error) bool {
	return pgErrorCode(err) == uniqueViolationCode
}

func isCheckViolation(err error) bool {
	return pgErrorCode(err) == checkViolationCode
}

// translateLockError reports lock waits Postgres gave up on as timeouts.
func translateLockError(err error) error {
	switch pgErrorCode(err) {
	case deadlockDetectedCode:
		return &domain.TimeoutError{Msg: "deadlock detected", Err: err}
	case lockNotAvailableCode:
		return &domain.TimeoutError{Msg: "lock not available", Err: err}
	case queryCanceledCode:
		return &domain.TimeoutError{Msg: "statement canceled", Err: err}
	default:
		return err
	}
}
