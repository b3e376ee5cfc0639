package errorsUtils

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	CodeUniqueViolation  = "23505"
	CodeNotNullViolation = "23502"
	CodeInvalidTextRepr  = "22P02"
)

func Is(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

func IsNotNullViolation(err error) bool {
	return Is(err, CodeNotNullViolation)
}

// IsDataViolation reports whether postgres rejected a row because of its
// contents rather than because the connection or server failed.
func IsDataViolation(err error) bool {
	return IsNotNullViolation(err) || Is(err, CodeInvalidTextRepr)
}

func WrapPathErr(err error) error {
	pc, _, line, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return fmt.Errorf("[%s:%d] %w", fn, line, err)
}
