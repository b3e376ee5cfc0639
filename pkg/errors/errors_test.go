package errorsUtils_test

import (
	"errors"
	"fmt"
	"testing"

	errorsUtils "github.com/Egor213/LogiGraph/pkg/errors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapPathErr(t *testing.T) {
	base := errors.New("boom")

	err := errorsUtils.WrapPathErr(base)

	assert.ErrorIs(t, err, base)
	assert.Contains(t, err.Error(), "TestWrapPathErr")
	assert.Contains(t, err.Error(), "boom")
}

func TestIsDataViolation(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want bool
	}{
		{"not null", &pgconn.PgError{Code: errorsUtils.CodeNotNullViolation}, true},
		{"bad integer text", fmt.Errorf("copy: %w", &pgconn.PgError{Code: errorsUtils.CodeInvalidTextRepr}), true},
		{"unique", &pgconn.PgError{Code: errorsUtils.CodeUniqueViolation}, false},
		{"plain error", errors.New("connection refused"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, errorsUtils.IsDataViolation(tc.err))
		})
	}
}
