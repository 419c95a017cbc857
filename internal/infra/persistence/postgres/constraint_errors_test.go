package postgres

import (
	"testing"

	domainerrors "nms/internal/domain/errors"
	"nms/internal/errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateWriteError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantIs   error
		wantCode string
	}{
		{
			name:     "gorm duplicated key",
			err:      gorm.ErrDuplicatedKey,
			wantIs:   domainerrors.ErrCountryAlreadyExists,
			wantCode: "COUNTRY_ALREADY_EXISTS",
		},
		{
			name:     "postgres unique violation",
			err:      errors.Wrap(&pgconn.PgError{Code: pgerrcode.UniqueViolation}, "insert"),
			wantIs:   domainerrors.ErrCountryAlreadyExists,
			wantCode: "COUNTRY_ALREADY_EXISTS",
		},
		{
			name:     "postgres foreign key violation",
			err:      &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation},
			wantCode: "DATABASE_EXECUTE_FAILED",
		},
		{
			name:     "postgres not null violation",
			err:      &pgconn.PgError{Code: pgerrcode.NotNullViolation},
			wantCode: "DATABASE_EXECUTE_FAILED",
		},
		{
			name:     "unknown error",
			err:      errors.New("connection reset"),
			wantCode: "DATABASE_EXECUTE_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := translateWriteError(tt.err, domainerrors.ErrCountryAlreadyExists, "failed to create country")

			var appErr domainerrors.AppError
			if assert.True(t, errors.As(err, &appErr)) {
				assert.Equal(t, tt.wantCode, appErr.ErrorCode())
			}
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
		})
	}
}
