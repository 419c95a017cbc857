package postgres

import (
	"strings"

	domainerrors "nms/internal/domain/errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pgErrorCode returns the SQLSTATE of a PostgreSQL error, or "" for any other error.
func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	// Check for GORM's translated duplicate key error first
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return pgErrorCode(err) == pgerrcode.UniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return pgErrorCode(err) == pgerrcode.ForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	if pgErrorCode(err) == pgerrcode.NotNullViolation {
		return true
	}

	// Drivers without SQLSTATE codes only report the message
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "not null constraint")
}

// translateWriteError converts insert/update failures into domain errors.
// Unique violations map to the entity's conflict error so a race between the
// duplicate pre-check and the insert surfaces the same way as the pre-check.
func translateWriteError(err error, conflict *domainerrors.BaseError, details string) error {
	if isUniqueConstraintViolation(err) {
		return conflict.WrapMessage("unique constraint violated")
	}
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.NewDatabaseExecuteError(err, "invalid foreign key reference")
	}
	if isNotNullConstraintViolation(err) {
		return domainerrors.NewDatabaseExecuteError(err, "missing required information")
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
