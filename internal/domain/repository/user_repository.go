package repository

import (
	"context"

	"nms/internal/domain/entity"
	"nms/internal/errors"
)

// ErrUserNotFound is returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// CreateUser persists a user together with its role links.
	// Every role in user.Roles must already exist.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves a user with its roles.
	FindUserByID(ctx context.Context, id int64) (*entity.User, error)

	// FindUserByUserName retrieves a user with its roles. userName must be lowercase.
	FindUserByUserName(ctx context.Context, userName string) (*entity.User, error)

	// FindUserByEmail matches the email case-insensitively.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)
}
