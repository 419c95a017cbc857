package repository

import (
	"context"

	"nms/internal/domain/entity"
	"nms/internal/errors"
)

// ErrRoleNotFound is returned when a role is not found.
var ErrRoleNotFound = errors.New("role not found")

// RoleRepository defines the interface for role-related database operations.
type RoleRepository interface {
	CreateRole(ctx context.Context, role *entity.Role) error
	FindRoleByID(ctx context.Context, id int64) (*entity.Role, error)
	FindRoleByName(ctx context.Context, name string) (*entity.Role, error)

	// FindRolesByNames returns the roles that exist among names. Missing names are skipped.
	FindRolesByNames(ctx context.Context, names []string) ([]entity.Role, error)

	FindRoles(ctx context.Context) ([]*entity.Role, error)
	UpdateRole(ctx context.Context, role *entity.Role) error
}
