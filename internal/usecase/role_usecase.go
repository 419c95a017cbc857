package usecase

import (
	"context"

	"nms/internal/domain/entity"
)

// RoleDTO is the wire representation of a role.
type RoleDTO struct {
	ID          int64  `json:"roleId" validate:"omitempty,gt=0"`
	RoleName    string `json:"roleName" validate:"required,max=50"`
	Description string `json:"description" validate:"max=256"`

	AuditFields
}

// Normalize trims the description and lowercases the role name.
func (d *RoleDTO) Normalize() {
	lower(&d.RoleName)
	trim(&d.Description)
}

func (d *RoleDTO) ToEntity() *entity.Role {
	return &entity.Role{
		RoleName:    d.RoleName,
		Description: d.Description,
	}
}

func (d *RoleDTO) ApplyTo(role *entity.Role) {
	role.RoleName = d.RoleName
	role.Description = d.Description
}

func (d *RoleDTO) SameAs(role *entity.Role) bool {
	return d.RoleName == role.RoleName && d.Description == role.Description
}

func FromRole(role *entity.Role) *RoleDTO {
	return &RoleDTO{
		ID:          role.ID,
		RoleName:    role.RoleName,
		Description: role.Description,
		AuditFields: fromCommonField(role.CommonField),
	}
}

// RoleUsecase defines the role management operations.
type RoleUsecase interface {
	AddRole(ctx context.Context, actorID int64, input *RoleDTO) (*RoleDTO, error)
	UpdateRole(ctx context.Context, actorID int64, input *RoleDTO) error
	GetRole(ctx context.Context, id int64) (*RoleDTO, error)
	ListRoles(ctx context.Context) ([]*RoleDTO, error)
}
