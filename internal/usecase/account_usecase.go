package usecase

import (
	"context"
	"time"

	"nms/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterDTO defines the data required to create a user account.
type RegisterDTO struct {
	UserName string   `json:"userName" validate:"required,min=3,max=50"`
	FullName string   `json:"fullName" validate:"max=256"`
	Email    string   `json:"email" validate:"required,email,max=256"`
	Password string   `json:"password" validate:"required,min=8,max=72"`
	Roles    []string `json:"roles" validate:"required,min=1,dive,required,max=50"`
}

// Normalize trims every field, lowercases the user name and role names and drops duplicate roles.
// The password is left untouched.
func (d *RegisterDTO) Normalize() {
	lower(&d.UserName)
	trim(&d.FullName)
	trim(&d.Email)

	seen := make(map[string]struct{}, len(d.Roles))
	roles := make([]string, 0, len(d.Roles))
	for _, role := range d.Roles {
		lower(&role)
		if _, ok := seen[role]; ok || role == "" {
			continue
		}
		seen[role] = struct{}{}
		roles = append(roles, role)
	}
	d.Roles = roles
}

// ToEntity builds the user without password hash or roles.
func (d *RegisterDTO) ToEntity() *entity.User {
	return &entity.User{
		UserName: d.UserName,
		FullName: d.FullName,
		Email:    d.Email,
	}
}

// LoginDTO defines the data required for a user to log in.
type LoginDTO struct {
	UserName string `json:"userName" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (d *LoginDTO) Normalize() {
	lower(&d.UserName)
}

// --- Output DTOs ---

// UserDTO is the outbound view of a user. The password hash never leaves the service.
type UserDTO struct {
	ID       int64    `json:"userId"`
	UserName string   `json:"userName"`
	FullName string   `json:"fullName"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`

	AuditFields
}

func FromUser(user *entity.User) *UserDTO {
	return &UserDTO{
		ID:          user.ID,
		UserName:    user.UserName,
		FullName:    user.FullName,
		Email:       user.Email,
		Roles:       user.Roles.Names(),
		AuditFields: fromCommonField(user.CommonField),
	}
}

// LoginOutput returns the generated access token after a successful login.
type LoginOutput struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
	User        *UserDTO  `json:"user"`
}

// AccountUsecase defines user account operations.
type AccountUsecase interface {
	// Register creates a user with the requested existing roles.
	Register(ctx context.Context, actorID int64, input *RegisterDTO) (*UserDTO, error)
	Login(ctx context.Context, input *LoginDTO) (*LoginOutput, error)
	// Bootstrap creates the predefined roles and the configured administrator when missing.
	Bootstrap(ctx context.Context) error
}
