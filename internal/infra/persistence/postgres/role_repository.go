package postgres

import (
	"context"

	"nms/internal/domain/entity"
	domainerrors "nms/internal/domain/errors"
	"nms/internal/domain/repository"
	"nms/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

func (repo *roleRepository) CreateRole(ctx context.Context, role *entity.Role) error {
	roleM := fromRoleDomain(role)

	if err := repo.db.WithContext(ctx).Create(roleM).Error; err != nil {
		return translateWriteError(err, domainerrors.ErrRoleAlreadyExists, "failed to create role")
	}
	role.ID = roleM.ID

	return nil
}

func (repo *roleRepository) FindRoleByID(ctx context.Context, id int64) (*entity.Role, error) {
	return repo.findOne(ctx, "failed to find role by ID", "id = ?", id)
}

// FindRoleByName expects a lowercase name, role names are stored lowercase.
func (repo *roleRepository) FindRoleByName(ctx context.Context, name string) (*entity.Role, error) {
	return repo.findOne(ctx, "failed to find role by name", "role_name = ?", name)
}

func (repo *roleRepository) findOne(ctx context.Context, msg string, query string, args ...any) (*entity.Role, error) {
	var roleM model.RoleModel
	if err := repo.db.WithContext(ctx).Where(query, args...).First(&roleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, msg)
	}

	role := toRoleDomain(&roleM)

	return &role, nil
}

func (repo *roleRepository) FindRolesByNames(ctx context.Context, names []string) ([]entity.Role, error) {
	if len(names) == 0 {
		return []entity.Role{}, nil
	}

	var roleModels []model.RoleModel
	err := repo.db.WithContext(ctx).
		Where("role_name IN ?", names).
		Order("id ASC").
		Find(&roleModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find roles by names")
	}

	return toRolesDomain(roleModels), nil
}

func (repo *roleRepository) FindRoles(ctx context.Context) ([]*entity.Role, error) {
	var roleModels []model.RoleModel
	if err := repo.db.WithContext(ctx).Order("id ASC").Find(&roleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find roles")
	}

	roles := make([]*entity.Role, 0, len(roleModels))
	for i := range roleModels {
		role := toRoleDomain(&roleModels[i])
		roles = append(roles, &role)
	}

	return roles, nil
}

func (repo *roleRepository) UpdateRole(ctx context.Context, role *entity.Role) error {
	affected, err := updateByID(ctx, repo.db, fromRoleDomain(role), role.ID)
	if err != nil {
		return translateWriteError(err, domainerrors.ErrRoleAlreadyExists, "failed to update role")
	}
	if affected == 0 {
		return repository.ErrNoRowsAffected
	}

	return nil
}

func toRoleDomain(data *model.RoleModel) entity.Role {
	return entity.Role{
		ID:          data.ID,
		RoleName:    data.RoleName,
		Description: data.Description,
		CommonField: toCommonDomain(data.CommonFieldModel),
	}
}

func toRolesDomain(data []model.RoleModel) []entity.Role {
	roles := make([]entity.Role, 0, len(data))
	for i := range data {
		roles = append(roles, toRoleDomain(&data[i]))
	}

	return roles
}

func fromRoleDomain(data *entity.Role) *model.RoleModel {
	return &model.RoleModel{
		ID:               data.ID,
		RoleName:         data.RoleName,
		Description:      data.Description,
		CommonFieldModel: fromCommonDomain(data.CommonField),
	}
}
