package impl

import (
	"context"
	"log/slog"
	"time"

	"nms/internal/domain/entity"
	domainerrors "nms/internal/domain/errors"
	"nms/internal/domain/repository"
	"nms/internal/domain/service"
	"nms/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type roleService struct {
	txManager repository.TransactionManager
	roleRepo  repository.RoleRepository
	reporter  mutationReporter
	logger    *slog.Logger
	now       func() time.Time
}

// RoleServiceParams holds dependencies for RoleService, injected by Fx.
type RoleServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	RoleRepo  repository.RoleRepository
	Publisher service.EventPublisher
	Recorder  service.MutationRecorder
	Logger    *slog.Logger
}

func NewRoleService(params RoleServiceParams) usecase.RoleUsecase {
	return &roleService{
		txManager: params.TxManager,
		roleRepo:  params.RoleRepo,
		reporter:  newMutationReporter(params.Publisher, params.Recorder, params.Logger),
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *roleService) AddRole(ctx context.Context, actorID int64, input *usecase.RoleDTO) (*usecase.RoleDTO, error) {
	input.Normalize()
	role := input.ToEntity()
	role.StampCreated(actorID, srv.now())

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		roleRepo := repoFactory.NewRoleRepository()

		_, err := roleRepo.FindRoleByName(ctx, role.RoleName)
		if err == nil {
			return domainerrors.ErrRoleAlreadyExists
		}
		if !errors.Is(err, repository.ErrRoleNotFound) {
			return errors.Wrap(err, "failed to check existing role")
		}

		return roleRepo.CreateRole(ctx, role)
	})
	if err != nil {
		return nil, srv.reporter.failed(ctx, entityRole, service.AuditActionCreated, err,
			domainerrors.ErrRoleCreateFailed,
			domainerrors.ErrRoleAlreadyExists,
		)
	}

	srv.reporter.succeeded(ctx, entityRole, service.AuditActionCreated, role.ID, actorID, role.CreatedDate)

	return usecase.FromRole(role), nil
}

// UpdateRole renames or re-describes a role. Users holding the role keep it.
// Predefined roles only accept a new description.
func (srv *roleService) UpdateRole(ctx context.Context, actorID int64, input *usecase.RoleDTO) error {
	input.Normalize()
	updatedAt := srv.now()

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		roleRepo := repoFactory.NewRoleRepository()

		role, err := roleRepo.FindRoleByID(ctx, input.ID)
		if errors.Is(err, repository.ErrRoleNotFound) {
			return domainerrors.ErrRecordNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to load role")
		}

		if input.SameAs(role) {
			return domainerrors.ErrNothingChanged
		}
		if input.RoleName != role.RoleName && entity.PredefinedRoles.Contains(role.RoleName) {
			return domainerrors.ErrRolePredefined
		}

		input.ApplyTo(role)
		role.StampUpdated(actorID, updatedAt)

		return roleRepo.UpdateRole(ctx, role)
	})
	if err != nil {
		return srv.reporter.failed(ctx, entityRole, service.AuditActionUpdated, err,
			domainerrors.ErrRoleUpdateFailed,
			domainerrors.ErrRecordNotFound,
			domainerrors.ErrNothingChanged,
			domainerrors.ErrRoleAlreadyExists,
			domainerrors.ErrRolePredefined,
		)
	}

	srv.reporter.succeeded(ctx, entityRole, service.AuditActionUpdated, input.ID, actorID, updatedAt)

	return nil
}

func (srv *roleService) GetRole(ctx context.Context, id int64) (*usecase.RoleDTO, error) {
	role, err := srv.roleRepo.FindRoleByID(ctx, id)
	if err != nil {
		return nil, readError(ctx, srv.logger, err, repository.ErrRoleNotFound)
	}

	return usecase.FromRole(role), nil
}

func (srv *roleService) ListRoles(ctx context.Context) ([]*usecase.RoleDTO, error) {
	roles, err := srv.roleRepo.FindRoles(ctx)
	if err != nil {
		return nil, readError(ctx, srv.logger, err, nil)
	}

	result := make([]*usecase.RoleDTO, 0, len(roles))
	for _, role := range roles {
		result = append(result, usecase.FromRole(role))
	}

	return result, nil
}
