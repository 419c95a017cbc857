package impl

import (
	"context"
	"testing"

	"nms/internal/domain/entity"
	domainerrors "nms/internal/domain/errors"
	"nms/internal/domain/repository"
	"nms/internal/domain/service"
	"nms/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRoleService(m *serviceMocks) *roleService {
	svc := NewRoleService(RoleServiceParams{
		TxManager: m.txManager,
		RoleRepo:  m.roleRepo,
		Publisher: m.publisher,
		Recorder:  m.recorder,
		Logger:    newDiscardLogger(),
	}).(*roleService)
	svc.now = fixedClock

	return svc
}

func TestRoleService_AddRole_LowercasesName(t *testing.T) {
	m := newServiceMocks(t)
	svc := newTestRoleService(m)
	ctx := context.Background()

	m.expectTransaction(ctx)
	m.roleRepo.EXPECT().FindRoleByName(ctx, "auditor").Return(nil, repository.ErrRoleNotFound)
	m.roleRepo.EXPECT().
		CreateRole(ctx, mock.AnythingOfType("*entity.Role")).
		RunAndReturn(func(_ context.Context, role *entity.Role) error {
			role.ID = 3

			return nil
		})
	m.expectOutcome(entityRole, service.AuditActionCreated, service.OutcomeSuccess)
	m.publisher.EXPECT().PublishAuditEvent(mock.Anything, mock.Anything).Return(nil)

	result, err := svc.AddRole(ctx, 1, &usecase.RoleDTO{RoleName: " Auditor ", Description: "Read only"})
	require.NoError(t, err)
	assert.Equal(t, "auditor", result.RoleName)
	assert.Equal(t, int64(3), result.ID)
}

func TestRoleService_AddRole_Duplicate(t *testing.T) {
	m := newServiceMocks(t)
	svc := newTestRoleService(m)
	ctx := context.Background()

	m.expectTransaction(ctx)
	m.roleRepo.EXPECT().FindRoleByName(ctx, "admin").Return(&entity.Role{ID: 1, RoleName: "admin"}, nil)
	m.expectOutcome(entityRole, service.AuditActionCreated, service.OutcomeConflict)

	_, err := svc.AddRole(ctx, 1, &usecase.RoleDTO{RoleName: "ADMIN"})
	assert.ErrorIs(t, err, domainerrors.ErrRoleAlreadyExists)
}

func TestRoleService_UpdateRole_LookupFailure(t *testing.T) {
	m := newServiceMocks(t)
	svc := newTestRoleService(m)
	ctx := context.Background()

	m.expectTransaction(ctx)
	m.roleRepo.EXPECT().FindRoleByID(ctx, int64(1)).Return(nil, errors.New("db down"))
	m.expectOutcome(entityRole, service.AuditActionUpdated, service.OutcomeFailed)

	err := svc.UpdateRole(ctx, 1, &usecase.RoleDTO{ID: 1, RoleName: "admin"})
	assert.ErrorIs(t, err, domainerrors.ErrRoleUpdateFailed)
}

func TestRoleService_UpdateRole(t *testing.T) {
	m := newServiceMocks(t)
	svc := newTestRoleService(m)
	ctx := context.Background()

	stored := &entity.Role{ID: 2, RoleName: "management", Description: "Back office"}
	m.expectTransaction(ctx)
	m.roleRepo.EXPECT().FindRoleByID(ctx, int64(2)).Return(stored, nil)
	m.roleRepo.EXPECT().UpdateRole(ctx, stored).Return(nil)
	m.expectOutcome(entityRole, service.AuditActionUpdated, service.OutcomeSuccess)
	m.publisher.EXPECT().PublishAuditEvent(mock.Anything, mock.Anything).Return(nil)

	err := svc.UpdateRole(ctx, 1, &usecase.RoleDTO{ID: 2, RoleName: "management", Description: "Back office staff"})
	require.NoError(t, err)
	assert.Equal(t, "Back office staff", stored.Description)
	assert.Equal(t, 1, stored.UpdatedCount)
}

func TestRoleService_UpdateRole_PredefinedNameIsFixed(t *testing.T) {
	for _, predefined := range entity.PredefinedRoles {
		t.Run(predefined.RoleName, func(t *testing.T) {
			m := newServiceMocks(t)
			svc := newTestRoleService(m)
			ctx := context.Background()

			stored := &entity.Role{ID: 1, RoleName: predefined.RoleName, Description: predefined.Description}
			m.expectTransaction(ctx)
			m.roleRepo.EXPECT().FindRoleByID(ctx, int64(1)).Return(stored, nil)
			m.expectOutcome(entityRole, service.AuditActionUpdated, service.OutcomeConflict)

			err := svc.UpdateRole(ctx, 1, &usecase.RoleDTO{ID: 1, RoleName: "superuser", Description: predefined.Description})
			assert.ErrorIs(t, err, domainerrors.ErrRolePredefined)
			assert.Equal(t, predefined.RoleName, stored.RoleName)
			m.roleRepo.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything)
		})
	}
}

func TestRoleService_UpdateRole_RenamesCustomRole(t *testing.T) {
	m := newServiceMocks(t)
	svc := newTestRoleService(m)
	ctx := context.Background()

	stored := &entity.Role{ID: 5, RoleName: "auditor"}
	m.expectTransaction(ctx)
	m.roleRepo.EXPECT().FindRoleByID(ctx, int64(5)).Return(stored, nil)
	m.roleRepo.EXPECT().UpdateRole(ctx, stored).Return(nil)
	m.expectOutcome(entityRole, service.AuditActionUpdated, service.OutcomeSuccess)
	m.publisher.EXPECT().PublishAuditEvent(mock.Anything, mock.Anything).Return(nil)

	err := svc.UpdateRole(ctx, 1, &usecase.RoleDTO{ID: 5, RoleName: " Reviewer "})
	require.NoError(t, err)
	assert.Equal(t, "reviewer", stored.RoleName)
}

func TestRoleService_ListRoles(t *testing.T) {
	m := newServiceMocks(t)
	svc := newTestRoleService(m)
	ctx := context.Background()

	m.roleRepo.EXPECT().FindRoles(ctx).Return([]*entity.Role{{ID: 1, RoleName: "admin"}}, nil)

	result, err := svc.ListRoles(ctx)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "admin", result[0].RoleName)
}
