package impl

import (
	"context"
	"testing"
	"time"

	"nms/config"
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

func newTestAccountService(m *serviceMocks, bootstrap *config.BootstrapConfig) *accountService {
	svc := NewAccountService(AccountServiceParams{
		TxManager:    m.txManager,
		UserRepo:     m.userRepo,
		Hasher:       m.hasher,
		TokenService: m.tokens,
		Publisher:    m.publisher,
		Recorder:     m.recorder,
		Config:       &config.Config{Bootstrap: bootstrap},
		Logger:       newDiscardLogger(),
	}).(*accountService)
	svc.now = fixedClock

	return svc
}

func validRegistration() *usecase.RegisterDTO {
	return &usecase.RegisterDTO{
		UserName: " Alice ",
		FullName: "Alice Doe",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
		Roles:    []string{"Management", "management"},
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	m := newServiceMocks(t)
	svc := newTestAccountService(m, nil)
	ctx := context.Background()

	management := entity.Role{ID: 2, RoleName: entity.RoleManagement}

	m.expectTransaction(ctx)
	m.userRepo.EXPECT().FindUserByUserName(ctx, "alice").Return(nil, repository.ErrUserNotFound)
	m.userRepo.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(nil, repository.ErrUserNotFound)
	m.roleRepo.EXPECT().FindRolesByNames(ctx, []string{"management"}).Return([]entity.Role{management}, nil)
	m.hasher.EXPECT().Hash("s3cret-pass").Return("hashed", nil)
	m.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			assert.Equal(t, "hashed", user.PasswordHash)
			assert.Equal(t, int64(1), user.CreatedBy)
			user.ID = 20

			return nil
		})
	m.expectOutcome(entityUser, service.AuditActionCreated, service.OutcomeSuccess)
	m.publisher.EXPECT().PublishAuditEvent(mock.Anything, mock.Anything).Return(nil)

	result, err := svc.Register(ctx, 1, validRegistration())
	require.NoError(t, err)
	assert.Equal(t, int64(20), result.ID)
	assert.Equal(t, "alice", result.UserName)
	assert.Equal(t, []string{"management"}, result.Roles)
}

func TestAccountService_Register_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(m *serviceMocks, ctx context.Context)
		outcome     string
		expectedErr error
	}{
		{
			name: "user name taken",
			setup: func(m *serviceMocks, ctx context.Context) {
				m.userRepo.EXPECT().FindUserByUserName(ctx, "alice").Return(&entity.User{ID: 3}, nil)
			},
			outcome:     service.OutcomeConflict,
			expectedErr: domainerrors.ErrUserAlreadyExists,
		},
		{
			name: "email taken",
			setup: func(m *serviceMocks, ctx context.Context) {
				m.userRepo.EXPECT().FindUserByUserName(ctx, "alice").Return(nil, repository.ErrUserNotFound)
				m.userRepo.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(&entity.User{ID: 3}, nil)
			},
			outcome:     service.OutcomeConflict,
			expectedErr: domainerrors.ErrUserAlreadyExists,
		},
		{
			name: "unknown role",
			setup: func(m *serviceMocks, ctx context.Context) {
				m.userRepo.EXPECT().FindUserByUserName(ctx, "alice").Return(nil, repository.ErrUserNotFound)
				m.userRepo.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(nil, repository.ErrUserNotFound)
				m.roleRepo.EXPECT().FindRolesByNames(ctx, []string{"management"}).Return([]entity.Role{}, nil)
			},
			outcome:     service.OutcomeNotFound,
			expectedErr: domainerrors.ErrRoleNotFound,
		},
		{
			name: "hash failure",
			setup: func(m *serviceMocks, ctx context.Context) {
				m.userRepo.EXPECT().FindUserByUserName(ctx, "alice").Return(nil, repository.ErrUserNotFound)
				m.userRepo.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(nil, repository.ErrUserNotFound)
				m.roleRepo.EXPECT().
					FindRolesByNames(ctx, []string{"management"}).
					Return([]entity.Role{{ID: 2, RoleName: entity.RoleManagement}}, nil)
				m.hasher.EXPECT().Hash("s3cret-pass").Return("", errors.New("cost too high"))
			},
			outcome:     service.OutcomeFailed,
			expectedErr: domainerrors.ErrPasswordHashFailed,
		},
		{
			name: "lookup failure",
			setup: func(m *serviceMocks, ctx context.Context) {
				m.userRepo.EXPECT().FindUserByUserName(ctx, "alice").Return(nil, errors.New("timeout"))
			},
			outcome:     service.OutcomeFailed,
			expectedErr: domainerrors.ErrUserCreationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newServiceMocks(t)
			svc := newTestAccountService(m, nil)
			ctx := context.Background()

			m.expectTransaction(ctx)
			tt.setup(m, ctx)
			m.expectOutcome(entityUser, service.AuditActionCreated, tt.outcome)

			result, err := svc.Register(ctx, 1, validRegistration())
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestAccountService_Login(t *testing.T) {
	stored := &entity.User{
		ID:           20,
		UserName:     "alice",
		PasswordHash: "hashed",
		Roles:        entity.Roles{{ID: 1, RoleName: entity.RoleAdmin}},
	}
	expiresAt := fixedNow.Add(time.Hour)

	t.Run("success", func(t *testing.T) {
		m := newServiceMocks(t)
		svc := newTestAccountService(m, nil)
		ctx := context.Background()

		m.userRepo.EXPECT().FindUserByUserName(ctx, "alice").Return(stored, nil)
		m.hasher.EXPECT().Check("s3cret-pass", "hashed").Return(true)
		m.tokens.EXPECT().GenerateAccessToken(int64(20), []string{entity.RoleAdmin}).Return("token", expiresAt, nil)

		output, err := svc.Login(ctx, &usecase.LoginDTO{UserName: "Alice", Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.Equal(t, "token", output.AccessToken)
		assert.Equal(t, "Bearer", output.TokenType)
		assert.Equal(t, expiresAt, output.ExpiresAt)
		assert.Equal(t, int64(20), output.User.ID)
	})

	t.Run("unknown user", func(t *testing.T) {
		m := newServiceMocks(t)
		svc := newTestAccountService(m, nil)
		ctx := context.Background()

		m.userRepo.EXPECT().FindUserByUserName(ctx, "bob").Return(nil, repository.ErrUserNotFound)

		_, err := svc.Login(ctx, &usecase.LoginDTO{UserName: "bob", Password: "whatever"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		m := newServiceMocks(t)
		svc := newTestAccountService(m, nil)
		ctx := context.Background()

		m.userRepo.EXPECT().FindUserByUserName(ctx, "alice").Return(stored, nil)
		m.hasher.EXPECT().Check("wrong", "hashed").Return(false)

		_, err := svc.Login(ctx, &usecase.LoginDTO{UserName: "alice", Password: "wrong"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("token failure", func(t *testing.T) {
		m := newServiceMocks(t)
		svc := newTestAccountService(m, nil)
		ctx := context.Background()

		m.userRepo.EXPECT().FindUserByUserName(ctx, "alice").Return(stored, nil)
		m.hasher.EXPECT().Check("s3cret-pass", "hashed").Return(true)
		m.tokens.EXPECT().GenerateAccessToken(int64(20), []string{entity.RoleAdmin}).Return("", time.Time{}, errors.New("no key"))

		_, err := svc.Login(ctx, &usecase.LoginDTO{UserName: "alice", Password: "s3cret-pass"})
		assert.ErrorIs(t, err, domainerrors.ErrInternalError)
	})
}

func TestAccountService_Bootstrap_CreatesRolesAndAdmin(t *testing.T) {
	m := newServiceMocks(t)
	svc := newTestAccountService(m, &config.BootstrapConfig{
		AdminUserName: "Admin",
		AdminPassword: "change-me-now",
		AdminEmail:    "admin@example.com",
	})
	ctx := context.Background()

	m.expectTransaction(ctx)
	m.roleRepo.EXPECT().FindRoleByName(ctx, entity.RoleAdmin).Return(nil, repository.ErrRoleNotFound)
	m.roleRepo.EXPECT().FindRoleByName(ctx, entity.RoleManagement).Return(&entity.Role{ID: 2}, nil)
	m.roleRepo.EXPECT().
		CreateRole(ctx, mock.AnythingOfType("*entity.Role")).
		RunAndReturn(func(_ context.Context, role *entity.Role) error {
			assert.Equal(t, entity.RoleAdmin, role.RoleName)
			assert.Equal(t, fixedNow, role.CreatedDate)

			return nil
		}).Once()
	m.userRepo.EXPECT().FindUserByUserName(ctx, "admin").Return(nil, repository.ErrUserNotFound).Times(2)
	m.userRepo.EXPECT().FindUserByEmail(ctx, "admin@example.com").Return(nil, repository.ErrUserNotFound)
	m.roleRepo.EXPECT().
		FindRolesByNames(ctx, []string{entity.RoleAdmin}).
		Return([]entity.Role{{ID: 1, RoleName: entity.RoleAdmin}}, nil)
	m.hasher.EXPECT().Hash("change-me-now").Return("hashed", nil)
	m.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			assert.Equal(t, "admin", user.UserName)
			assert.True(t, user.Roles.Contains(entity.RoleAdmin))

			return nil
		})

	require.NoError(t, svc.Bootstrap(ctx))
}

func TestAccountService_Bootstrap_ExistingAdminIsKept(t *testing.T) {
	m := newServiceMocks(t)
	svc := newTestAccountService(m, &config.BootstrapConfig{AdminUserName: "admin", AdminPassword: "change-me-now"})
	ctx := context.Background()

	m.expectTransaction(ctx)
	m.roleRepo.EXPECT().FindRoleByName(ctx, mock.AnythingOfType("string")).Return(&entity.Role{ID: 1}, nil)
	m.userRepo.EXPECT().FindUserByUserName(ctx, "admin").Return(&entity.User{ID: 1}, nil)

	require.NoError(t, svc.Bootstrap(ctx))
}

func TestAccountService_Bootstrap_WithoutAdminConfig(t *testing.T) {
	m := newServiceMocks(t)
	svc := newTestAccountService(m, nil)
	ctx := context.Background()

	m.expectTransaction(ctx)
	m.roleRepo.EXPECT().FindRoleByName(ctx, mock.AnythingOfType("string")).Return(&entity.Role{ID: 1}, nil)

	require.NoError(t, svc.Bootstrap(ctx))
}
