package impl

import (
	"context"
	"log/slog"
	"time"

	"nms/config"
	deliverycontext "nms/internal/delivery/context"
	"nms/internal/domain/entity"
	domainerrors "nms/internal/domain/errors"
	"nms/internal/domain/repository"
	"nms/internal/domain/service"
	"nms/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const tokenTypeBearer = "Bearer"

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	bootstrap    *config.BootstrapConfig
	reporter     mutationReporter
	logger       *slog.Logger
	now          func() time.Time
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Publisher    service.EventPublisher
	Recorder     service.MutationRecorder
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	var bootstrap *config.BootstrapConfig
	if params.Config != nil {
		bootstrap = params.Config.Bootstrap
	}

	return &accountService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		bootstrap:    bootstrap,
		reporter:     newMutationReporter(params.Publisher, params.Recorder, params.Logger),
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a user account holding the requested roles. Every role must already exist.
func (srv *accountService) Register(ctx context.Context, actorID int64, input *usecase.RegisterDTO) (*usecase.UserDTO, error) {
	input.Normalize()
	srv.log(ctx).Info("Starting registration", slog.String("userName", input.UserName), slog.Any("roles", input.Roles))

	user := input.ToEntity()
	user.StampCreated(actorID, srv.now())

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return srv.createUser(ctx, repoFactory, user, input.Password, input.Roles)
	})
	if err != nil {
		return nil, srv.reporter.failed(ctx, entityUser, service.AuditActionCreated, err,
			domainerrors.ErrUserCreationFailed,
			domainerrors.ErrUserAlreadyExists,
			domainerrors.ErrRoleNotFound,
			domainerrors.ErrPasswordHashFailed,
		)
	}

	srv.reporter.succeeded(ctx, entityUser, service.AuditActionCreated, user.ID, actorID, user.CreatedDate)

	return usecase.FromUser(user), nil
}

func (srv *accountService) createUser(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	user *entity.User,
	password string,
	roleNames []string,
) error {
	userRepo := repoFactory.NewUserRepository()

	if err := ensureUserAbsent(userRepo.FindUserByUserName(ctx, user.UserName)); err != nil {
		return err
	}
	if err := ensureUserAbsent(userRepo.FindUserByEmail(ctx, user.Email)); err != nil {
		return err
	}

	roles, err := repoFactory.NewRoleRepository().FindRolesByNames(ctx, roleNames)
	if err != nil {
		return errors.Wrap(err, "failed to load roles")
	}
	if len(roles) != len(roleNames) {
		return domainerrors.ErrRoleNotFound
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return domainerrors.ErrPasswordHashFailed
	}

	user.PasswordHash = hash
	user.Roles = roles

	return userRepo.CreateUser(ctx, user)
}

func ensureUserAbsent(_ *entity.User, err error) error {
	if err == nil {
		return domainerrors.ErrUserAlreadyExists
	}
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil
	}

	return errors.Wrap(err, "failed to check existing user")
}

// Login verifies the credentials and issues an access token carrying the user's roles.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginDTO) (*usecase.LoginOutput, error) {
	input.Normalize()

	user, err := srv.userRepo.FindUserByUserName(ctx, input.UserName)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Login attempt for unknown user", slog.String("userName", input.UserName))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		srv.log(ctx).Error("Failed to load user for login", slog.Any("error", err))

		return nil, domainerrors.ErrInternalError
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch on login", slog.Int64("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, expiresAt, err := srv.tokenService.GenerateAccessToken(user.ID, user.Roles.Names())
	if err != nil {
		srv.log(ctx).Error("Failed to generate access token", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError
	}

	srv.log(ctx).Debug("Login succeeded", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		ExpiresAt:   expiresAt,
		User:        usecase.FromUser(user),
	}, nil
}

// Bootstrap is idempotent: existing roles and an existing administrator are left untouched.
func (srv *accountService) Bootstrap(ctx context.Context) error {
	now := srv.now()

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		roleRepo := repoFactory.NewRoleRepository()

		for _, predefined := range entity.PredefinedRoles {
			_, err := roleRepo.FindRoleByName(ctx, predefined.RoleName)
			if err == nil {
				continue
			}
			if !errors.Is(err, repository.ErrRoleNotFound) {
				return errors.Wrapf(err, "failed to look up role %q", predefined.RoleName)
			}

			role := predefined
			role.StampCreated(0, now)
			if err := roleRepo.CreateRole(ctx, &role); err != nil {
				return errors.Wrapf(err, "failed to create role %q", predefined.RoleName)
			}
			srv.log(ctx).Info("Created predefined role", slog.String("role", role.RoleName))
		}

		if srv.bootstrap == nil || srv.bootstrap.AdminUserName == "" || srv.bootstrap.AdminPassword == "" {
			return nil
		}

		admin := &usecase.RegisterDTO{
			UserName: srv.bootstrap.AdminUserName,
			FullName: "Administrator",
			Email:    srv.bootstrap.AdminEmail,
			Password: srv.bootstrap.AdminPassword,
			Roles:    []string{entity.RoleAdmin},
		}
		admin.Normalize()

		_, err := repoFactory.NewUserRepository().FindUserByUserName(ctx, admin.UserName)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to look up administrator")
		}

		user := admin.ToEntity()
		user.StampCreated(0, now)
		if err := srv.createUser(ctx, repoFactory, user, admin.Password, admin.Roles); err != nil {
			return errors.Wrap(err, "failed to create administrator")
		}
		srv.log(ctx).Info("Created administrator account", slog.String("userName", user.UserName))

		return nil
	})
}
