package main

import (
	"context"
	"log/slog"
	stdhttp "net/http"
	"os"

	"nms/config"
	"nms/internal/delivery"
	"nms/internal/delivery/http"
	"nms/internal/delivery/http/middleware"
	"nms/internal/delivery/http/router/handler"
	"nms/internal/domain/lifecycle"
	"nms/internal/domain/service"
	"nms/internal/errors"
	"nms/internal/infra/auth"
	logs "nms/internal/infra/log"
	"nms/internal/infra/metrics"
	"nms/internal/infra/persistence/postgres"
	"nms/internal/infra/pubsub"
	"nms/internal/usecase"
	"nms/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			bootstrapAccounts,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			newPinger,
			metrics.New,
			func(m *metrics.Metrics) service.MutationRecorder { return m },
			func(m *metrics.Metrics) middleware.RequestObserver { return m },
			fx.Annotate(
				func(m *metrics.Metrics) stdhttp.Handler { return m.Handler() },
				fx.ResultTags(`name:"metricsHandler"`),
			),
		),
		pubsub.Module,
	)
}

// newPinger exposes the pooled sql.DB behind gorm for health checks.
func newPinger(db *gorm.DB) (handler.Pinger, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	return sqlDB, nil
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAddressRepository,
			postgres.NewCountryRepository,
			postgres.NewCityRepository,
			postgres.NewCompanyRepository,
			postgres.NewRoleRepository,
			postgres.NewUserRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAddressService,
			impl.NewCountryService,
			impl.NewCityService,
			impl.NewCompanyService,
			impl.NewRoleService,
			impl.NewAccountService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAddressHandler,
			handler.NewCountryHandler,
			handler.NewCityHandler,
			handler.NewCompanyHandler,
			handler.NewRoleHandler,
			handler.NewAccountHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// bootstrapAccounts seeds roles and the configured administrator once the database is reachable.
func bootstrapAccounts(lc fx.Lifecycle, accountUC usecase.AccountUsecase, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := accountUC.Bootstrap(ctx); err != nil {
				return errors.Wrap(err, "failed to bootstrap accounts")
			}
			logger.Info("Account bootstrap complete")

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
