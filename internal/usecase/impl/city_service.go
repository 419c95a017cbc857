package impl

import (
	"context"
	"log/slog"
	"time"

	domainerrors "nms/internal/domain/errors"
	"nms/internal/domain/repository"
	"nms/internal/domain/service"
	"nms/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type cityService struct {
	txManager repository.TransactionManager
	cityRepo  repository.CityRepository
	reporter  mutationReporter
	logger    *slog.Logger
	now       func() time.Time
}

// CityServiceParams holds dependencies for CityService, injected by Fx.
type CityServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CityRepo  repository.CityRepository
	Publisher service.EventPublisher
	Recorder  service.MutationRecorder
	Logger    *slog.Logger
}

func NewCityService(params CityServiceParams) usecase.CityUsecase {
	return &cityService{
		txManager: params.TxManager,
		cityRepo:  params.CityRepo,
		reporter:  newMutationReporter(params.Publisher, params.Recorder, params.Logger),
		logger:    params.Logger,
		now:       time.Now,
	}
}

// AddCity creates a city in an existing country unless the country already has a city with that name.
func (srv *cityService) AddCity(ctx context.Context, actorID int64, input *usecase.CityDTO) (*usecase.CityDTO, error) {
	input.Normalize()
	city := input.ToEntity()
	city.StampCreated(actorID, srv.now())

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := ensureCountryExists(ctx, repoFactory.NewCountryRepository(), city.CountryID); err != nil {
			return err
		}

		cityRepo := repoFactory.NewCityRepository()
		_, err := cityRepo.FindCityByName(ctx, city.CityName, city.CountryID)
		if err == nil {
			return domainerrors.ErrCityAlreadyExists
		}
		if !errors.Is(err, repository.ErrCityNotFound) {
			return errors.Wrap(err, "failed to check existing city")
		}

		return cityRepo.CreateCity(ctx, city)
	})
	if err != nil {
		return nil, srv.reporter.failed(ctx, entityCity, service.AuditActionCreated, err,
			domainerrors.ErrCityCreateFailed,
			domainerrors.ErrCityAlreadyExists,
			domainerrors.ErrCountryNotFound,
		)
	}

	srv.reporter.succeeded(ctx, entityCity, service.AuditActionCreated, city.ID, actorID, city.CreatedDate)

	return usecase.FromCity(city), nil
}

func (srv *cityService) UpdateCity(ctx context.Context, actorID int64, input *usecase.CityDTO) error {
	input.Normalize()
	updatedAt := srv.now()

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cityRepo := repoFactory.NewCityRepository()

		city, err := cityRepo.FindCityByID(ctx, input.ID)
		if errors.Is(err, repository.ErrCityNotFound) {
			return domainerrors.ErrRecordNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to load city")
		}

		if input.SameAs(city) {
			return domainerrors.ErrNothingChanged
		}
		if input.CountryID != city.CountryID {
			if err := ensureCountryExists(ctx, repoFactory.NewCountryRepository(), input.CountryID); err != nil {
				return err
			}
		}

		input.ApplyTo(city)
		city.StampUpdated(actorID, updatedAt)

		return cityRepo.UpdateCity(ctx, city)
	})
	if err != nil {
		return srv.reporter.failed(ctx, entityCity, service.AuditActionUpdated, err,
			domainerrors.ErrCityUpdateFailed,
			domainerrors.ErrRecordNotFound,
			domainerrors.ErrNothingChanged,
			domainerrors.ErrCityAlreadyExists,
			domainerrors.ErrCountryNotFound,
		)
	}

	srv.reporter.succeeded(ctx, entityCity, service.AuditActionUpdated, input.ID, actorID, updatedAt)

	return nil
}

func (srv *cityService) GetCity(ctx context.Context, id int64) (*usecase.CityDTO, error) {
	city, err := srv.cityRepo.FindCityByID(ctx, id)
	if err != nil {
		return nil, readError(ctx, srv.logger, err, repository.ErrCityNotFound)
	}

	return usecase.FromCity(city), nil
}

func (srv *cityService) ListCities(ctx context.Context, countryID int64) ([]*usecase.CityDTO, error) {
	cities, err := srv.cityRepo.FindCities(ctx, countryID)
	if err != nil {
		return nil, readError(ctx, srv.logger, err, nil)
	}

	result := make([]*usecase.CityDTO, 0, len(cities))
	for _, city := range cities {
		result = append(result, usecase.FromCity(city))
	}

	return result, nil
}

func ensureCountryExists(ctx context.Context, countryRepo repository.CountryRepository, countryID int64) error {
	_, err := countryRepo.FindCountryByID(ctx, countryID)
	if errors.Is(err, repository.ErrCountryNotFound) {
		return domainerrors.ErrCountryNotFound
	}

	return errors.Wrap(err, "failed to load country")
}
