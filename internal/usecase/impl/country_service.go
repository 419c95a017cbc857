package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	domainerrors "nms/internal/domain/errors"
	"nms/internal/domain/repository"
	"nms/internal/domain/service"
	"nms/internal/usecase"

	"github.com/biter777/countries"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type countryService struct {
	txManager   repository.TransactionManager
	countryRepo repository.CountryRepository
	reporter    mutationReporter
	logger      *slog.Logger
	now         func() time.Time
}

// CountryServiceParams holds dependencies for CountryService, injected by Fx.
type CountryServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CountryRepo repository.CountryRepository
	Publisher   service.EventPublisher
	Recorder    service.MutationRecorder
	Logger      *slog.Logger
}

func NewCountryService(params CountryServiceParams) usecase.CountryUsecase {
	return &countryService{
		txManager:   params.TxManager,
		countryRepo: params.CountryRepo,
		reporter:    newMutationReporter(params.Publisher, params.Recorder, params.Logger),
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *countryService) AddCountry(ctx context.Context, actorID int64, input *usecase.CountryDTO) (*usecase.CountryDTO, error) {
	input.Normalize()
	country := input.ToEntity()
	if country.TelephoneCode == "" {
		country.TelephoneCode = telephoneCodeOf(country.CountryName)
	}
	country.StampCreated(actorID, srv.now())

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		countryRepo := repoFactory.NewCountryRepository()

		_, err := countryRepo.FindCountryByName(ctx, country.CountryName)
		if err == nil {
			return domainerrors.ErrCountryAlreadyExists
		}
		if !errors.Is(err, repository.ErrCountryNotFound) {
			return errors.Wrap(err, "failed to check existing country")
		}

		return countryRepo.CreateCountry(ctx, country)
	})
	if err != nil {
		return nil, srv.reporter.failed(ctx, entityCountry, service.AuditActionCreated, err,
			domainerrors.ErrCountryCreateFailed,
			domainerrors.ErrCountryAlreadyExists,
		)
	}

	srv.reporter.succeeded(ctx, entityCountry, service.AuditActionCreated, country.ID, actorID, country.CreatedDate)

	return usecase.FromCountry(country), nil
}

func (srv *countryService) UpdateCountry(ctx context.Context, actorID int64, input *usecase.CountryDTO) error {
	input.Normalize()
	updatedAt := srv.now()

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		countryRepo := repoFactory.NewCountryRepository()

		country, err := countryRepo.FindCountryByID(ctx, input.ID)
		if errors.Is(err, repository.ErrCountryNotFound) {
			return domainerrors.ErrRecordNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to load country")
		}

		if input.SameAs(country) {
			return domainerrors.ErrNothingChanged
		}

		input.ApplyTo(country)
		country.StampUpdated(actorID, updatedAt)

		return countryRepo.UpdateCountry(ctx, country)
	})
	if err != nil {
		return srv.reporter.failed(ctx, entityCountry, service.AuditActionUpdated, err,
			domainerrors.ErrCountryUpdateFailed,
			domainerrors.ErrRecordNotFound,
			domainerrors.ErrNothingChanged,
			domainerrors.ErrCountryAlreadyExists,
		)
	}

	srv.reporter.succeeded(ctx, entityCountry, service.AuditActionUpdated, input.ID, actorID, updatedAt)

	return nil
}

func (srv *countryService) GetCountry(ctx context.Context, id int64) (*usecase.CountryDTO, error) {
	country, err := srv.countryRepo.FindCountryByID(ctx, id)
	if err != nil {
		return nil, readError(ctx, srv.logger, err, repository.ErrCountryNotFound)
	}

	return usecase.FromCountry(country), nil
}

func (srv *countryService) ListCountries(ctx context.Context) ([]*usecase.CountryDTO, error) {
	all, err := srv.countryRepo.FindCountries(ctx)
	if err != nil {
		return nil, readError(ctx, srv.logger, err, nil)
	}

	result := make([]*usecase.CountryDTO, 0, len(all))
	for _, country := range all {
		result = append(result, usecase.FromCountry(country))
	}

	return result, nil
}

// telephoneCodeOf returns the first international calling code of a country
// known to the ISO 3166 catalog, or "" for unknown names.
func telephoneCodeOf(countryName string) string {
	code := countries.ByName(countryName)
	if !code.IsValid() {
		return ""
	}

	callCodes := code.CallCodes()
	if len(callCodes) == 0 {
		return ""
	}

	return "+" + strconv.Itoa(int(callCodes[0]))
}
