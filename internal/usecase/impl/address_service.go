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

// addressService implements the AddressUsecase interface.
type addressService struct {
	txManager   repository.TransactionManager
	addressRepo repository.AddressRepository
	reporter    mutationReporter
	logger      *slog.Logger
	now         func() time.Time
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AddressRepo repository.AddressRepository
	Publisher   service.EventPublisher
	Recorder    service.MutationRecorder
	Logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		txManager:   params.TxManager,
		addressRepo: params.AddressRepo,
		reporter:    newMutationReporter(params.Publisher, params.Recorder, params.Logger),
		logger:      params.Logger,
		now:         time.Now,
	}
}

// AddAddress creates an address unless one already exists for the same source in the same city.
func (srv *addressService) AddAddress(ctx context.Context, actorID int64, input *usecase.AddressDTO) (*usecase.AddressDTO, error) {
	input.Normalize()
	address := input.ToEntity()
	address.StampCreated(actorID, srv.now())

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		_, err := addressRepo.FindAddressBySource(ctx, address.SourceID, address.SourceType, address.CityID)
		if err == nil {
			return domainerrors.ErrAddressAlreadyExists
		}
		if !errors.Is(err, repository.ErrAddressNotFound) {
			return errors.Wrap(err, "failed to check existing address")
		}

		return addressRepo.CreateAddress(ctx, address)
	})
	if err != nil {
		return nil, srv.reporter.failed(ctx, entityAddress, service.AuditActionCreated, err,
			domainerrors.ErrAddressCreateFailed,
			domainerrors.ErrAddressAlreadyExists,
		)
	}

	srv.reporter.succeeded(ctx, entityAddress, service.AuditActionCreated, address.ID, actorID, address.CreatedDate)

	return usecase.FromAddress(address), nil
}

// UpdateAddress applies the input to the stored address when at least one field changed.
func (srv *addressService) UpdateAddress(ctx context.Context, actorID int64, input *usecase.AddressDTO) error {
	input.Normalize()
	updatedAt := srv.now()

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		address, err := addressRepo.FindAddressByID(ctx, input.ID)
		if errors.Is(err, repository.ErrAddressNotFound) {
			return domainerrors.ErrRecordNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to load address")
		}

		if input.SameAs(address) {
			return domainerrors.ErrNothingChanged
		}

		input.ApplyTo(address)
		address.StampUpdated(actorID, updatedAt)

		return addressRepo.UpdateAddress(ctx, address)
	})
	if err != nil {
		return srv.reporter.failed(ctx, entityAddress, service.AuditActionUpdated, err,
			domainerrors.ErrAddressUpdateFailed,
			domainerrors.ErrRecordNotFound,
			domainerrors.ErrNothingChanged,
			domainerrors.ErrAddressAlreadyExists,
		)
	}

	srv.reporter.succeeded(ctx, entityAddress, service.AuditActionUpdated, input.ID, actorID, updatedAt)

	return nil
}

func (srv *addressService) GetAddress(ctx context.Context, id int64) (*usecase.AddressDTO, error) {
	address, err := srv.addressRepo.FindAddressByID(ctx, id)
	if err != nil {
		return nil, readError(ctx, srv.logger, err, repository.ErrAddressNotFound)
	}

	return usecase.FromAddress(address), nil
}

func (srv *addressService) ListAddresses(ctx context.Context, filter usecase.AddressFilter) ([]*usecase.AddressDTO, error) {
	addresses, err := srv.addressRepo.FindAddresses(ctx, repository.AddressFilter{
		CityID:     filter.CityID,
		SourceType: normalizeSourceType(filter.SourceType),
	})
	if err != nil {
		return nil, readError(ctx, srv.logger, err, nil)
	}

	result := make([]*usecase.AddressDTO, 0, len(addresses))
	for _, address := range addresses {
		result = append(result, usecase.FromAddress(address))
	}

	return result, nil
}

func normalizeSourceType(sourceType string) string {
	dto := usecase.AddressDTO{SourceType: sourceType}
	dto.Normalize()

	return dto.SourceType
}
