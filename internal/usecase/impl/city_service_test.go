package impl

import (
	"context"
	"testing"

	"nms/internal/domain/entity"
	domainerrors "nms/internal/domain/errors"
	"nms/internal/domain/repository"
	"nms/internal/domain/service"
	"nms/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCityService(m *serviceMocks) *cityService {
	svc := NewCityService(CityServiceParams{
		TxManager: m.txManager,
		CityRepo:  m.cityRepo,
		Publisher: m.publisher,
		Recorder:  m.recorder,
		Logger:    newDiscardLogger(),
	}).(*cityService)
	svc.now = fixedClock

	return svc
}

func TestCityService_AddCity_Success(t *testing.T) {
	m := newServiceMocks(t)
	svc := newTestCityService(m)
	ctx := context.Background()

	m.expectTransaction(ctx)
	m.countryRepo.EXPECT().FindCountryByID(ctx, int64(1)).Return(&entity.Country{ID: 1}, nil)
	m.cityRepo.EXPECT().FindCityByName(ctx, "Dhaka", int64(1)).Return(nil, repository.ErrCityNotFound)
	m.cityRepo.EXPECT().
		CreateCity(ctx, mock.AnythingOfType("*entity.City")).
		RunAndReturn(func(_ context.Context, city *entity.City) error {
			city.ID = 10

			return nil
		})
	m.expectOutcome(entityCity, service.AuditActionCreated, service.OutcomeSuccess)
	m.publisher.EXPECT().PublishAuditEvent(mock.Anything, mock.Anything).Return(nil)

	result, err := svc.AddCity(ctx, 2, &usecase.CityDTO{CityName: "Dhaka ", CountryID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(10), result.ID)
	assert.Equal(t, "Dhaka", result.CityName)
}

func TestCityService_AddCity_UnknownCountry(t *testing.T) {
	m := newServiceMocks(t)
	svc := newTestCityService(m)
	ctx := context.Background()

	m.expectTransaction(ctx)
	m.countryRepo.EXPECT().FindCountryByID(ctx, int64(99)).Return(nil, repository.ErrCountryNotFound)
	m.expectOutcome(entityCity, service.AuditActionCreated, service.OutcomeNotFound)

	_, err := svc.AddCity(ctx, 2, &usecase.CityDTO{CityName: "Dhaka", CountryID: 99})
	assert.ErrorIs(t, err, domainerrors.ErrCountryNotFound)
}

func TestCityService_AddCity_Duplicate(t *testing.T) {
	m := newServiceMocks(t)
	svc := newTestCityService(m)
	ctx := context.Background()

	m.expectTransaction(ctx)
	m.countryRepo.EXPECT().FindCountryByID(ctx, int64(1)).Return(&entity.Country{ID: 1}, nil)
	m.cityRepo.EXPECT().
		FindCityByName(ctx, "Dhaka", int64(1)).
		Return(&entity.City{ID: 10, CityName: "dhaka", CountryID: 1}, nil)
	m.expectOutcome(entityCity, service.AuditActionCreated, service.OutcomeConflict)

	_, err := svc.AddCity(ctx, 2, &usecase.CityDTO{CityName: "Dhaka", CountryID: 1})
	assert.ErrorIs(t, err, domainerrors.ErrCityAlreadyExists)
}

func TestCityService_UpdateCity_MovesToExistingCountry(t *testing.T) {
	m := newServiceMocks(t)
	svc := newTestCityService(m)
	ctx := context.Background()

	stored := &entity.City{ID: 10, CityName: "Dhaka", CountryID: 1}
	m.expectTransaction(ctx)
	m.cityRepo.EXPECT().FindCityByID(ctx, int64(10)).Return(stored, nil)
	m.countryRepo.EXPECT().FindCountryByID(ctx, int64(2)).Return(&entity.Country{ID: 2}, nil)
	m.cityRepo.EXPECT().UpdateCity(ctx, stored).Return(nil)
	m.expectOutcome(entityCity, service.AuditActionUpdated, service.OutcomeSuccess)
	m.publisher.EXPECT().PublishAuditEvent(mock.Anything, mock.Anything).Return(nil)

	err := svc.UpdateCity(ctx, 3, &usecase.CityDTO{ID: 10, CityName: "Dhaka", CountryID: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(2), stored.CountryID)
	assert.Equal(t, 1, stored.UpdatedCount)
}

func TestCityService_UpdateCity_RenameSkipsCountryLookup(t *testing.T) {
	m := newServiceMocks(t)
	svc := newTestCityService(m)
	ctx := context.Background()

	stored := &entity.City{ID: 10, CityName: "Dacca", CountryID: 1}
	m.expectTransaction(ctx)
	m.cityRepo.EXPECT().FindCityByID(ctx, int64(10)).Return(stored, nil)
	m.cityRepo.EXPECT().UpdateCity(ctx, stored).Return(nil)
	m.expectOutcome(entityCity, service.AuditActionUpdated, service.OutcomeSuccess)
	m.publisher.EXPECT().PublishAuditEvent(mock.Anything, mock.Anything).Return(nil)

	err := svc.UpdateCity(ctx, 3, &usecase.CityDTO{ID: 10, CityName: "Dhaka", CountryID: 1})
	require.NoError(t, err)
	assert.Equal(t, "Dhaka", stored.CityName)
}

func TestCityService_UpdateCity_UnknownCountry(t *testing.T) {
	m := newServiceMocks(t)
	svc := newTestCityService(m)
	ctx := context.Background()

	stored := &entity.City{ID: 10, CityName: "Dhaka", CountryID: 1}
	m.expectTransaction(ctx)
	m.cityRepo.EXPECT().FindCityByID(ctx, int64(10)).Return(stored, nil)
	m.countryRepo.EXPECT().FindCountryByID(ctx, int64(5)).Return(nil, repository.ErrCountryNotFound)
	m.expectOutcome(entityCity, service.AuditActionUpdated, service.OutcomeNotFound)

	err := svc.UpdateCity(ctx, 3, &usecase.CityDTO{ID: 10, CityName: "Dhaka", CountryID: 5})
	assert.ErrorIs(t, err, domainerrors.ErrCountryNotFound)
	assert.Equal(t, 0, stored.UpdatedCount)
}

func TestCityService_ListCities(t *testing.T) {
	m := newServiceMocks(t)
	svc := newTestCityService(m)
	ctx := context.Background()

	m.cityRepo.EXPECT().FindCities(ctx, int64(1)).Return([]*entity.City{{ID: 10, CityName: "Dhaka", CountryID: 1}}, nil)

	result, err := svc.ListCities(ctx, 1)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Dhaka", result[0].CityName)
}
