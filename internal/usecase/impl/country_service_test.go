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

func newTestCountryService(m *serviceMocks) *countryService {
	svc := NewCountryService(CountryServiceParams{
		TxManager:   m.txManager,
		CountryRepo: m.countryRepo,
		Publisher:   m.publisher,
		Recorder:    m.recorder,
		Logger:      newDiscardLogger(),
	}).(*countryService)
	svc.now = fixedClock

	return svc
}

func TestTelephoneCodeOf(t *testing.T) {
	tests := []struct {
		name     string
		country  string
		expected string
	}{
		{name: "known country", country: "Bangladesh", expected: "+880"},
		{name: "unknown country", country: "Atlantis", expected: ""},
		{name: "empty name", country: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, telephoneCodeOf(tt.country))
		})
	}
}

func TestCountryService_AddCountry_DerivesTelephoneCode(t *testing.T) {
	m := newServiceMocks(t)
	svc := newTestCountryService(m)
	ctx := context.Background()

	m.expectTransaction(ctx)
	m.countryRepo.EXPECT().FindCountryByName(ctx, "Bangladesh").Return(nil, repository.ErrCountryNotFound)
	m.countryRepo.EXPECT().
		CreateCountry(ctx, mock.AnythingOfType("*entity.Country")).
		RunAndReturn(func(_ context.Context, country *entity.Country) error {
			country.ID = 3

			return nil
		})
	m.expectOutcome(entityCountry, service.AuditActionCreated, service.OutcomeSuccess)
	m.publisher.EXPECT().PublishAuditEvent(mock.Anything, mock.Anything).Return(nil)

	result, err := svc.AddCountry(ctx, 1, &usecase.CountryDTO{CountryName: " Bangladesh "})
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.ID)
	assert.Equal(t, "+880", result.TelephoneCode)
}

func TestCountryService_AddCountry_KeepsExplicitTelephoneCode(t *testing.T) {
	m := newServiceMocks(t)
	svc := newTestCountryService(m)
	ctx := context.Background()

	m.expectTransaction(ctx)
	m.countryRepo.EXPECT().FindCountryByName(ctx, "Bangladesh").Return(nil, repository.ErrCountryNotFound)
	m.countryRepo.EXPECT().CreateCountry(ctx, mock.AnythingOfType("*entity.Country")).Return(nil)
	m.expectOutcome(entityCountry, service.AuditActionCreated, service.OutcomeSuccess)
	m.publisher.EXPECT().PublishAuditEvent(mock.Anything, mock.Anything).Return(nil)

	result, err := svc.AddCountry(ctx, 1, &usecase.CountryDTO{CountryName: "Bangladesh", TelephoneCode: "880"})
	require.NoError(t, err)
	assert.Equal(t, "880", result.TelephoneCode)
}

func TestCountryService_AddCountry_Duplicate(t *testing.T) {
	m := newServiceMocks(t)
	svc := newTestCountryService(m)
	ctx := context.Background()

	m.expectTransaction(ctx)
	m.countryRepo.EXPECT().
		FindCountryByName(ctx, "Japan").
		Return(&entity.Country{ID: 1, CountryName: "japan"}, nil)
	m.expectOutcome(entityCountry, service.AuditActionCreated, service.OutcomeConflict)

	_, err := svc.AddCountry(ctx, 1, &usecase.CountryDTO{CountryName: "Japan"})
	assert.ErrorIs(t, err, domainerrors.ErrCountryAlreadyExists)
}

func TestCountryService_UpdateCountry(t *testing.T) {
	tests := []struct {
		name          string
		input         *usecase.CountryDTO
		found         *entity.Country
		findErr       error
		updateErr     error
		expectUpdate  bool
		outcome       string
		expectedErr   error
		expectedCount int
	}{
		{
			name:          "success",
			input:         &usecase.CountryDTO{ID: 1, CountryName: "Nippon", TelephoneCode: "+81"},
			found:         &entity.Country{ID: 1, CountryName: "Japan", TelephoneCode: "+81"},
			expectUpdate:  true,
			outcome:       service.OutcomeSuccess,
			expectedCount: 1,
		},
		{
			name:        "not found",
			input:       &usecase.CountryDTO{ID: 2, CountryName: "Nippon"},
			findErr:     repository.ErrCountryNotFound,
			outcome:     service.OutcomeNotFound,
			expectedErr: domainerrors.ErrRecordNotFound,
		},
		{
			name:          "nothing changed",
			input:         &usecase.CountryDTO{ID: 1, CountryName: " Japan ", TelephoneCode: "+81 "},
			found:         &entity.Country{ID: 1, CountryName: "Japan", TelephoneCode: "+81"},
			outcome:       service.OutcomeUnchanged,
			expectedErr:   domainerrors.ErrNothingChanged,
			expectedCount: 0,
		},
		{
			name:          "renamed onto an existing country",
			input:         &usecase.CountryDTO{ID: 1, CountryName: "Korea"},
			found:         &entity.Country{ID: 1, CountryName: "Japan"},
			updateErr:     domainerrors.ErrCountryAlreadyExists.WrapMessage("unique constraint violated"),
			expectUpdate:  true,
			outcome:       service.OutcomeConflict,
			expectedErr:   domainerrors.ErrCountryAlreadyExists,
			expectedCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newServiceMocks(t)
			svc := newTestCountryService(m)
			ctx := context.Background()

			m.expectTransaction(ctx)
			m.countryRepo.EXPECT().FindCountryByID(ctx, tt.input.ID).Return(tt.found, tt.findErr)
			if tt.expectUpdate {
				m.countryRepo.EXPECT().UpdateCountry(ctx, tt.found).Return(tt.updateErr)
			}
			m.expectOutcome(entityCountry, service.AuditActionUpdated, tt.outcome)
			if tt.expectedErr == nil {
				m.publisher.EXPECT().PublishAuditEvent(mock.Anything, mock.Anything).Return(nil)
			}

			err := svc.UpdateCountry(ctx, 4, tt.input)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, fixedNow, *tt.found.LastUpdatedDate)
				assert.Equal(t, int64(4), tt.found.UpdatedBy)
			}
			if tt.found != nil {
				assert.Equal(t, tt.expectedCount, tt.found.UpdatedCount)
			}
		})
	}
}

func TestCountryService_ListCountries(t *testing.T) {
	m := newServiceMocks(t)
	svc := newTestCountryService(m)
	ctx := context.Background()

	m.countryRepo.EXPECT().FindCountries(ctx).Return([]*entity.Country{
		{ID: 1, CountryName: "Bangladesh", TelephoneCode: "+880"},
		{ID: 2, CountryName: "Japan", TelephoneCode: "+81"},
	}, nil)

	result, err := svc.ListCountries(ctx)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Japan", result[1].CountryName)
}
