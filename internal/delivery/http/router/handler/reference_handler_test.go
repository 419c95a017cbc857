package handler

import (
	"net/http"
	"testing"

	domainerrors "nms/internal/domain/errors"
	mockUsecase "nms/internal/mocks/usecase"
	"nms/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCountryHandler_AddCountry(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockCountryUsecase(t)
	h := NewCountryHandler(CountryHandlerParams{CountryUC: uc})

	uc.EXPECT().
		AddCountry(mock.Anything, testActorID, &usecase.CountryDTO{CountryName: "Bangladesh"}).
		Return(&usecase.CountryDTO{ID: 1, CountryName: "Bangladesh", TelephoneCode: "+880"}, nil)

	c, rec := newTestContext(e, http.MethodPost, "/api/country/add-country", `{"countryName":" Bangladesh "}`)
	require.NoError(t, h.AddCountry(c))

	requireStatus(t, rec, http.StatusOK)
	var country usecase.CountryDTO
	decodeData(t, rec, &country)
	assert.Equal(t, "+880", country.TelephoneCode)
}

func TestCountryHandler_GetCountries(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockCountryUsecase(t)
	h := NewCountryHandler(CountryHandlerParams{CountryUC: uc})

	uc.EXPECT().ListCountries(mock.Anything).Return([]*usecase.CountryDTO{{ID: 1}, {ID: 2}}, nil)

	c, rec := newTestContext(e, http.MethodGet, "/api/country/get-countries", "")
	require.NoError(t, h.GetCountries(c))

	requireStatus(t, rec, http.StatusOK)
	var countries []usecase.CountryDTO
	decodeData(t, rec, &countries)
	assert.Len(t, countries, 2)
}

func TestCityHandler_AddCity_UnknownCountry(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockCityUsecase(t)
	h := NewCityHandler(CityHandlerParams{CityUC: uc})

	uc.EXPECT().AddCity(mock.Anything, testActorID, mock.Anything).Return(nil, domainerrors.ErrCountryNotFound)

	c, rec := newTestContext(e, http.MethodPost, "/api/city/add-city", `{"cityName":"Dhaka","countryId":99}`)
	require.NoError(t, h.AddCity(c))

	requireStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, "COUNTRY_NOT_FOUND", decodeResponse(t, rec).Error.Code)
}

func TestCityHandler_GetCities(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		countryID   int64
		expectCall  bool
		expectedSts int
	}{
		{name: "all cities", target: "/api/city/get-cities", expectCall: true, expectedSts: http.StatusOK},
		{name: "by country", target: "/api/city/get-cities?countryId=3", countryID: 3, expectCall: true, expectedSts: http.StatusOK},
		{name: "bad country id", target: "/api/city/get-cities?countryId=x", expectedSts: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho()
			uc := mockUsecase.NewMockCityUsecase(t)
			h := NewCityHandler(CityHandlerParams{CityUC: uc})
			if tt.expectCall {
				uc.EXPECT().ListCities(mock.Anything, tt.countryID).Return([]*usecase.CityDTO{}, nil)
			}

			c, rec := newTestContext(e, http.MethodGet, tt.target, "")
			require.NoError(t, h.GetCities(c))
			requireStatus(t, rec, tt.expectedSts)
		})
	}
}

func TestCompanyHandler_AddCompany_InvalidEmail(t *testing.T) {
	e := newTestEcho()
	h := NewCompanyHandler(CompanyHandlerParams{CompanyUC: mockUsecase.NewMockCompanyUsecase(t)})

	c, rec := newTestContext(e, http.MethodPost, "/api/company/add-company", `{"companyName":"Acme","email":"nope"}`)
	require.NoError(t, h.AddCompany(c))

	requireStatus(t, rec, http.StatusBadRequest)
	body := decodeResponse(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Contains(t, body.Error.Details, "email")
}

func TestCompanyHandler_UpdateCompany(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockCompanyUsecase(t)
	h := NewCompanyHandler(CompanyHandlerParams{CompanyUC: uc})

	uc.EXPECT().UpdateCompany(mock.Anything, testActorID, mock.AnythingOfType("*usecase.CompanyDTO")).Return(nil)

	c, rec := newTestContext(e, http.MethodPut, "/api/company/update-company", `{"companyId":3,"companyName":"Acme"}`)
	require.NoError(t, h.UpdateCompany(c))

	requireStatus(t, rec, http.StatusNoContent)
}

func TestRoleHandler_AddRole(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockRoleUsecase(t)
	h := NewRoleHandler(RoleHandlerParams{RoleUC: uc})

	uc.EXPECT().
		AddRole(mock.Anything, testActorID, &usecase.RoleDTO{RoleName: "auditor"}).
		Return(&usecase.RoleDTO{ID: 3, RoleName: "auditor"}, nil)

	c, rec := newTestContext(e, http.MethodPost, "/api/role/add-role", `{"roleName":"Auditor"}`)
	require.NoError(t, h.AddRole(c))

	requireStatus(t, rec, http.StatusOK)
}
