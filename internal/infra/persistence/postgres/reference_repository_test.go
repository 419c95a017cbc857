package postgres

import (
	"context"
	"strings"
	"testing"

	"nms/internal/domain/entity"
	domainerrors "nms/internal/domain/errors"
	"nms/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountryRepository_FindByNameIgnoresCase(t *testing.T) {
	ctx := context.Background()
	repo := NewCountryRepository(newTestDB(t))

	country := fakeCountry()
	country.CountryName = "Norway"
	require.NoError(t, repo.CreateCountry(ctx, country))

	found, err := repo.FindCountryByName(ctx, "NORWAY")
	require.NoError(t, err)
	assert.Equal(t, country.ID, found.ID)
	assert.Equal(t, country.TelephoneCode, found.TelephoneCode)

	_, err = repo.FindCountryByName(ctx, "Sweden")
	assert.ErrorIs(t, err, repository.ErrCountryNotFound)
}

func TestCountryRepository_DuplicateName(t *testing.T) {
	ctx := context.Background()
	repo := NewCountryRepository(newTestDB(t))

	country := fakeCountry()
	require.NoError(t, repo.CreateCountry(ctx, country))

	duplicate := fakeCountry()
	duplicate.CountryName = country.CountryName
	assert.ErrorIs(t, repo.CreateCountry(ctx, duplicate), domainerrors.ErrCountryAlreadyExists)
}

func TestCountryRepository_ListAndUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewCountryRepository(newTestDB(t))

	first, second := fakeCountry(), fakeCountry()
	require.NoError(t, repo.CreateCountry(ctx, first))
	require.NoError(t, repo.CreateCountry(ctx, second))

	second.TelephoneCode = "+47"
	second.UpdatedCount = 1
	require.NoError(t, repo.UpdateCountry(ctx, second))

	countries, err := repo.FindCountries(ctx)
	require.NoError(t, err)
	require.Len(t, countries, 2)
	assert.Equal(t, first.ID, countries[0].ID)
	assert.Equal(t, "+47", countries[1].TelephoneCode)
	assert.Equal(t, 1, countries[1].UpdatedCount)
}

func TestCityRepository_ScopedByCountry(t *testing.T) {
	ctx := context.Background()
	repo := NewCityRepository(newTestDB(t))

	oslo := &entity.City{CityName: "Oslo", CountryID: 1, CommonField: testCommonField()}
	bergen := &entity.City{CityName: "Bergen", CountryID: 1, CommonField: testCommonField()}
	otherOslo := &entity.City{CityName: "Oslo", CountryID: 2, CommonField: testCommonField()}
	for _, city := range []*entity.City{oslo, bergen, otherOslo} {
		require.NoError(t, repo.CreateCity(ctx, city))
	}

	found, err := repo.FindCityByName(ctx, "oslo", 2)
	require.NoError(t, err)
	assert.Equal(t, otherOslo.ID, found.ID)

	_, err = repo.FindCityByName(ctx, "Bergen", 2)
	assert.ErrorIs(t, err, repository.ErrCityNotFound)

	inCountry, err := repo.FindCities(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, inCountry, 2)

	all, err := repo.FindCities(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	duplicate := &entity.City{CityName: "Bergen", CountryID: 1, CommonField: testCommonField()}
	assert.ErrorIs(t, repo.CreateCity(ctx, duplicate), domainerrors.ErrCityAlreadyExists)
}

func TestCityRepository_UpdateMissingRow(t *testing.T) {
	repo := NewCityRepository(newTestDB(t))

	err := repo.UpdateCity(context.Background(), &entity.City{ID: 9, CityName: "Nowhere", CountryID: 1})
	assert.ErrorIs(t, err, repository.ErrNoRowsAffected)

	_, err = repo.FindCityByID(context.Background(), 9)
	assert.ErrorIs(t, err, repository.ErrCityNotFound)
}

func TestCompanyRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewCompanyRepository(newTestDB(t))

	company := fakeCompany()
	require.NoError(t, repo.CreateCompany(ctx, company))

	byName, err := repo.FindCompanyByName(ctx, strings.ToUpper(company.CompanyName))
	require.NoError(t, err)
	assert.Equal(t, company.ID, byName.ID)
	assert.Equal(t, company.Website, byName.Website)

	company.Website = ""
	require.NoError(t, repo.UpdateCompany(ctx, company))

	byID, err := repo.FindCompanyByID(ctx, company.ID)
	require.NoError(t, err)
	assert.Empty(t, byID.Website)

	companies, err := repo.FindCompanies(ctx)
	require.NoError(t, err)
	assert.Len(t, companies, 1)

	_, err = repo.FindCompanyByID(ctx, company.ID+1)
	assert.ErrorIs(t, err, repository.ErrCompanyNotFound)
}
