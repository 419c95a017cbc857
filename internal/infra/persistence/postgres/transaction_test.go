package postgres

import (
	"context"
	"testing"

	"nms/internal/domain/repository"
	"nms/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	tm := NewTransactionManager(db)

	country := fakeCountry()
	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewCountryRepository().CreateCountry(ctx, country)
	})
	require.NoError(t, err)

	found, err := NewCountryRepository(db).FindCountryByID(ctx, country.ID)
	require.NoError(t, err)
	assert.Equal(t, country.CountryName, found.CountryName)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	errBoom := errors.New("boom")

	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewCompanyRepository().CreateCompany(ctx, fakeCompany()); err != nil {
			return err
		}

		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	companies, err := NewCompanyRepository(db).FindCompanies(ctx)
	require.NoError(t, err)
	assert.Empty(t, companies)
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	tm := NewTransactionManager(db)

	assert.Panics(t, func() {
		_ = tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
			_ = factory.NewCountryRepository().CreateCountry(ctx, fakeCountry())
			panic("unexpected")
		})
	})

	countries, err := NewCountryRepository(db).FindCountries(ctx)
	require.NoError(t, err)
	assert.Empty(t, countries)
}
