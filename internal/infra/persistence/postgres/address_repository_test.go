package postgres

import (
	"context"
	"testing"
	"time"

	domainerrors "nms/internal/domain/errors"
	"nms/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewAddressRepository(newTestDB(t))

	address := fakeAddress(7)
	require.NoError(t, repo.CreateAddress(ctx, address))
	require.NotZero(t, address.ID)

	found, err := repo.FindAddressByID(ctx, address.ID)
	require.NoError(t, err)
	assert.Equal(t, address.AddressDescription, found.AddressDescription)
	assert.Equal(t, address.SourceID, found.SourceID)
	assert.Equal(t, address.CreatedBy, found.CreatedBy)
	assert.Nil(t, found.LastUpdatedDate)
	assert.Zero(t, found.UpdatedCount)

	bySource, err := repo.FindAddressBySource(ctx, address.SourceID, address.SourceType, address.CityID)
	require.NoError(t, err)
	assert.Equal(t, address.ID, bySource.ID)
}

func TestAddressRepository_FindMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewAddressRepository(newTestDB(t))

	_, err := repo.FindAddressByID(ctx, 42)
	assert.ErrorIs(t, err, repository.ErrAddressNotFound)

	_, err = repo.FindAddressBySource(ctx, 1, "company", 1)
	assert.ErrorIs(t, err, repository.ErrAddressNotFound)
}

func TestAddressRepository_CreateDuplicateSource(t *testing.T) {
	ctx := context.Background()
	repo := NewAddressRepository(newTestDB(t))

	first := fakeAddress(3)
	require.NoError(t, repo.CreateAddress(ctx, first))

	second := fakeAddress(3)
	second.SourceID = first.SourceID

	err := repo.CreateAddress(ctx, second)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAddressAlreadyExists)
}

func TestAddressRepository_FindAddresses_Filter(t *testing.T) {
	ctx := context.Background()
	repo := NewAddressRepository(newTestDB(t))

	inCity := fakeAddress(1)
	otherCity := fakeAddress(2)
	otherType := fakeAddress(1)
	otherType.SourceType = "user"
	require.NoError(t, repo.CreateAddress(ctx, inCity))
	require.NoError(t, repo.CreateAddress(ctx, otherCity))
	require.NoError(t, repo.CreateAddress(ctx, otherType))

	all, err := repo.FindAddresses(ctx, repository.AddressFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byCity, err := repo.FindAddresses(ctx, repository.AddressFilter{CityID: 1})
	require.NoError(t, err)
	assert.Len(t, byCity, 2)

	byCityAndType, err := repo.FindAddresses(ctx, repository.AddressFilter{CityID: 1, SourceType: "user"})
	require.NoError(t, err)
	require.Len(t, byCityAndType, 1)
	assert.Equal(t, otherType.ID, byCityAndType[0].ID)
}

func TestAddressRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewAddressRepository(newTestDB(t))

	address := fakeAddress(5)
	require.NoError(t, repo.CreateAddress(ctx, address))
	createdBy := address.CreatedBy

	address.Phone = ""
	address.AddressDescription = "Main street 1"
	address.CreatedBy = 0
	address.StampUpdated(99, time.Now().UTC().Truncate(time.Second))
	require.NoError(t, repo.UpdateAddress(ctx, address))

	found, err := repo.FindAddressByID(ctx, address.ID)
	require.NoError(t, err)
	assert.Equal(t, "Main street 1", found.AddressDescription)
	assert.Empty(t, found.Phone)
	assert.Equal(t, int64(99), found.UpdatedBy)
	assert.Equal(t, 1, found.UpdatedCount)
	require.NotNil(t, found.LastUpdatedDate)
	assert.Equal(t, createdBy, found.CreatedBy, "creation audit columns are never rewritten")
}

func TestAddressRepository_UpdateMissingRow(t *testing.T) {
	ctx := context.Background()
	repo := NewAddressRepository(newTestDB(t))

	address := fakeAddress(5)
	address.ID = 1000

	err := repo.UpdateAddress(ctx, address)
	assert.ErrorIs(t, err, repository.ErrNoRowsAffected)
}

func TestAddressRepository_UpdateIntoExistingSource(t *testing.T) {
	ctx := context.Background()
	repo := NewAddressRepository(newTestDB(t))

	first := fakeAddress(5)
	second := fakeAddress(5)
	require.NoError(t, repo.CreateAddress(ctx, first))
	require.NoError(t, repo.CreateAddress(ctx, second))

	second.SourceID = first.SourceID
	err := repo.UpdateAddress(ctx, second)
	assert.ErrorIs(t, err, domainerrors.ErrAddressAlreadyExists)
}
