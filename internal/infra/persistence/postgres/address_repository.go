package postgres

import (
	"context"

	"nms/internal/domain/entity"
	domainerrors "nms/internal/domain/errors"
	"nms/internal/domain/repository"
	"nms/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// addressRepository implements the domain.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// CreateAddress persists a new address.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		return translateWriteError(err, domainerrors.ErrAddressAlreadyExists, "failed to create address")
	}

	// Update the entity with generated values
	address.ID = addressM.ID

	return nil
}

// FindAddressByID retrieves an address by its unique ID.
func (repo *addressRepository) FindAddressByID(ctx context.Context, id int64) (*entity.Address, error) {
	var addressM model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&addressM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return toAddressDomain(&addressM), nil
}

// FindAddressBySource retrieves the address registered for a source in a city.
func (repo *addressRepository) FindAddressBySource(ctx context.Context, sourceID int64, sourceType string, cityID int64) (*entity.Address, error) {
	var addressM model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("source_id = ? AND source_type = ? AND city_id = ?", sourceID, sourceType, cityID).
		First(&addressM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by source")
	}

	return toAddressDomain(&addressM), nil
}

// FindAddresses lists addresses matching the filter.
func (repo *addressRepository) FindAddresses(ctx context.Context, filter repository.AddressFilter) ([]*entity.Address, error) {
	query := repo.db.WithContext(ctx).Model(&model.AddressModel{})
	if filter.CityID != 0 {
		query = query.Where("city_id = ?", filter.CityID)
	}
	if filter.SourceType != "" {
		query = query.Where("source_type = ?", filter.SourceType)
	}

	var addressModels []*model.AddressModel
	if err := query.Order("id ASC").Find(&addressModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find addresses")
	}

	addresses := make([]*entity.Address, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses, nil
}

// UpdateAddress updates an existing address record.
func (repo *addressRepository) UpdateAddress(ctx context.Context, address *entity.Address) error {
	affected, err := updateByID(ctx, repo.db, fromAddressDomain(address), address.ID)
	if err != nil {
		return translateWriteError(err, domainerrors.ErrAddressAlreadyExists, "failed to update address")
	}
	if affected == 0 {
		return repository.ErrNoRowsAffected
	}

	return nil
}

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:                 data.ID,
		AddressDescription: data.AddressDescription,
		SourceID:           data.SourceID,
		SourceType:         data.SourceType,
		CityID:             data.CityID,
		Phone:              data.Phone,
		CommonField:        toCommonDomain(data.CommonFieldModel),
	}
}

// fromAddressDomain converts a domain Address entity to a GORM AddressModel.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:                 data.ID,
		AddressDescription: data.AddressDescription,
		SourceID:           data.SourceID,
		SourceType:         data.SourceType,
		CityID:             data.CityID,
		Phone:              data.Phone,
		CommonFieldModel:   fromCommonDomain(data.CommonField),
	}
}
