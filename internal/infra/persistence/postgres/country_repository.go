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

type countryRepository struct {
	db *gorm.DB
}

// NewCountryRepository is the constructor for countryRepository.
func NewCountryRepository(db *gorm.DB) repository.CountryRepository {
	return &countryRepository{db: db}
}

func (repo *countryRepository) CreateCountry(ctx context.Context, country *entity.Country) error {
	countryM := fromCountryDomain(country)

	if err := repo.db.WithContext(ctx).Create(countryM).Error; err != nil {
		return translateWriteError(err, domainerrors.ErrCountryAlreadyExists, "failed to create country")
	}
	country.ID = countryM.ID

	return nil
}

func (repo *countryRepository) FindCountryByID(ctx context.Context, id int64) (*entity.Country, error) {
	return repo.findOne(ctx, "failed to find country by ID", "id = ?", id)
}

func (repo *countryRepository) FindCountryByName(ctx context.Context, name string) (*entity.Country, error) {
	return repo.findOne(ctx, "failed to find country by name", "LOWER(country_name) = LOWER(?)", name)
}

func (repo *countryRepository) findOne(ctx context.Context, msg string, query string, args ...any) (*entity.Country, error) {
	var countryM model.CountryModel
	if err := repo.db.WithContext(ctx).Where(query, args...).First(&countryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCountryNotFound
		}

		return nil, errors.Wrap(err, msg)
	}

	return toCountryDomain(&countryM), nil
}

func (repo *countryRepository) FindCountries(ctx context.Context) ([]*entity.Country, error) {
	var countryModels []*model.CountryModel
	if err := repo.db.WithContext(ctx).Order("id ASC").Find(&countryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find countries")
	}

	countries := make([]*entity.Country, 0, len(countryModels))
	for _, countryM := range countryModels {
		countries = append(countries, toCountryDomain(countryM))
	}

	return countries, nil
}

func (repo *countryRepository) UpdateCountry(ctx context.Context, country *entity.Country) error {
	affected, err := updateByID(ctx, repo.db, fromCountryDomain(country), country.ID)
	if err != nil {
		return translateWriteError(err, domainerrors.ErrCountryAlreadyExists, "failed to update country")
	}
	if affected == 0 {
		return repository.ErrNoRowsAffected
	}

	return nil
}

func toCountryDomain(data *model.CountryModel) *entity.Country {
	if data == nil {
		return nil
	}

	return &entity.Country{
		ID:            data.ID,
		CountryName:   data.CountryName,
		TelephoneCode: data.TelephoneCode,
		CommonField:   toCommonDomain(data.CommonFieldModel),
	}
}

func fromCountryDomain(data *entity.Country) *model.CountryModel {
	if data == nil {
		return nil
	}

	return &model.CountryModel{
		ID:               data.ID,
		CountryName:      data.CountryName,
		TelephoneCode:    data.TelephoneCode,
		CommonFieldModel: fromCommonDomain(data.CommonField),
	}
}
