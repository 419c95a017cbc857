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

type cityRepository struct {
	db *gorm.DB
}

// NewCityRepository is the constructor for cityRepository.
func NewCityRepository(db *gorm.DB) repository.CityRepository {
	return &cityRepository{db: db}
}

func (repo *cityRepository) CreateCity(ctx context.Context, city *entity.City) error {
	cityM := fromCityDomain(city)

	if err := repo.db.WithContext(ctx).Create(cityM).Error; err != nil {
		return translateWriteError(err, domainerrors.ErrCityAlreadyExists, "failed to create city")
	}
	city.ID = cityM.ID

	return nil
}

func (repo *cityRepository) FindCityByID(ctx context.Context, id int64) (*entity.City, error) {
	var cityM model.CityModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&cityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCityNotFound
		}

		return nil, errors.Wrap(err, "failed to find city by ID")
	}

	return toCityDomain(&cityM), nil
}

func (repo *cityRepository) FindCityByName(ctx context.Context, name string, countryID int64) (*entity.City, error) {
	var cityM model.CityModel
	err := repo.db.WithContext(ctx).
		Where("LOWER(city_name) = LOWER(?) AND country_id = ?", name, countryID).
		First(&cityM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCityNotFound
		}

		return nil, errors.Wrap(err, "failed to find city by name")
	}

	return toCityDomain(&cityM), nil
}

func (repo *cityRepository) FindCities(ctx context.Context, countryID int64) ([]*entity.City, error) {
	query := repo.db.WithContext(ctx).Model(&model.CityModel{})
	if countryID != 0 {
		query = query.Where("country_id = ?", countryID)
	}

	var cityModels []*model.CityModel
	if err := query.Order("id ASC").Find(&cityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find cities")
	}

	cities := make([]*entity.City, 0, len(cityModels))
	for _, cityM := range cityModels {
		cities = append(cities, toCityDomain(cityM))
	}

	return cities, nil
}

func (repo *cityRepository) UpdateCity(ctx context.Context, city *entity.City) error {
	affected, err := updateByID(ctx, repo.db, fromCityDomain(city), city.ID)
	if err != nil {
		return translateWriteError(err, domainerrors.ErrCityAlreadyExists, "failed to update city")
	}
	if affected == 0 {
		return repository.ErrNoRowsAffected
	}

	return nil
}

func toCityDomain(data *model.CityModel) *entity.City {
	if data == nil {
		return nil
	}

	return &entity.City{
		ID:          data.ID,
		CityName:    data.CityName,
		CountryID:   data.CountryID,
		CommonField: toCommonDomain(data.CommonFieldModel),
	}
}

func fromCityDomain(data *entity.City) *model.CityModel {
	if data == nil {
		return nil
	}

	return &model.CityModel{
		ID:               data.ID,
		CityName:         data.CityName,
		CountryID:        data.CountryID,
		CommonFieldModel: fromCommonDomain(data.CommonField),
	}
}
