package repository

import (
	"context"

	"nms/internal/domain/entity"
	"nms/internal/errors"
)

// ErrCityNotFound is returned when a city is not found.
var ErrCityNotFound = errors.New("city not found")

// CityRepository defines the interface for city-related database operations.
type CityRepository interface {
	CreateCity(ctx context.Context, city *entity.City) error

	// FindCityByID returns ErrCityNotFound if no city exists.
	FindCityByID(ctx context.Context, id int64) (*entity.City, error)

	// FindCityByName matches the name case-insensitively within one country.
	FindCityByName(ctx context.Context, name string, countryID int64) (*entity.City, error)

	// FindCities lists cities, restricted to one country when countryID is non-zero.
	FindCities(ctx context.Context, countryID int64) ([]*entity.City, error)

	UpdateCity(ctx context.Context, city *entity.City) error
}
