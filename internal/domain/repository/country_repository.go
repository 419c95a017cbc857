package repository

import (
	"context"

	"nms/internal/domain/entity"
	"nms/internal/errors"
)

// ErrCountryNotFound is returned when a country is not found.
var ErrCountryNotFound = errors.New("country not found")

// CountryRepository defines the interface for country-related database operations.
type CountryRepository interface {
	CreateCountry(ctx context.Context, country *entity.Country) error

	// FindCountryByID returns ErrCountryNotFound if no country exists.
	FindCountryByID(ctx context.Context, id int64) (*entity.Country, error)

	// FindCountryByName matches the name case-insensitively.
	FindCountryByName(ctx context.Context, name string) (*entity.Country, error)

	FindCountries(ctx context.Context) ([]*entity.Country, error)

	UpdateCountry(ctx context.Context, country *entity.Country) error
}
