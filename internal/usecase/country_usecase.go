package usecase

import (
	"context"

	"nms/internal/domain/entity"
)

// CountryDTO is the wire representation of a country.
type CountryDTO struct {
	ID            int64  `json:"countryId" validate:"omitempty,gt=0"`
	CountryName   string `json:"countryName" validate:"required,max=256"`
	TelephoneCode string `json:"telephoneCode" validate:"max=10"`

	AuditFields
}

func (d *CountryDTO) Normalize() {
	trim(&d.CountryName)
	trim(&d.TelephoneCode)
}

func (d *CountryDTO) ToEntity() *entity.Country {
	return &entity.Country{
		CountryName:   d.CountryName,
		TelephoneCode: d.TelephoneCode,
	}
}

func (d *CountryDTO) ApplyTo(country *entity.Country) {
	country.CountryName = d.CountryName
	country.TelephoneCode = d.TelephoneCode
}

func (d *CountryDTO) SameAs(country *entity.Country) bool {
	return d.CountryName == country.CountryName &&
		d.TelephoneCode == country.TelephoneCode
}

func FromCountry(country *entity.Country) *CountryDTO {
	return &CountryDTO{
		ID:            country.ID,
		CountryName:   country.CountryName,
		TelephoneCode: country.TelephoneCode,
		AuditFields:   fromCommonField(country.CommonField),
	}
}

// CountryUsecase defines the country management operations.
type CountryUsecase interface {
	// AddCountry fills an empty telephone code from the ISO country catalog when the name is known.
	AddCountry(ctx context.Context, actorID int64, input *CountryDTO) (*CountryDTO, error)
	UpdateCountry(ctx context.Context, actorID int64, input *CountryDTO) error
	GetCountry(ctx context.Context, id int64) (*CountryDTO, error)
	ListCountries(ctx context.Context) ([]*CountryDTO, error)
}
