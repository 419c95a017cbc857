package usecase

import (
	"context"

	"nms/internal/domain/entity"
)

// CityDTO is the wire representation of a city.
type CityDTO struct {
	ID        int64  `json:"cityId" validate:"omitempty,gt=0"`
	CityName  string `json:"cityName" validate:"required,max=256"`
	CountryID int64  `json:"countryId" validate:"required,gt=0"`

	AuditFields
}

func (d *CityDTO) Normalize() {
	trim(&d.CityName)
}

func (d *CityDTO) ToEntity() *entity.City {
	return &entity.City{
		CityName:  d.CityName,
		CountryID: d.CountryID,
	}
}

func (d *CityDTO) ApplyTo(city *entity.City) {
	city.CityName = d.CityName
	city.CountryID = d.CountryID
}

func (d *CityDTO) SameAs(city *entity.City) bool {
	return d.CityName == city.CityName && d.CountryID == city.CountryID
}

func FromCity(city *entity.City) *CityDTO {
	return &CityDTO{
		ID:          city.ID,
		CityName:    city.CityName,
		CountryID:   city.CountryID,
		AuditFields: fromCommonField(city.CommonField),
	}
}

// CityUsecase defines the city management operations. Cities always reference an existing country.
type CityUsecase interface {
	AddCity(ctx context.Context, actorID int64, input *CityDTO) (*CityDTO, error)
	UpdateCity(ctx context.Context, actorID int64, input *CityDTO) error
	GetCity(ctx context.Context, id int64) (*CityDTO, error)
	// ListCities returns every city when countryID is zero.
	ListCities(ctx context.Context, countryID int64) ([]*CityDTO, error)
}
