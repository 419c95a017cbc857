package usecase

import (
	"context"

	"nms/internal/domain/entity"
)

// AddressDTO is the wire representation of an address.
type AddressDTO struct {
	ID                 int64  `json:"addressId" validate:"omitempty,gt=0"`
	AddressDescription string `json:"addressDescription" validate:"max=500"`
	SourceID           int64  `json:"sourceId" validate:"required,gt=0"`
	SourceType         string `json:"sourceType" validate:"required,max=50"`
	CityID             int64  `json:"cityId" validate:"required,gt=0"`
	Phone              string `json:"phone" validate:"max=20"`

	AuditFields
}

// Normalize trims every string field and lowercases the source type.
func (d *AddressDTO) Normalize() {
	trim(&d.AddressDescription)
	lower(&d.SourceType)
	trim(&d.Phone)
}

// ToEntity builds a new address from a normalized DTO.
func (d *AddressDTO) ToEntity() *entity.Address {
	return &entity.Address{
		AddressDescription: d.AddressDescription,
		SourceID:           d.SourceID,
		SourceType:         d.SourceType,
		CityID:             d.CityID,
		Phone:              d.Phone,
	}
}

// ApplyTo copies the mutable fields onto a stored address.
func (d *AddressDTO) ApplyTo(address *entity.Address) {
	address.AddressDescription = d.AddressDescription
	address.SourceID = d.SourceID
	address.SourceType = d.SourceType
	address.CityID = d.CityID
	address.Phone = d.Phone
}

// SameAs reports whether applying the DTO would leave the stored address unchanged.
func (d *AddressDTO) SameAs(address *entity.Address) bool {
	return d.AddressDescription == address.AddressDescription &&
		d.SourceID == address.SourceID &&
		d.SourceType == address.SourceType &&
		d.Phone == address.Phone &&
		d.CityID == address.CityID
}

// FromAddress builds the outbound DTO.
func FromAddress(address *entity.Address) *AddressDTO {
	return &AddressDTO{
		ID:                 address.ID,
		AddressDescription: address.AddressDescription,
		SourceID:           address.SourceID,
		SourceType:         address.SourceType,
		CityID:             address.CityID,
		Phone:              address.Phone,
		AuditFields:        fromCommonField(address.CommonField),
	}
}

// AddressFilter narrows ListAddresses. Zero values match everything.
type AddressFilter struct {
	CityID     int64  `query:"cityId"`
	SourceType string `query:"sourceType"`
}

// AddressUsecase defines the address management operations.
type AddressUsecase interface {
	// AddAddress rejects a second address for the same (source id, source type, city).
	AddAddress(ctx context.Context, actorID int64, input *AddressDTO) (*AddressDTO, error)
	// UpdateAddress requires at least one changed field.
	UpdateAddress(ctx context.Context, actorID int64, input *AddressDTO) error
	GetAddress(ctx context.Context, id int64) (*AddressDTO, error)
	ListAddresses(ctx context.Context, filter AddressFilter) ([]*AddressDTO, error)
}
