// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"nms/internal/domain/entity"
	"nms/internal/errors"
)

// Domain-specific errors for address persistence.
var (
	// ErrAddressNotFound is returned when an address is not found.
	ErrAddressNotFound = errors.New("address not found")
)

// AddressFilter narrows FindAddresses. Zero values are ignored.
type AddressFilter struct {
	CityID     int64
	SourceType string
}

// AddressRepository defines the interface for address-related database operations.
type AddressRepository interface {
	// CreateAddress persists a new address and fills in its generated ID.
	CreateAddress(ctx context.Context, address *entity.Address) error

	// FindAddressByID retrieves an address by its ID.
	// Returns ErrAddressNotFound if no address exists.
	FindAddressByID(ctx context.Context, id int64) (*entity.Address, error)

	// FindAddressBySource retrieves the address registered for a (source id, source type, city) tuple.
	// sourceType must already be normalized. Returns ErrAddressNotFound if none exists.
	FindAddressBySource(ctx context.Context, sourceID int64, sourceType string, cityID int64) (*entity.Address, error)

	// FindAddresses lists addresses ordered by ID.
	FindAddresses(ctx context.Context, filter AddressFilter) ([]*entity.Address, error)

	// UpdateAddress writes every mutable column of an existing address.
	// Returns ErrNoRowsAffected when the row is gone.
	UpdateAddress(ctx context.Context, address *entity.Address) error
}
