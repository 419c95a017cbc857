package entity

// Address is a location attached to an external source (a customer, vendor, branch...).
// At most one Address exists per (SourceID, SourceType, CityID).
type Address struct {
	ID                 int64  // Primary key.
	AddressDescription string // Free-text description, e.g. street and building.
	SourceID           int64  // ID of the record in the source system that owns this address.
	SourceType         string // Category of the source, always lowercase (e.g. "customer", "vendor").
	CityID             int64  // Reference to the City the address is located in.
	Phone              string // Contact phone number for the address.

	CommonField
}
