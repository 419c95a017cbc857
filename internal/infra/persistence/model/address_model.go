package model

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID                 int64  `gorm:"primaryKey;autoIncrement"`
	AddressDescription string `gorm:"type:varchar(500)"`
	SourceID           int64  `gorm:"not null;uniqueIndex:ux_addresses_source"`
	SourceType         string `gorm:"type:varchar(50);not null;uniqueIndex:ux_addresses_source"`
	CityID             int64  `gorm:"not null;uniqueIndex:ux_addresses_source;index:idx_addresses_city"`
	Phone              string `gorm:"type:varchar(20)"`

	CommonFieldModel `gorm:"embedded"`
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
