package model

// CountryModel mirrors the 'countries' table.
type CountryModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	CountryName   string `gorm:"type:varchar(256);not null;uniqueIndex:ux_countries_name"`
	TelephoneCode string `gorm:"type:varchar(10)"`

	CommonFieldModel `gorm:"embedded"`
}

// TableName explicitly sets the table name for GORM.
func (CountryModel) TableName() string {
	return "countries"
}

// CityModel mirrors the 'cities' table.
type CityModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	CityName  string `gorm:"type:varchar(256);not null;uniqueIndex:ux_cities_name_country"`
	CountryID int64  `gorm:"not null;uniqueIndex:ux_cities_name_country"`

	CommonFieldModel `gorm:"embedded"`
}

// TableName explicitly sets the table name for GORM.
func (CityModel) TableName() string {
	return "cities"
}
