package entity

// City belongs to a Country. CityName is unique within its Country.
type City struct {
	ID        int64
	CityName  string
	CountryID int64

	CommonField
}
