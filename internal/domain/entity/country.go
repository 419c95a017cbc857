package entity

// Country is a pure reference record.
type Country struct {
	ID            int64
	CountryName   string // Unique, compared case-insensitively.
	TelephoneCode string // International calling code, e.g. "+880". Optional.

	CommonField
}
