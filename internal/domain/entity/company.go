package entity

// Company is an organisation managed by the back office.
type Company struct {
	ID          int64
	CompanyName string // Unique, compared case-insensitively.
	ShortName   string
	Email       string
	Phone       string
	Website     string

	CommonField
}
