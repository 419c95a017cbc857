package entity

// User is an account that can authenticate against the API.
type User struct {
	ID           int64
	UserName     string // Unique, always lowercase. Used as login identifier.
	FullName     string
	Email        string // Unique.
	PasswordHash string // bcrypt hash, never exposed through DTOs.
	Roles        Roles

	CommonField
}
