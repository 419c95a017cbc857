package repository

import "context"

// TransactionManager is the explicit commit boundary of the application.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back and that error is returned.
	// Otherwise the transaction is committed; a failed commit is reported as an error.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	NewAddressRepository() AddressRepository
	NewCountryRepository() CountryRepository
	NewCityRepository() CityRepository
	NewCompanyRepository() CompanyRepository
	NewRoleRepository() RoleRepository
	NewUserRepository() UserRepository
}
