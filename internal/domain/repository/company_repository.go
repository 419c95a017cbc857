package repository

import (
	"context"

	"nms/internal/domain/entity"
	"nms/internal/errors"
)

// ErrCompanyNotFound is returned when a company is not found.
var ErrCompanyNotFound = errors.New("company not found")

// CompanyRepository defines the interface for company-related database operations.
type CompanyRepository interface {
	CreateCompany(ctx context.Context, company *entity.Company) error
	FindCompanyByID(ctx context.Context, id int64) (*entity.Company, error)
	FindCompanyByName(ctx context.Context, name string) (*entity.Company, error)
	FindCompanies(ctx context.Context) ([]*entity.Company, error)
	UpdateCompany(ctx context.Context, company *entity.Company) error
}
