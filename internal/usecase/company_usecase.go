package usecase

import (
	"context"

	"nms/internal/domain/entity"
)

// CompanyDTO is the wire representation of a company.
type CompanyDTO struct {
	ID          int64  `json:"companyId" validate:"omitempty,gt=0"`
	CompanyName string `json:"companyName" validate:"required,max=256"`
	ShortName   string `json:"shortName" validate:"max=50"`
	Email       string `json:"email" validate:"omitempty,email,max=256"`
	Phone       string `json:"phone" validate:"max=20"`
	Website     string `json:"website" validate:"omitempty,url,max=256"`

	AuditFields
}

func (d *CompanyDTO) Normalize() {
	trim(&d.CompanyName)
	trim(&d.ShortName)
	trim(&d.Email)
	trim(&d.Phone)
	trim(&d.Website)
}

func (d *CompanyDTO) ToEntity() *entity.Company {
	company := &entity.Company{}
	d.ApplyTo(company)

	return company
}

func (d *CompanyDTO) ApplyTo(company *entity.Company) {
	company.CompanyName = d.CompanyName
	company.ShortName = d.ShortName
	company.Email = d.Email
	company.Phone = d.Phone
	company.Website = d.Website
}

func (d *CompanyDTO) SameAs(company *entity.Company) bool {
	return d.CompanyName == company.CompanyName &&
		d.ShortName == company.ShortName &&
		d.Email == company.Email &&
		d.Phone == company.Phone &&
		d.Website == company.Website
}

func FromCompany(company *entity.Company) *CompanyDTO {
	return &CompanyDTO{
		ID:          company.ID,
		CompanyName: company.CompanyName,
		ShortName:   company.ShortName,
		Email:       company.Email,
		Phone:       company.Phone,
		Website:     company.Website,
		AuditFields: fromCommonField(company.CommonField),
	}
}

// CompanyUsecase defines the company management operations.
type CompanyUsecase interface {
	AddCompany(ctx context.Context, actorID int64, input *CompanyDTO) (*CompanyDTO, error)
	UpdateCompany(ctx context.Context, actorID int64, input *CompanyDTO) error
	GetCompany(ctx context.Context, id int64) (*CompanyDTO, error)
	ListCompanies(ctx context.Context) ([]*CompanyDTO, error)
}
