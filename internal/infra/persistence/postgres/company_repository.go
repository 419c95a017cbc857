package postgres

import (
	"context"

	"nms/internal/domain/entity"
	domainerrors "nms/internal/domain/errors"
	"nms/internal/domain/repository"
	"nms/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository is the constructor for companyRepository.
func NewCompanyRepository(db *gorm.DB) repository.CompanyRepository {
	return &companyRepository{db: db}
}

func (repo *companyRepository) CreateCompany(ctx context.Context, company *entity.Company) error {
	companyM := fromCompanyDomain(company)

	if err := repo.db.WithContext(ctx).Create(companyM).Error; err != nil {
		return translateWriteError(err, domainerrors.ErrCompanyAlreadyExists, "failed to create company")
	}
	company.ID = companyM.ID

	return nil
}

func (repo *companyRepository) FindCompanyByID(ctx context.Context, id int64) (*entity.Company, error) {
	return repo.findOne(ctx, "failed to find company by ID", "id = ?", id)
}

func (repo *companyRepository) FindCompanyByName(ctx context.Context, name string) (*entity.Company, error) {
	return repo.findOne(ctx, "failed to find company by name", "LOWER(company_name) = LOWER(?)", name)
}

func (repo *companyRepository) findOne(ctx context.Context, msg string, query string, args ...any) (*entity.Company, error) {
	var companyM model.CompanyModel
	if err := repo.db.WithContext(ctx).Where(query, args...).First(&companyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCompanyNotFound
		}

		return nil, errors.Wrap(err, msg)
	}

	return toCompanyDomain(&companyM), nil
}

func (repo *companyRepository) FindCompanies(ctx context.Context) ([]*entity.Company, error) {
	var companyModels []*model.CompanyModel
	if err := repo.db.WithContext(ctx).Order("id ASC").Find(&companyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find companies")
	}

	companies := make([]*entity.Company, 0, len(companyModels))
	for _, companyM := range companyModels {
		companies = append(companies, toCompanyDomain(companyM))
	}

	return companies, nil
}

func (repo *companyRepository) UpdateCompany(ctx context.Context, company *entity.Company) error {
	affected, err := updateByID(ctx, repo.db, fromCompanyDomain(company), company.ID)
	if err != nil {
		return translateWriteError(err, domainerrors.ErrCompanyAlreadyExists, "failed to update company")
	}
	if affected == 0 {
		return repository.ErrNoRowsAffected
	}

	return nil
}

func toCompanyDomain(data *model.CompanyModel) *entity.Company {
	if data == nil {
		return nil
	}

	return &entity.Company{
		ID:          data.ID,
		CompanyName: data.CompanyName,
		ShortName:   data.ShortName,
		Email:       data.Email,
		Phone:       data.Phone,
		Website:     data.Website,
		CommonField: toCommonDomain(data.CommonFieldModel),
	}
}

func fromCompanyDomain(data *entity.Company) *model.CompanyModel {
	if data == nil {
		return nil
	}

	return &model.CompanyModel{
		ID:               data.ID,
		CompanyName:      data.CompanyName,
		ShortName:        data.ShortName,
		Email:            data.Email,
		Phone:            data.Phone,
		Website:          data.Website,
		CommonFieldModel: fromCommonDomain(data.CommonField),
	}
}
