package impl

import (
	"context"
	"log/slog"
	"time"

	domainerrors "nms/internal/domain/errors"
	"nms/internal/domain/repository"
	"nms/internal/domain/service"
	"nms/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type companyService struct {
	txManager   repository.TransactionManager
	companyRepo repository.CompanyRepository
	reporter    mutationReporter
	logger      *slog.Logger
	now         func() time.Time
}

// CompanyServiceParams holds dependencies for CompanyService, injected by Fx.
type CompanyServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CompanyRepo repository.CompanyRepository
	Publisher   service.EventPublisher
	Recorder    service.MutationRecorder
	Logger      *slog.Logger
}

func NewCompanyService(params CompanyServiceParams) usecase.CompanyUsecase {
	return &companyService{
		txManager:   params.TxManager,
		companyRepo: params.CompanyRepo,
		reporter:    newMutationReporter(params.Publisher, params.Recorder, params.Logger),
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *companyService) AddCompany(ctx context.Context, actorID int64, input *usecase.CompanyDTO) (*usecase.CompanyDTO, error) {
	input.Normalize()
	company := input.ToEntity()
	company.StampCreated(actorID, srv.now())

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		companyRepo := repoFactory.NewCompanyRepository()

		_, err := companyRepo.FindCompanyByName(ctx, company.CompanyName)
		if err == nil {
			return domainerrors.ErrCompanyAlreadyExists
		}
		if !errors.Is(err, repository.ErrCompanyNotFound) {
			return errors.Wrap(err, "failed to check existing company")
		}

		return companyRepo.CreateCompany(ctx, company)
	})
	if err != nil {
		return nil, srv.reporter.failed(ctx, entityCompany, service.AuditActionCreated, err,
			domainerrors.ErrCompanyCreateFailed,
			domainerrors.ErrCompanyAlreadyExists,
		)
	}

	srv.reporter.succeeded(ctx, entityCompany, service.AuditActionCreated, company.ID, actorID, company.CreatedDate)

	return usecase.FromCompany(company), nil
}

func (srv *companyService) UpdateCompany(ctx context.Context, actorID int64, input *usecase.CompanyDTO) error {
	input.Normalize()
	updatedAt := srv.now()

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		companyRepo := repoFactory.NewCompanyRepository()

		company, err := companyRepo.FindCompanyByID(ctx, input.ID)
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return domainerrors.ErrRecordNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to load company")
		}

		if input.SameAs(company) {
			return domainerrors.ErrNothingChanged
		}

		input.ApplyTo(company)
		company.StampUpdated(actorID, updatedAt)

		return companyRepo.UpdateCompany(ctx, company)
	})
	if err != nil {
		return srv.reporter.failed(ctx, entityCompany, service.AuditActionUpdated, err,
			domainerrors.ErrCompanyUpdateFailed,
			domainerrors.ErrRecordNotFound,
			domainerrors.ErrNothingChanged,
			domainerrors.ErrCompanyAlreadyExists,
		)
	}

	srv.reporter.succeeded(ctx, entityCompany, service.AuditActionUpdated, input.ID, actorID, updatedAt)

	return nil
}

func (srv *companyService) GetCompany(ctx context.Context, id int64) (*usecase.CompanyDTO, error) {
	company, err := srv.companyRepo.FindCompanyByID(ctx, id)
	if err != nil {
		return nil, readError(ctx, srv.logger, err, repository.ErrCompanyNotFound)
	}

	return usecase.FromCompany(company), nil
}

func (srv *companyService) ListCompanies(ctx context.Context) ([]*usecase.CompanyDTO, error) {
	companies, err := srv.companyRepo.FindCompanies(ctx)
	if err != nil {
		return nil, readError(ctx, srv.logger, err, nil)
	}

	result := make([]*usecase.CompanyDTO, 0, len(companies))
	for _, company := range companies {
		result = append(result, usecase.FromCompany(company))
	}

	return result, nil
}
