package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"nms/internal/domain/repository"
	"nms/internal/domain/service"
	mockRepo "nms/internal/mocks/repository"
	mockService "nms/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock() time.Time {
	return fixedNow
}

// serviceMocks bundles the collaborators shared by every use case.
type serviceMocks struct {
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	addressRepo *mockRepo.MockAddressRepository
	countryRepo *mockRepo.MockCountryRepository
	cityRepo    *mockRepo.MockCityRepository
	companyRepo *mockRepo.MockCompanyRepository
	roleRepo    *mockRepo.MockRoleRepository
	userRepo    *mockRepo.MockUserRepository
	publisher   *mockService.MockEventPublisher
	recorder    *mockService.MockMutationRecorder
	hasher      *mockService.MockPasswordHasher
	tokens      *mockService.MockTokenService
}

func newServiceMocks(t *testing.T) *serviceMocks {
	t.Helper()

	m := &serviceMocks{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		addressRepo: mockRepo.NewMockAddressRepository(t),
		countryRepo: mockRepo.NewMockCountryRepository(t),
		cityRepo:    mockRepo.NewMockCityRepository(t),
		companyRepo: mockRepo.NewMockCompanyRepository(t),
		roleRepo:    mockRepo.NewMockRoleRepository(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		publisher:   mockService.NewMockEventPublisher(t),
		recorder:    mockService.NewMockMutationRecorder(t),
		hasher:      mockService.NewMockPasswordHasher(t),
		tokens:      mockService.NewMockTokenService(t),
	}

	m.factory.EXPECT().NewAddressRepository().Return(m.addressRepo).Maybe()
	m.factory.EXPECT().NewCountryRepository().Return(m.countryRepo).Maybe()
	m.factory.EXPECT().NewCityRepository().Return(m.cityRepo).Maybe()
	m.factory.EXPECT().NewCompanyRepository().Return(m.companyRepo).Maybe()
	m.factory.EXPECT().NewRoleRepository().Return(m.roleRepo).Maybe()
	m.factory.EXPECT().NewUserRepository().Return(m.userRepo).Maybe()

	return m
}

// expectTransaction runs the unit of work against the mocked repositories.
func (m *serviceMocks) expectTransaction(ctx context.Context) {
	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		})
}

func (m *serviceMocks) expectOutcome(entity string, action service.AuditAction, outcome string) {
	m.recorder.EXPECT().RecordMutation(entity, action, outcome).Return()
}

// expectPublished captures the audit event published after a successful commit.
func (m *serviceMocks) expectPublished(captured **service.AuditEvent) {
	m.publisher.EXPECT().
		PublishAuditEvent(mock.Anything, mock.AnythingOfType("*service.AuditEvent")).
		RunAndReturn(func(_ context.Context, event *service.AuditEvent) error {
			*captured = event

			return nil
		})
}
