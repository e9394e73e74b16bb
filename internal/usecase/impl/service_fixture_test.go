package impl

import (
	"context"
	"log/slog"
	"testing"

	"ayra/internal/domain/repository"
	mockRepo "ayra/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

// txFixture wires a mock transaction manager that runs the callback against
// a factory of mock repositories.
type txFixture struct {
	txManager      *mockRepo.MockTransactionManager
	factory        *mockRepo.MockRepositoryFactory
	coordinateRepo *mockRepo.MockCoordinateRepository
	markerRepo     *mockRepo.MockMapMarkerRepository
	userRepo       *mockRepo.MockUserRepository
	alertRepo      *mockRepo.MockAlertRepository
	safetyRepo     *mockRepo.MockSafetyRepository
}

func newTxFixture(t *testing.T) *txFixture {
	t.Helper()

	f := &txFixture{
		txManager:      mockRepo.NewMockTransactionManager(t),
		factory:        mockRepo.NewMockRepositoryFactory(t),
		coordinateRepo: mockRepo.NewMockCoordinateRepository(t),
		markerRepo:     mockRepo.NewMockMapMarkerRepository(t),
		userRepo:       mockRepo.NewMockUserRepository(t),
		alertRepo:      mockRepo.NewMockAlertRepository(t),
		safetyRepo:     mockRepo.NewMockSafetyRepository(t),
	}

	f.factory.EXPECT().CoordinateRepo().Return(f.coordinateRepo).Maybe()
	f.factory.EXPECT().MapMarkerRepo().Return(f.markerRepo).Maybe()
	f.factory.EXPECT().UserRepo().Return(f.userRepo).Maybe()
	f.factory.EXPECT().AlertRepo().Return(f.alertRepo).Maybe()
	f.factory.EXPECT().SafetyRepo().Return(f.safetyRepo).Maybe()

	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		}).
		Maybe()

	return f
}

func (f *txFixture) assertNoTransaction(t *testing.T) {
	t.Helper()
	f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func ptr[T any](v T) *T {
	return &v
}
