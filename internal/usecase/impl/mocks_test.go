package impl

import (
	"context"
	"time"

	"compass/internal/domain/entity"
	"compass/internal/domain/repository"
	"compass/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// mockProfileRepo is a testify mock for repository.ProfileRepository.
type mockProfileRepo struct {
	mock.Mock
}

func (m *mockProfileRepo) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	args := m.Called(ctx, email)
	if profile, ok := args.Get(0).(*entity.Profile); ok {
		return profile, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockProfileRepo) Create(ctx context.Context, profile *entity.Profile) error {
	args := m.Called(ctx, profile)

	return args.Error(0)
}

func (m *mockProfileRepo) Update(ctx context.Context, profile *entity.Profile) error {
	args := m.Called(ctx, profile)

	return args.Error(0)
}

// mockHasher is a testify mock for service.PasswordHasher.
type mockHasher struct {
	mock.Mock
}

func (m *mockHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// mockTokenService is a testify mock for service.TokenService.
type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(email string) (string, error) {
	args := m.Called(email)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Verify(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if claims, ok := args.Get(0).(*service.Claims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockTokenService) TokenTTL() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}

// stubTxManager runs the callback directly against the given repository,
// standing in for a real database transaction.
type stubTxManager struct {
	repo     repository.ProfileRepository
	executed bool
}

func (tm *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	tm.executed = true

	return fn(stubRepoFactory{repo: tm.repo})
}

type stubRepoFactory struct {
	repo repository.ProfileRepository
}

func (f stubRepoFactory) ProfileRepo() repository.ProfileRepository {
	return f.repo
}
