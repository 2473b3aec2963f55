//go:build unit
// +build unit

package app

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/domain/bans"
)

// MockBanSource is a mock implementation of BanSource
type MockBanSource struct {
	mock.Mock
}

func (m *MockBanSource) Name() string {
	return "mock"
}

func (m *MockBanSource) Load(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockBanCheckService is a mock implementation of BanCheckService
type MockBanCheckService struct {
	mock.Mock
}

func (m *MockBanCheckService) IsBanned(ctx context.Context, ip string) bool {
	args := m.Called(ctx, ip)
	return args.Bool(0)
}

func (m *MockBanCheckService) Count() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockBanCheckService) Refresh(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockBanRepository is a mock implementation of BanRepository
type MockBanRepository struct {
	mock.Mock
}

func (m *MockBanRepository) Create(ctx context.Context, entry *bans.BanEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockBanRepository) List(ctx context.Context) ([]*bans.BanEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bans.BanEntry), args.Error(1)
}

func (m *MockBanRepository) GetByAddress(ctx context.Context, address string) (*bans.BanEntry, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bans.BanEntry), args.Error(1)
}

func (m *MockBanRepository) DeleteByAddress(ctx context.Context, address string) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}
