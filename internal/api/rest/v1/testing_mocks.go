//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/stretchr/testify/mock"
)

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
