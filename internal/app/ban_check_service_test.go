//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/infrastructure/cache"
	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/pkg/testutil"
	"github.com/thejerf/abtime"
)

const testTTL = 5 * time.Second

func newTestCheckService(t *testing.T, source *MockBanSource, minRetry time.Duration) (*banCheckService, *abtime.ManualTime) {
	t.Helper()

	clock := abtime.NewManual()
	c := cache.NewBannedIPCache(testTTL, clock)

	service, err := NewBanCheckService(source, c, minRetry, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	return service.(*banCheckService), clock
}

func TestBanCheckService_StaleCacheRefreshesOnRequest(t *testing.T) {
	source := new(MockBanSource)
	source.On("Load", mock.Anything).Return([]string{"203.0.113.7"}, nil).Once()

	service, _ := newTestCheckService(t, source, 0)

	assert.True(t, service.IsBanned(context.Background(), "203.0.113.7"))
	assert.False(t, service.IsBanned(context.Background(), "203.0.113.8"))
	assert.Equal(t, 1, service.Count())
	source.AssertNumberOfCalls(t, "Load", 1)
}

func TestBanCheckService_FreshCacheDoesNotTouchSource(t *testing.T) {
	source := new(MockBanSource)
	source.On("Load", mock.Anything).Return([]string{"203.0.113.7"}, nil)

	service, clock := newTestCheckService(t, source, 0)
	require.NoError(t, service.Refresh(context.Background()))

	for i := 0; i < 5; i++ {
		service.IsBanned(context.Background(), "192.0.2.1")
	}
	clock.Advance(testTTL - time.Millisecond)
	service.IsBanned(context.Background(), "192.0.2.1")

	source.AssertNumberOfCalls(t, "Load", 1)

	clock.Advance(time.Millisecond)
	service.IsBanned(context.Background(), "192.0.2.1")
	source.AssertNumberOfCalls(t, "Load", 2)
}

func TestBanCheckService_FailedRefreshKeepsPreviousEntries(t *testing.T) {
	source := new(MockBanSource)
	source.On("Load", mock.Anything).Return([]string{"203.0.113.7", "10.0.0.0/8"}, nil).Once()
	source.On("Load", mock.Anything).Return(nil, errors.New("disk on fire"))

	service, clock := newTestCheckService(t, source, 0)
	require.NoError(t, service.Refresh(context.Background()))

	clock.Advance(testTTL)

	assert.True(t, service.IsBanned(context.Background(), "203.0.113.7"))
	assert.True(t, service.IsBanned(context.Background(), "10.9.8.7"))
	assert.Equal(t, 2, service.Count())

	err := service.Refresh(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
	assert.Equal(t, 2, service.Count())
}

func TestBanCheckService_FailingSourceIsThrottled(t *testing.T) {
	source := new(MockBanSource)
	source.On("Load", mock.Anything).Return(nil, errors.New("unreachable"))

	service, _ := newTestCheckService(t, source, time.Hour)

	for i := 0; i < 10; i++ {
		assert.False(t, service.IsBanned(context.Background(), "203.0.113.7"))
	}

	source.AssertNumberOfCalls(t, "Load", 1)
}

func TestBanCheckService_RefreshReplacesEntries(t *testing.T) {
	source := new(MockBanSource)
	source.On("Load", mock.Anything).Return([]string{"192.0.2.1"}, nil).Once()
	source.On("Load", mock.Anything).Return([]string{"192.0.2.2", "192.0.2.3"}, nil).Once()

	service, _ := newTestCheckService(t, source, 0)

	require.NoError(t, service.Refresh(context.Background()))
	assert.True(t, service.IsBanned(context.Background(), "192.0.2.1"))

	require.NoError(t, service.Refresh(context.Background()))
	assert.False(t, service.IsBanned(context.Background(), "192.0.2.1"))
	assert.True(t, service.IsBanned(context.Background(), "192.0.2.3"))
	assert.Equal(t, 2, service.Count())
}

func TestNewBanCheckService_Validation(t *testing.T) {
	log := testutil.SetupTestLogger(t)

	_, err := NewBanCheckService(nil, cache.NewBannedIPCache(testTTL, nil), 0, log)
	assert.Error(t, err)

	_, err = NewBanCheckService(new(MockBanSource), nil, 0, log)
	assert.Error(t, err)
}

func TestBanCheckService_FailedRefreshLeavesCacheStale(t *testing.T) {
	source := new(MockBanSource)
	source.On("Load", mock.Anything).Return([]string{"203.0.113.7"}, nil).Once()
	source.On("Load", mock.Anything).Return(nil, errors.New("disk on fire")).Once()
	source.On("Load", mock.Anything).Return([]string{"198.51.100.9"}, nil).Once()

	service, clock := newTestCheckService(t, source, 0)
	require.NoError(t, service.Refresh(context.Background()))
	lastRead := service.cache.(*cache.BannedIPCache).LastRead()
	require.False(t, service.cache.IsStale())

	clock.Advance(testTTL)
	require.Error(t, service.Refresh(context.Background()))

	assert.True(t, service.cache.IsStale())
	assert.Equal(t, lastRead, service.cache.(*cache.BannedIPCache).LastRead())

	// The next request reloads because the cache is still stale.
	assert.True(t, service.IsBanned(context.Background(), "198.51.100.9"))
	assert.False(t, service.IsBanned(context.Background(), "203.0.113.7"))
	assert.False(t, service.cache.IsStale())
	source.AssertNumberOfCalls(t, "Load", 3)
}

func TestBanCheckService_ThrottledRetryPicksUpRecoveredSource(t *testing.T) {
	source := new(MockBanSource)
	source.On("Load", mock.Anything).Return(nil, errors.New("unreachable")).Once()
	source.On("Load", mock.Anything).Return([]string{"203.0.113.7"}, nil).Once()

	service, _ := newTestCheckService(t, source, 200*time.Millisecond)

	assert.False(t, service.IsBanned(context.Background(), "203.0.113.7"))
	assert.True(t, service.cache.IsStale())
	assert.False(t, service.IsBanned(context.Background(), "203.0.113.7"))
	source.AssertNumberOfCalls(t, "Load", 1)

	assert.Eventually(t, func() bool {
		return service.IsBanned(context.Background(), "203.0.113.7")
	}, 2*time.Second, 10*time.Millisecond)
	assert.False(t, service.cache.IsStale())
	source.AssertNumberOfCalls(t, "Load", 2)
}
