//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/domain/bans"
	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/pkg/testutil"
)

func TestBanAdminService_AddNormalizesAddress(t *testing.T) {
	repo := new(MockBanRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *bans.BanEntry) bool {
		return e.Address == "10.0.0.0/8" && e.Reason == "internal scan" && e.ID != ""
	})).Return(nil)

	service, err := NewBanAdminService(repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	entry, err := service.Add(context.Background(), " 10.1.2.3/8 ", "internal scan")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.0/8", entry.Address)
	assert.False(t, entry.DateTimeCreated.IsZero())
	repo.AssertExpectations(t)
}

func TestBanAdminService_AddPropagatesErrors(t *testing.T) {
	repo := new(MockBanRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("validation error"))

	service, err := NewBanAdminService(repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	entry, err := service.Add(context.Background(), "nope", "")
	assert.Error(t, err)
	assert.Nil(t, entry)
}

func TestBanAdminService_RemoveAndList(t *testing.T) {
	repo := new(MockBanRepository)
	repo.On("DeleteByAddress", mock.Anything, "2001:db8::1").Return(nil)
	repo.On("List", mock.Anything).Return([]*bans.BanEntry{{Address: "203.0.113.7"}}, nil)

	service, err := NewBanAdminService(repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	require.NoError(t, service.Remove(context.Background(), "2001:DB8::0001"))

	entries, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "203.0.113.7", entries[0].Address)
	repo.AssertExpectations(t)
}
