package banlist

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/domain/bans"
	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/pkg/config"
)

// SetMembersReader is the subset of the redis client the source needs.
type SetMembersReader interface {
	SMembers(ctx context.Context, key string) *redis.StringSliceCmd
}

type redisSource struct {
	client SetMembersReader
	key    string
}

// NewRedisSource creates a BanSource that reads the members of a redis set.
func NewRedisSource(client SetMembersReader, key string) (bans.BanSource, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client must not be nil")
	}
	if key == "" {
		return nil, fmt.Errorf("redis key must not be empty")
	}
	return &redisSource{client: client, key: key}, nil
}

// NewRedisClient builds a client from settings.
func NewRedisClient(settings config.RedisSettings) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         settings.Addr,
		Password:     settings.Password,
		DB:           settings.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
}

func (s *redisSource) Name() string {
	return "redis:" + s.key
}

func (s *redisSource) Load(ctx context.Context) ([]string, error) {
	members, err := s.client.SMembers(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read redis set %s: %w", s.key, err)
	}
	return members, nil
}
