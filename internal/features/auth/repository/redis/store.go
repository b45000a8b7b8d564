package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jdifek/fitziz-adminka/internal/features/auth/service"
)

const sessionKeyPrefix = "admin:session:"

type sessionStore struct {
	client *redis.Client
}

// NewSessionStore возвращает хранилище сессий поверх Redis.
func NewSessionStore(client *redis.Client) service.SessionStore {
	return &sessionStore{client: client}
}

// Add сохраняет токен без TTL: сессия действует до logout.
func (s *sessionStore) Add(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, sessionKeyPrefix+token, "1", 0).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (s *sessionStore) Exists(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check session: %w", err)
	}
	return n > 0, nil
}

func (s *sessionStore) Remove(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	return nil
}
