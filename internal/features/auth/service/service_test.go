package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	tokens map[string]bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{tokens: map[string]bool{}}
}

func (s *memoryStore) Add(ctx context.Context, token string) error {
	s.tokens[token] = true
	return nil
}

func (s *memoryStore) Exists(ctx context.Context, token string) (bool, error) {
	return s.tokens[token], nil
}

func (s *memoryStore) Remove(ctx context.Context, token string) error {
	delete(s.tokens, token)
	return nil
}

func TestLoginIssuesToken(t *testing.T) {
	store := newMemoryStore()
	svc := NewAuthService("admin", "secret", store)

	token, err := svc.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.True(t, store.tokens[token])

	ok, err := svc.Validate(context.Background(), token)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestLoginRejectsWrongCredentials(t *testing.T) {
	store := newMemoryStore()
	svc := NewAuthService("admin", "secret", store)

	_, err := svc.Login(context.Background(), "admin", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "root", "secret")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	require.Empty(t, store.tokens)
}

func TestLogoutRemovesToken(t *testing.T) {
	store := newMemoryStore()
	svc := NewAuthService("admin", "secret", store)

	token, err := svc.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), token))

	ok, err := svc.Validate(context.Background(), token)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestValidateUnknownToken(t *testing.T) {
	svc := NewAuthService("admin", "secret", newMemoryStore())

	ok, err := svc.Validate(context.Background(), "made-up")
	require.NoError(t, err)
	require.False(t, ok)
}
