package service

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// SessionStore хранит выданные админские токены.
type SessionStore interface {
	Add(ctx context.Context, token string) error
	Exists(ctx context.Context, token string) (bool, error)
	Remove(ctx context.Context, token string) error
}

// AuthService обменивает учетные данные администратора на bearer-токен.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, token string) error
	Validate(ctx context.Context, token string) (bool, error)
}

type authService struct {
	username string
	password string
	sessions SessionStore
}

func NewAuthService(username, password string, sessions SessionStore) AuthService {
	return &authService{
		username: username,
		password: password,
		sessions: sessions,
	}
}

// Login сверяет учетные данные и при успехе выдает новый токен.
// Токен живет до явного logout: срок действия не ограничен.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}

	token := uuid.NewString()
	if err := s.sessions.Add(ctx, token); err != nil {
		return "", err
	}
	return token, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	return s.sessions.Remove(ctx, token)
}

func (s *authService) Validate(ctx context.Context, token string) (bool, error) {
	return s.sessions.Exists(ctx, token)
}
