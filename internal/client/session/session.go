// Package session отвечает за жизненный цикл токена админской сессии:
// обмен логина и пароля на токен и его хранение между запусками.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jdifek/fitziz-adminka/internal/client/api"
)

// ErrInvalidCredentials: неверный логин или пароль.
var ErrInvalidCredentials = api.ErrUnauthorized

// tokenFileEnv переопределяет путь к файлу токена (тесты, CI).
const tokenFileEnv = "FITSIZ_TOKEN_FILE"

const tokenFileName = "adminToken"

// Manager хранит токен в памяти и в файле. Не потокобезопасен:
// предполагается один владелец (CLI или единственный цикл событий).
type Manager struct {
	client *api.Client
	path   string
	token  string
}

// NewManager загружает сохраненный токен, если он есть. Ошибка чтения
// файла не фатальна: сессия просто начинается разлогиненной.
func NewManager(client *api.Client) (*Manager, error) {
	path, err := tokenPath()
	if err != nil {
		return nil, err
	}

	m := &Manager{client: client, path: path}
	data, err := os.ReadFile(path)
	if err == nil {
		m.token = strings.TrimSpace(string(data))
		client.SetToken(m.token)
	} else if !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Str("path", path).Msg("failed to read stored token")
	}
	return m, nil
}

// Login обменивает логин и пароль на токен. При ошибке токен не
// сохраняется и состояние сессии не меняется.
func (m *Manager) Login(ctx context.Context, username, password string) error {
	token, err := m.client.Login(ctx, username, password)
	if err != nil {
		return err
	}

	m.token = token
	m.client.SetToken(token)

	if err := os.MkdirAll(filepath.Dir(m.path), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	if err := os.WriteFile(m.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	return nil
}

// Logout снимает сессию локально; серверная инвалидация токена
// выполняется по возможности и не блокирует выход.
func (m *Manager) Logout(ctx context.Context) error {
	if m.token != "" {
		if err := m.client.Logout(ctx); err != nil {
			log.Warn().Err(err).Msg("server-side logout failed")
		}
	}

	m.token = ""
	m.client.SetToken("")

	if err := os.Remove(m.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}

func (m *Manager) IsLoggedIn() bool { return m.token != "" }

func (m *Manager) Token() string { return m.token }

func tokenPath() (string, error) {
	if path := os.Getenv(tokenFileEnv); path != "" {
		return path, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "fitziz", tokenFileName), nil
}
