package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jdifek/fitziz-adminka/internal/client/api"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/admin/login":
			var creds map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
			if creds["password"] != "secret" {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
				return
			}
			json.NewEncoder(w).Encode(map[string]string{"token": "tok-abc"})
		case "/admin/logout":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func tokenFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "adminToken")
	t.Setenv("FITSIZ_TOKEN_FILE", path)
	return path
}

func TestLoginPersistsToken(t *testing.T) {
	server := testServer(t)
	path := tokenFile(t)

	client := api.NewClient(server.URL)
	m, err := NewManager(client)
	require.NoError(t, err)
	require.False(t, m.IsLoggedIn())

	require.NoError(t, m.Login(context.Background(), "admin", "secret"))
	require.True(t, m.IsLoggedIn())
	require.Equal(t, "tok-abc", m.Token())
	require.Equal(t, "tok-abc", client.Token())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "tok-abc", string(data))
}

func TestFailedLoginStoresNothing(t *testing.T) {
	server := testServer(t)
	path := tokenFile(t)

	m, err := NewManager(api.NewClient(server.URL))
	require.NoError(t, err)

	err = m.Login(context.Background(), "admin", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.False(t, m.IsLoggedIn())
	require.Empty(t, m.Token())

	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr))
}

func TestStoredTokenLoadedAtStartup(t *testing.T) {
	server := testServer(t)
	path := tokenFile(t)
	require.NoError(t, os.WriteFile(path, []byte("tok-old\n"), 0o600))

	client := api.NewClient(server.URL)
	m, err := NewManager(client)
	require.NoError(t, err)

	require.True(t, m.IsLoggedIn())
	require.Equal(t, "tok-old", m.Token())
	require.Equal(t, "tok-old", client.Token())
}

func TestLogoutRemovesToken(t *testing.T) {
	server := testServer(t)
	path := tokenFile(t)

	client := api.NewClient(server.URL)
	m, err := NewManager(client)
	require.NoError(t, err)
	require.NoError(t, m.Login(context.Background(), "admin", "secret"))

	require.NoError(t, m.Logout(context.Background()))
	require.False(t, m.IsLoggedIn())
	require.Empty(t, client.Token())

	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr))
}

func TestLogoutSurvivesServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)
	path := tokenFile(t)
	require.NoError(t, os.WriteFile(path, []byte("tok-x"), 0o600))

	m, err := NewManager(api.NewClient(server.URL))
	require.NoError(t, err)
	require.True(t, m.IsLoggedIn())

	require.NoError(t, m.Logout(context.Background()))
	require.False(t, m.IsLoggedIn())
}
