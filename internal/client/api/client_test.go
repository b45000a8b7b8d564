package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	usermodels "github.com/jdifek/fitziz-adminka/internal/features/user/models"
)

func TestLoginReturnsToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/admin/login", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		require.Equal(t, "admin", creds["username"])

		json.NewEncoder(w).Encode(map[string]string{"token": "tok-123"})
	}))
	defer server.Close()

	token, err := NewClient(server.URL).Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	require.Equal(t, "tok-123", token)
}

func TestLoginWrongCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Login(context.Background(), "admin", "wrong")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestListUsersFilterParam(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode([]*usermodels.User{})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.ListUsers(context.Background(), "")
	require.NoError(t, err)
	require.Empty(t, gotQuery)

	_, err = client.ListUsers(context.Background(), "12345")
	require.NoError(t, err)
	require.Equal(t, "telegramId=12345", gotQuery)
}

func TestBearerTokenHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]*usermodels.User{})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetToken("tok-456")

	_, err := client.ListUsers(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, "Bearer tok-456", gotAuth)
}

func TestAPIErrorCarriesServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "mask not found"})
	}))
	defer server.Close()

	err := NewClient(server.URL).DeleteMask(context.Background(), 99)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusNotFound, apiErr.Status)
	require.Equal(t, "mask not found", apiErr.Message)
}
