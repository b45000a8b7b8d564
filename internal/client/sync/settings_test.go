package sync

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jdifek/fitziz-adminka/internal/client/api"
	"github.com/jdifek/fitziz-adminka/internal/features/settings/models"
)

func TestSettingsFetchExtractsTemplate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/admin/settings", r.URL.Path)
		json.NewEncoder(w).Encode([]*models.Setting{
			{Key: "SOME_FLAG", Value: "on"},
			{Key: models.KeyMaskAddedTemplate, Value: "Новая маска: {name}"},
		})
	}))
	defer server.Close()

	s := NewSettings(api.NewClient(server.URL), NewReporter(4))
	require.NoError(t, s.Fetch(context.Background()))

	require.Equal(t, "Новая маска: {name}", s.Template())
	require.Len(t, s.All(), 2)
}

func TestSettingsFetchFailureKeepsPrevious(t *testing.T) {
	fail := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "db down"})
			return
		}
		json.NewEncoder(w).Encode([]*models.Setting{
			{Key: models.KeyMaskAddedTemplate, Value: "шаблон"},
		})
	}))
	defer server.Close()

	reporter := NewReporter(4)
	s := NewSettings(api.NewClient(server.URL), reporter)
	require.NoError(t, s.Fetch(context.Background()))

	fail = true
	require.Error(t, s.Fetch(context.Background()))
	require.Equal(t, "шаблон", s.Template())

	last, ok := reporter.Last()
	require.True(t, ok)
	require.Error(t, last.Err)
}

func TestSettingsSaveTemplateReloads(t *testing.T) {
	var saved models.SettingPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&saved))
			json.NewEncoder(w).Encode(models.Setting{Key: saved.Key, Value: saved.Value})
		default:
			json.NewEncoder(w).Encode([]*models.Setting{
				{Key: saved.Key, Value: saved.Value},
			})
		}
	}))
	defer server.Close()

	s := NewSettings(api.NewClient(server.URL), nil)
	require.NoError(t, s.SaveTemplate(context.Background(), "Встречайте {name}"))

	require.Equal(t, models.KeyMaskAddedTemplate, saved.Key)
	require.Equal(t, "Встречайте {name}", s.Template())
}

func TestSettingsSendBroadcast(t *testing.T) {
	var got models.BroadcastPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/admin/send-message", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	s := NewSettings(api.NewClient(server.URL), nil)
	require.NoError(t, s.SendBroadcast(context.Background(), "скидки"))
	require.Equal(t, "скидки", got.Text)
}
