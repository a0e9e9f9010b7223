package emulator

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/vfs-tracker-services/handlers"
	"github.com/raywall/vfs-tracker-services/models"
	"github.com/raywall/vfs-tracker-services/pkg/config"
)

type stubEvents struct{ events []models.VoiceEvent }

func (s *stubEvents) ListByUser(context.Context, string) ([]models.VoiceEvent, error) {
	return s.events, nil
}
func (s *stubEvents) ListApproved(context.Context) ([]models.VoiceEvent, error) {
	return s.events, nil
}
func (s *stubEvents) Create(context.Context, models.VoiceEvent) error { return nil }

type stubProfiles struct{}

func (stubProfiles) UpdateProfile(_ context.Context, userID string, profile map[string]interface{}, updatedAt string) (*models.UserProfile, error) {
	return &models.UserProfile{UserID: userID, Profile: profile, UpdatedAt: updatedAt}, nil
}

type stubSigner struct{}

func (stubSigner) DownloadURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://bucket.s3.amazonaws.com/" + key, nil
}

func (stubSigner) UploadURL(_ context.Context, key, _ string, _ map[string]string, _ time.Duration) (string, error) {
	return "https://bucket.s3.amazonaws.com/" + key, nil
}

type stubSessions struct{}

func (stubSessions) OwnerOf(context.Context, string) (string, error) { return "u1", nil }

func testServer(t *testing.T, store *stubEvents) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		Bucket: "bucket",
		CDN:    config.CDNConf{DefaultHost: "cdn.local", CNHost: "cdn.local.cn"},
	}
	svc := handlers.NewService(cfg, store, stubProfiles{}, stubSessions{}, stubSigner{})

	srv, err := New(DefaultConfig(), svc, nil)
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func bearerFor(t *testing.T, userID string) string {
	t.Helper()
	payload, err := json.Marshal(map[string]interface{}{"sub": userID, "token_use": "id"})
	require.NoError(t, err)
	return "Bearer h." + base64.RawURLEncoding.EncodeToString(payload) + ".s"
}

func TestServer_RoutesRealHandlers(t *testing.T) {
	store := &stubEvents{events: []models.VoiceEvent{{
		UserID:  "u1",
		EventID: "ev-1",
		Status:  models.StatusApproved,
	}}}
	ts := testServer(t, store)

	// Feed público: sem autenticação
	resp, err := http.Get(ts.URL + "/events/public")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Correlation-Id"))

	// Path params chegam via mux.Vars
	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/users/u1/events", nil)
	req.Header.Set("Authorization", bearerFor(t, "u1"))
	resp2, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)

	var body struct {
		Events []models.VoiceEvent `json:"events"`
	}
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&body))
	require.Len(t, body.Events, 1)
	assert.Equal(t, "ev-1", body.Events[0].EventID)
}

func TestServer_ErrorsBehaveLikeProduction(t *testing.T) {
	ts := testServer(t, &stubEvents{})

	// Sem token: 401 em JSON, não um fault
	resp, err := http.Get(ts.URL + "/users/u1/events")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestServer_UnknownHandlerInRoutes(t *testing.T) {
	cfg := ServerConfig{
		Addr:   ":0",
		Routes: []RouteConfig{{Path: "/x", Method: "GET", Handler: "nope"}},
	}
	svc := handlers.NewService(&config.Config{}, &stubEvents{}, stubProfiles{}, stubSessions{}, stubSigner{})

	_, err := New(cfg, svc, nil)

	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("arquivo ausente usa default", func(t *testing.T) {
		t.Parallel()
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Addr)
		assert.NotEmpty(t, cfg.Routes)
	})

	t.Run("yaml válido", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "emulator.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"addr: \":9999\"\nroutes:\n  - path: /events/public\n    method: GET\n    handler: public-events\n"), 0o600))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, ":9999", cfg.Addr)
		require.Len(t, cfg.Routes, 1)
		assert.Equal(t, "public-events", cfg.Routes[0].Handler)
	})

	t.Run("yaml inválido é erro", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "emulator.yaml")
		require.NoError(t, os.WriteFile(path, []byte("routes: {"), 0o600))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}
