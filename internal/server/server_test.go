package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flatgeom/flatgeom/internal/core/observability/log"
)

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	if cfg.MaxMessageSize == 0 {
		cfg.MaxMessageSize = DefaultConfig().MaxMessageSize
	}
	srv, err := New(cfg, log.NewNop())
	require.NoError(t, err)
	return srv
}

func dialWS(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	u := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestWebSocketCollidesQuery(t *testing.T) {
	srv := newTestServer(t, DefaultConfig())
	ts := httptest.NewServer(srv.handler())
	defer ts.Close()

	conn := dialWS(t, ts)

	req := QueryRequest{Op: "collides"}
	req.A.Type = "circle"
	req.A.Radius = 5
	req.B.Type = "circle"
	req.B.X = 10
	req.B.Radius = 5
	require.NoError(t, conn.WriteJSON(req))

	var resp QueryResponse
	require.NoError(t, conn.ReadJSON(&resp))
	require.Empty(t, resp.Error)
	require.NotNil(t, resp.Collides)
	assert.True(t, *resp.Collides, "touching circles collide")

	req.B.X = 10.1
	require.NoError(t, conn.WriteJSON(req))
	require.NoError(t, conn.ReadJSON(&resp))
	require.NotNil(t, resp.Collides)
	assert.False(t, *resp.Collides)
}

func TestWebSocketDistanceQuery(t *testing.T) {
	srv := newTestServer(t, DefaultConfig())
	ts := httptest.NewServer(srv.handler())
	defer ts.Close()

	conn := dialWS(t, ts)

	req := QueryRequest{Op: "distance"}
	req.A.Type = "vector"
	req.A.X = 10
	req.B.Type = "circle"
	req.B.Radius = 5
	require.NoError(t, conn.WriteJSON(req))

	var resp QueryResponse
	require.NoError(t, conn.ReadJSON(&resp))
	require.Empty(t, resp.Error)
	require.NotNil(t, resp.Distance)
	assert.Equal(t, 5.0, *resp.Distance)
}

func TestWebSocketQueryErrors(t *testing.T) {
	srv := newTestServer(t, DefaultConfig())
	ts := httptest.NewServer(srv.handler())
	defer ts.Close()

	conn := dialWS(t, ts)

	// Distance is undefined between two lines.
	req := QueryRequest{Op: "distance"}
	req.A.Type = "line"
	req.A.X2 = 1
	req.B.Type = "line"
	req.B.Y2 = 1
	require.NoError(t, conn.WriteJSON(req))

	var resp QueryResponse
	require.NoError(t, conn.ReadJSON(&resp))
	assert.Contains(t, resp.Error, "no distance defined")

	// Unknown op.
	req = QueryRequest{Op: "overlap"}
	req.A.Type = "vector"
	req.B.Type = "vector"
	require.NoError(t, conn.WriteJSON(req))
	require.NoError(t, conn.ReadJSON(&resp))
	assert.Contains(t, resp.Error, "unknown query op")

	// Invalid shape.
	req = QueryRequest{Op: "collides"}
	req.A.Type = "circle"
	req.A.Radius = -1
	req.B.Type = "vector"
	require.NoError(t, conn.WriteJSON(req))
	require.NoError(t, conn.ReadJSON(&resp))
	assert.Contains(t, resp.Error, "shape a")
}

func writeSceneFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	content := `
name: test
shapes:
  - name: floor
    type: rectangle
    x: 0
    y: 0
    width: 10
    height: 10
  - name: ball
    type: circle
    x: 5
    y: 5
    radius: 1
  - name: distant
    type: circle
    x: 100
    y: 100
    radius: 1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestScenePairsEndpoint(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ScenePath = writeSceneFile(t)
	srv := newTestServer(t, cfg)
	require.Equal(t, 3, srv.Scene().Len())

	ts := httptest.NewServer(srv.handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/scene/pairs")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var pairs []PairResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pairs))
	require.Len(t, pairs, 1)
	assert.Equal(t, "floor", pairs[0].A)
	assert.Equal(t, "ball", pairs[0].B)
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, DefaultConfig())
	ts := httptest.NewServer(srv.handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestNewRejectsMissingScene(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ScenePath = filepath.Join(t.TempDir(), "nope.yaml")
	_, err := New(cfg, log.NewNop())
	assert.Error(t, err)
}

func TestStartStop(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ListenAddr = "127.0.0.1:0"
	srv := newTestServer(t, cfg)

	ctx := context.Background()
	require.NoError(t, srv.Start(ctx))
	assert.ErrorIs(t, srv.Start(ctx), ErrServerAlreadyRunning)
	require.NoError(t, srv.Stop(ctx))
	assert.ErrorIs(t, srv.Stop(ctx), ErrServerNotRunning)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen_addr: 127.0.0.1:9999\nlog_level: debug\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", cfg.ListenAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, DefaultConfig().MaxMessageSize, cfg.MaxMessageSize, "unset fields keep defaults")
}
