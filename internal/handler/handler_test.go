package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/bjj-scoreboard/internal/clock"
	"github.com/maxviazov/bjj-scoreboard/internal/handler"
	"github.com/maxviazov/bjj-scoreboard/internal/model"
	"github.com/maxviazov/bjj-scoreboard/internal/scoreboard"
	"github.com/maxviazov/bjj-scoreboard/internal/service"
)

func newRouter(t *testing.T) (*gin.Engine, *clockwork.FakeClock) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	fc := clockwork.NewFakeClock()
	m := scoreboard.NewFromInformation(model.DefaultMatchInformation(), clock.WithSource(fc))
	svc := service.NewScoreboardService(m, zerolog.New(io.Discard))

	r := gin.New()
	handler.Register(r, svc, 10*time.Millisecond, zerolog.New(io.Discard))
	return r, fc
}

func do(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, reader))
	return w
}

func decodeSnapshot(t *testing.T, w *httptest.ResponseRecorder) scoreboard.Snapshot {
	t.Helper()
	var snap scoreboard.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap), w.Body.String())
	return snap
}

func TestMatchHandler_Get(t *testing.T) {
	r, _ := newRouter(t)
	w := do(r, http.MethodGet, "/api/v1/match", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	snap := decodeSnapshot(t, w)
	assert.Equal(t, model.NotStarted, snap.State)
	assert.Equal(t, "0:05:00.000", snap.Remaining)
	assert.Contains(t, w.Body.String(), `"state":"not_started"`)
}

func TestMatchHandler_StartToggleAndScore(t *testing.T) {
	r, fc := newRouter(t)

	w := do(r, http.MethodPost, "/api/v1/match/start", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, decodeSnapshot(t, w).Running)

	fc.Advance(90 * time.Second)
	w = do(r, http.MethodPost, "/api/v1/match/clock/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)
	snap := decodeSnapshot(t, w)
	assert.False(t, snap.Running)
	assert.Equal(t, "0:03:30.000", snap.Remaining)
	assert.Equal(t, model.InProgress, snap.State)

	w = do(r, http.MethodPost, "/api/v1/match/actions", map[string]any{"kind": "add_points", "competitor": "two", "points": 3})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, uint(3), decodeSnapshot(t, w).Score.CompetitorTwo.Points)

	w = do(r, http.MethodPost, "/api/v1/match/actions", map[string]any{"kind": "subtract_penalty", "competitor": 1})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, uint(0), decodeSnapshot(t, w).Score.CompetitorOne.Penalties)
}

func TestMatchHandler_Actions_Invalid(t *testing.T) {
	r, _ := newRouter(t)

	cases := []struct {
		name string
		body any
	}{
		{"unknown kind", map[string]any{"kind": "reset"}},
		{"unknown competitor", map[string]any{"kind": "add_advantage", "competitor": "three"}},
		{"missing competitor", map[string]any{"kind": "add_penalty"}},
		{"negative points", map[string]any{"kind": "add_points", "competitor": "one", "points": -2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/api/v1/match/actions", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.Contains(t, w.Body.String(), "invalid_input")
		})
	}
}

func TestMatchHandler_UpdateInfo(t *testing.T) {
	r, _ := newRouter(t)

	info := model.DefaultMatchInformation()
	info.CompetitorTwo = model.Competitor{FirstName: "Ronaldo", LastName: "Mendes Dos Santos", TeamName: "Caza BJJ", Country: model.CountryBrazil}
	info.MatNumber = 3

	w := do(r, http.MethodPut, "/api/v1/match/info", info)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 3, decodeSnapshot(t, w).Info.MatNumber)

	info.CompetitorOne.Country = "Atlantis"
	w = do(r, http.MethodPut, "/api/v1/match/info", info)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "competitor_one.country")

	info.CompetitorOne.Country = model.CountryUnitedStates
	do(r, http.MethodPost, "/api/v1/match/start", nil)
	w = do(r, http.MethodPut, "/api/v1/match/info", info)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "match_started")
}

func TestHealth(t *testing.T) {
	r, _ := newRouter(t)
	for _, path := range []string{"/live", "/ready", "/api/v1/health/live", "/api/v1/health/ready"} {
		w := do(r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestReadiness_NoMatch(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler.Register(r, service.NewScoreboardService(nil, zerolog.New(io.Discard)), time.Second, zerolog.New(io.Discard))

	w := do(r, http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = do(r, http.MethodGet, "/api/v1/match", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "no_match")
}

// stubPinger implements handler.Pinger for readiness.
type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

func TestHealthHandler_Readiness(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		name string
		p    handler.Pinger
		want int
	}{
		{"ready", stubPinger{}, http.StatusOK},
		{"failing", stubPinger{err: service.ErrNoMatch}, http.StatusServiceUnavailable},
		{"nil target", nil, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/ready", handler.NewHealthHandler(tc.p).Readiness)
			w := do(r, http.MethodGet, "/ready", nil)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestFeed_StreamsSnapshots(t *testing.T) {
	r, _ := newRouter(t)
	srv := httptest.NewServer(r)
	defer srv.Close()

	// score before connecting so the first frame carries it
	w := do(r, http.MethodPost, "/api/v1/match/actions", map[string]any{"kind": "add_advantage", "competitor": "one"})
	require.Equal(t, http.StatusOK, w.Code)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + handler.FeedPath
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	for i := 0; i < 3; i++ {
		var snap scoreboard.Snapshot
		require.NoError(t, conn.ReadJSON(&snap))
		assert.Equal(t, uint(1), snap.Score.CompetitorOne.Advantages)
		assert.Equal(t, model.NotStarted, snap.State)
	}
}

func TestFeed_RejectsPlainHTTP(t *testing.T) {
	r, _ := newRouter(t)
	w := do(r, http.MethodGet, handler.FeedPath, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDocs(t *testing.T) {
	r, _ := newRouter(t)

	w := do(r, http.MethodGet, "/openapi.yaml", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/v1/match/actions:")

	w = do(r, http.MethodGet, "/docs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
}
