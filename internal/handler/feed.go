package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/maxviazov/bjj-scoreboard/internal/service"
)

var (
	pongWait     = 10 * time.Second
	pingInterval = (pongWait * 9) / 10
	writeWait    = 2 * time.Second
)

// FeedHandler streams match snapshots to a spectator display over a websocket.
// It is read-only: spectators cannot send commands.
type FeedHandler struct {
	svc      service.ScoreboardService
	interval time.Duration
	upgrader websocket.Upgrader
	log      zerolog.Logger
}

func NewFeedHandler(svc service.ScoreboardService, interval time.Duration, logger zerolog.Logger) *FeedHandler {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return &FeedHandler{
		svc:      svc,
		interval: interval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  512,
			WriteBufferSize: 1024,
			// the scoreboard is served on a trusted venue network
			CheckOrigin: func(*http.Request) bool { return true },
		},
		log: logger.With().Str("module", "handler").Str("component", "feed").Logger(),
	}
}

func (h *FeedHandler) Register(r *gin.Engine) {
	r.GET(FeedPath, h.serve)
}

func (h *FeedHandler) serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	remote := conn.RemoteAddr().String()
	h.log.Info().Str("remote", remote).Msg("spectator connected")
	defer h.log.Info().Str("remote", remote).Msg("spectator disconnected")

	closed := make(chan struct{})
	go h.readPump(conn, closed)
	h.writePump(c, conn, closed)
}

// readPump only exists to process pongs and notice when the client goes away.
func (h *FeedHandler) readPump(conn *websocket.Conn, closed chan<- struct{}) {
	defer close(closed)

	conn.SetReadLimit(512)
	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Debug().Err(err).Msg("feed read error")
			}
			return
		}
	}
}

func (h *FeedHandler) writePump(c *gin.Context, conn *websocket.Conn, closed <-chan struct{}) {
	ctx := c.Request.Context()
	frames := time.NewTicker(h.interval)
	defer frames.Stop()
	pings := time.NewTicker(pingInterval)
	defer pings.Stop()

	send := func() bool {
		snap, err := h.svc.Snapshot(ctx)
		if err != nil {
			h.log.Error().Err(err).Msg("snapshot for feed failed")
			return false
		}
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(snap); err != nil {
			h.log.Debug().Err(err).Msg("feed write failed")
			return false
		}
		return true
	}

	if !send() {
		return
	}
	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
				time.Now().Add(writeWait))
			return
		case <-closed:
			return
		case <-frames.C:
			if !send() {
				return
			}
		case <-pings.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
