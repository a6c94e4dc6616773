package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/bjj-scoreboard/internal/model"
	"github.com/maxviazov/bjj-scoreboard/internal/service"
	"github.com/maxviazov/bjj-scoreboard/pkg/response"
)

// MatchHandler is the referee-facing control API for the live match.
type MatchHandler struct {
	svc service.ScoreboardService
}

func NewMatchHandler(svc service.ScoreboardService) *MatchHandler { return &MatchHandler{svc: svc} }

func (h *MatchHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/match")
	{
		g.GET("", h.get)
		g.PUT("/info", h.updateInfo)
		g.POST("/start", h.start)
		g.POST("/clock/toggle", h.toggleClock)
		g.POST("/actions", h.apply)
	}
}

func (h *MatchHandler) get(c *gin.Context) {
	snap, err := h.svc.Snapshot(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, snap)
}

func (h *MatchHandler) updateInfo(c *gin.Context) {
	var req model.MatchInformation
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	snap, err := h.svc.UpdateInformation(c.Request.Context(), req)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, snap)
}

func (h *MatchHandler) start(c *gin.Context) {
	snap, err := h.svc.StartMatch(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, snap)
}

func (h *MatchHandler) toggleClock(c *gin.Context) {
	snap, err := h.svc.ToggleClock(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, snap)
}

// apply accepts {"kind":"add_points","competitor":"one","points":2}.
func (h *MatchHandler) apply(c *gin.Context) {
	var req service.Action
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	snap, err := h.svc.Apply(c.Request.Context(), req)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, snap)
}
