package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zerohexer/cspnet/internal/analytics"
	"github.com/zerohexer/cspnet/internal/site"
)

// StatsHandler reports visit counts and live sessions.
type StatsHandler struct {
	counter  *analytics.Counter
	sessions *site.Sessions
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(counter *analytics.Counter, sessions *site.Sessions) *StatsHandler {
	return &StatsHandler{counter: counter, sessions: sessions}
}

// StatsGet handles GET /api/stats.
func (h *StatsHandler) StatsGet(c echo.Context) error {
	return c.JSON(http.StatusOK, StatsResponse{
		Visits:   h.counter.Snapshot(),
		Sessions: h.sessions.Len(),
	})
}

// HealthGet reports liveness.
func HealthGet(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
