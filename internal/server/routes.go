package server

import (
	"github.com/labstack/echo/v4"

	"github.com/zerohexer/cspnet/internal/handlers"
	appmiddleware "github.com/zerohexer/cspnet/internal/middleware"
	"github.com/zerohexer/cspnet/internal/router"
	"github.com/zerohexer/cspnet/web"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	pageHandler := handlers.NewPageHandler()
	styleHandler := handlers.NewStyleHandler(s.deps.Sheet)
	statsHandler := handlers.NewStatsHandler(s.deps.Counter, s.deps.Sessions)
	rateLimiter := appmiddleware.RateLimiter(s.deps.Config.NavRateLimit)

	// The generated sheet is registered before the static catch-all.
	s.E.GET(handlers.StylesheetPath, styleHandler.SheetGet)
	s.E.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	pages := s.E.Group("", appmiddleware.AppSession(s.deps.Sessions))
	for _, r := range router.Known {
		pages.GET(router.Path(r), pageHandler.PageGet(r))
	}
	pages.POST("/nav/:route", pageHandler.NavigatePost, rateLimiter)

	s.E.GET("/api/stats", statsHandler.StatsGet)
	s.E.GET("/health", handlers.HealthGet)
}
