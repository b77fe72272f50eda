// Package server assembles the echo instance that serves the site.
package server

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/zerohexer/cspnet/internal/analytics"
	"github.com/zerohexer/cspnet/internal/config"
	appmiddleware "github.com/zerohexer/cspnet/internal/middleware"
	"github.com/zerohexer/cspnet/internal/rendering"
	"github.com/zerohexer/cspnet/internal/site"
	"github.com/zerohexer/cspnet/internal/style"
)

// sessionMaxAge is the lifetime of the session cookie in seconds.
const sessionMaxAge = 86400 * 7

// Dependencies holds the services the HTTP layer needs.
type Dependencies struct {
	Config   *config.Config
	Sessions *site.Sessions
	Sheet    *style.Sheet
	Counter  *analytics.Counter
	Renderer *rendering.UniversalRenderer
}

// Server holds the echo instance and the services behind its routes.
type Server struct {
	E    *echo.Echo
	deps Dependencies
}

// New creates the echo instance with the global middleware chain. Routes are
// added by RegisterRoutes.
func New(deps Dependencies) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = deps.Renderer
	setupErrorHandling(e)

	e.Use(middleware.RequestID())
	e.Use(appmiddleware.Logger)
	e.Use(appmiddleware.AccessLog())
	e.Use(middleware.Recover())

	store := sessions.NewCookieStore([]byte(deps.Config.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	return &Server{E: e, deps: deps}
}

// setupErrorHandling logs unhandled errors with a stack trace before echo's
// default handler writes the response. *echo.HTTPError values are expected
// outcomes and are not logged here.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if _, ok := err.(*echo.HTTPError); !ok {
			slog.Error("Internal Server Error (Unhandled)",
				"error", err,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}
