package middleware

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/zerohexer/cspnet/internal/site"
)

const (
	// SessionName is the cookie holding the session ID.
	SessionName = "cspnet-session"
	sessionKey  = "id"

	// AppContextKey is the echo context key holding the session's *site.App.
	AppContextKey = "app"
)

// AppSession attaches the browser session's App to the echo context, creating
// a session and issuing its cookie on the first visit. It must run after the
// echo-contrib session middleware.
func AppSession(sessions *site.Sessions) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := session.Get(SessionName, c)
			if sess == nil {
				return err
			}
			if err != nil {
				// A cookie signed with an old secret fails to decode; a fresh
				// session replaces it.
				FromContext(c.Request().Context()).Debug("Discarding unreadable session cookie", "error", err)
			}

			id, _ := sess.Values[sessionKey].(string)
			app, created := sessions.GetOrCreate(id)
			if created {
				sess.Values[sessionKey] = app.ID()
				if err := sess.Save(c.Request(), c.Response()); err != nil {
					return err
				}
			}

			c.Set(AppContextKey, app)
			return next(c)
		}
	}
}

// AppFromContext returns the App attached by AppSession.
func AppFromContext(c echo.Context) (*site.App, bool) {
	app, ok := c.Get(AppContextKey).(*site.App)
	return app, ok
}
