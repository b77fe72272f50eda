package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/zerohexer/cspnet/internal/middleware"
	"github.com/zerohexer/cspnet/internal/router"
	"github.com/zerohexer/cspnet/internal/site"
	"github.com/zerohexer/cspnet/internal/view"
	"github.com/zerohexer/cspnet/web/src/templates/layouts"
)

// StylesheetPath is where the generated style sheet is served.
const StylesheetPath = "/static/site.css"

// PageHandler serves the site's pages and in-page navigation.
type PageHandler struct{}

// NewPageHandler creates a new PageHandler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// PageGet returns a handler that navigates the session to route and renders
// the full document.
func (h *PageHandler) PageGet(route router.Route) echo.HandlerFunc {
	return func(c echo.Context) error {
		app, err := appFrom(c)
		if err != nil {
			return err
		}
		app.HandleNavigation(c.Request().Context(), string(route))

		page := view.AdaptGomponentToTempl(app.Shell())
		finalComponent := layouts.Base(documentTitle(app), StylesheetPath, page)
		return c.Render(http.StatusOK, "", finalComponent)
	}
}

// NavigatePost handles htmx navigation. It answers with the re-rendered shell,
// or redirects to the page's URL when the request did not come from htmx.
// Unknown routes leave the shell as it was. A redirect does not navigate:
// the GET that follows it does, so the visit is counted once.
func (h *PageHandler) NavigatePost(c echo.Context) error {
	app, err := appFrom(c)
	if err != nil {
		return err
	}

	if c.Request().Header.Get("HX-Request") != "true" {
		target := app.Current()
		if route, err := router.Parse(c.Param("route")); err == nil {
			target = route
		}
		return c.Redirect(http.StatusSeeOther, router.Path(target))
	}

	app.HandleNavigation(c.Request().Context(), c.Param("route"))

	// htmx picks the <title> out of the fragment and updates the document.
	fragment := g.Group([]g.Node{
		html.TitleEl(g.Text(documentTitle(app))),
		app.Shell(),
	})
	return c.Render(http.StatusOK, "", fragment)
}

func documentTitle(app *site.App) string {
	return layouts.CalculateTitle(app.Title(), app.Site().Title)
}

func appFrom(c echo.Context) (*site.App, error) {
	app, ok := middleware.AppFromContext(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "no session")
	}
	return app, nil
}
