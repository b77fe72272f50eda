package components

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/zerohexer/cspnet/internal/router"
)

// ShellID is the element htmx swaps on in-page navigation.
const ShellID = "app"

// NavLabel returns the navigation text for a route, e.g. "credits" -> "Credits".
func NavLabel(r router.Route) string {
	// A Caser keeps state between calls and is not safe to share.
	return cases.Title(language.English).String(string(r))
}

// NavLink renders a link that works as a plain GET without JavaScript and as
// an in-page htmx navigation with it.
func NavLink(r router.Route, children ...g.Node) g.Node {
	return A(
		Href(router.Path(r)),
		hx.Post("/nav/"+string(r)),
		hx.Target("#"+ShellID),
		hx.Swap("outerHTML"),
		hx.PushURL(router.Path(r)),
		g.Group(children),
	)
}

// Navigation renders the top bar with the brand and one item per route.
// The item for active carries the "active" class.
func Navigation(brand string, routes []router.Route, active router.Route) g.Node {
	return Nav(
		Class("nav-bar"),
		Div(
			Class("nav-container"),
			NavLink(router.Home, Class("nav-logo"), g.Text(brand)),
			Div(
				Class("nav-menu"),
				g.Map(routes, func(r router.Route) g.Node {
					return NavLink(r,
						Class(navItemClass(r == active)),
						g.If(r == active, Aria("current", "page")),
						g.Text(NavLabel(r)),
					)
				}),
			),
		),
	)
}

// navItemClass returns the class list of a navigation item, "nav-item" first.
func navItemClass(active bool) string {
	if active {
		return "nav-item active"
	}
	return "nav-item"
}

// Stack renders every page but only shows the one at index visible.
func Stack(pages []g.Node, visible int) g.Node {
	items := make([]g.Node, len(pages))
	for i, page := range pages {
		items[i] = Div(
			Class("stack-item"),
			g.If(i != visible, g.Attr("hidden")),
			page,
		)
	}
	return Main(Class("page-stack"), g.Group(items))
}

// Shell is the swappable application container: navigation plus page stack.
func Shell(nav g.Node, stack g.Node) g.Node {
	return Div(ID(ShellID), Class("app-container"), nav, stack)
}
