// Package site holds the per-session application: the route registry and the
// presentation state it drives.
package site

import (
	"context"
	"log/slog"
	"sync"
	"time"

	g "maragu.dev/gomponents"

	"github.com/zerohexer/cspnet/internal/content"
	"github.com/zerohexer/cspnet/internal/events"
	"github.com/zerohexer/cspnet/internal/pubsub"
	"github.com/zerohexer/cspnet/internal/router"
	"github.com/zerohexer/cspnet/web/src/templates/components"
	"github.com/zerohexer/cspnet/web/src/templates/pages"
)

// pageBuilders produces the page for each route, in router.Known order.
var pageBuilders = map[router.Route]func(*content.Site) g.Node{
	router.Home:    pages.Home,
	router.Credits: pages.Credits,
}

// App is the application state of one browser session.
//
// Every exported method takes the App's lock, so UI events of a session are
// handled one at a time, just as a desktop event loop would.
type App struct {
	id     string
	site   *content.Site
	events pubsub.Publisher
	logger *slog.Logger

	mu      sync.Mutex
	routes  *router.Registry
	pages   []g.Node
	visible int
	active  router.Route
}

// pageActivator shows one page of the stack and highlights its navigation item.
type pageActivator struct {
	app   *App
	route router.Route
	index int
}

// Activate implements router.Activator. It runs with the App lock held.
func (p pageActivator) Activate() {
	p.app.visible = p.index
	p.app.routes.SetCurrent(p.route)
	p.app.active = p.route
}

// NewApp builds the page stack from site, registers the routes and shows the
// home page. pub may be nil, in which case no navigation events are published.
func NewApp(id string, site *content.Site, pub pubsub.Publisher, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("session_id", id)

	a := &App{
		id:     id,
		site:   site,
		events: pub,
		logger: logger,
		routes: router.New(router.WithLogger(logger)),
		pages:  make([]g.Node, 0, len(router.Known)),
	}

	for i, r := range router.Known {
		a.pages = append(a.pages, pageBuilders[r](site))
		a.routes.Register(r, pageActivator{app: a, route: r, index: i})
	}
	a.routes.Navigate(router.Home)

	return a
}

// ID returns the session identifier.
func (a *App) ID() string { return a.id }

// Site returns the content snapshot the App was built from.
func (a *App) Site() *content.Site { return a.site }

// HandleNavigation navigates to the named page. Unknown names are absorbed:
// nothing changes and false is returned.
func (a *App) HandleNavigation(ctx context.Context, page string) bool {
	route, err := router.Parse(page)
	if err != nil {
		a.logger.Debug("ignoring navigation", "page", page, "error", err)
		return false
	}

	a.mu.Lock()
	ok := a.routes.Navigate(route)
	a.mu.Unlock()

	if ok {
		a.publish(ctx, route)
	}
	return ok
}

func (a *App) publish(ctx context.Context, route router.Route) {
	if a.events == nil {
		return
	}
	ev := events.Navigation{Route: string(route), At: time.Now().UTC()}
	if err := pubsub.Publish(ctx, a.events, events.Navigated, a.id, ev); err != nil {
		a.logger.Warn("Failed to publish navigation event", "route", route, "error", err)
	}
}

// Current returns the registry's current route.
func (a *App) Current() router.Route {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.routes.Current()
}

// Visible returns the index of the shown page in the stack.
func (a *App) Visible() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.visible
}

// Active returns the highlighted navigation item.
func (a *App) Active() router.Route {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.active
}

// Routes returns the routes registered for this session.
func (a *App) Routes() []router.Route {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.routes.Routes()
}

// Shell returns the navigation bar and page stack as they currently stand.
func (a *App) Shell() g.Node {
	a.mu.Lock()
	defer a.mu.Unlock()
	return components.Shell(
		components.Navigation(a.site.Brand, router.Known, a.active),
		components.Stack(a.pages, a.visible),
	)
}

// Title returns the navigation label of the current page.
func (a *App) Title() string {
	return components.NavLabel(a.Current())
}
