// Package router maps route identifiers to activation callbacks and keeps
// track of which route is current.
package router

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
)

// Route identifies a user-reachable page.
type Route string

// The routes served by the site.
const (
	Home    Route = "home"
	Credits Route = "credits"
)

// Known lists the site's routes in navigation order.
var Known = []Route{Home, Credits}

// ErrUnknownRoute is returned by Parse for identifiers outside Known.
var ErrUnknownRoute = errors.New("unknown route")

// Parse converts a free-form identifier into a known Route.
func Parse(s string) (Route, error) {
	r := Route(s)
	if !slices.Contains(Known, r) {
		return "", fmt.Errorf("%w: %q", ErrUnknownRoute, s)
	}
	return r, nil
}

// Path returns the URL path a route is served at.
func Path(r Route) string {
	if r == Home {
		return "/"
	}
	return "/" + string(r)
}

// Activator performs the visible effect of switching to a route.
type Activator interface {
	Activate()
}

// ActivatorFunc adapts an ordinary function to the Activator interface.
type ActivatorFunc func()

// Activate calls f().
func (f ActivatorFunc) Activate() { f() }

// Registry associates routes with activators.
//
// A Registry is not safe for concurrent use. Its owner serializes access,
// which also lets activators call SetCurrent while Navigate is running.
type Registry struct {
	routes  map[Route]Activator
	current Route
	logger  *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) { r.logger = l }
}

// WithInitial overrides the initial current route.
func WithInitial(route Route) Option {
	return func(r *Registry) { r.current = route }
}

// New creates an empty Registry whose current route is Home.
func New(opts ...Option) *Registry {
	r := &Registry{
		routes:  make(map[Route]Activator),
		current: Home,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register makes future navigation to route invoke a. A previous
// registration for the same route is replaced.
func (r *Registry) Register(route Route, a Activator) {
	if route == "" {
		panic("router: empty route")
	}
	if a == nil {
		panic("router: nil activator for route " + string(route))
	}
	r.routes[route] = a
}

// Navigate sets the current route and invokes its activator. It reports
// false and leaves the registry untouched when route is not registered.
func (r *Registry) Navigate(route Route) bool {
	a, ok := r.routes[route]
	if !ok {
		r.logger.Debug("route not found", "route", route)
		return false
	}
	r.current = route
	a.Activate()
	r.logger.Debug("navigated", "route", route)
	return true
}

// SetCurrent records route as current without invoking anything.
func (r *Registry) SetCurrent(route Route) {
	r.current = route
}

// Current returns the current route.
func (r *Registry) Current() Route {
	return r.current
}

// Routes returns the registered routes in sorted order.
func (r *Registry) Routes() []Route {
	out := make([]Route, 0, len(r.routes))
	for route := range r.routes {
		out = append(out, route)
	}
	slices.Sort(out)
	return out
}
