// Package router maps view paths to named routes and keeps a navigation
// history for the TUI.
package router

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRouteNotFound is returned when navigating to an unregistered path.
var ErrRouteNotFound = errors.New("route not found")

// Route names used by the application.
const (
	NameWelcome = "Welcome"
	NameAbout   = "About"
	NameLogin   = "Login"
	NameChat    = "Chat"
)

// Route is a named view reachable by path.
type Route struct {
	Name  string
	Path  string
	Title string
}

// Router resolves paths and tracks navigation history. The history always
// contains at least the initial route.
type Router struct {
	routes  []Route
	byPath  map[string]int
	byName  map[string]int
	history []int
}

// New creates a router over routes. The first route is the initial location.
func New(routes ...Route) (*Router, error) {
	if len(routes) == 0 {
		return nil, errors.New("at least one route is required")
	}

	r := &Router{
		routes: make([]Route, 0, len(routes)),
		byPath: make(map[string]int, len(routes)),
		byName: make(map[string]int, len(routes)),
	}

	for i, route := range routes {
		if route.Name == "" {
			return nil, fmt.Errorf("route %d: name is required", i)
		}
		if !strings.HasPrefix(route.Path, "/") {
			return nil, fmt.Errorf("route %q: path %q must start with /", route.Name, route.Path)
		}
		if _, ok := r.byPath[route.Path]; ok {
			return nil, fmt.Errorf("route %q: duplicate path %q", route.Name, route.Path)
		}
		if _, ok := r.byName[route.Name]; ok {
			return nil, fmt.Errorf("duplicate route name %q", route.Name)
		}
		if route.Title == "" {
			route.Title = route.Name
		}

		r.byPath[route.Path] = len(r.routes)
		r.byName[route.Name] = len(r.routes)
		r.routes = append(r.routes, route)
	}

	r.history = []int{0}
	return r, nil
}

// Default returns the application's router: welcome, about, login and chat.
func Default() *Router {
	r, err := New(
		Route{Name: NameWelcome, Path: "/", Title: "Welcome"},
		Route{Name: NameAbout, Path: "/about", Title: "About"},
		Route{Name: NameLogin, Path: "/login", Title: "Login"},
		Route{Name: NameChat, Path: "/chat", Title: "Chat"},
	)
	if err != nil {
		panic(err) // static table
	}
	return r
}

// Resolve returns the route registered at path.
func (r *Router) Resolve(path string) (Route, bool) {
	idx, ok := r.byPath[normalize(path)]
	if !ok {
		return Route{}, false
	}
	return r.routes[idx], true
}

// ByName returns the route registered under name.
func (r *Router) ByName(name string) (Route, bool) {
	idx, ok := r.byName[name]
	if !ok {
		return Route{}, false
	}
	return r.routes[idx], true
}

// Push navigates to path. Pushing the current path is a no-op.
func (r *Router) Push(path string) error {
	idx, ok := r.byPath[normalize(path)]
	if !ok {
		return fmt.Errorf("%w: %s", ErrRouteNotFound, path)
	}
	if r.history[len(r.history)-1] == idx {
		return nil
	}
	r.history = append(r.history, idx)
	return nil
}

// Replace swaps the current location for path without growing history.
func (r *Router) Replace(path string) error {
	idx, ok := r.byPath[normalize(path)]
	if !ok {
		return fmt.Errorf("%w: %s", ErrRouteNotFound, path)
	}
	r.history[len(r.history)-1] = idx
	return nil
}

// Back returns to the previous location. It reports false when already at
// the first entry.
func (r *Router) Back() bool {
	if len(r.history) <= 1 {
		return false
	}
	r.history = r.history[:len(r.history)-1]
	return true
}

// Current returns the active route.
func (r *Router) Current() Route {
	return r.routes[r.history[len(r.history)-1]]
}

// Depth returns the number of history entries.
func (r *Router) Depth() int {
	return len(r.history)
}

// Routes returns the registered routes in registration order.
func (r *Router) Routes() []Route {
	return append([]Route(nil), r.routes...)
}

// normalize trims a trailing slash so "/chat/" resolves like "/chat".
func normalize(path string) string {
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}
