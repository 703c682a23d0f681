package nav

import (
	"errors"
	"fmt"
)

// Application routes.
const (
	RouteHome     = "/"
	RouteExplorer = "/geometry-3d"
	RouteSocial   = "/layouts"
	RouteNatural  = "/tts"
)

// ErrUnknownRoute is returned by Navigate for paths with no view.
var ErrUnknownRoute = errors.New("nav: unknown route")

// Route maps a path to a page title.
type Route struct {
	Path  string
	Title string
}

// DefaultRoutes lists every page of the application.
func DefaultRoutes() []Route {
	return []Route{
		{Path: RouteHome, Title: "Home"},
		{Path: RouteExplorer, Title: "3D Shape Explorer"},
		{Path: RouteSocial, Title: "Social Sciences"},
		{Path: RouteNatural, Title: "Natural Sciences"},
	}
}

// Router tracks the current page. Listeners run after every change of path.
type Router struct {
	routes   []Route
	current  int
	onChange []func(from, to Route)
}

// NewRouter returns a router over routes, starting at start. An unknown start
// falls back to the first route.
func NewRouter(routes []Route, start string) *Router {
	r := &Router{routes: routes}
	if i := r.index(start); i >= 0 {
		r.current = i
	}
	return r
}

func (r *Router) index(path string) int {
	for i, rt := range r.routes {
		if rt.Path == path {
			return i
		}
	}
	return -1
}

// Navigate switches to path. Navigating to the current path is a no-op.
func (r *Router) Navigate(path string) error {
	i := r.index(path)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownRoute, path)
	}
	if i == r.current {
		return nil
	}
	from := r.routes[r.current]
	r.current = i
	for _, fn := range r.onChange {
		fn(from, r.routes[i])
	}
	return nil
}

// Current returns the active route.
func (r *Router) Current() Route {
	if len(r.routes) == 0 {
		return Route{}
	}
	return r.routes[r.current]
}

// IsActive reports whether path is the current route.
func (r *Router) IsActive(path string) bool {
	return r.Current().Path == path
}

// Routes returns the route table.
func (r *Router) Routes() []Route {
	return r.routes
}

// OnChange registers fn to run after each navigation.
func (r *Router) OnChange(fn func(from, to Route)) {
	r.onChange = append(r.onChange, fn)
}
