// ABOUTME: Route table mapping route names to screens
// ABOUTME: Each route bundles a developer-facing name, the screen that renders it and its parameter type

package router

import (
	"reflect"
	"sort"

	"clipper-app-api/core/errors"
	"clipper-app-api/core/interfaces"
	"clipper-app-api/core/screen"
)

// Route names
const (
	MainRoute          = "Main"
	SearchArticleRoute = "SearchArticle"
)

// Route describes one navigable screen
type Route struct {
	// Name is the key of the route in its table
	Name string

	// DevName is a human readable name shown in developer tooling
	DevName string

	// Component renders the route
	Component interfaces.Screen

	// Params is the route's parameter type; nil when the route takes none
	Params reflect.Type
}

// ParamsName returns the name of the parameter type, or an empty string
func (r Route) ParamsName() string {
	if r.Params == nil {
		return ""
	}
	return r.Params.Name()
}

// DefineCustomRoute returns route unchanged; it exists to give route literals a single typed entry point
func DefineCustomRoute(route Route) Route {
	return route
}

// Table maps route names to routes
type Table map[string]Route

// Get returns the named route
func (t Table) Get(name string) (Route, error) {
	route, ok := t[name]
	if !ok {
		return Route{}, errors.NewNotFound("route", name)
	}
	return route, nil
}

// Names returns the route names in sorted order
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Production builds the route table served in production
func Production(main, searchArticle interfaces.Screen) Table {
	return Table{
		MainRoute: DefineCustomRoute(Route{
			Name:      MainRoute,
			DevName:   "메인",
			Component: main,
			Params:    nil,
		}),
		SearchArticleRoute: DefineCustomRoute(Route{
			Name:      SearchArticleRoute,
			DevName:   "기사 검색",
			Component: searchArticle,
			Params:    reflect.TypeOf(screen.SearchArticleParams{}),
		}),
	}
}
