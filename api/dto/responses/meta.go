// ABOUTME: Response bodies for route and constant listings
// ABOUTME: Shapes mirror the core router and constants registry
package responses

// RouteResponse describes one navigable screen
type RouteResponse struct {
	Name    string `json:"name"`
	DevName string `json:"dev_name"`
	Params  string `json:"params,omitempty"`
}

// RouteListResponse lists every route
type RouteListResponse struct {
	Routes []RouteResponse `json:"routes"`
}

// ThemeResponse is an owner's current theme
type ThemeResponse struct {
	Owner string `json:"owner"`
	Name  string `json:"name"`
}
