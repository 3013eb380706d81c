// ABOUTME: Navigation handlers for the Huma API
// ABOUTME: Lists routes and renders a route's screen as a JSON view model

package handlers

import (
	"context"
	"net/http"
	"strings"

	"clipper-app-api/api/dto/responses"
	"clipper-app-api/core/interfaces"
	"clipper-app-api/core/router"
	"github.com/danielgtaylor/huma/v2"
)

// NavigationHandler serves the route table
type NavigationHandler struct {
	routes router.Table
}

// NewNavigationHandler creates a new navigation handler
func NewNavigationHandler(routes router.Table) *NavigationHandler {
	return &NavigationHandler{routes: routes}
}

// RegisterRoutes registers the navigation routes
func (h *NavigationHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listRoutes",
		Method:      http.MethodGet,
		Path:        "/routes",
		Summary:     "List routes",
		Description: "Returns every navigable screen with its developer name and parameter type",
		Tags:        []string{"Navigation"},
	}, h.ListRoutes)

	huma.Register(api, huma.Operation{
		OperationID: "renderScreen",
		Method:      http.MethodGet,
		Path:        "/screens/{name}",
		Summary:     "Render a screen",
		Description: "Renders the screen registered under the route name for the given owner",
		Tags:        []string{"Navigation"},
	}, h.RenderScreen)
}

// ListRoutesOutput defines the output for the ListRoutes operation
type ListRoutesOutput struct {
	Body responses.RouteListResponse
}

// ListRoutes handles GET /routes
func (h *NavigationHandler) ListRoutes(ctx context.Context, input *struct{}) (*ListRoutesOutput, error) {
	names := h.routes.Names()
	routes := make([]responses.RouteResponse, 0, len(names))
	for _, name := range names {
		route := h.routes[name]
		routes = append(routes, responses.RouteResponse{
			Name:    route.Name,
			DevName: route.DevName,
			Params:  route.ParamsName(),
		})
	}
	return &ListRoutesOutput{Body: responses.RouteListResponse{Routes: routes}}, nil
}

// RenderScreenInput defines the input for the RenderScreen operation
type RenderScreenInput struct {
	Name  string `path:"name" doc:"Route name"`
	Owner string `query:"owner" doc:"Owner whose clips and theme are shown"`
	Query string `query:"q" doc:"Search text for search screens"`
	Page  int    `query:"page" minimum:"0" maximum:"10000" doc:"1-based page number"`
	Size  int    `query:"size" minimum:"0" maximum:"50" doc:"Page size"`
}

// RenderScreenOutput defines the output for the RenderScreen operation
type RenderScreenOutput struct {
	Body any
}

// RenderScreen handles GET /screens/{name}
func (h *NavigationHandler) RenderScreen(ctx context.Context, input *RenderScreenInput) (*RenderScreenOutput, error) {
	route, err := h.routes.Get(input.Name)
	if err != nil {
		return nil, toHumaError(err)
	}

	view, err := route.Component.Render(ctx, interfaces.ScreenRequest{
		Owner: strings.TrimSpace(input.Owner),
		Query: input.Query,
		Page:  input.Page,
		Size:  input.Size,
	})
	if err != nil {
		return nil, toHumaError(err)
	}
	return &RenderScreenOutput{Body: view}, nil
}
