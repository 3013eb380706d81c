// ABOUTME: Theme handlers for the Huma API
// ABOUTME: Reads and updates the theme each owner renders screens with

package handlers

import (
	"context"
	"net/http"

	"clipper-app-api/api/dto/requests"
	"clipper-app-api/api/dto/responses"
	"clipper-app-api/core/domain"
	"github.com/danielgtaylor/huma/v2"
)

// ThemeService defines the methods needed from the theme service
type ThemeService interface {
	Get(ctx context.Context, owner string) (domain.Theme, error)
	Set(ctx context.Context, owner, name string) (domain.Theme, error)
}

// ThemeHandler handles theme requests
type ThemeHandler struct {
	themeService ThemeService
}

// NewThemeHandler creates a new theme handler
func NewThemeHandler(themeService ThemeService) *ThemeHandler {
	return &ThemeHandler{themeService: themeService}
}

// RegisterRoutes registers the theme routes
func (h *ThemeHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getTheme",
		Method:      http.MethodGet,
		Path:        "/themes/{owner}",
		Summary:     "Get theme",
		Description: "Returns the owner's theme, light when none was chosen",
		Tags:        []string{"Themes"},
	}, h.GetTheme)

	huma.Register(api, huma.Operation{
		OperationID: "setTheme",
		Method:      http.MethodPut,
		Path:        "/themes/{owner}",
		Summary:     "Set theme",
		Description: "Stores the owner's theme",
		Tags:        []string{"Themes"},
	}, h.SetTheme)
}

// ThemeOutput defines the output for the theme operations
type ThemeOutput struct {
	Body responses.ThemeResponse
}

// GetTheme handles GET /themes/{owner}
func (h *ThemeHandler) GetTheme(ctx context.Context, input *OwnerInput) (*ThemeOutput, error) {
	theme, err := h.themeService.Get(ctx, input.Owner)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &ThemeOutput{Body: responses.ThemeResponse{Owner: input.Owner, Name: theme.Name}}, nil
}

// SetThemeInput defines the input for the SetTheme operation
type SetThemeInput struct {
	Owner string                `path:"owner" minLength:"1" maxLength:"255" doc:"Theme owner"`
	Body  requests.ThemeRequest `json:"body"`
}

// SetTheme handles PUT /themes/{owner}
func (h *ThemeHandler) SetTheme(ctx context.Context, input *SetThemeInput) (*ThemeOutput, error) {
	theme, err := h.themeService.Set(ctx, input.Owner, input.Body.Name)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &ThemeOutput{Body: responses.ThemeResponse{Owner: input.Owner, Name: theme.Name}}, nil
}
