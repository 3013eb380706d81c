// ABOUTME: Clip handlers for the Huma API
// ABOUTME: Exposes an owner's clip list, indicator list and clip state checks

package handlers

import (
	"context"
	"net/http"

	"clipper-app-api/api/dto/mappers"
	"clipper-app-api/api/dto/requests"
	"clipper-app-api/api/dto/responses"
	"clipper-app-api/core/domain"
	"github.com/danielgtaylor/huma/v2"
)

// ClipService defines the methods needed from the clip service
type ClipService interface {
	List(ctx context.Context, owner string) ([]domain.Clipped, error)
	Indicators(ctx context.Context, owner string) ([]domain.ClippedIndicator, error)
	Clip(ctx context.Context, owner string, item domain.Clipped) (bool, error)
	Unclip(ctx context.Context, owner string, indicator domain.ClippedIndicator) error
	Toggle(ctx context.Context, owner string, item domain.Clipped) (bool, error)
	Check(ctx context.Context, owner string, indicator domain.ClippedIndicator) (int, bool, error)
}

// ClipHandler handles clip-related HTTP requests
type ClipHandler struct {
	clipService ClipService
}

// NewClipHandler creates a new clip handler
func NewClipHandler(clipService ClipService) *ClipHandler {
	return &ClipHandler{clipService: clipService}
}

// RegisterRoutes registers all clip routes
func (h *ClipHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listClips",
		Method:      http.MethodGet,
		Path:        "/clips/{owner}",
		Summary:     "List clips",
		Description: "Returns the owner's clipped articles in the order they were clipped",
		Tags:        []string{"Clips"},
	}, h.ListClips)

	huma.Register(api, huma.Operation{
		OperationID:   "createClip",
		Method:        http.MethodPost,
		Path:          "/clips/{owner}",
		Summary:       "Clip an article",
		Description:   "Adds the article to the owner's list unless it is already clipped",
		Tags:          []string{"Clips"},
		DefaultStatus: http.StatusOK,
	}, h.CreateClip)

	huma.Register(api, huma.Operation{
		OperationID: "deleteClip",
		Method:      http.MethodDelete,
		Path:        "/clips/{owner}/{publisher}/{id}",
		Summary:     "Unclip an article",
		Description: "Removes the article identified by publisher and id from the owner's list",
		Tags:        []string{"Clips"},
	}, h.DeleteClip)

	huma.Register(api, huma.Operation{
		OperationID: "toggleClip",
		Method:      http.MethodPost,
		Path:        "/clips/{owner}/toggle",
		Summary:     "Toggle an article's clip state",
		Description: "Clips the article when it is not clipped and unclips it otherwise",
		Tags:        []string{"Clips"},
	}, h.ToggleClip)

	huma.Register(api, huma.Operation{
		OperationID: "listIndicators",
		Method:      http.MethodGet,
		Path:        "/clips/{owner}/indicators",
		Summary:     "List clip indicators",
		Description: "Returns the publisher and id of every clipped article",
		Tags:        []string{"Clips"},
	}, h.ListIndicators)

	huma.Register(api, huma.Operation{
		OperationID: "checkClip",
		Method:      http.MethodGet,
		Path:        "/clips/{owner}/check",
		Summary:     "Check an article's clip state",
		Description: "Returns the position of the first matching clip, or -1 when the article is not clipped",
		Tags:        []string{"Clips"},
	}, h.CheckClip)
}

// OwnerInput selects an owner
type OwnerInput struct {
	Owner string `path:"owner" minLength:"1" maxLength:"255" doc:"Clip list owner"`
}

// ListClipsOutput defines the output for the ListClips operation
type ListClipsOutput struct {
	Body responses.ClipListResponse
}

// ListClips handles GET /clips/{owner}
func (h *ClipHandler) ListClips(ctx context.Context, input *OwnerInput) (*ListClipsOutput, error) {
	clips, err := h.clipService.List(ctx, input.Owner)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &ListClipsOutput{Body: mappers.ToClipListResponse(input.Owner, clips)}, nil
}

// ClipInput defines the input for the CreateClip and ToggleClip operations
type ClipInput struct {
	Owner string               `path:"owner" minLength:"1" maxLength:"255" doc:"Clip list owner"`
	Body  requests.ClipRequest `json:"body"`
}

// CreateClipOutput defines the output for the CreateClip operation
type CreateClipOutput struct {
	Body responses.ClipCreatedResponse
}

// CreateClip handles POST /clips/{owner}
func (h *ClipHandler) CreateClip(ctx context.Context, input *ClipInput) (*CreateClipOutput, error) {
	added, err := h.clipService.Clip(ctx, input.Owner, mappers.ToClipped(input.Body))
	if err != nil {
		return nil, toHumaError(err)
	}
	return &CreateClipOutput{Body: responses.ClipCreatedResponse{Added: added}}, nil
}

// ClipKeyInput identifies one article of an owner
type ClipKeyInput struct {
	Owner     string `path:"owner" minLength:"1" maxLength:"255" doc:"Clip list owner"`
	Publisher string `path:"publisher" minLength:"1" doc:"Article publisher"`
	ID        string `path:"id" minLength:"1" doc:"Article identifier"`
}

// DeleteClip handles DELETE /clips/{owner}/{publisher}/{id}
func (h *ClipHandler) DeleteClip(ctx context.Context, input *ClipKeyInput) (*struct{}, error) {
	indicator := domain.ClippedIndicator{ID: input.ID, Publisher: input.Publisher}
	if err := h.clipService.Unclip(ctx, input.Owner, indicator); err != nil {
		return nil, toHumaError(err)
	}
	return nil, nil
}

// ToggleClipOutput defines the output for the ToggleClip operation
type ToggleClipOutput struct {
	Body responses.ToggleResponse
}

// ToggleClip handles POST /clips/{owner}/toggle
func (h *ClipHandler) ToggleClip(ctx context.Context, input *ClipInput) (*ToggleClipOutput, error) {
	clipped, err := h.clipService.Toggle(ctx, input.Owner, mappers.ToClipped(input.Body))
	if err != nil {
		return nil, toHumaError(err)
	}
	return &ToggleClipOutput{Body: responses.ToggleResponse{Clipped: clipped}}, nil
}

// ListIndicatorsOutput defines the output for the ListIndicators operation
type ListIndicatorsOutput struct {
	Body responses.IndicatorListResponse
}

// ListIndicators handles GET /clips/{owner}/indicators
func (h *ClipHandler) ListIndicators(ctx context.Context, input *OwnerInput) (*ListIndicatorsOutput, error) {
	indicators, err := h.clipService.Indicators(ctx, input.Owner)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &ListIndicatorsOutput{Body: mappers.ToIndicatorListResponse(input.Owner, indicators)}, nil
}

// CheckClipInput defines the input for the CheckClip operation
type CheckClipInput struct {
	Owner     string `path:"owner" minLength:"1" maxLength:"255" doc:"Clip list owner"`
	Publisher string `query:"publisher" required:"true" doc:"Article publisher"`
	ID        string `query:"id" required:"true" doc:"Article identifier"`
}

// CheckClipOutput defines the output for the CheckClip operation
type CheckClipOutput struct {
	Body responses.CheckResponse
}

// CheckClip handles GET /clips/{owner}/check
func (h *ClipHandler) CheckClip(ctx context.Context, input *CheckClipInput) (*CheckClipOutput, error) {
	indicator := domain.ClippedIndicator{ID: input.ID, Publisher: input.Publisher}
	index, clipped, err := h.clipService.Check(ctx, input.Owner, indicator)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &CheckClipOutput{Body: responses.CheckResponse{Index: index, Clipped: clipped}}, nil
}
