// ABOUTME: Constants handlers for the Huma API
// ABOUTME: Serves the read-only layout and behaviour registry to clients

package handlers

import (
	"context"
	"net/http"

	"clipper-app-api/core/constants"
	"github.com/danielgtaylor/huma/v2"
)

// ConstantsHandler serves the constant registry
type ConstantsHandler struct{}

// NewConstantsHandler creates a new constants handler
func NewConstantsHandler() *ConstantsHandler {
	return &ConstantsHandler{}
}

// RegisterRoutes registers the constants routes
func (h *ConstantsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getConstants",
		Method:      http.MethodGet,
		Path:        "/constants",
		Summary:     "Get all constants",
		Description: "Returns every component and screen constant",
		Tags:        []string{"Constants"},
	}, h.GetConstants)

	huma.Register(api, huma.Operation{
		OperationID: "getConstant",
		Method:      http.MethodGet,
		Path:        "/constants/{domain}/{name}",
		Summary:     "Get one constants record",
		Description: "Returns the constants of one component or screen",
		Tags:        []string{"Constants"},
	}, h.GetConstant)
}

// GetConstantsOutput defines the output for the GetConstants operation
type GetConstantsOutput struct {
	Body constants.Registry
}

// GetConstants handles GET /constants
func (h *ConstantsHandler) GetConstants(ctx context.Context, input *struct{}) (*GetConstantsOutput, error) {
	return &GetConstantsOutput{Body: constants.GetConstants()}, nil
}

// GetConstantInput defines the input for the GetConstant operation
type GetConstantInput struct {
	Domain string `path:"domain" enum:"component,screen" doc:"Constant domain"`
	Name   string `path:"name" doc:"Component or screen name"`
}

// GetConstantOutput defines the output for the GetConstant operation
type GetConstantOutput struct {
	Body any
}

// GetConstant handles GET /constants/{domain}/{name}
func (h *ConstantsHandler) GetConstant(ctx context.Context, input *GetConstantInput) (*GetConstantOutput, error) {
	record, err := constants.Lookup(input.Domain, input.Name)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &GetConstantOutput{Body: record}, nil
}
