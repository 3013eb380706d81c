// ABOUTME: Search handler for the Huma API
// ABOUTME: Finds articles and flags the ones the caller already clipped

package handlers

import (
	"context"
	"net/http"
	"strings"

	"clipper-app-api/api/dto/mappers"
	"clipper-app-api/api/dto/responses"
	"clipper-app-api/core/clip"
	"clipper-app-api/core/domain"
	"clipper-app-api/pkg/featureflags"
	"github.com/danielgtaylor/huma/v2"
)

// SearchService defines the methods needed from the search service
type SearchService interface {
	SearchArticles(ctx context.Context, query string, page, size int) (domain.SearchResult, error)
}

// Annotator flags articles with an owner's clip state
type Annotator interface {
	Annotate(ctx context.Context, owner string, items []domain.Clipped) ([]clip.AnnotatedItem, error)
}

// SearchHandler handles article search requests
type SearchHandler struct {
	searchService SearchService
	annotator     Annotator
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService SearchService, annotator Annotator) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		annotator:     annotator,
	}
}

// RegisterRoutes registers the search routes
func (h *SearchHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "searchArticles",
		Method:      http.MethodGet,
		Path:        "/search",
		Summary:     "Search articles",
		Description: "Searches the news provider and flags each result with the owner's clip state",
		Tags:        []string{"Search"},
	}, h.SearchArticles)
}

// SearchArticlesInput defines the input for the SearchArticles operation
type SearchArticlesInput struct {
	Query string `query:"q" required:"true" doc:"Search text"`
	Page  int    `query:"page" minimum:"0" maximum:"10000" doc:"1-based page number"`
	Size  int    `query:"size" minimum:"0" maximum:"50" doc:"Page size"`
	Owner string `query:"owner" doc:"Owner whose clips flag the results"`
}

// SearchArticlesOutput defines the output for the SearchArticles operation
type SearchArticlesOutput struct {
	Body responses.SearchResponse
}

// SearchArticles handles GET /search
func (h *SearchHandler) SearchArticles(ctx context.Context, input *SearchArticlesInput) (*SearchArticlesOutput, error) {
	if !featureflags.IsEnabled(ctx, featureflags.SearchEnabled) {
		return nil, huma.Error503ServiceUnavailable("Search is disabled")
	}

	result, err := h.searchService.SearchArticles(ctx, input.Query, input.Page, input.Size)
	if err != nil {
		return nil, toHumaError(err)
	}

	annotated, err := h.annotator.Annotate(ctx, strings.TrimSpace(input.Owner), result.Items)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &SearchArticlesOutput{Body: mappers.ToSearchResponse(result, annotated)}, nil
}
