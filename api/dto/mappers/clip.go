// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Keeps the domain types free of transport concerns

package mappers

import (
	"clipper-app-api/api/dto/requests"
	"clipper-app-api/api/dto/responses"
	"clipper-app-api/core/clip"
	"clipper-app-api/core/domain"
)

// ToClipped converts a clip request into a domain article
func ToClipped(req requests.ClipRequest) domain.Clipped {
	return domain.Clipped{
		ID:          req.ID,
		Publisher:   req.Publisher,
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
		Thumbnail:   req.Thumbnail,
		Author:      req.Author,
		PublishedAt: req.PublishedAt,
	}
}

// ToClipResponse converts an article and its clip state
func ToClipResponse(item domain.Clipped, clipped bool) responses.ClipResponse {
	return responses.ClipResponse{
		ID:          item.ID,
		Publisher:   item.Publisher,
		Title:       item.Title,
		Description: item.Description,
		Link:        item.Link,
		Thumbnail:   item.Thumbnail,
		Author:      item.Author,
		PublishedAt: item.PublishedAt,
		ClippedAt:   item.ClippedAt,
		Clipped:     clipped,
	}
}

// ToClipListResponse converts an owner's stored clips; every entry is clipped
func ToClipListResponse(owner string, clips []domain.Clipped) responses.ClipListResponse {
	items := make([]responses.ClipResponse, 0, len(clips))
	for _, c := range clips {
		items = append(items, ToClipResponse(c, true))
	}
	return responses.ClipListResponse{
		Owner: owner,
		Count: len(items),
		Clips: items,
	}
}

// ToSearchResponse converts a result page whose items were annotated for an owner
func ToSearchResponse(result domain.SearchResult, annotated []clip.AnnotatedItem) responses.SearchResponse {
	items := make([]responses.ClipResponse, 0, len(annotated))
	for _, a := range annotated {
		items = append(items, ToClipResponse(a.Item, a.Clipped))
	}
	return responses.SearchResponse{
		Query:    result.Query,
		Page:     result.Page,
		PageSize: result.PageSize,
		Total:    result.Total,
		Items:    items,
	}
}

// ToIndicatorListResponse converts an owner's indicator list, preserving order
func ToIndicatorListResponse(owner string, indicators []domain.ClippedIndicator) responses.IndicatorListResponse {
	items := make([]responses.IndicatorResponse, 0, len(indicators))
	for _, ind := range indicators {
		items = append(items, responses.IndicatorResponse{ID: ind.ID, Publisher: ind.Publisher})
	}
	return responses.IndicatorListResponse{
		Owner:      owner,
		Indicators: items,
	}
}
