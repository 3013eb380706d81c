package mappers

import (
	"testing"
	"time"

	"clipper-app-api/api/dto/requests"
	"clipper-app-api/core/clip"
	"clipper-app-api/core/domain"
)

func TestToClipped(t *testing.T) {
	published := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	req := requests.ClipRequest{
		ID:          "a",
		Publisher:   "example.com",
		Title:       "Title",
		Link:        "https://example.com/a",
		PublishedAt: &published,
	}

	item := ToClipped(req)

	if item.ID != "a" || item.Publisher != "example.com" {
		t.Errorf("key = %s/%s, want example.com/a", item.Publisher, item.ID)
	}
	if item.Title != "Title" || item.Link != "https://example.com/a" {
		t.Errorf("display fields not copied: %+v", item)
	}
	if item.PublishedAt == nil || !item.PublishedAt.Equal(published) {
		t.Errorf("PublishedAt = %v, want %v", item.PublishedAt, published)
	}
	if item.ClippedAt != nil {
		t.Error("ClippedAt must be left for the clip service to set")
	}
}

func TestToClipListResponse(t *testing.T) {
	clips := []domain.Clipped{{ID: "a", Publisher: "p1"}, {ID: "b", Publisher: "p2"}}

	response := ToClipListResponse("owner-1", clips)

	if response.Count != 2 || len(response.Clips) != 2 {
		t.Fatalf("Count = %d, len = %d, want 2", response.Count, len(response.Clips))
	}
	for _, c := range response.Clips {
		if !c.Clipped {
			t.Errorf("stored clip %s reported as not clipped", c.ID)
		}
	}
}

func TestToClipListResponse_Empty(t *testing.T) {
	response := ToClipListResponse("owner-1", nil)

	if response.Clips == nil {
		t.Error("Clips should be an empty slice, not nil")
	}
}

func TestToSearchResponse(t *testing.T) {
	result := domain.SearchResult{Query: "go", Page: 2, PageSize: 1, Total: 5}
	annotated := []clip.AnnotatedItem{{Item: domain.Clipped{ID: "a", Publisher: "p1"}, Clipped: true}}

	response := ToSearchResponse(result, annotated)

	if response.Query != "go" || response.Page != 2 || response.PageSize != 1 || response.Total != 5 {
		t.Errorf("paging fields not copied: %+v", response)
	}
	if len(response.Items) != 1 || !response.Items[0].Clipped {
		t.Errorf("Items = %+v, want one clipped item", response.Items)
	}
}

func TestToIndicatorListResponse_PreservesOrder(t *testing.T) {
	indicators := []domain.ClippedIndicator{
		{ID: "b", Publisher: "p1"},
		{ID: "a", Publisher: "p1"},
		{ID: "b", Publisher: "p1"},
	}

	response := ToIndicatorListResponse("owner-1", indicators)

	if len(response.Indicators) != 3 {
		t.Fatalf("len = %d, want 3", len(response.Indicators))
	}
	if response.Indicators[0].ID != "b" || response.Indicators[1].ID != "a" {
		t.Errorf("order changed: %+v", response.Indicators)
	}
}
