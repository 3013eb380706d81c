package handlers

import (
	"context"

	"clipper-app-api/core/clip"
	"clipper-app-api/core/domain"
	"clipper-app-api/core/interfaces"
	"clipper-app-api/pkg/featureflags"
	"github.com/danielgtaylor/huma/v2"
)

// mockSearchService is a mock implementation of the search service
type mockSearchService struct {
	searchFunc func(ctx context.Context, query string, page, size int) (domain.SearchResult, error)
	calls      int
}

func (m *mockSearchService) SearchArticles(ctx context.Context, query string, page, size int) (domain.SearchResult, error) {
	m.calls++
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query, page, size)
	}
	return domain.SearchResult{Query: query, Page: page, PageSize: size}, nil
}

// mockClipService is a mock implementation of the clip service
type mockClipService struct {
	listFunc       func(ctx context.Context, owner string) ([]domain.Clipped, error)
	indicatorsFunc func(ctx context.Context, owner string) ([]domain.ClippedIndicator, error)
	clipFunc       func(ctx context.Context, owner string, item domain.Clipped) (bool, error)
	unclipFunc     func(ctx context.Context, owner string, indicator domain.ClippedIndicator) error
	toggleFunc     func(ctx context.Context, owner string, item domain.Clipped) (bool, error)
	checkFunc      func(ctx context.Context, owner string, indicator domain.ClippedIndicator) (int, bool, error)
	annotateFunc   func(ctx context.Context, owner string, items []domain.Clipped) ([]clip.AnnotatedItem, error)
}

func (m *mockClipService) List(ctx context.Context, owner string) ([]domain.Clipped, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, owner)
	}
	return nil, nil
}

func (m *mockClipService) Indicators(ctx context.Context, owner string) ([]domain.ClippedIndicator, error) {
	if m.indicatorsFunc != nil {
		return m.indicatorsFunc(ctx, owner)
	}
	return nil, nil
}

func (m *mockClipService) Clip(ctx context.Context, owner string, item domain.Clipped) (bool, error) {
	if m.clipFunc != nil {
		return m.clipFunc(ctx, owner, item)
	}
	return true, nil
}

func (m *mockClipService) Unclip(ctx context.Context, owner string, indicator domain.ClippedIndicator) error {
	if m.unclipFunc != nil {
		return m.unclipFunc(ctx, owner, indicator)
	}
	return nil
}

func (m *mockClipService) Toggle(ctx context.Context, owner string, item domain.Clipped) (bool, error) {
	if m.toggleFunc != nil {
		return m.toggleFunc(ctx, owner, item)
	}
	return true, nil
}

func (m *mockClipService) Check(ctx context.Context, owner string, indicator domain.ClippedIndicator) (int, bool, error) {
	if m.checkFunc != nil {
		return m.checkFunc(ctx, owner, indicator)
	}
	return clip.NotFound, false, nil
}

func (m *mockClipService) Annotate(ctx context.Context, owner string, items []domain.Clipped) ([]clip.AnnotatedItem, error) {
	if m.annotateFunc != nil {
		return m.annotateFunc(ctx, owner, items)
	}
	annotated := make([]clip.AnnotatedItem, 0, len(items))
	for _, item := range items {
		annotated = append(annotated, clip.AnnotatedItem{Item: item})
	}
	return annotated, nil
}

// mockThemeService is a mock implementation of the theme service
type mockThemeService struct {
	themes map[string]string
	setErr error
}

func (m *mockThemeService) Get(ctx context.Context, owner string) (domain.Theme, error) {
	if name, ok := m.themes[owner]; ok {
		return domain.Theme{Name: name}, nil
	}
	return domain.Theme{Name: domain.DefaultThemeName}, nil
}

func (m *mockThemeService) Set(ctx context.Context, owner, name string) (domain.Theme, error) {
	if m.setErr != nil {
		return domain.Theme{}, m.setErr
	}
	if m.themes == nil {
		m.themes = make(map[string]string)
	}
	m.themes[owner] = name
	return domain.Theme{Name: name}, nil
}

// stubScreen renders a fixed view and records the last request
type stubScreen struct {
	view    any
	err     error
	lastReq interfaces.ScreenRequest
}

func (s *stubScreen) Render(ctx context.Context, req interfaces.ScreenRequest) (any, error) {
	s.lastReq = req
	return s.view, s.err
}

// withFlags injects a static flag manager into every operation's context
func withFlags(api huma.API, flags map[featureflags.FeatureFlag]bool) {
	manager := featureflags.NewStaticManager(flags)
	api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, featureflags.WithManager(ctx.Context(), manager)))
	})
}
