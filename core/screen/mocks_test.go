package screen

import (
	"context"

	"clipper-app-api/core/domain"
)

// mockSearcher is a mock implementation of ArticleSearcher
type mockSearcher struct {
	searchFunc func(ctx context.Context, query string, page, size int) (domain.SearchResult, error)
	calls      int
}

func (m *mockSearcher) SearchArticles(ctx context.Context, query string, page, size int) (domain.SearchResult, error) {
	m.calls++
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query, page, size)
	}
	return domain.SearchResult{Query: query}, nil
}

// mockClipReader is a mock implementation of ClipReader
type mockClipReader struct {
	clips map[string][]domain.Clipped
	err   error
}

func (m *mockClipReader) List(ctx context.Context, owner string) ([]domain.Clipped, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.clips[owner], nil
}

func (m *mockClipReader) Indicators(ctx context.Context, owner string) ([]domain.ClippedIndicator, error) {
	if m.err != nil {
		return nil, m.err
	}
	indicators := []domain.ClippedIndicator{}
	for _, c := range m.clips[owner] {
		indicators = append(indicators, c.Indicator())
	}
	return indicators, nil
}

// mockThemeReader is a mock implementation of ThemeReader
type mockThemeReader struct {
	themes map[string]string
}

func (m *mockThemeReader) Get(ctx context.Context, owner string) (domain.Theme, error) {
	if name, ok := m.themes[owner]; ok {
		return domain.Theme{Name: name}, nil
	}
	return domain.Theme{Name: domain.DefaultThemeName}, nil
}
