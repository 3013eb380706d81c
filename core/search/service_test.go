package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"clipper-app-api/core/domain"
	coreerrors "clipper-app-api/core/errors"
	"clipper-app-api/core/interfaces"
	"clipper-app-api/pkg/featureflags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>News search</title>
  <link>https://news.example.org</link>
  <item>
    <title>Go 1.23 released</title>
    <link>https://www.golang-news.example.com/articles/go123</link>
    <guid>go123</guid>
    <description>&lt;p&gt;The &lt;b&gt;new&lt;/b&gt; release&lt;/p&gt;</description>
    <pubDate>Tue, 13 Aug 2024 10:00:00 GMT</pubDate>
  </item>
  <item>
    <title>Generics deep dive</title>
    <link>https://blog.example.net/generics</link>
    <description>Type parameters explained</description>
    <enclosure url="https://blog.example.net/cover.png" type="image/png" length="100"/>
  </item>
  <item>
    <title>Third story</title>
    <link>https://golang-news.example.com/articles/third</link>
    <guid>third</guid>
  </item>
</channel>
</rss>`

func feedClient(t *testing.T, calls *int, gotURL *string) *mockHTTPClient {
	t.Helper()
	return &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			if calls != nil {
				*calls++
			}
			if gotURL != nil {
				*gotURL = url
			}
			return &mockResponse{statusCode: 200, body: sampleFeed}, nil
		},
	}
}

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		want      string
		wantError bool
	}{
		{"trims spaces", "  golang  ", "golang", false},
		{"empty", "", "", true},
		{"only spaces", "   ", "", true},
		{"too short", "a", "", true},
		{"multi-byte counts runes", "뉴스", "뉴스", false},
		{"too long", strings.Repeat("x", 101), "", true},
		{"max length", strings.Repeat("x", 100), strings.Repeat("x", 100), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeQuery(tt.query)
			if tt.wantError {
				assert.True(t, coreerrors.IsValidation(err), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearchArticles_ParsesProviderFeed(t *testing.T) {
	var gotURL string
	service := NewSearchService(interfaces.Dependencies{
		HTTPClient: feedClient(t, nil, &gotURL),
		Logger:     mockLogger{},
	}, Options{ProviderURL: "https://search.example.com/rss?q=%s"})

	result, err := service.SearchArticles(context.Background(), "go lang", 0, 0)

	require.NoError(t, err)
	assert.Equal(t, "https://search.example.com/rss?q=go+lang", gotURL)
	assert.Equal(t, "go lang", result.Query)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 20, result.PageSize)
	assert.Equal(t, 3, result.Total)
	require.Len(t, result.Items, 3)

	first := result.Items[0]
	assert.Equal(t, "go123", first.ID)
	assert.Equal(t, "golang-news.example.com", first.Publisher)
	assert.Equal(t, "The new release", first.Description)
	require.NotNil(t, first.PublishedAt)
	assert.Equal(t, 2024, first.PublishedAt.Year())

	second := result.Items[1]
	assert.Equal(t, "https://blog.example.net/generics", second.ID, "link is the fallback id")
	assert.Equal(t, "blog.example.net", second.Publisher)
	assert.Equal(t, "https://blog.example.net/cover.png", second.Thumbnail)
	assert.Nil(t, second.ClippedAt)
}

const aggregatorFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Aggregated news</title>
  <item>
    <title>Story one - The Daily</title>
    <link>https://news.google.com/rss/articles/abc</link>
    <guid>abc</guid>
    <source url="https://www.thedaily.example.com">The Daily</source>
  </item>
  <item>
    <title>Story two</title>
    <link>https://news.google.com/rss/articles/def</link>
    <guid>def</guid>
  </item>
</channel>
</rss>`

func TestSearchArticles_PublisherFromSourceElement(t *testing.T) {
	service := NewSearchService(interfaces.Dependencies{
		HTTPClient: &mockHTTPClient{
			getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
				return &mockResponse{statusCode: 200, body: aggregatorFeed}, nil
			},
		},
	}, Options{})

	result, err := service.SearchArticles(context.Background(), "story", 1, 10)

	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "thedaily.example.com", result.Items[0].Publisher)
	assert.Equal(t, "news.google.com", result.Items[1].Publisher, "link host without a source element")
}

func TestSearchArticles_Pagination(t *testing.T) {
	service := NewSearchService(interfaces.Dependencies{HTTPClient: feedClient(t, nil, nil)}, Options{})
	ctx := context.Background()

	result, err := service.SearchArticles(ctx, "golang", 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Total)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "third", result.Items[0].ID)

	result, err = service.SearchArticles(ctx, "golang", 5, 2)
	require.NoError(t, err)
	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)

	result, err = service.SearchArticles(ctx, "golang", 1, 500)
	require.NoError(t, err)
	assert.Equal(t, 50, result.PageSize)
}

func TestSearchArticles_HugePageIsEmpty(t *testing.T) {
	service := NewSearchService(interfaces.Dependencies{HTTPClient: feedClient(t, nil, nil)}, Options{})
	ctx := context.Background()

	for _, size := range []int{3, 20} {
		result, err := service.SearchArticles(ctx, "golang", 1<<62+1, size)
		require.NoError(t, err)
		assert.Equal(t, 3, result.Total)
		assert.NotNil(t, result.Items)
		assert.Empty(t, result.Items, "size %d", size)
	}
}

func TestPageOf(t *testing.T) {
	articles := []domain.Clipped{{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"}, {ID: "5"}}
	maxInt := int(^uint(0) >> 1)

	tests := []struct {
		name     string
		page     int
		size     int
		expected []string
	}{
		{"first page", 1, 2, []string{"1", "2"}},
		{"last partial page", 3, 2, []string{"5"}},
		{"exact last page", 1, 5, []string{"1", "2", "3", "4", "5"}},
		{"past the end", 4, 2, nil},
		{"max int page", maxInt, 50, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ids []string
			for _, a := range pageOf(articles, tt.page, tt.size) {
				ids = append(ids, a.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}

	assert.Empty(t, pageOf(nil, 1, 20))
}

func TestSearchArticles_InvalidQuerySkipsProvider(t *testing.T) {
	calls := 0
	service := NewSearchService(interfaces.Dependencies{HTTPClient: feedClient(t, &calls, nil)}, Options{})

	_, err := service.SearchArticles(context.Background(), "x", 1, 10)

	assert.True(t, coreerrors.IsValidation(err))
	assert.Equal(t, 0, calls)
}

func TestSearchArticles_ProviderStatusError(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 503, body: "unavailable"}, nil
		},
	}
	service := NewSearchService(interfaces.Dependencies{HTTPClient: client}, Options{})

	_, err := service.SearchArticles(context.Background(), "golang", 1, 10)

	apiErr, ok := coreerrors.AsExternalAPI(err)
	require.True(t, ok, "got %v", err)
	assert.Equal(t, 503, apiErr.StatusCode)
}

func TestSearchArticles_TransportError(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return nil, cause
		},
	}
	service := NewSearchService(interfaces.Dependencies{HTTPClient: client}, Options{})

	_, err := service.SearchArticles(context.Background(), "golang", 1, 10)

	assert.True(t, coreerrors.IsExternalAPI(err))
	assert.ErrorIs(t, err, cause)
}

func TestSearchArticles_InvalidFeed(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: "not a feed"}, nil
		},
	}
	service := NewSearchService(interfaces.Dependencies{HTTPClient: client}, Options{})

	_, err := service.SearchArticles(context.Background(), "golang", 1, 10)

	assert.True(t, coreerrors.IsExternalAPI(err))
}

func TestSearchArticles_NoHTTPClient(t *testing.T) {
	service := NewSearchService(interfaces.Dependencies{}, Options{})

	_, err := service.SearchArticles(context.Background(), "golang", 1, 10)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP client not configured")
}

func TestSearchArticles_UsesCacheWhenEnabled(t *testing.T) {
	calls := 0
	stored := map[string][]byte{}
	var ttl time.Duration
	cache := &mockCache{
		getFunc: func(ctx context.Context, key string) ([]byte, error) {
			if v, ok := stored[key]; ok {
				return v, nil
			}
			return nil, fmt.Errorf("miss")
		},
		setFunc: func(ctx context.Context, key string, value []byte, d time.Duration) error {
			stored[key] = value
			ttl = d
			return nil
		},
	}
	service := NewSearchService(interfaces.Dependencies{
		HTTPClient: feedClient(t, &calls, nil),
		Cache:      cache,
	}, Options{CacheTTL: time.Minute})

	flags := featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{featureflags.CacheEnabled: true})
	ctx := featureflags.WithManager(context.Background(), flags)

	first, err := service.SearchArticles(ctx, "Golang", 1, 10)
	require.NoError(t, err)
	second, err := service.SearchArticles(ctx, "golang", 1, 10)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, time.Minute, ttl)
	assert.Contains(t, stored, "search:articles:golang")
	assert.Equal(t, first.Items[0].ID, second.Items[0].ID)
	assert.Equal(t, first.Total, second.Total)
}

func TestSearchArticles_CacheDisabledByFlag(t *testing.T) {
	calls := 0
	cache := &mockCache{
		getFunc: func(ctx context.Context, key string) ([]byte, error) {
			t.Error("cache should not be read when caching is disabled")
			return nil, fmt.Errorf("miss")
		},
	}
	service := NewSearchService(interfaces.Dependencies{
		HTTPClient: feedClient(t, &calls, nil),
		Cache:      cache,
	}, Options{})

	_, err := service.SearchArticles(context.Background(), "golang", 1, 10)
	require.NoError(t, err)
	_, err = service.SearchArticles(context.Background(), "golang", 1, 10)
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "가나다...", truncate("가나다라마바사", 6))
	assert.Equal(t, "unchanged", truncate("unchanged", 0))
}
