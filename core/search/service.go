// ABOUTME: Search service finds articles through an RSS news-search provider
// ABOUTME: Validates queries, parses provider feeds with gofeed, caches and paginates results

package search

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"clipper-app-api/core/constants"
	"clipper-app-api/core/domain"
	"clipper-app-api/core/errors"
	"clipper-app-api/core/interfaces"
	"clipper-app-api/pkg/featureflags"
	"clipper-app-api/pkg/metrics"
	htmlutil "clipper-app-api/pkg/utils/html"
	timeutil "clipper-app-api/pkg/utils/time"
	"github.com/mmcdole/gofeed"
	"github.com/mmcdole/gofeed/rss"
)

const (
	// DefaultProviderURL searches Google News; %s receives the escaped query
	DefaultProviderURL = "https://news.google.com/rss/search?q=%s"

	// DefaultCacheTTL is how long a query's results stay cached
	DefaultCacheTTL = 15 * time.Minute

	providerName = "news-search"
)

// Options configures the search service
type Options struct {
	// ProviderURL is a URL template with a single %s for the escaped query
	ProviderURL string

	// CacheTTL is the lifetime of cached result lists
	CacheTTL time.Duration
}

// SearchService handles article search operations
type SearchService struct {
	deps interfaces.Dependencies
	opts Options
}

// NewSearchService creates a new search service instance
func NewSearchService(deps interfaces.Dependencies, opts Options) *SearchService {
	if opts.ProviderURL == "" {
		opts.ProviderURL = DefaultProviderURL
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultCacheTTL
	}
	return &SearchService{
		deps: deps,
		opts: opts,
	}
}

// NormalizeQuery trims the query and checks it against the search bar limits
func NormalizeQuery(query string) (string, error) {
	bar := constants.SearchBar()
	query = strings.TrimSpace(query)

	if query == "" {
		return "", errors.NewValidation("q", "search query cannot be empty")
	}

	length := utf8.RuneCountInString(query)
	if length < bar.MinQueryLength {
		return "", errors.NewValidation("q", fmt.Sprintf("search query must be at least %d characters", bar.MinQueryLength))
	}
	if length > bar.MaxQueryLength {
		return "", errors.NewValidation("q", fmt.Sprintf("search query cannot exceed %d characters", bar.MaxQueryLength))
	}

	return query, nil
}

// normalizePage applies the result list defaults to page and size
func normalizePage(page, size int) (int, int) {
	limits := constants.SearchResult()
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = limits.PageSize
	}
	if size > limits.MaxPageSize {
		size = limits.MaxPageSize
	}
	return page, size
}

// SearchArticles returns one page of articles matching query
func (s *SearchService) SearchArticles(ctx context.Context, query string, page, size int) (result domain.SearchResult, err error) {
	defer func() { metrics.RecordSearch(err) }()

	query, err = NormalizeQuery(query)
	if err != nil {
		return domain.SearchResult{}, err
	}
	page, size = normalizePage(page, size)

	articles, err := s.findArticles(ctx, query)
	if err != nil {
		return domain.SearchResult{}, err
	}

	return domain.NewSearchResult(domain.SearchResult{
		Query:    query,
		Items:    pageOf(articles, page, size),
		Page:     page,
		PageSize: size,
		Total:    len(articles),
	}), nil
}

// pageOf slices one page out of articles. Pages past the end are empty; page is
// compared against the page count before it is multiplied.
func pageOf(articles []domain.Clipped, page, size int) []domain.Clipped {
	pages := (len(articles) + size - 1) / size
	if page > pages {
		return []domain.Clipped{}
	}

	start := (page - 1) * size
	end := start + size
	if end > len(articles) {
		end = len(articles)
	}
	return articles[start:end]
}

// findArticles returns every article for query, from cache when possible
func (s *SearchService) findArticles(ctx context.Context, query string) ([]domain.Clipped, error) {
	useCache := s.deps.Cache != nil && featureflags.IsEnabled(ctx, featureflags.CacheEnabled)
	cacheKey := "search:articles:" + strings.ToLower(query)

	if useCache {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var articles []domain.Clipped
			if err := json.Unmarshal(data, &articles); err == nil {
				metrics.RecordSearchCache(true)
				s.debug("Search cache hit", map[string]interface{}{"query": query})
				return articles, nil
			}
		}
		metrics.RecordSearchCache(false)
	}

	articles, err := s.fetchArticles(ctx, query)
	if err != nil {
		return nil, err
	}

	if useCache && len(articles) > 0 {
		if data, err := json.Marshal(articles); err == nil {
			if err := s.deps.Cache.Set(ctx, cacheKey, data, s.opts.CacheTTL); err != nil {
				s.warn("Failed to cache search results", map[string]interface{}{
					"query": query,
					"error": err.Error(),
				})
			}
		}
	}

	return articles, nil
}

// fetchArticles calls the provider and converts its feed into articles
func (s *SearchService) fetchArticles(ctx context.Context, query string) ([]domain.Clipped, error) {
	if s.deps.HTTPClient == nil {
		return nil, stderrors.New("HTTP client not configured")
	}

	apiURL := fmt.Sprintf(s.opts.ProviderURL, url.QueryEscape(query))

	started := time.Now()
	defer func() { metrics.ObserveProviderFetch(time.Since(started).Seconds()) }()

	resp, err := s.deps.HTTPClient.Get(ctx, apiURL)
	if err != nil {
		return nil, &errors.ExternalAPIError{
			StatusCode: http.StatusBadGateway,
			Message:    "request failed",
			API:        providerName,
			Err:        err,
		}
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		return nil, &errors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "unexpected status",
			API:        providerName,
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	parser := gofeed.NewParser()
	parser.RSSTranslator = &sourceTranslator{}

	feed, err := parser.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, &errors.ExternalAPIError{
			StatusCode: http.StatusBadGateway,
			Message:    "invalid feed",
			API:        providerName,
			Err:        err,
		}
	}

	articles := make([]domain.Clipped, 0, len(feed.Items))
	for _, item := range feed.Items {
		article := convertItem(item, feed)
		if article.ID == "" || article.Publisher == "" {
			continue
		}
		articles = append(articles, article)
	}

	s.debug("Search provider returned articles", map[string]interface{}{
		"query":    query,
		"articles": len(articles),
	})

	return articles, nil
}

// convertItem maps a feed item onto an article
func convertItem(item *gofeed.Item, feed *gofeed.Feed) domain.Clipped {
	article := domain.Clipped{
		ID:          item.GUID,
		Publisher:   publisherOf(item, feed),
		Title:       strings.TrimSpace(item.Title),
		Description: truncate(htmlutil.StripHTML(item.Description), constants.SearchResult().DescriptionMaxLength),
		Link:        item.Link,
		Thumbnail:   thumbnailOf(item),
	}

	if article.ID == "" {
		article.ID = item.Link
	}

	if item.Author != nil {
		article.Author = item.Author.Name
	}

	if item.PublishedParsed != nil {
		published := item.PublishedParsed.UTC()
		article.PublishedAt = &published
	} else if parsed := timeutil.ParseFlexibleTime(item.Published); !parsed.IsZero() {
		published := parsed.UTC()
		article.PublishedAt = &published
	}

	return article
}

// Custom keys set by sourceTranslator
const (
	sourceURLKey   = "source_url"
	sourceTitleKey = "source_title"
)

// sourceTranslator keeps the RSS <source> element, which aggregators such as
// Google News use to name the original publisher, in each item's Custom map
type sourceTranslator struct {
	gofeed.DefaultRSSTranslator
}

func (t *sourceTranslator) Translate(feed interface{}) (*gofeed.Feed, error) {
	translated, err := t.DefaultRSSTranslator.Translate(feed)
	if err != nil {
		return nil, err
	}

	rssFeed, ok := feed.(*rss.Feed)
	if !ok || len(rssFeed.Items) != len(translated.Items) {
		return translated, nil
	}

	for i, item := range rssFeed.Items {
		if item.Source == nil {
			continue
		}
		if translated.Items[i].Custom == nil {
			translated.Items[i].Custom = map[string]string{}
		}
		translated.Items[i].Custom[sourceURLKey] = item.Source.URL
		translated.Items[i].Custom[sourceTitleKey] = strings.TrimSpace(item.Source.Title)
	}

	return translated, nil
}

// publisherOf returns the host of the article's original source, then the host
// serving the link, falling back to the feed title
func publisherOf(item *gofeed.Item, feed *gofeed.Feed) string {
	if host := hostOf(item.Custom[sourceURLKey]); host != "" {
		return host
	}
	if host := hostOf(item.Link); host != "" {
		return host
	}
	if title := item.Custom[sourceTitleKey]; title != "" {
		return title
	}
	if feed != nil {
		return strings.TrimSpace(feed.Title)
	}
	return ""
}

func hostOf(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}

func thumbnailOf(item *gofeed.Item) string {
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}
	for _, enclosure := range item.Enclosures {
		if strings.HasPrefix(enclosure.Type, "image/") {
			return enclosure.URL
		}
	}
	return ""
}

// truncate shortens text to at most max runes, marking the cut with an ellipsis
func truncate(text string, max int) string {
	if max <= 0 || utf8.RuneCountInString(text) <= max {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:max-3])) + "..."
}

func (s *SearchService) debug(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Debug(msg, fields)
	}
}

func (s *SearchService) warn(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, fields)
	}
}
