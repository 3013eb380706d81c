// ABOUTME: Search article screen composes a header, a search bar and a result list under a theme
// ABOUTME: Results are flagged as clipped by matching them against the owner's indicators

package screen

import (
	"context"

	"clipper-app-api/core/clip"
	"clipper-app-api/core/constants"
	"clipper-app-api/core/domain"
	"clipper-app-api/core/interfaces"
)

// SearchArticleParams are the route parameters of the search article screen
type SearchArticleParams struct {
	Query string `json:"q,omitempty"`
	Page  int    `json:"page,omitempty"`
	Size  int    `json:"size,omitempty"`
}

// Header is the page header region
type Header struct {
	Title     string `json:"title"`
	ThemeName string `json:"themeName"`
}

// SearchBarView is the search input region
type SearchBarView struct {
	VerticalPadding int    `json:"verticalPadding"`
	Placeholder     string `json:"placeholder"`
	Query           string `json:"query"`
}

// ResultView is one search result with its clip state
type ResultView struct {
	Item    domain.Clipped `json:"item"`
	Clipped bool           `json:"clipped"`
}

// ResultsView is the result list region
type ResultsView struct {
	Items    []ResultView `json:"items"`
	Page     int          `json:"page"`
	PageSize int          `json:"pageSize"`
	Total    int          `json:"total"`
}

// SearchArticleView is the rendered search article screen
type SearchArticleView struct {
	Header    Header        `json:"header"`
	SearchBar SearchBarView `json:"searchBar"`
	Results   ResultsView   `json:"results"`
}

// SearchArticleScreen renders the search article screen
type SearchArticleScreen struct {
	searcher interfaces.ArticleSearcher
	clips    interfaces.ClipReader
	themes   interfaces.ThemeReader

	title           string
	placeholder     string
	verticalPadding int
}

// NewSearchArticleScreen creates the screen. Layout constants are read once here.
func NewSearchArticleScreen(searcher interfaces.ArticleSearcher, clips interfaces.ClipReader, themes interfaces.ThemeReader) *SearchArticleScreen {
	screenConstants := constants.SearchArticle()
	return &SearchArticleScreen{
		searcher:        searcher,
		clips:           clips,
		themes:          themes,
		title:           screenConstants.Title,
		placeholder:     constants.SearchBar().Placeholder,
		verticalPadding: screenConstants.SearchBarContainerVerticalPadding,
	}
}

// Render builds the view for req. An empty query renders an empty result list.
func (s *SearchArticleScreen) Render(ctx context.Context, req interfaces.ScreenRequest) (any, error) {
	theme, err := s.themes.Get(ctx, req.Owner)
	if err != nil {
		return nil, err
	}

	view := SearchArticleView{
		Header: Header{
			Title:     s.title,
			ThemeName: theme.Name,
		},
		SearchBar: SearchBarView{
			VerticalPadding: s.verticalPadding,
			Placeholder:     s.placeholder,
			Query:           req.Query,
		},
		Results: ResultsView{
			Items: []ResultView{},
		},
	}

	if req.Query == "" {
		return view, nil
	}

	result, err := s.searcher.SearchArticles(ctx, req.Query, req.Page, req.Size)
	if err != nil {
		return nil, err
	}

	var indicators []domain.ClippedIndicator
	if req.Owner != "" {
		indicators, err = s.clips.Indicators(ctx, req.Owner)
		if err != nil {
			return nil, err
		}
	}

	view.SearchBar.Query = result.Query
	view.Results.Page = result.Page
	view.Results.PageSize = result.PageSize
	view.Results.Total = result.Total
	for _, item := range result.Items {
		view.Results.Items = append(view.Results.Items, ResultView{
			Item:    item,
			Clipped: clip.IsIndicated(indicators, item),
		})
	}

	return view, nil
}
