// ABOUTME: Read-only registry of layout and behaviour constants for client components and screens
// ABOUTME: Values are namespaced by domain (component, screen) and exposed through typed accessors

package constants

import (
	"clipper-app-api/core/errors"
)

// ComponentKey names a component namespace in the registry
type ComponentKey string

// ScreenKey names a screen namespace in the registry
type ScreenKey string

// Registry namespaces
const (
	DomainComponent = "component"
	DomainScreen    = "screen"
)

const (
	SearchResultKey ComponentKey = "searchResult"
	SearchBarKey    ComponentKey = "searchBar"
	ClipButtonKey   ComponentKey = "clipButton"

	SearchArticleKey ScreenKey = "searchArticle"
)

// SearchBarConstants configures the search input
type SearchBarConstants struct {
	Placeholder    string `json:"placeholder"`
	MinQueryLength int    `json:"minQueryLength"`
	MaxQueryLength int    `json:"maxQueryLength"`
	DebounceMillis int    `json:"debounceMillis"`
}

// SearchResultConstants configures the result list
type SearchResultConstants struct {
	PageSize             int `json:"pageSize"`
	MaxPageSize          int `json:"maxPageSize"`
	DescriptionMaxLength int `json:"descriptionMaxLength"`
}

// ClipButtonConstants configures the clip toggle shown on each result
type ClipButtonConstants struct {
	Size          int    `json:"size"`
	ClippedIcon   string `json:"clippedIcon"`
	UnclippedIcon string `json:"unclippedIcon"`
}

// SearchArticleConstants configures the search article screen
type SearchArticleConstants struct {
	Title                             string `json:"title"`
	SearchBarContainerVerticalPadding int    `json:"searchBarContainerVerticalPadding"`
}

// ComponentConstants groups the component namespaces
type ComponentConstants struct {
	SearchResult SearchResultConstants `json:"searchResult"`
	SearchBar    SearchBarConstants    `json:"searchBar"`
	ClipButton   ClipButtonConstants   `json:"clipButton"`
}

// ScreenConstants groups the screen namespaces
type ScreenConstants struct {
	SearchArticle SearchArticleConstants `json:"searchArticle"`
}

// Registry is the full constants tree
type Registry struct {
	Component ComponentConstants `json:"component"`
	Screen    ScreenConstants    `json:"screen"`
}

// registry holds only value types, so handing out copies leaves no mutation path
var registry = Registry{
	Component: ComponentConstants{
		SearchResult: SearchResultConstants{
			PageSize:             20,
			MaxPageSize:          50,
			DescriptionMaxLength: 280,
		},
		SearchBar: SearchBarConstants{
			Placeholder:    "Search articles",
			MinQueryLength: 2,
			MaxQueryLength: 100,
			DebounceMillis: 300,
		},
		ClipButton: ClipButtonConstants{
			Size:          24,
			ClippedIcon:   "bookmark",
			UnclippedIcon: "bookmark-outline",
		},
	},
	Screen: ScreenConstants{
		SearchArticle: SearchArticleConstants{
			Title:                             "Search Article",
			SearchBarContainerVerticalPadding: 12,
		},
	},
}

// GetConstants returns a copy of the whole registry
func GetConstants() Registry {
	return registry
}

// SearchBar returns the search bar constants
func SearchBar() SearchBarConstants {
	return registry.Component.SearchBar
}

// SearchResult returns the search result constants
func SearchResult() SearchResultConstants {
	return registry.Component.SearchResult
}

// ClipButton returns the clip button constants
func ClipButton() ClipButtonConstants {
	return registry.Component.ClipButton
}

// SearchArticle returns the search article screen constants
func SearchArticle() SearchArticleConstants {
	return registry.Screen.SearchArticle
}

// GetComponentConstant returns the constants record of a component
func GetComponentConstant(key ComponentKey) (any, error) {
	switch key {
	case SearchResultKey:
		return SearchResult(), nil
	case SearchBarKey:
		return SearchBar(), nil
	case ClipButtonKey:
		return ClipButton(), nil
	}
	return nil, errors.NewNotFound("component constant", string(key))
}

// GetScreenConstant returns the constants record of a screen
func GetScreenConstant(key ScreenKey) (any, error) {
	switch key {
	case SearchArticleKey:
		return SearchArticle(), nil
	}
	return nil, errors.NewNotFound("screen constant", string(key))
}

// Lookup resolves a (domain, name) pair
func Lookup(domain, name string) (any, error) {
	switch domain {
	case DomainComponent:
		return GetComponentConstant(ComponentKey(name))
	case DomainScreen:
		return GetScreenConstant(ScreenKey(name))
	}
	return nil, errors.NewNotFound("constant domain", domain)
}
