// ABOUTME: Indicator matching decides whether an article is already clipped
// ABOUTME: Matches on the composite (publisher, id) key with a first-match linear scan

package clip

import "clipper-app-api/core/domain"

// NotFound is returned by GetIndicatorIndex when no indicator matches
const NotFound = -1

// IndicatesItem reports whether indicator denotes item. Both publisher and id must match;
// id alone is only unique within a publisher.
func IndicatesItem(indicator domain.ClippedIndicator, item domain.Indicatable) bool {
	key := item.Indicator()
	return key.Publisher == indicator.Publisher && key.ID == indicator.ID
}

// GetIndicatorIndex returns the position of the first indicator that denotes item,
// or NotFound. Duplicates are not validated; the earliest one wins.
func GetIndicatorIndex(indicators []domain.ClippedIndicator, item domain.Indicatable) int {
	for i, indicator := range indicators {
		if IndicatesItem(indicator, item) {
			return i
		}
	}
	return NotFound
}

// IsIndicated reports whether any indicator denotes item
func IsIndicated(indicators []domain.ClippedIndicator, item domain.Indicatable) bool {
	return GetIndicatorIndex(indicators, item) != NotFound
}

// Indicators projects items onto their indicators, preserving order
func Indicators(items []domain.Clipped) []domain.ClippedIndicator {
	indicators := make([]domain.ClippedIndicator, 0, len(items))
	for _, item := range items {
		indicators = append(indicators, item.Indicator())
	}
	return indicators
}

// IndicatorSet is a hashed view over an indicator list for large lists.
// Index keeps the list's index-or-NotFound contract, including first-match on duplicates.
type IndicatorSet struct {
	first map[domain.ClippedIndicator]int
}

// NewIndicatorSet builds a set from indicators. The list is not retained.
func NewIndicatorSet(indicators []domain.ClippedIndicator) *IndicatorSet {
	first := make(map[domain.ClippedIndicator]int, len(indicators))
	for i, indicator := range indicators {
		if _, seen := first[indicator]; !seen {
			first[indicator] = i
		}
	}
	return &IndicatorSet{first: first}
}

// Index returns the first position of item in the source list, or NotFound
func (s *IndicatorSet) Index(item domain.Indicatable) int {
	if i, ok := s.first[item.Indicator()]; ok {
		return i
	}
	return NotFound
}

// Contains reports whether item is in the set
func (s *IndicatorSet) Contains(item domain.Indicatable) bool {
	return s.Index(item) != NotFound
}

// Len returns the number of distinct indicators
func (s *IndicatorSet) Len() int {
	return len(s.first)
}
