// ABOUTME: Main screen shows the owner's clipped articles under their theme
// ABOUTME: Anonymous callers get the default theme and an empty list

package screen

import (
	"context"

	"clipper-app-api/core/domain"
	"clipper-app-api/core/interfaces"
)

const mainTitle = "Clips"

// MainView is the rendered main screen: the owner's clips under their theme
type MainView struct {
	Header Header           `json:"header"`
	Clips  []domain.Clipped `json:"clips"`
	Count  int              `json:"count"`
}

// MainScreen renders the owner's clip list
type MainScreen struct {
	clips  interfaces.ClipReader
	themes interfaces.ThemeReader
}

// NewMainScreen creates the main screen
func NewMainScreen(clips interfaces.ClipReader, themes interfaces.ThemeReader) *MainScreen {
	return &MainScreen{clips: clips, themes: themes}
}

// Render builds the view for req. Anonymous callers see an empty list.
func (s *MainScreen) Render(ctx context.Context, req interfaces.ScreenRequest) (any, error) {
	theme, err := s.themes.Get(ctx, req.Owner)
	if err != nil {
		return nil, err
	}

	clips := []domain.Clipped{}
	if req.Owner != "" {
		stored, err := s.clips.List(ctx, req.Owner)
		if err != nil {
			return nil, err
		}
		clips = append(clips, stored...)
	}

	return MainView{
		Header: Header{Title: mainTitle, ThemeName: theme.Name},
		Clips:  clips,
		Count:  len(clips),
	}, nil
}
