// ABOUTME: Theme service stores the display theme each owner selected
// ABOUTME: Persisted through the same storage backend as clips; unknown owners get the default theme

package theme

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"clipper-app-api/core/domain"
	"clipper-app-api/core/errors"
	"clipper-app-api/core/interfaces"
)

// ThemeService reads and writes owner themes
type ThemeService struct {
	storage interfaces.ThemeStorage
	logger  interfaces.Logger
}

// NewThemeService creates a new theme service instance
func NewThemeService(storage interfaces.ThemeStorage, logger interfaces.Logger) *ThemeService {
	return &ThemeService{
		storage: storage,
		logger:  logger,
	}
}

// Get returns the owner's theme, falling back to the default when none is stored
func (s *ThemeService) Get(ctx context.Context, owner string) (domain.Theme, error) {
	owner = strings.TrimSpace(owner)
	if owner == "" || s.storage == nil {
		return domain.Theme{Name: domain.DefaultThemeName}, nil
	}

	name, found, err := s.storage.LoadTheme(ctx, owner)
	if err != nil {
		return domain.Theme{}, errors.WrapError(err, "failed to load theme")
	}
	if !found || !domain.IsValidThemeName(name) {
		return domain.Theme{Name: domain.DefaultThemeName}, nil
	}

	return domain.Theme{Name: name}, nil
}

// Set stores the owner's theme
func (s *ThemeService) Set(ctx context.Context, owner, name string) (domain.Theme, error) {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return domain.Theme{}, errors.NewValidation("owner", "owner cannot be empty")
	}
	if utf8.RuneCountInString(owner) > domain.MaxKeyLength {
		return domain.Theme{}, errors.NewValidation("owner", fmt.Sprintf("cannot exceed %d characters", domain.MaxKeyLength))
	}
	if !domain.IsValidThemeName(name) {
		return domain.Theme{}, errors.NewValidation("name", "theme must be 'light' or 'dark'")
	}
	if s.storage == nil {
		return domain.Theme{}, stderrors.New("theme store not configured")
	}

	if err := s.storage.SaveTheme(ctx, owner, name); err != nil {
		return domain.Theme{}, errors.WrapError(err, "failed to save theme")
	}

	if s.logger != nil {
		s.logger.Debug("Theme updated", map[string]interface{}{
			"owner": owner,
			"theme": name,
		})
	}

	return domain.Theme{Name: name}, nil
}
