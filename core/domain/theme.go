// ABOUTME: Theme names and the per-owner theme model
// ABOUTME: Light is the default
package domain

// Theme names supported by the client
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// DefaultThemeName is used when an owner never picked a theme
const DefaultThemeName = ThemeLight

// Theme is the display theme selected by an owner
type Theme struct {
	Name string `json:"name"`
}

// IsValidThemeName reports whether name is a supported theme
func IsValidThemeName(name string) bool {
	return name == ThemeLight || name == ThemeDark
}
