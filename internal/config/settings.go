package config

import (
	"fyne.io/fyne/v2"

	"github.com/chime-player/chime/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDataDir       = "data_directory"
	KeyDefaultVolume = "default_volume"
	KeyLanguage      = "language"
)

// Default values
const (
	DefaultVolume = 0.8
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDataDirectory returns the directory for persisted session artifacts
func (s *Settings) GetDataDirectory() string {
	dir := s.app.Preferences().String(KeyDataDir)
	if dir == "" {
		defaultDir := platform.DefaultDataDir()
		s.SetDataDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDataDirectory sets the session data directory
func (s *Settings) SetDataDirectory(dir string) {
	s.app.Preferences().SetString(KeyDataDir, dir)
}

// GetDefaultVolume returns the volume used when no saved volume exists
func (s *Settings) GetDefaultVolume() float64 {
	value := s.app.Preferences().FloatWithFallback(KeyDefaultVolume, DefaultVolume)
	return clampVolume(value)
}

// SetDefaultVolume sets the fallback volume, clamped to [0, 1]
func (s *Settings) SetDefaultVolume(volume float64) {
	s.app.Preferences().SetFloat(KeyDefaultVolume, clampVolume(volume))
}

// GetLanguage returns the UI language code
func (s *Settings) GetLanguage() string {
	return s.app.Preferences().StringWithFallback(KeyLanguage, "en")
}

// SetLanguage sets the UI language code
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
