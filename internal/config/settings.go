package config

import (
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
)

// ModID names the installation directory under the base directory
const ModID = "hats"

// Settings keys for Fyne preferences
const (
	KeyBaseDirectory        = "base_directory"
	KeyParseContributorMeta = "parse_contributor_meta"
)

// Default values
const (
	DefaultParseContributorMeta = false
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
	env EnvOverrides
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetBaseDirectory returns the directory the installation lives under.
// Environment override wins, then the stored preference, then the app storage root.
func (s *Settings) GetBaseDirectory() string {
	if s.env.BaseDir != "" {
		return s.env.BaseDir
	}
	dir := s.app.Preferences().String(KeyBaseDirectory)
	if dir == "" {
		defaultDir := s.defaultBaseDirectory()
		s.SetBaseDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetBaseDirectory sets the base directory
func (s *Settings) SetBaseDirectory(dir string) {
	s.app.Preferences().SetString(KeyBaseDirectory, dir)
}

// GetHatsDirectory returns the installation directory for hat files
func (s *Settings) GetHatsDirectory() string {
	return filepath.Join(s.GetBaseDirectory(), ModID)
}

// GetParseContributorMeta returns whether contributor hat notes are normalised on load
func (s *Settings) GetParseContributorMeta() bool {
	if s.env.ParseContributorMeta != nil {
		return *s.env.ParseContributorMeta
	}
	return s.app.Preferences().BoolWithFallback(KeyParseContributorMeta, DefaultParseContributorMeta)
}

// SetParseContributorMeta sets whether contributor hat notes are normalised on load
func (s *Settings) SetParseContributorMeta(enabled bool) {
	s.app.Preferences().SetBool(KeyParseContributorMeta, enabled)
}

func (s *Settings) defaultBaseDirectory() string {
	if storage := s.app.Storage(); storage != nil {
		if root := storage.RootURI(); root != nil && root.Path() != "" {
			return root.Path()
		}
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, ModID)
	}
	return filepath.Join(os.TempDir(), ModID)
}
