package config

import (
	"fyne.io/fyne/v2"
	"github.com/radar-whisper/radar-whisper/internal/model"
	"github.com/radar-whisper/radar-whisper/internal/platform"
)

// Theme variants for the player window
type ThemeVariant string

const (
	ThemeDark  ThemeVariant = "dark"
	ThemeLight ThemeVariant = "light"
)

// Settings keys for Fyne preferences
const (
	KeyMusicDir     = "music_directory"
	KeyVolume       = "playback_volume"
	KeyMuted        = "playback_muted"
	KeyPlaybackMode = "playback_mode"
	KeyThemeVariant = "theme_variant"
	KeyScanWorkers  = "metadata_scan_workers"
	KeyLanguage     = "app_language"
)

// Default values
const (
	DefaultVolume       = 75
	DefaultThemeVariant = ThemeDark
	DefaultScanWorkers  = 4
	DefaultLanguage     = "system"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetMusicDirectory returns the directory the add-tracks dialog opens in
func (s *Settings) GetMusicDirectory() string {
	dir := s.app.Preferences().String(KeyMusicDir)
	if dir == "" {
		// Use system default Music directory
		defaultDir, err := platform.GetHomeMusicDir()
		if err != nil {
			defaultDir = "/tmp"
		}
		s.SetMusicDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetMusicDirectory sets the music directory
func (s *Settings) SetMusicDirectory(dir string) {
	s.app.Preferences().SetString(KeyMusicDir, dir)
}

// GetVolume returns the saved playback volume as a percentage
func (s *Settings) GetVolume() int {
	return s.app.Preferences().IntWithFallback(KeyVolume, DefaultVolume)
}

// SetVolume saves the playback volume, clamped to 0-100
func (s *Settings) SetVolume(percent int) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	s.app.Preferences().SetInt(KeyVolume, percent)
}

// GetMuted returns whether playback starts muted
func (s *Settings) GetMuted() bool {
	return s.app.Preferences().BoolWithFallback(KeyMuted, false)
}

// SetMuted saves the mute state
func (s *Settings) SetMuted(muted bool) {
	s.app.Preferences().SetBool(KeyMuted, muted)
}

// GetPlaybackMode returns the saved playback mode, defaulting to sequential
func (s *Settings) GetPlaybackMode() model.PlaybackMode {
	return model.ParsePlaybackMode(s.app.Preferences().String(KeyPlaybackMode))
}

// SetPlaybackMode saves the playback mode
func (s *Settings) SetPlaybackMode(mode model.PlaybackMode) {
	s.app.Preferences().SetString(KeyPlaybackMode, string(mode))
}

// GetThemeVariant returns the configured theme variant
func (s *Settings) GetThemeVariant() ThemeVariant {
	variant := s.app.Preferences().String(KeyThemeVariant)
	if variant == "" {
		s.SetThemeVariant(DefaultThemeVariant)
		return DefaultThemeVariant
	}
	return ThemeVariant(variant)
}

// SetThemeVariant sets the theme variant
func (s *Settings) SetThemeVariant(variant ThemeVariant) {
	s.app.Preferences().SetString(KeyThemeVariant, string(variant))
}

// GetThemeVariantOptions returns available theme variants
func (s *Settings) GetThemeVariantOptions() []ThemeVariant {
	return []ThemeVariant{ThemeDark, ThemeLight}
}

// GetScanWorkers returns how many files are scanned for metadata in parallel
func (s *Settings) GetScanWorkers() int {
	value := s.app.Preferences().Int(KeyScanWorkers)
	if value <= 0 {
		s.SetScanWorkers(DefaultScanWorkers)
		return DefaultScanWorkers
	}
	return value
}

// SetScanWorkers sets the metadata scan parallelism
func (s *Settings) SetScanWorkers(count int) {
	if count < 1 {
		count = 1
	}
	if count > 16 {
		count = 16
	}
	s.app.Preferences().SetInt(KeyScanWorkers, count)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"es":     "Español",
	}
}
