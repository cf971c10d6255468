package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/radar-whisper/radar-whisper/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestMusicDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetMusicDirectory()
	if dir == "" {
		t.Error("Music directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/music"
	settings.SetMusicDirectory(customDir)

	retrievedDir := settings.GetMusicDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected music directory %s, got %s", customDir, retrievedDir)
	}
}

func TestVolume(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	volume := settings.GetVolume()
	if volume != DefaultVolume {
		t.Errorf("Expected default volume %d, got %d", DefaultVolume, volume)
	}

	// Test setting custom value
	settings.SetVolume(40)
	if settings.GetVolume() != 40 {
		t.Errorf("Expected volume 40, got %d", settings.GetVolume())
	}

	// Zero is a valid saved volume, not a missing value
	settings.SetVolume(0)
	if settings.GetVolume() != 0 {
		t.Errorf("Expected volume 0, got %d", settings.GetVolume())
	}

	// Test boundary values
	settings.SetVolume(-5) // Should be clamped to 0
	if settings.GetVolume() != 0 {
		t.Error("Volume should be clamped to minimum 0")
	}

	settings.SetVolume(150) // Should be clamped to 100
	if settings.GetVolume() != 100 {
		t.Error("Volume should be clamped to maximum 100")
	}
}

func TestMuted(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetMuted() {
		t.Error("Playback should not be muted by default")
	}

	settings.SetMuted(true)
	if !settings.GetMuted() {
		t.Error("Expected muted state to persist")
	}
}

func TestPlaybackMode(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	mode := settings.GetPlaybackMode()
	if mode != model.ModeSequential {
		t.Errorf("Expected default mode %s, got %s", model.ModeSequential, mode)
	}

	// Test setting custom value
	settings.SetPlaybackMode(model.ModeShuffle)
	if settings.GetPlaybackMode() != model.ModeShuffle {
		t.Errorf("Expected mode %s, got %s", model.ModeShuffle, settings.GetPlaybackMode())
	}
}

func TestThemeVariant(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	variant := settings.GetThemeVariant()
	if variant != DefaultThemeVariant {
		t.Errorf("Expected default theme %s, got %s", DefaultThemeVariant, variant)
	}

	// Test setting custom value
	settings.SetThemeVariant(ThemeLight)
	if settings.GetThemeVariant() != ThemeLight {
		t.Errorf("Expected theme %s, got %s", ThemeLight, settings.GetThemeVariant())
	}
}

func TestScanWorkers(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	workers := settings.GetScanWorkers()
	if workers != DefaultScanWorkers {
		t.Errorf("Expected default scan workers %d, got %d", DefaultScanWorkers, workers)
	}

	// Test setting custom value
	settings.SetScanWorkers(8)
	if settings.GetScanWorkers() != 8 {
		t.Errorf("Expected scan workers 8, got %d", settings.GetScanWorkers())
	}

	// Test boundary values
	settings.SetScanWorkers(0) // Should be clamped to 1
	if settings.GetScanWorkers() != 1 {
		t.Error("Scan workers should be clamped to minimum 1")
	}

	settings.SetScanWorkers(99) // Should be clamped to 16
	if settings.GetScanWorkers() != 16 {
		t.Error("Scan workers should be clamped to maximum 16")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("es")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "es" {
		t.Errorf("Expected language 'es', got %s", retrievedLang)
	}
}

func TestGetThemeVariantOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetThemeVariantOptions()
	expectedOptions := []ThemeVariant{ThemeDark, ThemeLight}

	if len(options) != len(expectedOptions) {
		t.Fatalf("Expected %d theme options, got %d", len(expectedOptions), len(options))
	}

	for i, expected := range expectedOptions {
		if options[i] != expected {
			t.Errorf("Theme option %d: expected %s, got %s", i, expected, options[i])
		}
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "es"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
