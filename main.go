package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/radar-whisper/radar-whisper/internal/audio"
	"github.com/radar-whisper/radar-whisper/internal/config"
	"github.com/radar-whisper/radar-whisper/internal/library"
	"github.com/radar-whisper/radar-whisper/internal/metadata"
	"github.com/radar-whisper/radar-whisper/internal/platform"
	"github.com/radar-whisper/radar-whisper/internal/playback"
	"github.com/radar-whisper/radar-whisper/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.radarwhisper.player"
	AppName = "Radar Whisper"

	WindowWidth  = 960
	WindowHeight = 640
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply configured theme before any window is shown
	settings := config.NewSettings(myApp)
	switch settings.GetThemeVariant() {
	case config.ThemeLight:
		myApp.Settings().SetTheme(ui.NewLightTheme())
	default:
		myApp.Settings().SetTheme(ui.NewDarkTheme())
	}

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Ensure the music directory exists so file dialogs have somewhere to open
	musicDir := settings.GetMusicDirectory()
	if err := platform.CreateDirectoryIfNotExists(musicDir); err != nil {
		fmt.Printf("failed to ensure music dir: %v\n", err)
	}

	// Initialize services
	engine, err := audio.NewEngine()
	if err != nil {
		log.Fatalf("failed to initialize audio output: %v", err)
	}
	player := playback.NewService(engine)

	extractor := metadata.NewFileExtractor()
	catalog := library.NewManager(extractor, settings.GetScanWorkers())
	catalog.CreatePlaylist(library.DefaultPlaylistName, "")

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, player, catalog)

	// Show and run
	myWindow.ShowAndRun()
}
