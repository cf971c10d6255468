package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyPlay             = "play"
	KeyPause            = "pause"
	KeyStop             = "stop"
	KeyNext             = "next"
	KeyPrevious         = "previous"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyPlayback         = "playback"
	KeyLanguage         = "language"
	KeyAddFiles         = "add_files"
	KeyAddFolder        = "add_folder"
	KeyNewPlaylist      = "new_playlist"
	KeyDeletePlaylist   = "delete_playlist"
	KeyRenamePlaylist   = "rename_playlist"
	KeyImportPlaylist   = "import_playlist"
	KeyExportPlaylist   = "export_playlist"
	KeyMusicDirectory   = "music_directory"
	KeyScanWorkers      = "scan_workers"
	KeyTheme            = "theme"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyBrowse           = "browse"
	KeySearch           = "search"
	KeyModeSequential   = "mode_sequential"
	KeyModeShuffle      = "mode_shuffle"
	KeyModeRepeatOne    = "mode_repeat_one"
	KeyModeRepeatAll    = "mode_repeat_all"
	KeyNowPlaying       = "now_playing"
	KeyNothingPlaying   = "nothing_playing"
	KeyEmptyPlaylist    = "empty_playlist"
	KeyPlaybackError    = "playback_error"
	KeyRemoveTrack      = "remove_track"
	KeyRevealTrack      = "reveal_track"
	KeyTracksAdded      = "tracks_added"
	KeyScanningFiles    = "scanning_files"
	KeyPlaylistImported = "playlist_imported"
	KeyPlaylistExported = "playlist_exported"
	KeySettingsSaved    = "settings_saved"
	KeyPlaylistName     = "playlist_name"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"es": "Español",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Radar Whisper",
		KeyPlay:             "Play",
		KeyPause:            "Pause",
		KeyStop:             "Stop",
		KeyNext:             "Next",
		KeyPrevious:         "Previous",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyPlayback:         "Playback",
		KeyLanguage:         "Language",
		KeyAddFiles:         "Add Files…",
		KeyAddFolder:        "Add Folder…",
		KeyNewPlaylist:      "New Playlist",
		KeyDeletePlaylist:   "Delete Playlist",
		KeyRenamePlaylist:   "Rename Playlist",
		KeyImportPlaylist:   "Import Playlist…",
		KeyExportPlaylist:   "Export Playlist…",
		KeyMusicDirectory:   "Music Directory",
		KeyScanWorkers:      "Metadata Scan Workers",
		KeyTheme:            "Theme",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyBrowse:           "Browse",
		KeySearch:           "Search tracks…",
		KeyModeSequential:   "Sequential",
		KeyModeShuffle:      "Shuffle",
		KeyModeRepeatOne:    "Repeat One",
		KeyModeRepeatAll:    "Repeat All",
		KeyNowPlaying:       "Now Playing",
		KeyNothingPlaying:   "Nothing playing",
		KeyEmptyPlaylist:    "Playlist is empty",
		KeyPlaybackError:    "Playback error",
		KeyRemoveTrack:      "Remove",
		KeyRevealTrack:      "Show in folder",
		KeyTracksAdded:      "Tracks added",
		KeyScanningFiles:    "Scanning files…",
		KeyPlaylistImported: "Playlist imported",
		KeyPlaylistExported: "Playlist exported",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyPlaylistName:     "Playlist name",
	}

	// Spanish texts
	l.texts["es"] = map[string]string{
		KeyAppTitle:         "Radar Whisper",
		KeyPlay:             "Reproducir",
		KeyPause:            "Pausar",
		KeyStop:             "Detener",
		KeyNext:             "Siguiente",
		KeyPrevious:         "Anterior",
		KeySettings:         "Configuración",
		KeyFile:             "Archivo",
		KeyPlayback:         "Reproducción",
		KeyLanguage:         "Idioma",
		KeyAddFiles:         "Añadir archivos…",
		KeyAddFolder:        "Añadir carpeta…",
		KeyNewPlaylist:      "Nueva lista",
		KeyDeletePlaylist:   "Eliminar lista",
		KeyRenamePlaylist:   "Renombrar lista",
		KeyImportPlaylist:   "Importar lista…",
		KeyExportPlaylist:   "Exportar lista…",
		KeyMusicDirectory:   "Carpeta de música",
		KeyScanWorkers:      "Hilos de escaneo de metadatos",
		KeyTheme:            "Tema",
		KeySave:             "Guardar",
		KeyCancel:           "Cancelar",
		KeyBrowse:           "Examinar",
		KeySearch:           "Buscar pistas…",
		KeyModeSequential:   "Secuencial",
		KeyModeShuffle:      "Aleatorio",
		KeyModeRepeatOne:    "Repetir una",
		KeyModeRepeatAll:    "Repetir todas",
		KeyNowPlaying:       "Reproduciendo",
		KeyNothingPlaying:   "Nada en reproducción",
		KeyEmptyPlaylist:    "La lista está vacía",
		KeyPlaybackError:    "Error de reproducción",
		KeyRemoveTrack:      "Quitar",
		KeyRevealTrack:      "Mostrar en carpeta",
		KeyTracksAdded:      "Pistas añadidas",
		KeyScanningFiles:    "Escaneando archivos…",
		KeyPlaylistImported: "Lista importada",
		KeyPlaylistExported: "Lista exportada",
		KeySettingsSaved:    "¡Configuración guardada!",
		KeyPlaylistName:     "Nombre de la lista",
	}
}
