package ui

import (
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/radar-whisper/radar-whisper/internal/audio"
	"github.com/radar-whisper/radar-whisper/internal/config"
	"github.com/radar-whisper/radar-whisper/internal/library"
	"github.com/radar-whisper/radar-whisper/internal/model"
	"github.com/radar-whisper/radar-whisper/internal/platform"
	"github.com/radar-whisper/radar-whisper/internal/playback"
)

// PlaylistFileExtensions are the formats offered in import/export dialogs
var PlaylistFileExtensions = []string{".m3u", ".m3u8", ".pls", ".json"}

// RootUI represents the main UI structure
type RootUI struct {
	window fyne.Window
	app    fyne.App

	player  *playback.Service
	catalog *library.Manager

	settings     *config.Settings
	localization *Localization

	// Playlist sidebar
	playlistList *widget.List
	playlists    []*model.Playlist

	// Track list
	searchEntry   *widget.Entry
	trackList     *widget.List
	visibleTracks []int // indices into the current playlist

	// Transport bar
	prevBtn       *widget.Button
	playPauseBtn  *widget.Button
	stopBtn       *widget.Button
	nextBtn       *widget.Button
	modeBtn       *widget.Button
	seekSlider    *widget.Slider
	positionLabel *widget.Label
	durationLabel *widget.Label
	volumeSlider  *widget.Slider
	muteBtn       *widget.Button

	// Now playing panel
	coverImage    *canvas.Image
	nowTitleLabel *widget.Label
	nowMetaLabel  *widget.Label

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite

	statusMu        sync.Mutex
	lastStatus      playback.Status
	muted           bool
	queuePlaylistID string // playlist currently loaded into the transport
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, player *playback.Service, catalog *library.Manager) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		player:       player,
		catalog:      catalog,
		settings:     settings,
		localization: localization,
		muted:        settings.GetMuted(),
	}

	// Apply persisted playback settings
	player.SetVolume(settings.GetVolume())
	player.SetMuted(ui.muted)
	player.SetMode(settings.GetPlaybackMode())

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Wire service callbacks
	player.SetUpdateCallback(ui.onStatusUpdate)
	player.SetErrorCallback(ui.onPlaybackError)
	catalog.SetChangeCallback(ui.onCatalogChange)
	catalog.SetErrorCallback(ui.onCatalogError)

	ui.setupUI()
	ui.reloadQueue()
	ui.startPositionTicker()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Search entry above the track list
	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearch))
	ui.searchEntry.OnChanged = func(string) {
		ui.refreshTrackList()
	}

	// Notification panel under the search bar (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	topCombined := container.NewVBox(ui.searchEntry, ui.notificationContainer)

	// Track list
	ui.trackList = widget.NewList(
		func() int { return len(ui.visibleTracks) },
		func() fyne.CanvasObject { return ui.createTrackItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateTrackItem(id, obj) },
	)

	// Playlist sidebar
	ui.playlistList = widget.NewList(
		func() int { return len(ui.playlists) },
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(ui.playlists) {
				return
			}
			obj.(*widget.Label).SetText(ui.playlists[id].Name)
		},
	)
	ui.playlistList.OnSelected = ui.onPlaylistSelected

	sidebar := container.NewBorder(
		widget.NewLabelWithStyle(IconMusic+" "+ui.localization.GetText(KeyAppTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		nil, nil, nil,
		ui.playlistList,
	)

	transportBar := ui.createTransportBar()
	nowPlaying := ui.createNowPlayingPanel()
	bottom := container.NewVBox(widget.NewSeparator(), container.NewBorder(nil, nil, nowPlaying, nil, transportBar))

	center := container.NewBorder(topCombined, nil, nil, nil, ui.trackList)

	split := container.NewHSplit(sidebar, center)
	split.SetOffset(0.22)

	content := container.NewBorder(nil, bottom, nil, nil, split)
	ui.window.SetContent(content)

	ui.refreshPlaylists()
	ui.refreshTrackList()

	log.Printf("UI setup completed successfully")
}

// createTransportBar builds the playback controls row
func (ui *RootUI) createTransportBar() fyne.CanvasObject {
	ui.prevBtn = widget.NewButton(IconPrevious, func() {
		if err := ui.player.Previous(); err != nil {
			log.Printf("Previous failed: %v", err)
		}
	})
	ui.playPauseBtn = widget.NewButton(IconPlay, func() {
		if err := ui.player.TogglePlayPause(); err != nil {
			log.Printf("Play/pause failed: %v", err)
		}
	})
	ui.playPauseBtn.Importance = widget.HighImportance
	ui.stopBtn = widget.NewButton(IconStop, func() {
		ui.player.Stop()
	})
	ui.nextBtn = widget.NewButton(IconNext, func() {
		if err := ui.player.Next(); err != nil {
			log.Printf("Next failed: %v", err)
		}
	})

	ui.modeBtn = widget.NewButton(modeIcon(ui.player.Mode()), ui.onCycleMode)
	ui.modeBtn.Importance = widget.LowImportance

	buttons := container.NewHBox(ui.prevBtn, ui.playPauseBtn, ui.stopBtn, ui.nextBtn, ui.modeBtn)

	// Seek slider with position/duration labels
	ui.positionLabel = widget.NewLabel(DashPlaceholder)
	ui.positionLabel.TextStyle = fyne.TextStyle{Monospace: true}
	ui.durationLabel = widget.NewLabel(DashPlaceholder)
	ui.durationLabel.TextStyle = fyne.TextStyle{Monospace: true}

	ui.seekSlider = widget.NewSlider(0, 1)
	ui.seekSlider.Step = 1
	ui.seekSlider.OnChangeEnded = func(value float64) {
		if err := ui.player.Seek(time.Duration(value) * time.Second); err != nil {
			log.Printf("Seek failed: %v", err)
		}
	}
	seekRow := container.NewBorder(nil, nil, ui.positionLabel, ui.durationLabel, ui.seekSlider)

	// Volume controls
	ui.muteBtn = widget.NewButton(muteIcon(ui.muted), ui.onToggleMute)
	ui.muteBtn.Importance = widget.LowImportance

	ui.volumeSlider = widget.NewSlider(0, 100)
	ui.volumeSlider.Step = 1
	ui.volumeSlider.Value = float64(ui.settings.GetVolume())
	ui.volumeSlider.OnChanged = func(value float64) {
		ui.player.SetVolume(int(value))
	}
	ui.volumeSlider.OnChangeEnded = func(value float64) {
		ui.settings.SetVolume(int(value))
	}
	volumeBox := container.NewGridWrap(fyne.NewSize(VolumeSliderSize, ui.volumeSlider.MinSize().Height), ui.volumeSlider)

	controls := container.NewBorder(nil, nil, buttons, container.NewHBox(ui.muteBtn, volumeBox), seekRow)
	return container.NewVBox(controls)
}

// createNowPlayingPanel builds the cover art and current track labels
func (ui *RootUI) createNowPlayingPanel() fyne.CanvasObject {
	ui.coverImage = canvas.NewImageFromResource(nil)
	ui.coverImage.FillMode = canvas.ImageFillContain
	ui.coverImage.SetMinSize(fyne.NewSize(CoverArtSize/2, CoverArtSize/2))

	ui.nowTitleLabel = widget.NewLabel(ui.localization.GetText(KeyNothingPlaying))
	ui.nowTitleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.nowTitleLabel.Truncation = fyne.TextTruncateEllipsis

	ui.nowMetaLabel = widget.NewLabel("")
	ui.nowMetaLabel.Truncation = fyne.TextTruncateEllipsis

	labels := container.NewVBox(ui.nowTitleLabel, ui.nowMetaLabel)
	return container.NewHBox(ui.coverImage, labels)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	l := ui.localization

	addFilesItem := fyne.NewMenuItem(l.GetText(KeyAddFiles), ui.onAddFile)
	addFolderItem := fyne.NewMenuItem(l.GetText(KeyAddFolder), ui.onAddFolder)
	newPlaylistItem := fyne.NewMenuItem(l.GetText(KeyNewPlaylist), ui.onNewPlaylist)
	renamePlaylistItem := fyne.NewMenuItem(l.GetText(KeyRenamePlaylist), ui.onRenamePlaylist)
	deletePlaylistItem := fyne.NewMenuItem(l.GetText(KeyDeletePlaylist), ui.onDeletePlaylist)
	importItem := fyne.NewMenuItem(l.GetText(KeyImportPlaylist), ui.onImportPlaylist)
	exportItem := fyne.NewMenuItem(l.GetText(KeyExportPlaylist), ui.onExportPlaylist)
	settingsItem := fyne.NewMenuItem(l.GetText(KeySettings), ui.onShowSettings)

	fileMenu := fyne.NewMenu(l.GetText(KeyFile),
		addFilesItem, addFolderItem,
		fyne.NewMenuItemSeparator(),
		newPlaylistItem, renamePlaylistItem, deletePlaylistItem,
		fyne.NewMenuItemSeparator(),
		importItem, exportItem,
		fyne.NewMenuItemSeparator(),
		settingsItem,
	)

	// Playback mode submenu with checkmarks on the active mode
	currentMode := ui.player.Mode()
	playbackMenu := fyne.NewMenu(l.GetText(KeyPlayback))
	for _, entry := range []struct {
		key  string
		mode model.PlaybackMode
	}{
		{KeyModeSequential, model.ModeSequential},
		{KeyModeShuffle, model.ModeShuffle},
		{KeyModeRepeatAll, model.ModeRepeatAll},
		{KeyModeRepeatOne, model.ModeRepeatOne},
	} {
		mode := entry.mode // Capture for closure
		item := fyne.NewMenuItem(l.GetText(entry.key), func() {
			ui.setMode(mode)
		})
		item.Checked = mode == currentMode
		playbackMenu.Items = append(playbackMenu.Items, item)
	}

	// Language submenu
	languageMenu := fyne.NewMenu(l.GetText(KeyLanguage))
	for code, name := range l.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if l.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(fileMenu, playbackMenu, languageMenu)
	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearch))
	ui.trackList.Refresh()
	ui.updateNowPlaying()
}

// createTrackItem creates a new track row widget
func (ui *RootUI) createTrackItem() fyne.CanvasObject {
	row := NewTrackRow(ui.localization)
	row.SetCallbacks(ui.onActivateTrack, ui.onRevealTrack, ui.onRemoveTrack)
	return row
}

// updateTrackItem updates a track row with current data
func (ui *RootUI) updateTrackItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id >= len(ui.visibleTracks) {
		return
	}
	index := ui.visibleTracks[id]

	playlist := ui.catalog.Current()
	if playlist == nil || index >= len(playlist.Tracks) {
		return
	}

	row, ok := item.(*TrackRow)
	if !ok {
		return
	}

	// Re-set callbacks every update so rows recycled by the list stay wired
	row.SetCallbacks(ui.onActivateTrack, ui.onRevealTrack, ui.onRemoveTrack)

	status := ui.currentStatus()
	active := status.Index == index && status.State.IsActive() && ui.queueIsCurrent()
	row.SetTrack(playlist.Tracks[index], index, active)
}

// onPlaylistSelected switches the current playlist
func (ui *RootUI) onPlaylistSelected(id widget.ListItemID) {
	if id >= len(ui.playlists) {
		return
	}
	selected := ui.playlists[id]
	if err := ui.catalog.SetCurrent(selected.ID); err != nil {
		log.Printf("Failed to select playlist %s: %v", selected.ID, err)
	}
}

// onActivateTrack starts playback of the tapped track
func (ui *RootUI) onActivateTrack(index int) {
	ui.ensureQueueCurrent()
	if err := ui.player.PlayIndex(index); err != nil {
		log.Printf("PlayIndex(%d) failed: %v", index, err)
	}
}

// onRevealTrack shows a track in the system file manager
func (ui *RootUI) onRevealTrack(filePath string) {
	if err := platform.OpenFileInManager(filePath); err != nil {
		log.Printf("Error revealing file %s: %v", filePath, err)
		ui.showNotification(ui.localization.GetText(KeyRevealTrack)+": "+err.Error(), false)
	}
}

// onRemoveTrack removes a track from the current playlist and the queue
func (ui *RootUI) onRemoveTrack(index int) {
	playlist := ui.catalog.Current()
	if playlist == nil {
		return
	}

	// The transport adjusts its cursor before the catalog drops the track
	if ui.queueIsCurrent() {
		if err := ui.player.RemoveTrack(index); err != nil {
			log.Printf("Failed to remove track %d from queue: %v", index, err)
			return
		}
	}
	if _, err := ui.catalog.RemoveTrack(playlist.ID, index); err != nil {
		log.Printf("Failed to remove track %d: %v", index, err)
	}
}

// onCycleMode advances through the playback modes
func (ui *RootUI) onCycleMode() {
	var next model.PlaybackMode
	switch ui.player.Mode() {
	case model.ModeSequential:
		next = model.ModeShuffle
	case model.ModeShuffle:
		next = model.ModeRepeatAll
	case model.ModeRepeatAll:
		next = model.ModeRepeatOne
	default:
		next = model.ModeSequential
	}
	ui.setMode(next)
}

// setMode applies and persists a playback mode
func (ui *RootUI) setMode(mode model.PlaybackMode) {
	ui.player.SetMode(mode)
	ui.settings.SetPlaybackMode(mode)
	ui.modeBtn.SetText(modeIcon(mode))
	// Update menu checkmarks
	ui.createMenu()
}

// onToggleMute flips the mute state
func (ui *RootUI) onToggleMute() {
	ui.muted = !ui.muted
	ui.player.SetMuted(ui.muted)
	ui.settings.SetMuted(ui.muted)
	ui.muteBtn.SetText(muteIcon(ui.muted))
}

// onAddFile adds a single audio file to the current playlist
func (ui *RootUI) onAddFile() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		ui.addTracks([]string{path})
	}, ui.window)
	fileDialog.SetFilter(storage.NewExtensionFileFilter(audio.SupportedExtensions))
	ui.setDialogLocation(fileDialog)
	fileDialog.Show()
}

// onAddFolder scans a directory recursively and adds every audio file found
func (ui *RootUI) onAddFolder() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		dir := uri.Path()
		ui.settings.SetMusicDirectory(dir)

		ui.showNotification(ui.localization.GetText(KeyScanningFiles), true)
		go func() {
			paths, err := platform.FindAudioFiles(dir, audio.IsSupported)
			if err != nil {
				log.Printf("Folder scan failed: %v", err)
				ui.hideNotification()
				return
			}
			ui.addTracks(paths)
		}()
	}, ui.window)
}

// addTracks ingests files into the current playlist and extends the running
// queue. Metadata scanning happens off the UI thread.
func (ui *RootUI) addTracks(paths []string) {
	if len(paths) == 0 {
		ui.hideNotification()
		return
	}

	ui.showNotification(ui.localization.GetText(KeyScanningFiles), true)
	go func() {
		playlist := ui.catalog.Current()
		if playlist == nil {
			playlist = ui.catalog.CreatePlaylist(library.DefaultPlaylistName, "")
		}

		tracks, err := ui.catalog.AddTracks(playlist.ID, paths)
		if err != nil {
			log.Printf("Failed to add tracks: %v", err)
			ui.hideNotification()
			return
		}

		if ui.queueIsCurrent() {
			ui.player.AppendTracks(tracks)
		} else {
			ui.reloadQueue()
		}

		log.Printf("Added %d tracks to playlist %q", len(tracks), playlist.Name)
		ui.showNotification(ui.localization.GetText(KeyTracksAdded), false)
	}()
}

// onNewPlaylist prompts for a name and creates a playlist
func (ui *RootUI) onNewPlaylist() {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(ui.localization.GetText(KeyPlaylistName))
	dialog.ShowForm(ui.localization.GetText(KeyNewPlaylist), ui.localization.GetText(KeySave), ui.localization.GetText(KeyCancel),
		[]*widget.FormItem{widget.NewFormItem(ui.localization.GetText(KeyPlaylistName), entry)},
		func(confirmed bool) {
			if !confirmed {
				return
			}
			p := ui.catalog.CreatePlaylist(entry.Text, "")
			if err := ui.catalog.SetCurrent(p.ID); err != nil {
				log.Printf("Failed to select new playlist: %v", err)
			}
		}, ui.window)
}

// onRenamePlaylist prompts for a new name for the current playlist
func (ui *RootUI) onRenamePlaylist() {
	playlist := ui.catalog.Current()
	if playlist == nil {
		return
	}

	entry := widget.NewEntry()
	entry.SetText(playlist.Name)
	dialog.ShowForm(ui.localization.GetText(KeyRenamePlaylist), ui.localization.GetText(KeySave), ui.localization.GetText(KeyCancel),
		[]*widget.FormItem{widget.NewFormItem(ui.localization.GetText(KeyPlaylistName), entry)},
		func(confirmed bool) {
			if !confirmed {
				return
			}
			if err := ui.catalog.RenamePlaylist(playlist.ID, entry.Text); err != nil {
				log.Printf("Failed to rename playlist: %v", err)
			}
		}, ui.window)
}

// onDeletePlaylist removes the current playlist after confirmation
func (ui *RootUI) onDeletePlaylist() {
	playlist := ui.catalog.Current()
	if playlist == nil {
		return
	}

	dialog.ShowConfirm(ui.localization.GetText(KeyDeletePlaylist), playlist.Name, func(confirmed bool) {
		if !confirmed {
			return
		}
		if err := ui.catalog.DeletePlaylist(playlist.ID); err != nil {
			log.Printf("Failed to delete playlist: %v", err)
		}
	}, ui.window)
}

// onImportPlaylist loads a playlist file into the catalog
func (ui *RootUI) onImportPlaylist() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		ui.showNotification(ui.localization.GetText(KeyScanningFiles), true)
		go func() {
			playlist, err := ui.catalog.ImportPlaylist(path)
			if err != nil {
				log.Printf("Import failed: %v", err)
				ui.showNotification(err.Error(), false)
				return
			}
			log.Printf("Imported playlist %q with %d tracks", playlist.Name, playlist.TrackCount())
			ui.showNotification(ui.localization.GetText(KeyPlaylistImported)+": "+playlist.Name, false)
		}()
	}, ui.window)
	fileDialog.SetFilter(storage.NewExtensionFileFilter(PlaylistFileExtensions))
	fileDialog.Show()
}

// onExportPlaylist writes the current playlist to a file
func (ui *RootUI) onExportPlaylist() {
	playlist := ui.catalog.Current()
	if playlist == nil {
		return
	}

	fileDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if err := ui.catalog.ExportPlaylist(playlist.ID, path); err != nil {
			log.Printf("Export failed: %v", err)
			ui.showNotification(err.Error(), false)
			return
		}
		ui.showNotification(ui.localization.GetText(KeyPlaylistExported)+": "+playlist.Name, false)
	}, ui.window)
	fileDialog.SetFileName(playlist.Name + ".m3u")
	fileDialog.Show()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		ui.onLanguageChange(ui.settings.GetLanguage())
		ui.applyTheme()
	}).Show()
}

// applyTheme switches the app theme to the configured variant
func (ui *RootUI) applyTheme() {
	switch ui.settings.GetThemeVariant() {
	case config.ThemeLight:
		ui.app.Settings().SetTheme(NewLightTheme())
	default:
		ui.app.Settings().SetTheme(NewDarkTheme())
	}
}

// setDialogLocation points a file dialog at the configured music directory
func (ui *RootUI) setDialogLocation(fileDialog *dialog.FileDialog) {
	musicDir := ui.settings.GetMusicDirectory()
	uri, err := storage.ListerForURI(storage.NewFileURI(musicDir))
	if err != nil {
		return
	}
	fileDialog.SetLocation(uri)
}

// reloadQueue replaces the transport queue with the current playlist
func (ui *RootUI) reloadQueue() {
	playlist := ui.catalog.Current()
	if playlist == nil {
		ui.queuePlaylistID = ""
		ui.player.LoadQueue(nil)
		return
	}
	ui.queuePlaylistID = playlist.ID
	ui.player.LoadQueue(playlist.Tracks)
}

// ensureQueueCurrent reloads the queue if the current playlist changed since
// the queue was last loaded
func (ui *RootUI) ensureQueueCurrent() {
	if !ui.queueIsCurrent() {
		ui.reloadQueue()
	}
}

// queueIsCurrent reports whether the transport queue mirrors the current
// playlist
func (ui *RootUI) queueIsCurrent() bool {
	playlist := ui.catalog.Current()
	return playlist != nil && playlist.ID == ui.queuePlaylistID
}

// onCatalogChange refreshes playlist and track views after catalog mutations
func (ui *RootUI) onCatalogChange() {
	fyne.Do(func() {
		ui.refreshPlaylists()
		if !ui.queueIsCurrent() {
			ui.reloadQueue()
		}
		ui.refreshTrackList()
	})
}

// onCatalogError surfaces non-fatal catalog problems in the notification panel
func (ui *RootUI) onCatalogError(err error) {
	log.Printf("Catalog warning: %v", err)
	ui.showNotification(err.Error(), false)
}

// refreshPlaylists reloads the sidebar from the catalog
func (ui *RootUI) refreshPlaylists() {
	ui.playlists = ui.catalog.Playlists()
	ui.playlistList.Refresh()

	current := ui.catalog.Current()
	if current == nil {
		ui.playlistList.UnselectAll()
		return
	}
	for i, p := range ui.playlists {
		if p.ID == current.ID {
			ui.playlistList.Select(i)
			break
		}
	}
}

// refreshTrackList recomputes the visible track indices from the search query
func (ui *RootUI) refreshTrackList() {
	ui.visibleTracks = ui.catalog.Search(ui.searchEntry.Text)
	ui.trackList.Refresh()
}

// currentStatus returns the last transport status snapshot
func (ui *RootUI) currentStatus() playback.Status {
	ui.statusMu.Lock()
	defer ui.statusMu.Unlock()
	return ui.lastStatus
}

// onStatusUpdate handles transport state changes from the playback service
func (ui *RootUI) onStatusUpdate(status playback.Status) {
	ui.statusMu.Lock()
	ui.lastStatus = status
	ui.statusMu.Unlock()

	log.Printf("Transport update: state=%s mode=%s index=%d", status.State, status.Mode, status.Index)

	fyne.Do(func() {
		if status.State == model.TransportPlaying {
			ui.playPauseBtn.SetText(IconPause)
		} else {
			ui.playPauseBtn.SetText(IconPlay)
		}
		ui.modeBtn.SetText(modeIcon(status.Mode))
		ui.updateNowPlaying()
		ui.trackList.Refresh()
	})
}

// onPlaybackError surfaces recoverable playback errors
func (ui *RootUI) onPlaybackError(err error) {
	log.Printf("Playback error: %v", err)
	ui.showNotification(ui.localization.GetText(KeyPlaybackError)+": "+err.Error(), false)
}

// updateNowPlaying refreshes the cover art and track labels. Must run on the
// UI thread.
func (ui *RootUI) updateNowPlaying() {
	status := ui.currentStatus()

	if status.Track == nil || !status.State.IsActive() {
		ui.nowTitleLabel.SetText(ui.localization.GetText(KeyNothingPlaying))
		ui.nowMetaLabel.SetText("")
		ui.coverImage.Resource = nil
		ui.coverImage.Refresh()
		return
	}

	track := status.Track
	ui.nowTitleLabel.SetText(track.DisplayTitle())
	ui.nowMetaLabel.SetText(track.DisplayArtist() + MiddleDotSeparator + track.DisplayAlbum())

	if len(track.Metadata.CoverArt) > 0 {
		ui.coverImage.Resource = fyne.NewStaticResource(track.ID, track.Metadata.CoverArt)
	} else {
		ui.coverImage.Resource = nil
	}
	ui.coverImage.Refresh()
}

// startPositionTicker keeps the seek slider and time labels in sync with the
// engine position
func (ui *RootUI) startPositionTicker() {
	go func() {
		ticker := time.NewTicker(PositionTickInterval)
		defer ticker.Stop()
		for range ticker.C {
			ui.refreshPosition()
		}
	}()
}

// refreshPosition pulls position/duration from the player and updates the bar
func (ui *RootUI) refreshPosition() {
	status := ui.currentStatus()
	if !status.State.IsActive() {
		fyne.Do(func() {
			ui.positionLabel.SetText(DashPlaceholder)
			ui.durationLabel.SetText(DashPlaceholder)
			ui.seekSlider.Value = 0
			ui.seekSlider.Refresh()
		})
		return
	}

	pos := ui.player.Position()
	dur := ui.player.Duration()

	fyne.Do(func() {
		ui.positionLabel.SetText(model.FormatDuration(pos))
		ui.durationLabel.SetText(model.FormatDuration(dur))
		if dur > 0 {
			ui.seekSlider.Max = dur.Seconds()
			ui.seekSlider.Value = pos.Seconds()
			ui.seekSlider.Refresh()
		}
	})
}

// modeIcon maps a playback mode to its transport bar icon
func modeIcon(mode model.PlaybackMode) string {
	switch mode {
	case model.ModeShuffle:
		return IconShuffle
	case model.ModeRepeatOne:
		return IconRepeatOne
	case model.ModeRepeatAll:
		return IconRepeat
	default:
		return IconSequential
	}
}

// muteIcon maps the mute state to its button icon
func muteIcon(muted bool) string {
	if muted {
		return IconMuted
	}
	return IconVolume
}

// showNotification displays a message in the notification panel. When
// spinning is true, a spinner is shown to indicate background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
		if spinning {
			ui.notificationSpinner.Show()
		} else {
			ui.notificationSpinner.Hide()
		}
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationSpinner.Hide()
		ui.notificationContainer.Hide()
	})
}
