package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/radar-whisper/radar-whisper/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	musicDirEntry    *widget.Entry
	scanWorkersEntry *widget.Entry
	themeSelect      *widget.Select
	languageSelect   *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onSaved is invoked after
// the settings have been written back.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Music directory selection
	sd.musicDirEntry = widget.NewEntry()
	sd.musicDirEntry.SetPlaceHolder("Music directory path")

	browseDirBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), sd.onBrowseDirectory)
	musicDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.musicDirEntry)

	// Metadata scan parallelism
	sd.scanWorkersEntry = widget.NewEntry()
	sd.scanWorkersEntry.SetPlaceHolder("1-16")

	// Theme selection
	themeOptions := []string{}
	for _, variant := range sd.settings.GetThemeVariantOptions() {
		themeOptions = append(themeOptions, string(variant))
	}
	sd.themeSelect = widget.NewSelect(themeOptions, nil)

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = "Select language"

	// Create form
	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyMusicDirectory)+":"),
		musicDirRow,

		widget.NewLabel(sd.localization.GetText(KeyScanWorkers)+":"),
		sd.scanWorkersEntry,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyTheme)+":"),
		sd.themeSelect,

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(460, 340))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.musicDirEntry.SetText(sd.settings.GetMusicDirectory())
	sd.scanWorkersEntry.SetText(strconv.Itoa(sd.settings.GetScanWorkers()))
	sd.themeSelect.SetSelected(string(sd.settings.GetThemeVariant()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.musicDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.musicDirEntry.Text != "" {
		sd.settings.SetMusicDirectory(sd.musicDirEntry.Text)
	}

	if sd.scanWorkersEntry.Text != "" {
		if workers, err := strconv.Atoi(sd.scanWorkersEntry.Text); err == nil {
			sd.settings.SetScanWorkers(workers)
		}
	}

	if sd.themeSelect.Selected != "" {
		sd.settings.SetThemeVariant(config.ThemeVariant(sd.themeSelect.Selected))
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
