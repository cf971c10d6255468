package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/radar-whisper/radar-whisper/internal/model"
)

// TrackRow represents a compact track row widget
type TrackRow struct {
	widget.BaseWidget

	track   *model.Track
	index   int
	playing bool

	localization *Localization

	// UI components
	indicatorLabel *widget.Label
	titleLabel     *widget.Label
	artistLabel    *widget.Label
	durationLabel  *widget.Label

	// Action buttons
	revealBtn *widget.Button
	removeBtn *widget.Button

	// Callbacks
	onActivate func(index int)
	onReveal   func(filePath string)
	onRemove   func(index int)
}

// NewTrackRow creates a new track row widget
func NewTrackRow(localization *Localization) *TrackRow {
	tr := &TrackRow{
		index:        -1,
		localization: localization,
	}
	tr.ExtendBaseWidget(tr)
	tr.createUI()
	return tr
}

// SetCallbacks sets the action callbacks
func (tr *TrackRow) SetCallbacks(
	onActivate func(index int),
	onReveal func(filePath string),
	onRemove func(index int),
) {
	tr.onActivate = onActivate
	tr.onReveal = onReveal
	tr.onRemove = onRemove
}

// SetTrack updates the row with new track data. playing marks the row as the
// one currently loaded in the transport.
func (tr *TrackRow) SetTrack(track *model.Track, index int, playing bool) {
	tr.track = track
	tr.index = index
	tr.playing = playing
	tr.updateFromTrack()
	tr.Refresh()
}

// createUI creates the UI components
func (tr *TrackRow) createUI() {
	tr.indicatorLabel = widget.NewLabel("")
	tr.indicatorLabel.Alignment = fyne.TextAlignCenter

	tr.titleLabel = widget.NewLabel("")
	tr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	tr.titleLabel.Truncation = fyne.TextTruncateEllipsis
	tr.titleLabel.Alignment = fyne.TextAlignLeading

	tr.artistLabel = widget.NewLabel("")
	tr.artistLabel.Truncation = fyne.TextTruncateEllipsis
	tr.artistLabel.Alignment = fyne.TextAlignLeading

	tr.durationLabel = widget.NewLabel("")
	tr.durationLabel.Alignment = fyne.TextAlignTrailing
	tr.durationLabel.TextStyle = fyne.TextStyle{Monospace: true}

	tr.revealBtn = widget.NewButton(IconFolder, func() {
		if tr.onReveal != nil && tr.track != nil {
			tr.onReveal(tr.track.Path)
		}
	})
	tr.revealBtn.Importance = widget.LowImportance

	tr.removeBtn = widget.NewButton(IconClose, func() {
		if tr.onRemove != nil && tr.index >= 0 {
			tr.onRemove(tr.index)
		}
	})
	tr.removeBtn.Importance = widget.LowImportance
}

// updateFromTrack refreshes labels from the current track
func (tr *TrackRow) updateFromTrack() {
	if tr.track == nil {
		tr.indicatorLabel.SetText("")
		tr.titleLabel.SetText("")
		tr.artistLabel.SetText("")
		tr.durationLabel.SetText(DashPlaceholder)
		return
	}

	if tr.playing {
		tr.indicatorLabel.SetText(IconPlay)
	} else {
		tr.indicatorLabel.SetText("")
	}

	tr.titleLabel.SetText(tr.track.DisplayTitle())
	tr.artistLabel.SetText(tr.track.DisplayArtist() + MiddleDotSeparator + tr.track.DisplayAlbum())
	tr.durationLabel.SetText(tr.track.DurationString())
}

// Tapped activates the track when the row is double-clicked
func (tr *TrackRow) DoubleTapped(_ *fyne.PointEvent) {
	if tr.onActivate != nil && tr.index >= 0 {
		tr.onActivate(tr.index)
	}
}

// Tapped is a no-op; selection is handled by the enclosing list
func (tr *TrackRow) Tapped(_ *fyne.PointEvent) {}

// CreateRenderer builds the row layout
func (tr *TrackRow) CreateRenderer() fyne.WidgetRenderer {
	buttons := container.NewHBox(tr.revealBtn, tr.removeBtn)
	meta := container.NewHBox(tr.durationLabel, buttons)

	text := container.NewVBox(tr.titleLabel, tr.artistLabel)
	row := container.NewBorder(nil, nil, tr.indicatorLabel, meta, text)

	return widget.NewSimpleRenderer(row)
}

// MinSize ensures rows stay readable in narrow windows
func (tr *TrackRow) MinSize() fyne.Size {
	min := tr.BaseWidget.MinSize()
	if min.Height < RowMinHeight {
		min.Height = RowMinHeight
	}
	return min
}
