package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings   = "⚙"
	IconPlay       = "▶"
	IconPause      = "⏸"
	IconStop       = "⏹"
	IconNext       = "⏭"
	IconPrevious   = "⏮"
	IconShuffle    = "🔀"
	IconSequential = "➡"
	IconRepeat     = "🔁"
	IconRepeatOne  = "🔂"
	IconMusic      = "🎵"
	IconFolder     = "📁"
	IconClose      = "×"
	IconMuted      = "🔇"
	IconVolume     = "🔊"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing
const (
	SidebarWidth     float32 = 200
	CoverArtSize     float32 = 120
	TimeLabelWidth   float32 = 52
	VolumeSliderSize float32 = 120

	RowMinWidth  float32 = 400
	RowMinHeight float32 = 36
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 100
	ToastMargin   float32 = 20
	ToastAutoHide         = 5 * time.Second
)

// Position refresh cadence for the seek slider and time labels
const (
	PositionTickInterval = 500 * time.Millisecond
)
