package ui

// Package ui contains the Fyne-based desktop user interface for the player.
// It wires user interactions to the playback service and the track catalog,
// and renders playlists, the transport bar, the now-playing panel, and
// settings. All UI strings are localized via Localization.
