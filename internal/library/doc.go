package library

// Package library implements the track catalog: named playlists, the current
// playlist selection, batch track ingestion with parallel metadata scanning,
// search, and playlist file import/export.
