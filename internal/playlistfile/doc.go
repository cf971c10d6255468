package playlistfile

// Package playlistfile reads and writes playlist files in the three formats
// the player understands: a custom JSON schema, M3U/M3U8 with #EXTINF
// entries, and PLS. The format is picked by file extension.
