package playback

// Package playback implements the playback core: the sequencer that decides
// which track plays next and the transport service that owns the playback
// cursor, the transport state machine, and the single active audio resource.
// It manages command serialization, atomic track switching, and state/error
// propagation to the UI.
