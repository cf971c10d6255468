package metadata

// Package metadata implements the metadata extraction collaborator: tag
// reading via dhowden/tag, stream probing for duration and bitrate, and
// placeholder defaults when a file carries no usable tags.
