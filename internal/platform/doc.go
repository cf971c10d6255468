package platform

// Package platform contains OS integration: filesystem helpers, recursive
// audio file discovery, and revealing tracks in the system file manager.
