package model

// Package model defines domain data structures used across the app: tracks,
// playlist entities, and transport/playback enums. Structures are designed for
// direct binding in the UI and explicit state transitions.
