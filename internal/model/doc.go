package model

// Package model defines domain data structures used across the app: playlist
// tracks and playback state enums. Structures are designed for direct binding
// in the UI and explicit state transitions.
