package ui

// Package ui contains the Fyne-based desktop user interface for the player.
// It wires user interactions to the playback controller and track registry,
// renders the playlist, transport controls, full/mini views, and notices.
// All UI strings are localized via Localization.
