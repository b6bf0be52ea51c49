package model

// PlaybackState represents the state reported by the media service
type PlaybackState int

const (
	// StateStopped means no source is playing
	StateStopped PlaybackState = iota

	// StatePlaying means the bound source is audible
	StatePlaying

	// StatePaused means the bound source is suspended in place
	StatePaused
)

// String returns the string representation of PlaybackState
func (s PlaybackState) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a source is bound (playing or paused)
func (s PlaybackState) IsActive() bool {
	return s == StatePlaying || s == StatePaused
}
