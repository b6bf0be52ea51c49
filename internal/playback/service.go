package playback

import (
	"github.com/chime-player/chime/internal/model"
)

// MediaService is the capability surface of the platform audio backend. The
// controller drives playback exclusively through it, so a fake implementation
// can stand in for the speaker during tests.
//
// SetSource binds a file as the active source, paused at position zero. Play
// starts or resumes the bound source; Pause suspends it in place. Positions
// and durations are in milliseconds; Duration returns 0 while unknown.
//
// The On* callbacks fire on the service's own goroutine. Callers that touch
// UI or controller state must dispatch to the event thread themselves.
type MediaService interface {
	SetSource(path string) error
	Play()
	Pause()
	Stop()

	SetPosition(ms int64)
	Position() int64
	Duration() int64
	State() model.PlaybackState

	SetVolume(volume float64)
	Volume() float64

	OnPositionChanged(fn func(positionMs int64))
	OnDurationChanged(fn func(durationMs int64))
	OnFinished(fn func())

	Close() error
}

// Notice identifies a transient user-visible message requested by the
// controller. The UI layer owns the wording.
type Notice int

const (
	// NoticeEmptyPlaylist is raised when play is requested on an empty registry
	NoticeEmptyPlaylist Notice = iota

	// NoticePlaybackError is raised when binding or decoding a source fails
	NoticePlaybackError
)
