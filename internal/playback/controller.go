package playback

import (
	"log"

	"github.com/chime-player/chime/internal/model"
	"github.com/chime-player/chime/internal/playlist"
)

// NoIndex marks the absence of a bound track
const NoIndex = -1

// Controller owns the single active media source. It binds registry tracks to
// the media service, tracks the current index, and pushes state back to the
// UI through callbacks. All methods must be called from the event-dispatch
// thread; media-service callbacks are routed here by the UI layer.
type Controller struct {
	registry *playlist.Registry
	media    MediaService

	current int
	seeking bool

	// selection reports the UI's selected playlist row, NoIndex when none
	selection func() int

	onTrackChanged func(index int, track model.Track)
	onStateChanged func(state model.PlaybackState)
	onProgress     func(ratio float64, hasRatio bool, clock string)
	onNotice       func(notice Notice)
}

// NewController creates a controller over the given registry and media service
func NewController(registry *playlist.Registry, media MediaService) *Controller {
	return &Controller{
		registry:  registry,
		media:     media,
		current:   NoIndex,
		selection: func() int { return NoIndex },
	}
}

// SetSelectionProvider installs the callback reporting the UI's selected row
func (c *Controller) SetSelectionProvider(fn func() int) {
	if fn != nil {
		c.selection = fn
	}
}

// SetTrackChangedCallback is invoked whenever the bound track changes;
// index is NoIndex when playback ran past the end of the playlist.
func (c *Controller) SetTrackChangedCallback(fn func(index int, track model.Track)) {
	c.onTrackChanged = fn
}

// SetStateChangedCallback is invoked after every play/pause/stop transition
func (c *Controller) SetStateChangedCallback(fn func(state model.PlaybackState)) {
	c.onStateChanged = fn
}

// SetProgressCallback is invoked on position updates with the slider fill
// ratio (hasRatio false while the duration is unknown) and the formatted
// "position / duration" clock.
func (c *Controller) SetProgressCallback(fn func(ratio float64, hasRatio bool, clock string)) {
	c.onProgress = fn
}

// SetNoticeCallback is invoked when the controller wants a transient
// user-visible message shown.
func (c *Controller) SetNoticeCallback(fn func(notice Notice)) {
	c.onNotice = fn
}

// CurrentIndex returns the index of the bound track, or NoIndex
func (c *Controller) CurrentIndex() int {
	return c.current
}

// State returns the media service's reported playback state
func (c *Controller) State() model.PlaybackState {
	return c.media.State()
}

// IsSeeking reports whether a manual slider drag is in progress
func (c *Controller) IsSeeking() bool {
	return c.seeking
}

// LoadAndPlay binds the track at the given registry index as the active
// source and starts playback. Out-of-range indices are a silent no-op.
func (c *Controller) LoadAndPlay(index int) {
	track, ok := c.registry.At(index)
	if !ok {
		return
	}

	if err := c.media.SetSource(track.Path); err != nil {
		log.Printf("playback: binding %s failed: %v", track.Path, err)
		c.notify(NoticePlaybackError)
		return
	}

	c.media.Play()
	c.current = index

	if c.onTrackChanged != nil {
		c.onTrackChanged(index, track)
	}
	c.emitState()
}

// PlayOrResume handles the main play action. With no selection it falls back
// to the first track of a non-empty registry; an empty registry raises a
// notice. A paused current selection resumes in place instead of restarting.
func (c *Controller) PlayOrResume() {
	row := c.selection()
	if row < 0 && c.registry.Len() > 0 {
		row = 0
	}
	if row < 0 {
		c.notify(NoticeEmptyPlaylist)
		return
	}

	if c.current == row && c.media.State() == model.StatePaused {
		c.media.Play()
		c.emitState()
		return
	}

	c.LoadAndPlay(row)
}

// TogglePause flips between playing and paused; with nothing bound it
// behaves like PlayOrResume.
func (c *Controller) TogglePause() {
	switch c.media.State() {
	case model.StatePlaying:
		c.media.Pause()
		c.emitState()
	case model.StatePaused:
		c.media.Play()
		c.emitState()
	default:
		c.PlayOrResume()
	}
}

// Stop halts the media service without clearing the current index
func (c *Controller) Stop() {
	c.media.Stop()
	c.emitState()
}

// Next advances to the following track. Past the last track, playback stops
// and the current index is cleared; it does not loop.
func (c *Controller) Next() {
	if c.current == NoIndex {
		return
	}

	next := c.current + 1
	if next < c.registry.Len() {
		c.LoadAndPlay(next)
		return
	}

	c.media.Stop()
	c.current = NoIndex
	if c.onTrackChanged != nil {
		c.onTrackChanged(NoIndex, model.Track{})
	}
	c.emitState()
}

// Previous steps back one track, clamping at the first; it does not wrap
func (c *Controller) Previous() {
	if c.current == NoIndex {
		return
	}

	prev := c.current - 1
	if prev < 0 {
		prev = 0
	}
	c.LoadAndPlay(prev)
}

// BeginSeek marks the start of a manual slider drag. Position updates are
// suppressed until EndSeek so the slider does not fight the user's hand.
func (c *Controller) BeginSeek() {
	c.seeking = true
}

// EndSeek issues the final seek of a drag and then releases the guard.
// The order matters: the flag clears only after the seek went out.
func (c *Controller) EndSeek(fraction float64) {
	c.SeekTo(fraction)
	c.seeking = false
}

// SeekTo seeks to fraction×duration. While the duration is unknown or
// non-positive the call is a no-op.
func (c *Controller) SeekTo(fraction float64) {
	duration := c.media.Duration()
	if duration <= 0 {
		return
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	c.media.SetPosition(int64(fraction * float64(duration)))
}

// RestoreAt binds the track at index paused at the given position, so a
// restored session resumes exactly where it left off without audio starting
// on its own. Out-of-range indices are a silent no-op.
func (c *Controller) RestoreAt(index int, positionMs int64) {
	track, ok := c.registry.At(index)
	if !ok {
		return
	}

	if err := c.media.SetSource(track.Path); err != nil {
		log.Printf("playback: restoring %s failed: %v", track.Path, err)
		return
	}

	c.media.SetPosition(positionMs)
	c.current = index

	if c.onTrackChanged != nil {
		c.onTrackChanged(index, track)
	}
	c.emitState()
}

// HandleFinished reacts to the media service's end-of-stream signal. This is
// the sole auto-advance mechanism.
func (c *Controller) HandleFinished() {
	c.Next()
}

// HandlePositionChanged reacts to a position callback. Updates are dropped
// while a drag is in progress; otherwise the slider ratio and clock label
// are recomputed and pushed to the UI.
func (c *Controller) HandlePositionChanged(positionMs int64) {
	if c.seeking {
		return
	}
	if c.onProgress == nil {
		return
	}

	duration := c.media.Duration()
	clock := FormatClock(positionMs) + " / " + FormatClock(duration)

	if duration > 0 {
		ratio := float64(positionMs) / float64(duration)
		if ratio > 1 {
			ratio = 1
		}
		c.onProgress(ratio, true, clock)
		return
	}
	c.onProgress(0, false, clock)
}

// HandleDurationChanged refreshes the clock label once the duration is known
func (c *Controller) HandleDurationChanged(durationMs int64) {
	if c.onProgress == nil {
		return
	}
	clock := FormatClock(c.media.Position()) + " / " + FormatClock(durationMs)
	c.onProgress(0, false, clock)
}

// HandleTrackRemoved keeps the current index aligned after the registry entry
// at index was removed. Removing the bound track stops playback; removing an
// earlier track shifts the index down.
func (c *Controller) HandleTrackRemoved(index int) {
	switch {
	case c.current == NoIndex:
	case index == c.current:
		c.media.Stop()
		c.current = NoIndex
		if c.onTrackChanged != nil {
			c.onTrackChanged(NoIndex, model.Track{})
		}
		c.emitState()
	case index < c.current:
		c.current--
	}
}

// ClearCurrent drops the bound track reference without touching the service
func (c *Controller) ClearCurrent() {
	c.current = NoIndex
}

// SetVolume forwards a [0, 1] volume to the audio output
func (c *Controller) SetVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	c.media.SetVolume(volume)
}

// Volume returns the audio output volume in [0, 1]
func (c *Controller) Volume() float64 {
	return c.media.Volume()
}

// Position returns the current playback position in milliseconds
func (c *Controller) Position() int64 {
	return c.media.Position()
}

func (c *Controller) emitState() {
	if c.onStateChanged != nil {
		c.onStateChanged(c.media.State())
	}
}

func (c *Controller) notify(notice Notice) {
	if c.onNotice != nil {
		c.onNotice(notice)
	}
}
