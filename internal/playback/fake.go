package playback

import (
	"github.com/chime-player/chime/internal/model"
)

// FakeMediaService is a test double for MediaService. It keeps playback
// state in memory and lets tests script durations, drive position ticks,
// and simulate end-of-stream.
type FakeMediaService struct {
	state    model.PlaybackState
	source   string
	position int64
	duration int64
	volume   float64

	setSourceErr error
	sourceCalls  []string
	seekCalls    []int64

	onPosition func(int64)
	onDuration func(int64)
	onFinished func()
}

// NewFakeMediaService creates a fake service in the stopped state
func NewFakeMediaService() *FakeMediaService {
	return &FakeMediaService{
		state:  model.StateStopped,
		volume: 1.0,
	}
}

func (f *FakeMediaService) SetSource(path string) error {
	f.sourceCalls = append(f.sourceCalls, path)
	if f.setSourceErr != nil {
		return f.setSourceErr
	}
	f.source = path
	f.position = 0
	f.state = model.StatePaused
	return nil
}

func (f *FakeMediaService) Play() {
	if f.source == "" {
		return
	}
	f.state = model.StatePlaying
}

func (f *FakeMediaService) Pause() {
	if f.state == model.StatePlaying {
		f.state = model.StatePaused
	}
}

func (f *FakeMediaService) Stop() {
	f.state = model.StateStopped
	f.source = ""
	f.position = 0
	f.duration = 0
}

func (f *FakeMediaService) SetPosition(ms int64) {
	f.seekCalls = append(f.seekCalls, ms)
	f.position = ms
}

func (f *FakeMediaService) Position() int64 { return f.position }

func (f *FakeMediaService) Duration() int64 { return f.duration }

func (f *FakeMediaService) State() model.PlaybackState { return f.state }

func (f *FakeMediaService) SetVolume(volume float64) { f.volume = volume }

func (f *FakeMediaService) Volume() float64 { return f.volume }

func (f *FakeMediaService) OnPositionChanged(fn func(int64)) { f.onPosition = fn }

func (f *FakeMediaService) OnDurationChanged(fn func(int64)) { f.onDuration = fn }

func (f *FakeMediaService) OnFinished(fn func()) { f.onFinished = fn }

func (f *FakeMediaService) Close() error { return nil }

// Test helpers

// SetDuration scripts the duration reported for the bound source
func (f *FakeMediaService) SetDuration(ms int64) { f.duration = ms }

// SetSourceError makes the next SetSource calls fail
func (f *FakeMediaService) SetSourceError(err error) { f.setSourceErr = err }

// Source returns the currently bound path
func (f *FakeMediaService) Source() string { return f.source }

// SourceCalls returns every path passed to SetSource
func (f *FakeMediaService) SourceCalls() []string { return f.sourceCalls }

// SeekCalls returns every position passed to SetPosition
func (f *FakeMediaService) SeekCalls() []int64 { return f.seekCalls }

// TickPosition advances the position and fires the position callback
func (f *FakeMediaService) TickPosition(ms int64) {
	f.position = ms
	if f.onPosition != nil {
		f.onPosition(ms)
	}
}

// AnnounceDuration fires the duration callback
func (f *FakeMediaService) AnnounceDuration(ms int64) {
	f.duration = ms
	if f.onDuration != nil {
		f.onDuration(ms)
	}
}

// SimulateFinished fires the end-of-stream callback
func (f *FakeMediaService) SimulateFinished() {
	if f.onFinished != nil {
		f.onFinished()
	}
}

// Verify FakeMediaService implements MediaService at compile time.
var _ MediaService = (*FakeMediaService)(nil)
