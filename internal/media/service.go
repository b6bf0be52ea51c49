package media

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/chime-player/chime/internal/model"
	"github.com/chime-player/chime/internal/playback"
)

// Verify Service implements the playback contract at compile time.
var _ playback.MediaService = (*Service)(nil)

const (
	// outputSampleRate is the fixed speaker rate; sources at other rates
	// are resampled on the fly.
	outputSampleRate beep.SampleRate = 44100

	resampleQuality = 4
	bufferLength    = time.Second / 10
	positionTick    = 200 * time.Millisecond
)

var (
	speakerOnce    sync.Once
	speakerInitErr error
)

// Service is the beep-backed audio service. It decodes local files by
// extension, plays them through the process-wide speaker, and reports
// position ticks and end-of-stream on its own goroutine.
type Service struct {
	mu sync.Mutex

	state       model.PlaybackState
	streamer    beep.StreamSeekCloser
	format      beep.Format
	ctrl        *beep.Ctrl
	volume      *effects.Volume
	file        *os.File
	durationMs  int64
	volumeLevel float64

	onPosition func(int64)
	onDuration func(int64)
	onFinished func()

	done chan struct{}
}

// NewService creates the audio service and starts its position ticker
func NewService() *Service {
	s := &Service{
		state:       model.StateStopped,
		volumeLevel: 1.0,
		done:        make(chan struct{}),
	}
	go s.tickLoop()
	return s
}

// SetSource decodes the file at path and binds it to the speaker, paused at
// position zero. Any previously bound source is released first.
func (s *Service) SetSource(path string) error {
	s.Stop()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	streamer, format, err := decode(f, path)
	if err != nil {
		f.Close()
		return err
	}

	speakerOnce.Do(func() {
		speakerInitErr = speaker.Init(outputSampleRate, outputSampleRate.N(bufferLength))
	})
	if speakerInitErr != nil {
		streamer.Close()
		f.Close()
		return fmt.Errorf("speaker init: %w", speakerInitErr)
	}

	s.mu.Lock()
	s.file = f
	s.streamer = streamer
	s.format = format
	s.durationMs = format.SampleRate.D(streamer.Len()).Milliseconds()
	s.ctrl = &beep.Ctrl{Streamer: resampled(streamer, format), Paused: true}
	s.volume = &effects.Volume{
		Streamer: s.ctrl,
		Base:     2,
		Volume:   levelToVolume(s.volumeLevel),
		Silent:   s.volumeLevel <= 0,
	}
	s.state = model.StatePaused
	duration := s.durationMs
	onDuration := s.onDuration
	s.mu.Unlock()

	speaker.Play(beep.Seq(s.volume, beep.Callback(s.handleFinished)))

	if onDuration != nil {
		go onDuration(duration)
	}
	return nil
}

// resampled adapts a source to the fixed speaker rate when needed
func resampled(streamer beep.Streamer, format beep.Format) beep.Streamer {
	if format.SampleRate == outputSampleRate {
		return streamer
	}
	return beep.Resample(resampleQuality, format.SampleRate, outputSampleRate, streamer)
}

func decode(f *os.File, path string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".mp3":
		return mp3.Decode(f)
	case ".wav":
		return wav.Decode(f)
	case ".flac":
		return flac.Decode(f)
	case ".ogg":
		return vorbis.Decode(f)
	default:
		return nil, beep.Format{}, fmt.Errorf("unsupported codec %s", ext)
	}
}

// Play starts or resumes the bound source
func (s *Service) Play() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctrl == nil {
		return
	}
	speaker.Lock()
	s.ctrl.Paused = false
	speaker.Unlock()
	s.state = model.StatePlaying
}

// Pause suspends playback in place
func (s *Service) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != model.StatePlaying || s.ctrl == nil {
		return
	}
	speaker.Lock()
	s.ctrl.Paused = true
	speaker.Unlock()
	s.state = model.StatePaused
}

// Stop releases the bound source and silences the speaker
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == model.StateStopped {
		return
	}

	speaker.Clear()

	if s.streamer != nil {
		s.streamer.Close()
		s.streamer = nil
	}
	if s.file != nil {
		s.file.Close()
		s.file = nil
	}
	s.ctrl = nil
	s.volume = nil
	s.durationMs = 0
	s.state = model.StateStopped
}

// SetPosition seeks the bound source to the given millisecond offset
func (s *Service) SetPosition(ms int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.streamer == nil {
		return
	}
	if ms < 0 {
		ms = 0
	}

	target := s.format.SampleRate.N(time.Duration(ms) * time.Millisecond)
	if limit := s.streamer.Len(); target > limit {
		target = limit
	}

	speaker.Lock()
	if err := s.streamer.Seek(target); err != nil {
		speaker.Unlock()
		return
	}
	speaker.Unlock()
}

// Position returns the playback position in milliseconds
func (s *Service) Position() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := s.format.SampleRate.D(s.streamer.Position())
	speaker.Unlock()
	return pos.Milliseconds()
}

// Duration returns the bound source duration in milliseconds, 0 when unbound
func (s *Service) Duration() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.durationMs
}

// State returns the current playback state
func (s *Service) State() model.PlaybackState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// OnPositionChanged registers the position tick callback
func (s *Service) OnPositionChanged(fn func(int64)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onPosition = fn
}

// OnDurationChanged registers the duration callback, fired after each bind
func (s *Service) OnDurationChanged(fn func(int64)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onDuration = fn
}

// OnFinished registers the end-of-stream callback
func (s *Service) OnFinished(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onFinished = fn
}

// Close stops playback and the position ticker
func (s *Service) Close() error {
	s.Stop()
	close(s.done)
	return nil
}

// handleFinished fires inside the mixer's stream call, with the speaker
// mutex held. tickLoop takes s.mu and then speaker.Lock(), so acquiring
// s.mu here would invert that order and deadlock; the callback is handed
// off to a fresh goroutine instead.
func (s *Service) handleFinished() {
	go func() {
		s.mu.Lock()
		fn := s.onFinished
		s.mu.Unlock()

		if fn != nil {
			fn()
		}
	}()
}

// tickLoop emits position updates while a source is playing
func (s *Service) tickLoop() {
	ticker := time.NewTicker(positionTick)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
		}

		s.mu.Lock()
		playing := s.state == model.StatePlaying && s.streamer != nil
		fn := s.onPosition
		var pos int64
		if playing {
			speaker.Lock()
			pos = s.format.SampleRate.D(s.streamer.Position()).Milliseconds()
			speaker.Unlock()
		}
		s.mu.Unlock()

		if playing && fn != nil {
			fn(pos)
		}
	}
}
