package playback

import (
	"errors"
	"fmt"
	"testing"

	"github.com/chime-player/chime/internal/model"
	"github.com/chime-player/chime/internal/playlist"
)

func newTestController(trackCount int) (*Controller, *FakeMediaService, *playlist.Registry) {
	registry := playlist.NewRegistry()
	for i := 0; i < trackCount; i++ {
		registry.Add(model.NewTrack(fmt.Sprintf("/music/%02d.mp3", i)))
	}
	media := NewFakeMediaService()
	return NewController(registry, media), media, registry
}

func TestLoadAndPlay(t *testing.T) {
	ctrl, media, _ := newTestController(3)

	ctrl.LoadAndPlay(1)

	if ctrl.CurrentIndex() != 1 {
		t.Errorf("CurrentIndex() = %d, want 1", ctrl.CurrentIndex())
	}
	if media.Source() != "/music/01.mp3" {
		t.Errorf("Source() = %q, want /music/01.mp3", media.Source())
	}
	if media.State() != model.StatePlaying {
		t.Errorf("State() = %v, want Playing", media.State())
	}
}

func TestLoadAndPlayOutOfRange(t *testing.T) {
	ctrl, media, _ := newTestController(2)

	ctrl.LoadAndPlay(-1)
	ctrl.LoadAndPlay(2)
	ctrl.LoadAndPlay(100)

	if ctrl.CurrentIndex() != NoIndex {
		t.Errorf("CurrentIndex() = %d, want NoIndex", ctrl.CurrentIndex())
	}
	if len(media.SourceCalls()) != 0 {
		t.Errorf("Expected no source binds, got %d", len(media.SourceCalls()))
	}
}

func TestLoadAndPlayBindError(t *testing.T) {
	ctrl, media, _ := newTestController(2)

	var notices []Notice
	ctrl.SetNoticeCallback(func(n Notice) { notices = append(notices, n) })

	media.SetSourceError(errors.New("decode failed"))
	ctrl.LoadAndPlay(0)

	if ctrl.CurrentIndex() != NoIndex {
		t.Errorf("CurrentIndex() = %d, want NoIndex after bind failure", ctrl.CurrentIndex())
	}
	if len(notices) != 1 || notices[0] != NoticePlaybackError {
		t.Errorf("Expected one playback-error notice, got %v", notices)
	}
}

func TestPlayOrResumeEmptyRegistry(t *testing.T) {
	ctrl, media, _ := newTestController(0)

	var notices []Notice
	ctrl.SetNoticeCallback(func(n Notice) { notices = append(notices, n) })

	ctrl.PlayOrResume()

	if len(notices) != 1 || notices[0] != NoticeEmptyPlaylist {
		t.Errorf("Expected one empty-playlist notice, got %v", notices)
	}
	if media.State() != model.StateStopped {
		t.Errorf("State() = %v, want Stopped", media.State())
	}
}

func TestPlayOrResumeNoSelectionPlaysFirst(t *testing.T) {
	ctrl, _, _ := newTestController(3)

	ctrl.PlayOrResume()

	if ctrl.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex() = %d, want 0", ctrl.CurrentIndex())
	}
	if ctrl.State() != model.StatePlaying {
		t.Errorf("State() = %v, want Playing", ctrl.State())
	}
}

func TestPlayOrResumeResumesPausedSelection(t *testing.T) {
	ctrl, media, _ := newTestController(3)
	ctrl.SetSelectionProvider(func() int { return 1 })

	ctrl.LoadAndPlay(1)
	media.SetPosition(5000)
	ctrl.TogglePause() // now paused mid-track

	ctrl.PlayOrResume()

	if media.State() != model.StatePlaying {
		t.Errorf("State() = %v, want Playing", media.State())
	}
	// Resume in place, not a rebind from zero
	if len(media.SourceCalls()) != 1 {
		t.Errorf("Expected a single source bind, got %d", len(media.SourceCalls()))
	}
	if media.Position() != 5000 {
		t.Errorf("Position() = %d, want 5000 after resume", media.Position())
	}
}

func TestPlayOrResumeDifferentSelectionRestarts(t *testing.T) {
	ctrl, media, _ := newTestController(3)

	selected := 0
	ctrl.SetSelectionProvider(func() int { return selected })

	ctrl.LoadAndPlay(0)
	selected = 2
	ctrl.PlayOrResume()

	if ctrl.CurrentIndex() != 2 {
		t.Errorf("CurrentIndex() = %d, want 2", ctrl.CurrentIndex())
	}
	if media.Source() != "/music/02.mp3" {
		t.Errorf("Source() = %q, want /music/02.mp3", media.Source())
	}
}

// Two consecutive toggles from Stopped yield {Playing, Paused}; from Playing
// they yield {Paused, Playing}.
func TestTogglePauseSequences(t *testing.T) {
	t.Run("from stopped", func(t *testing.T) {
		ctrl, _, _ := newTestController(2)

		ctrl.TogglePause()
		if ctrl.State() != model.StatePlaying {
			t.Errorf("First toggle: %v, want Playing", ctrl.State())
		}
		ctrl.TogglePause()
		if ctrl.State() != model.StatePaused {
			t.Errorf("Second toggle: %v, want Paused", ctrl.State())
		}
	})

	t.Run("from playing", func(t *testing.T) {
		ctrl, _, _ := newTestController(2)
		ctrl.LoadAndPlay(0)

		ctrl.TogglePause()
		if ctrl.State() != model.StatePaused {
			t.Errorf("First toggle: %v, want Paused", ctrl.State())
		}
		ctrl.TogglePause()
		if ctrl.State() != model.StatePlaying {
			t.Errorf("Second toggle: %v, want Playing", ctrl.State())
		}
	})
}

func TestStopKeepsCurrentIndex(t *testing.T) {
	ctrl, media, _ := newTestController(3)
	ctrl.LoadAndPlay(1)

	ctrl.Stop()

	if media.State() != model.StateStopped {
		t.Errorf("State() = %v, want Stopped", media.State())
	}
	if ctrl.CurrentIndex() != 1 {
		t.Errorf("CurrentIndex() = %d, want 1 (stop keeps the index)", ctrl.CurrentIndex())
	}
}

func TestNextAdvances(t *testing.T) {
	ctrl, media, _ := newTestController(3)
	ctrl.LoadAndPlay(0)

	ctrl.Next()

	if ctrl.CurrentIndex() != 1 {
		t.Errorf("CurrentIndex() = %d, want 1", ctrl.CurrentIndex())
	}
	if media.Source() != "/music/01.mp3" {
		t.Errorf("Source() = %q, want /music/01.mp3", media.Source())
	}
}

func TestNextAtEndStopsAndClears(t *testing.T) {
	ctrl, media, _ := newTestController(3)
	ctrl.LoadAndPlay(2)

	var changes []int
	ctrl.SetTrackChangedCallback(func(index int, _ model.Track) { changes = append(changes, index) })

	ctrl.Next()

	if media.State() != model.StateStopped {
		t.Errorf("State() = %v, want Stopped", media.State())
	}
	if ctrl.CurrentIndex() != NoIndex {
		t.Errorf("CurrentIndex() = %d, want NoIndex", ctrl.CurrentIndex())
	}
	if len(changes) != 1 || changes[0] != NoIndex {
		t.Errorf("Expected one NoIndex track change, got %v", changes)
	}

	// A second Next with nothing bound stays a no-op
	ctrl.Next()
	if ctrl.CurrentIndex() != NoIndex {
		t.Errorf("CurrentIndex() = %d, want NoIndex after repeated Next", ctrl.CurrentIndex())
	}
	if len(changes) != 1 {
		t.Errorf("Expected no further track changes, got %v", changes)
	}
}

func TestNextWithoutCurrentIsNoOp(t *testing.T) {
	ctrl, media, _ := newTestController(3)

	ctrl.Next()

	if len(media.SourceCalls()) != 0 {
		t.Errorf("Expected no source binds, got %d", len(media.SourceCalls()))
	}
}

func TestPreviousClampsAtFirst(t *testing.T) {
	ctrl, media, _ := newTestController(3)
	ctrl.LoadAndPlay(0)

	ctrl.Previous()

	if ctrl.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex() = %d, want 0 (no wraparound)", ctrl.CurrentIndex())
	}
	if media.State() != model.StatePlaying {
		t.Errorf("State() = %v, want Playing", media.State())
	}
}

func TestPreviousStepsBack(t *testing.T) {
	ctrl, media, _ := newTestController(3)
	ctrl.LoadAndPlay(2)

	ctrl.Previous()

	if ctrl.CurrentIndex() != 1 {
		t.Errorf("CurrentIndex() = %d, want 1", ctrl.CurrentIndex())
	}
	if media.Source() != "/music/01.mp3" {
		t.Errorf("Source() = %q, want /music/01.mp3", media.Source())
	}
}

func TestPreviousWithoutCurrentIsNoOp(t *testing.T) {
	ctrl, media, _ := newTestController(3)

	ctrl.Previous()

	if len(media.SourceCalls()) != 0 {
		t.Errorf("Expected no source binds, got %d", len(media.SourceCalls()))
	}
}

func TestFinishedTriggersAdvance(t *testing.T) {
	ctrl, media, _ := newTestController(2)
	ctrl.LoadAndPlay(0)

	ctrl.HandleFinished()

	if ctrl.CurrentIndex() != 1 {
		t.Errorf("CurrentIndex() = %d, want 1", ctrl.CurrentIndex())
	}

	ctrl.HandleFinished()

	if ctrl.CurrentIndex() != NoIndex {
		t.Errorf("CurrentIndex() = %d, want NoIndex at playlist end", ctrl.CurrentIndex())
	}
	if media.State() != model.StateStopped {
		t.Errorf("State() = %v, want Stopped", media.State())
	}
}

func TestSeekToUnknownDurationIsNoOp(t *testing.T) {
	ctrl, media, _ := newTestController(2)
	ctrl.LoadAndPlay(0)
	media.SetPosition(1234)
	before := len(media.SeekCalls())

	ctrl.SeekTo(0.5)

	if len(media.SeekCalls()) != before {
		t.Error("Seek with unknown duration must not issue a seek")
	}
	if media.Position() != 1234 {
		t.Errorf("Position() = %d, want unchanged 1234", media.Position())
	}
}

func TestSeekToComputesAbsolutePosition(t *testing.T) {
	ctrl, media, _ := newTestController(2)
	ctrl.LoadAndPlay(0)
	media.SetDuration(200000)

	ctrl.SeekTo(0.25)

	if media.Position() != 50000 {
		t.Errorf("Position() = %d, want 50000", media.Position())
	}
}

func TestSeekToClampsFraction(t *testing.T) {
	ctrl, media, _ := newTestController(2)
	ctrl.LoadAndPlay(0)
	media.SetDuration(100000)

	ctrl.SeekTo(1.5)
	if media.Position() != 100000 {
		t.Errorf("Position() = %d, want 100000", media.Position())
	}

	ctrl.SeekTo(-0.5)
	if media.Position() != 0 {
		t.Errorf("Position() = %d, want 0", media.Position())
	}
}

func TestSeekGuardSuppressesPositionUpdates(t *testing.T) {
	ctrl, media, _ := newTestController(2)
	ctrl.LoadAndPlay(0)
	media.SetDuration(100000)

	var updates int
	ctrl.SetProgressCallback(func(_ float64, _ bool, _ string) { updates++ })

	ctrl.HandlePositionChanged(1000)
	if updates != 1 {
		t.Fatalf("Expected 1 progress update, got %d", updates)
	}

	ctrl.BeginSeek()
	ctrl.HandlePositionChanged(2000)
	ctrl.HandlePositionChanged(3000)
	if updates != 1 {
		t.Errorf("Expected updates suppressed during drag, got %d", updates)
	}

	ctrl.EndSeek(0.5)
	if ctrl.IsSeeking() {
		t.Error("Seek guard should be released after EndSeek")
	}
	if media.Position() != 50000 {
		t.Errorf("Position() = %d, want 50000 from the final seek", media.Position())
	}

	ctrl.HandlePositionChanged(51000)
	if updates != 2 {
		t.Errorf("Expected updates to resume after drag, got %d", updates)
	}
}

func TestHandlePositionChangedProgress(t *testing.T) {
	ctrl, media, _ := newTestController(2)
	ctrl.LoadAndPlay(0)
	media.SetDuration(120000)

	var gotRatio float64
	var gotHasRatio bool
	var gotClock string
	ctrl.SetProgressCallback(func(ratio float64, hasRatio bool, clock string) {
		gotRatio, gotHasRatio, gotClock = ratio, hasRatio, clock
	})

	ctrl.HandlePositionChanged(30000)

	if !gotHasRatio {
		t.Error("Expected a ratio with known duration")
	}
	if gotRatio != 0.25 {
		t.Errorf("ratio = %v, want 0.25", gotRatio)
	}
	if gotClock != "00:30 / 02:00" {
		t.Errorf("clock = %q, want \"00:30 / 02:00\"", gotClock)
	}
}

func TestHandlePositionChangedUnknownDuration(t *testing.T) {
	ctrl, media, _ := newTestController(2)
	ctrl.LoadAndPlay(0)
	_ = media // duration stays 0

	var gotHasRatio = true
	var gotClock string
	ctrl.SetProgressCallback(func(_ float64, hasRatio bool, clock string) {
		gotHasRatio, gotClock = hasRatio, clock
	})

	ctrl.HandlePositionChanged(5000)

	if gotHasRatio {
		t.Error("Expected no ratio while duration is unknown")
	}
	if gotClock != "00:05 / 00:00" {
		t.Errorf("clock = %q, want \"00:05 / 00:00\"", gotClock)
	}
}

func TestRestoreAtBindsPaused(t *testing.T) {
	ctrl, media, _ := newTestController(4)

	ctrl.RestoreAt(2, 12000)

	if ctrl.CurrentIndex() != 2 {
		t.Errorf("CurrentIndex() = %d, want 2", ctrl.CurrentIndex())
	}
	if media.State() != model.StatePaused {
		t.Errorf("State() = %v, want Paused (no unexpected audio)", media.State())
	}
	if media.Position() != 12000 {
		t.Errorf("Position() = %d, want 12000", media.Position())
	}
}

func TestRestoreAtOutOfRange(t *testing.T) {
	ctrl, media, _ := newTestController(2)

	ctrl.RestoreAt(5, 1000)

	if ctrl.CurrentIndex() != NoIndex {
		t.Errorf("CurrentIndex() = %d, want NoIndex", ctrl.CurrentIndex())
	}
	if len(media.SourceCalls()) != 0 {
		t.Errorf("Expected no source binds, got %d", len(media.SourceCalls()))
	}
}

func TestHandleTrackRemoved(t *testing.T) {
	t.Run("removing the bound track stops playback", func(t *testing.T) {
		ctrl, media, registry := newTestController(3)
		ctrl.LoadAndPlay(1)

		registry.RemoveAt(1)
		ctrl.HandleTrackRemoved(1)

		if media.State() != model.StateStopped {
			t.Errorf("State() = %v, want Stopped", media.State())
		}
		if ctrl.CurrentIndex() != NoIndex {
			t.Errorf("CurrentIndex() = %d, want NoIndex", ctrl.CurrentIndex())
		}
	})

	t.Run("removing an earlier track shifts the index", func(t *testing.T) {
		ctrl, _, registry := newTestController(3)
		ctrl.LoadAndPlay(2)

		registry.RemoveAt(0)
		ctrl.HandleTrackRemoved(0)

		if ctrl.CurrentIndex() != 1 {
			t.Errorf("CurrentIndex() = %d, want 1", ctrl.CurrentIndex())
		}
	})

	t.Run("removing a later track leaves the index alone", func(t *testing.T) {
		ctrl, _, registry := newTestController(3)
		ctrl.LoadAndPlay(0)

		registry.RemoveAt(2)
		ctrl.HandleTrackRemoved(2)

		if ctrl.CurrentIndex() != 0 {
			t.Errorf("CurrentIndex() = %d, want 0", ctrl.CurrentIndex())
		}
	})
}

func TestSetVolumeClamps(t *testing.T) {
	ctrl, media, _ := newTestController(1)

	ctrl.SetVolume(0.35)
	if media.Volume() != 0.35 {
		t.Errorf("Volume() = %v, want 0.35", media.Volume())
	}

	ctrl.SetVolume(2.0)
	if media.Volume() != 1.0 {
		t.Errorf("Volume() = %v, want 1.0", media.Volume())
	}

	ctrl.SetVolume(-1.0)
	if media.Volume() != 0.0 {
		t.Errorf("Volume() = %v, want 0.0", media.Volume())
	}
}

// The service reports position, duration, and end-of-stream through its
// registered callbacks; this drives the controller the way the UI wires it.
func TestServiceCallbacksDriveController(t *testing.T) {
	ctrl, media, _ := newTestController(2)

	media.OnPositionChanged(ctrl.HandlePositionChanged)
	media.OnDurationChanged(ctrl.HandleDurationChanged)
	media.OnFinished(ctrl.HandleFinished)

	type progress struct {
		ratio    float64
		hasRatio bool
		clock    string
	}
	var updates []progress
	ctrl.SetProgressCallback(func(ratio float64, hasRatio bool, clock string) {
		updates = append(updates, progress{ratio, hasRatio, clock})
	})

	ctrl.LoadAndPlay(0)

	media.AnnounceDuration(120000)
	if len(updates) != 1 {
		t.Fatalf("Expected 1 progress update after duration, got %d", len(updates))
	}
	if updates[0].clock != "00:00 / 02:00" {
		t.Errorf("clock = %q, want 00:00 / 02:00", updates[0].clock)
	}
	if updates[0].hasRatio {
		t.Errorf("Duration refresh should not carry a slider ratio")
	}

	media.TickPosition(30000)
	if len(updates) != 2 {
		t.Fatalf("Expected 2 progress updates after tick, got %d", len(updates))
	}
	if updates[1].ratio != 0.25 || !updates[1].hasRatio {
		t.Errorf("ratio = %v hasRatio = %v, want 0.25 true", updates[1].ratio, updates[1].hasRatio)
	}
	if updates[1].clock != "00:30 / 02:00" {
		t.Errorf("clock = %q, want 00:30 / 02:00", updates[1].clock)
	}

	media.SimulateFinished()
	if ctrl.CurrentIndex() != 1 {
		t.Errorf("CurrentIndex() = %d, want 1 after end-of-stream", ctrl.CurrentIndex())
	}
	if media.Source() != "/music/01.mp3" {
		t.Errorf("Source() = %q, want /music/01.mp3", media.Source())
	}
}
