package playlist

import (
	"testing"

	"github.com/chime-player/chime/internal/model"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()

	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
	if r.Tracks() == nil {
		t.Error("Tracks() should return empty slice, not nil")
	}
}

func TestRegistryAddKeepsOrder(t *testing.T) {
	r := NewRegistry()
	r.Add(model.NewTrack("/music/a.mp3"))
	r.Add(model.NewTrack("/music/b.mp3"))
	r.Add(model.NewTrack("/music/c.mp3"))

	want := []string{"/music/a.mp3", "/music/b.mp3", "/music/c.mp3"}
	tracks := r.Tracks()
	if len(tracks) != len(want) {
		t.Fatalf("Len() = %d, want %d", len(tracks), len(want))
	}
	for i, path := range want {
		if tracks[i].Path != path {
			t.Errorf("tracks[%d].Path = %q, want %q", i, tracks[i].Path, path)
		}
	}
}

func TestRegistryRemoveAt(t *testing.T) {
	r := NewRegistry()
	r.Add(model.NewTrack("/music/a.mp3"))
	r.Add(model.NewTrack("/music/b.mp3"))
	r.Add(model.NewTrack("/music/c.mp3"))

	r.RemoveAt(1)

	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}
	tracks := r.Tracks()
	if tracks[0].Path != "/music/a.mp3" || tracks[1].Path != "/music/c.mp3" {
		t.Errorf("Unexpected order after remove: %q, %q", tracks[0].Path, tracks[1].Path)
	}
}

func TestRegistryRemoveAtOutOfBounds(t *testing.T) {
	r := NewRegistry()
	r.Add(model.NewTrack("/music/a.mp3"))

	// Out-of-bounds removals are silent no-ops
	r.RemoveAt(-1)
	r.RemoveAt(1)
	r.RemoveAt(100)

	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestRegistryClear(t *testing.T) {
	r := NewRegistry()
	r.Add(model.NewTrack("/music/a.mp3"))
	r.Add(model.NewTrack("/music/b.mp3"))

	r.Clear()

	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
}

func TestRegistryAt(t *testing.T) {
	r := NewRegistry()
	r.Add(model.NewTrack("/music/a.mp3"))

	track, ok := r.At(0)
	if !ok {
		t.Fatal("Expected At(0) to succeed")
	}
	if track.Path != "/music/a.mp3" {
		t.Errorf("At(0).Path = %q, want /music/a.mp3", track.Path)
	}

	if _, ok := r.At(1); ok {
		t.Error("Expected At(1) to fail on one-element registry")
	}
	if _, ok := r.At(-1); ok {
		t.Error("Expected At(-1) to fail")
	}
}

// Registry order is the order of successful adds with removed indices
// excised, never reordered.
func TestRegistryAddRemoveSequence(t *testing.T) {
	r := NewRegistry()
	paths := []string{"/m/0.mp3", "/m/1.mp3", "/m/2.mp3", "/m/3.mp3", "/m/4.mp3"}
	for _, p := range paths {
		r.Add(model.NewTrack(p))
	}

	r.RemoveAt(0)
	r.RemoveAt(2) // removes original index 3

	want := []string{"/m/1.mp3", "/m/2.mp3", "/m/4.mp3"}
	tracks := r.Tracks()
	if len(tracks) != len(want) {
		t.Fatalf("Len() = %d, want %d", len(tracks), len(want))
	}
	for i, p := range want {
		if tracks[i].Path != p {
			t.Errorf("tracks[%d].Path = %q, want %q", i, tracks[i].Path, p)
		}
	}
}

func TestRegistryTracksIsCopy(t *testing.T) {
	r := NewRegistry()
	r.Add(model.NewTrack("/music/a.mp3"))

	tracks := r.Tracks()
	tracks[0].Path = "/tampered"

	got, _ := r.At(0)
	if got.Path != "/music/a.mp3" {
		t.Error("Mutating the returned slice should not affect the registry")
	}
}
