package playlist

import (
	"github.com/chime-player/chime/internal/model"
)

// Registry is the ordered in-memory playlist. Insertion order is playlist
// order is display order; nothing here sorts, dedups, or searches.
type Registry struct {
	tracks []model.Track
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		tracks: make([]model.Track, 0),
	}
}

// Add appends a track to the registry
func (r *Registry) Add(track model.Track) {
	r.tracks = append(r.tracks, track)
}

// RemoveAt deletes the entry at index i.
// Out-of-bounds indices are a silent no-op.
func (r *Registry) RemoveAt(i int) {
	if i < 0 || i >= len(r.tracks) {
		return
	}
	r.tracks = append(r.tracks[:i], r.tracks[i+1:]...)
}

// Clear empties the registry
func (r *Registry) Clear() {
	r.tracks = r.tracks[:0]
}

// Len returns the number of tracks
func (r *Registry) Len() int {
	return len(r.tracks)
}

// At returns the track at index i and whether the index was valid
func (r *Registry) At(i int) (model.Track, bool) {
	if i < 0 || i >= len(r.tracks) {
		return model.Track{}, false
	}
	return r.tracks[i], true
}

// Tracks returns the tracks in playlist order.
// The returned slice is a copy; mutating it does not affect the registry.
func (r *Registry) Tracks() []model.Track {
	out := make([]model.Track, len(r.tracks))
	copy(out, r.tracks)
	return out
}
