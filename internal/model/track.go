package model

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Track represents a single playlist entry referencing an audio file
type Track struct {
	ID    string // unique identifier
	Path  string // absolute path to the audio file
	Title string // display label, filename without extension
}

// NewTrack creates a track for the given file path.
// The title is derived once from the filename without its extension.
func NewTrack(path string) Track {
	base := filepath.Base(path)
	title := strings.TrimSuffix(base, filepath.Ext(base))

	return Track{
		ID:    uuid.NewString(),
		Path:  path,
		Title: title,
	}
}
