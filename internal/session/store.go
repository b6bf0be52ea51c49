package session

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chime-player/chime/internal/model"
	"github.com/chime-player/chime/internal/platform"
)

// Persisted artifact file names
const (
	SessionFileName = "last_session.m3u"
	VolumeFileName  = "last_volume.txt"
	StateFileName   = "last_state.txt"
)

// Snapshot is the session state carried across restarts: the playlist, the
// volume, and the last bound track with its position.
type Snapshot struct {
	Tracks       []model.Track
	Volume       float64
	HasVolume    bool  // false when no valid volume artifact existed
	CurrentIndex int   // -1 when no track was bound
	PositionMs   int64 // playback position of the bound track
}

// Store reads and writes the persisted session artifacts under a fixed
// directory. The directory is injected at construction, never reached
// through a global.
type Store struct {
	dir string
}

// NewStore creates a session store rooted at dir, creating the directory
// if needed.
func NewStore(dir string) (*Store, error) {
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return nil, fmt.Errorf("create session dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory holding the session artifacts
func (s *Store) Dir() string {
	return s.dir
}

// Save persists the snapshot. The three artifacts are written independently;
// a failure on one does not prevent the others, and no failure propagates —
// this sits on the shutdown path and must never abort it.
func (s *Store) Save(snap Snapshot) {
	var b strings.Builder
	for _, track := range snap.Tracks {
		b.WriteString(track.Path)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(filepath.Join(s.dir, SessionFileName), []byte(b.String()), 0o644); err != nil {
		log.Printf("session: saving track list failed: %v", err)
	}

	volume := strconv.FormatFloat(snap.Volume, 'f', -1, 64)
	if err := os.WriteFile(filepath.Join(s.dir, VolumeFileName), []byte(volume), 0o644); err != nil {
		log.Printf("session: saving volume failed: %v", err)
	}

	index := snap.CurrentIndex
	if index < 0 {
		index = -1
	}
	state := fmt.Sprintf("%d|%d", index, snap.PositionMs)
	if err := os.WriteFile(filepath.Join(s.dir, StateFileName), []byte(state), 0o644); err != nil {
		log.Printf("session: saving state failed: %v", err)
	}
}

// Restore reads whichever artifacts exist and are parseable. Each artifact is
// handled independently; a missing or corrupt one yields that field's default
// and never fails the whole restore. Tracks whose file has gone missing are
// dropped, and the saved index is re-resolved by the path it pointed at when
// saved — if that file is gone, the index is cleared.
func (s *Store) Restore() Snapshot {
	snap := Snapshot{CurrentIndex: -1}

	lines := s.readTrackLines()
	for _, line := range lines {
		if platform.FileExists(line) {
			snap.Tracks = append(snap.Tracks, model.NewTrack(line))
		}
	}

	if volume, ok := s.readVolume(); ok {
		snap.Volume = volume
		snap.HasVolume = true
	}

	index, position, ok := s.readState()
	if !ok || index < 0 || index >= len(lines) {
		return snap
	}

	// The saved index pointed into the saved list, which may have shrunk.
	savedPath := lines[index]
	for i, track := range snap.Tracks {
		if track.Path == savedPath {
			snap.CurrentIndex = i
			snap.PositionMs = position
			break
		}
	}

	return snap
}

// readTrackLines returns the saved path list as written, one path per
// non-blank line, without existence filtering.
func (s *Store) readTrackLines() []string {
	data, err := os.ReadFile(filepath.Join(s.dir, SessionFileName))
	if err != nil {
		return nil
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func (s *Store) readVolume() (float64, bool) {
	data, err := os.ReadFile(filepath.Join(s.dir, VolumeFileName))
	if err != nil {
		return 0, false
	}

	volume, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil || volume < 0 || volume > 1 {
		return 0, false
	}
	return volume, true
}

func (s *Store) readState() (index int, positionMs int64, ok bool) {
	data, err := os.ReadFile(filepath.Join(s.dir, StateFileName))
	if err != nil {
		return 0, 0, false
	}

	parts := strings.Split(strings.TrimSpace(string(data)), "|")
	if len(parts) != 2 {
		return 0, 0, false
	}

	index, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	positionMs, err = strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return index, positionMs, true
}
