package playlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/chime-player/chime/internal/model"
	"github.com/chime-player/chime/internal/platform"
)

// SaveM3U writes the tracks to path as a minimal M3U: one absolute file path
// per line, UTF-8, no header, no extended directives.
func SaveM3U(path string, tracks []model.Track) error {
	var b strings.Builder
	for _, track := range tracks {
		b.WriteString(track.Path)
		b.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write playlist %s: %w", path, err)
	}
	return nil
}

// LoadM3U reads a minimal M3U playlist and returns tracks for the entries
// that still resolve to existing files, in file order. Blank lines and
// entries whose file has gone missing are silently dropped. An open or read
// failure returns an error and no tracks, so the caller can leave its
// current playlist untouched.
func LoadM3U(path string) ([]model.Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open playlist %s: %w", path, err)
	}
	defer f.Close()

	tracks := make([]model.Track, 0)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !platform.FileExists(line) {
			continue
		}
		tracks = append(tracks, model.NewTrack(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read playlist %s: %w", path, err)
	}

	return tracks, nil
}
