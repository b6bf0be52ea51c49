package media

import (
	"math"

	"github.com/gopxl/beep/v2/speaker"
)

const silentVolume = -10

// SetVolume sets the output level (0.0 to 1.0). The level survives source
// changes; a level of zero silences the output instead of seeking the
// logarithm of zero.
func (s *Service) SetVolume(level float64) {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.volumeLevel = level

	if s.volume != nil {
		speaker.Lock()
		s.volume.Volume = levelToVolume(level)
		s.volume.Silent = level <= 0
		speaker.Unlock()
	}
}

// Volume returns the current output level (0.0 to 1.0)
func (s *Service) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volumeLevel
}

// levelToVolume converts a 0.0-1.0 level to beep's logarithmic volume.
// beep treats Volume as an exponent of Base: 0 means unchanged, -1 half,
// -2 a quarter. 1.0 -> 0, 0.5 -> -1, 0 -> effectively silent.
func levelToVolume(level float64) float64 {
	if level <= 0 {
		return silentVolume
	}
	if level >= 1 {
		return 0
	}
	return math.Log2(level)
}
