package playback

import "fmt"

// FormatClock renders a millisecond value as MM:SS, truncating the
// sub-second remainder. Non-positive values render as "00:00". There is no
// hour field; the minute field simply grows past 99.
func FormatClock(ms int64) string {
	if ms <= 0 {
		return "00:00"
	}
	seconds := ms / 1000
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
