package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "▶"
	IconPause    = "⏸"
	IconStop     = "⏹"
	IconPrevious = "⏮"
	IconNext     = "⏭"
)

// Text fragments
const (
	ClockSeparator = " / "
)

// Seek slider resolution. The slider carries 0..SeekSliderMax and is mapped
// to a 0..1 fraction of the track duration.
const SeekSliderMax = 1000

// Volume slider range (percent)
const VolumeSliderMax = 100

// Window sizing
const (
	FullViewWidth  float32 = 520
	FullViewHeight float32 = 480

	MiniViewWidth  float32 = 360
	MiniViewHeight float32 = 96
)

// Notice panel behavior
const (
	NoticeAutoHide = 3 * time.Second
)
