package platform

// Package platform contains OS/platform integration glue: filesystem helpers,
// per-user directory resolution, and audio file type detection.
