package platform

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// AppDirName is the per-user directory name for persisted state
const AppDirName = "chime"

// SupportedAudioExtensions lists the playable file extensions, lowercase,
// without the leading dot. Matching is on extension only, no content sniffing.
var SupportedAudioExtensions = []string{"mp3", "wav", "flac", "ogg", "m4a", "aac"}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// DefaultDataDir returns the per-user directory for session artifacts.
// The caller injects the result where it is needed; nothing here creates
// the directory or caches the value globally.
func DefaultDataDir() string {
	return filepath.Join(xdg.DataHome, AppDirName)
}

// DefaultConfigPath returns the per-user path of the optional config file.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppDirName, "config.toml")
}

// IsSupportedAudio reports whether the path carries a supported audio file
// extension. The check is case-insensitive.
func IsSupportedAudio(path string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	for _, supported := range SupportedAudioExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// FileExists reports whether path refers to an existing regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
