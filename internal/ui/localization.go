package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyAddTracks       = "add_tracks"
	KeyRemoveTrack     = "remove_track"
	KeySavePlaylist    = "save_playlist"
	KeyLoadPlaylist    = "load_playlist"
	KeyMiniPlayer      = "mini_player"
	KeyFullPlayer      = "full_player"
	KeyPlay            = "play"
	KeyPause           = "pause"
	KeyResume          = "resume"
	KeyStop            = "stop"
	KeyVolume          = "volume"
	KeySettings        = "settings"
	KeyFile            = "file"
	KeyLanguage        = "language"
	KeyDataDirectory   = "data_directory"
	KeyDefaultVolume   = "default_volume"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeyBrowse          = "browse"
	KeyNoTrack         = "no_track"
	KeyEmptyPlaylist   = "empty_playlist"
	KeyTracksAdded     = "tracks_added"
	KeyNoTracksAdded   = "no_tracks_added"
	KeyPlaylistSaved   = "playlist_saved"
	KeyPlaylistLoaded  = "playlist_loaded"
	KeySaveError       = "save_error"
	KeyLoadError       = "load_error"
	KeyPlaybackError   = "playback_error"
	KeySettingsSaved   = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Chime",
		KeyAddTracks:       "Add",
		KeyRemoveTrack:     "Remove",
		KeySavePlaylist:    "Save playlist",
		KeyLoadPlaylist:    "Load playlist",
		KeyMiniPlayer:      "Mini",
		KeyFullPlayer:      "Expand",
		KeyPlay:            "Play",
		KeyPause:           "Pause",
		KeyResume:          "Resume",
		KeyStop:            "Stop",
		KeyVolume:          "Volume",
		KeySettings:        "Settings",
		KeyFile:            "File",
		KeyLanguage:        "Language",
		KeyDataDirectory:   "Data Directory",
		KeyDefaultVolume:   "Default Volume",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeyBrowse:          "Browse",
		KeyNoTrack:         "No track",
		KeyEmptyPlaylist:   "Playlist is empty",
		KeyTracksAdded:     "Added %d track(s)",
		KeyNoTracksAdded:   "No supported audio files found",
		KeyPlaylistSaved:   "Playlist saved",
		KeyPlaylistLoaded:  "Playlist loaded",
		KeySaveError:       "Failed to save playlist",
		KeyLoadError:       "Failed to load playlist",
		KeyPlaybackError:   "Cannot play file",
		KeySettingsSaved:   "Settings saved successfully!",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "Chime",
		KeyAddTracks:       "Добавить",
		KeyRemoveTrack:     "Удалить",
		KeySavePlaylist:    "Сохранить плейлист",
		KeyLoadPlaylist:    "Загрузить плейлист",
		KeyMiniPlayer:      "Мини",
		KeyFullPlayer:      "Развернуть",
		KeyPlay:            "Играть",
		KeyPause:           "Пауза",
		KeyResume:          "Продолжить",
		KeyStop:            "Стоп",
		KeyVolume:          "Громкость",
		KeySettings:        "Настройки",
		KeyFile:            "Файл",
		KeyLanguage:        "Язык",
		KeyDataDirectory:   "Папка данных",
		KeyDefaultVolume:   "Громкость по умолчанию",
		KeySave:            "Сохранить",
		KeyCancel:          "Отмена",
		KeyBrowse:          "Обзор",
		KeyNoTrack:         "Нет трека",
		KeyEmptyPlaylist:   "Плейлист пуст",
		KeyTracksAdded:     "Добавлено треков: %d",
		KeyNoTracksAdded:   "Поддерживаемых аудиофайлов не найдено",
		KeyPlaylistSaved:   "Плейлист сохранён",
		KeyPlaylistLoaded:  "Плейлист загружен",
		KeySaveError:       "Не удалось сохранить плейлист",
		KeyLoadError:       "Не удалось загрузить плейлист",
		KeyPlaybackError:   "Не удалось воспроизвести файл",
		KeySettingsSaved:   "Настройки успешно сохранены!",
	}
}
