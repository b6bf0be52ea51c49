package ui

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/chime-player/chime/internal/config"
	"github.com/chime-player/chime/internal/model"
	"github.com/chime-player/chime/internal/playback"
	"github.com/chime-player/chime/internal/playlist"
	"github.com/chime-player/chime/internal/session"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	registry     *playlist.Registry
	controller   *playback.Controller
	media        playback.MediaService
	store        *session.Store
	settings     *config.Settings
	localization *Localization

	// Playlist view
	trackList   *widget.List
	selectedRow int

	// Transport controls
	playBtn      *widget.Button
	pauseBtn     *widget.Button
	stopBtn      *widget.Button
	prevBtn      *widget.Button
	nextBtn      *widget.Button
	trackLabel   *widget.Label
	clockLabel   *widget.Label
	seekSlider   *widget.Slider
	volumeSlider *widget.Slider

	// Toolbar buttons (kept for text refresh on language change)
	addBtn    *widget.Button
	removeBtn *widget.Button
	saveBtn   *widget.Button
	loadBtn   *widget.Button
	miniBtn   *widget.Button

	// Mini view controls
	miniTitle    *widget.Label
	miniPauseBtn *widget.Button
	expandBtn    *widget.Button

	fullView *fyne.Container
	miniView *fyne.Container
	miniMode bool

	// Guards programmatic slider writes from re-entering the seek handlers
	seekProgrammatic bool

	// Notice panel
	noticeContainer *fyne.Container
	noticeLabel     *widget.Label
	noticeTimer     *time.Timer
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, registry *playlist.Registry, media playback.MediaService, controller *playback.Controller, store *session.Store) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		registry:     registry,
		controller:   controller,
		media:        media,
		store:        store,
		settings:     settings,
		localization: localization,
		selectedRow:  playback.NoIndex,
	}

	log.Printf("RootUI initialized with media service: %v", ui.media != nil)

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.wireController()
	ui.wireMediaCallbacks()
	ui.restoreSession()

	// Persist the session before the window goes away
	window.SetCloseIntercept(func() {
		ui.saveSession()
		ui.window.Close()
	})

	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Toolbar
	ui.addBtn = widget.NewButton(ui.localization.GetText(KeyAddTracks), ui.onAddTracks)
	ui.removeBtn = widget.NewButton(ui.localization.GetText(KeyRemoveTrack), ui.onRemoveTrack)
	ui.saveBtn = widget.NewButton(ui.localization.GetText(KeySavePlaylist), ui.onSavePlaylist)
	ui.loadBtn = widget.NewButton(ui.localization.GetText(KeyLoadPlaylist), ui.onLoadPlaylist)
	ui.miniBtn = widget.NewButton(ui.localization.GetText(KeyMiniPlayer), ui.onToggleMini)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	toolbar := container.NewHBox(ui.addBtn, ui.removeBtn, ui.saveBtn, ui.loadBtn, ui.miniBtn, settingsBtn)

	// Notice panel under the toolbar (hidden by default)
	ui.noticeLabel = widget.NewLabel("")
	ui.noticeLabel.Alignment = fyne.TextAlignLeading
	ui.noticeContainer = container.NewHBox(container.NewPadded(ui.noticeLabel))
	ui.noticeContainer.Hide()

	topCombined := container.NewVBox(toolbar, ui.noticeContainer)

	// Playlist
	ui.trackList = widget.NewList(
		func() int { return ui.registry.Len() },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateTrackItem(id, obj) },
	)
	ui.trackList.OnSelected = func(id widget.ListItemID) {
		ui.selectedRow = id
	}
	ui.trackList.OnUnselected = func(id widget.ListItemID) {
		if ui.selectedRow == id {
			ui.selectedRow = playback.NoIndex
		}
	}

	// Transport controls
	ui.playBtn = widget.NewButton(IconPlay+" "+ui.localization.GetText(KeyPlay), ui.onPlayClick)
	ui.pauseBtn = widget.NewButton(IconPause+" "+ui.localization.GetText(KeyPause), ui.onPauseClick)
	ui.stopBtn = widget.NewButton(IconStop+" "+ui.localization.GetText(KeyStop), ui.onStopClick)
	ui.prevBtn = widget.NewButton(IconPrevious, ui.onPreviousClick)
	ui.nextBtn = widget.NewButton(IconNext, ui.onNextClick)

	ui.trackLabel = widget.NewLabel(ui.localization.GetText(KeyNoTrack))
	ui.trackLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.trackLabel.Truncation = fyne.TextTruncateEllipsis

	ui.clockLabel = widget.NewLabel(playback.FormatClock(0) + ClockSeparator + playback.FormatClock(0))

	ui.seekSlider = widget.NewSlider(0, SeekSliderMax)
	ui.seekSlider.Step = 1
	ui.seekSlider.OnChanged = ui.onSeekChanged
	ui.seekSlider.OnChangeEnded = ui.onSeekEnded

	ui.volumeSlider = widget.NewSlider(0, VolumeSliderMax)
	ui.volumeSlider.Step = 1
	ui.volumeSlider.OnChanged = func(value float64) {
		ui.controller.SetVolume(value / VolumeSliderMax)
	}

	transportRow := container.NewHBox(ui.prevBtn, ui.playBtn, ui.pauseBtn, ui.stopBtn, ui.nextBtn)
	seekRow := container.NewBorder(nil, nil, nil, ui.clockLabel, ui.seekSlider)
	volumeRow := container.NewBorder(nil, nil, widget.NewLabel(ui.localization.GetText(KeyVolume)+":"), nil, ui.volumeSlider)

	bottomPanel := container.NewVBox(
		ui.trackLabel,
		seekRow,
		container.NewBorder(nil, nil, transportRow, nil, volumeRow),
	)

	ui.fullView = container.NewBorder(
		topCombined, // top
		bottomPanel, // bottom
		nil,         // left
		nil,         // right
		ui.trackList,
	)

	// Mini view drives the same controller with a reduced surface
	ui.miniTitle = widget.NewLabel(ui.localization.GetText(KeyNoTrack))
	ui.miniTitle.Truncation = fyne.TextTruncateEllipsis
	ui.miniPauseBtn = widget.NewButton(IconPause, ui.onPauseClick)
	ui.expandBtn = widget.NewButton(ui.localization.GetText(KeyFullPlayer), ui.onToggleMini)

	miniTransport := container.NewHBox(
		widget.NewButton(IconPrevious, ui.onPreviousClick),
		ui.miniPauseBtn,
		widget.NewButton(IconNext, ui.onNextClick),
	)
	ui.miniView = container.NewBorder(nil, nil, miniTransport, ui.expandBtn, ui.miniTitle)

	ui.window.SetContent(ui.fullView)
	ui.window.Resize(fyne.NewSize(FullViewWidth, FullViewHeight))

	// Drag-and-drop intake
	ui.window.SetOnDropped(ui.onDropped)

	log.Printf("UI setup completed successfully")
}

// updateTrackItem renders one playlist row; the bound track gets a marker
func (ui *RootUI) updateTrackItem(id widget.ListItemID, obj fyne.CanvasObject) {
	label, ok := obj.(*widget.Label)
	if !ok {
		return
	}
	track, ok := ui.registry.At(id)
	if !ok {
		return
	}

	text := track.Title
	if id == ui.controller.CurrentIndex() {
		text = IconPlay + " " + text
	}
	label.SetText(text)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.addBtn.SetText(ui.localization.GetText(KeyAddTracks))
	ui.removeBtn.SetText(ui.localization.GetText(KeyRemoveTrack))
	ui.saveBtn.SetText(ui.localization.GetText(KeySavePlaylist))
	ui.loadBtn.SetText(ui.localization.GetText(KeyLoadPlaylist))
	ui.miniBtn.SetText(ui.localization.GetText(KeyMiniPlayer))
	ui.expandBtn.SetText(ui.localization.GetText(KeyFullPlayer))

	ui.playBtn.SetText(IconPlay + " " + ui.localization.GetText(KeyPlay))
	ui.stopBtn.SetText(IconStop + " " + ui.localization.GetText(KeyStop))
	ui.applyState(ui.controller.State())

	if ui.controller.CurrentIndex() == playback.NoIndex {
		ui.trackLabel.SetText(ui.localization.GetText(KeyNoTrack))
		ui.miniTitle.SetText(ui.localization.GetText(KeyNoTrack))
	}
}

// wireController subscribes the widgets to controller events. The controller
// only runs on the event-dispatch thread, so these update widgets directly.
func (ui *RootUI) wireController() {
	ui.controller.SetSelectionProvider(func() int { return ui.selectedRow })

	ui.controller.SetTrackChangedCallback(func(index int, track model.Track) {
		if index == playback.NoIndex {
			ui.applyTrackCleared()
			return
		}
		ui.trackLabel.SetText(track.Title)
		ui.miniTitle.SetText(track.Title)
		ui.setSeekValue(0)
		ui.clockLabel.SetText(playback.FormatClock(0) + ClockSeparator + playback.FormatClock(0))
		ui.trackList.Select(index)
		ui.trackList.Refresh()
	})

	ui.controller.SetStateChangedCallback(ui.applyState)

	ui.controller.SetProgressCallback(func(ratio float64, hasRatio bool, clock string) {
		ui.clockLabel.SetText(clock)
		if hasRatio {
			ui.setSeekValue(ratio * SeekSliderMax)
		}
	})

	ui.controller.SetNoticeCallback(func(notice playback.Notice) {
		switch notice {
		case playback.NoticeEmptyPlaylist:
			ui.showNotice(ui.localization.GetText(KeyEmptyPlaylist))
		case playback.NoticePlaybackError:
			ui.showNotice(ui.localization.GetText(KeyPlaybackError))
		}
	})
}

// wireMediaCallbacks routes media-service events onto the event-dispatch
// thread before they reach the controller. The service fires these from its
// own goroutine.
func (ui *RootUI) wireMediaCallbacks() {
	ui.media.OnPositionChanged(func(positionMs int64) {
		fyne.Do(func() {
			ui.controller.HandlePositionChanged(positionMs)
		})
	})
	ui.media.OnDurationChanged(func(durationMs int64) {
		fyne.Do(func() {
			ui.controller.HandleDurationChanged(durationMs)
		})
	})
	ui.media.OnFinished(func() {
		fyne.Do(func() {
			ui.controller.HandleFinished()
		})
	})
}

// applyState refreshes the transport buttons after a state transition
func (ui *RootUI) applyState(state model.PlaybackState) {
	switch state {
	case model.StatePaused:
		ui.pauseBtn.SetText(IconPlay + " " + ui.localization.GetText(KeyResume))
		ui.miniPauseBtn.SetText(IconPlay)
	default:
		ui.pauseBtn.SetText(IconPause + " " + ui.localization.GetText(KeyPause))
		ui.miniPauseBtn.SetText(IconPause)
	}

	if state == model.StateStopped {
		ui.setSeekValue(0)
		ui.clockLabel.SetText(playback.FormatClock(0) + ClockSeparator + playback.FormatClock(0))
	}
	ui.trackList.Refresh()
}

// applyTrackCleared resets the now-playing surfaces to their empty state
func (ui *RootUI) applyTrackCleared() {
	ui.trackLabel.SetText(ui.localization.GetText(KeyNoTrack))
	ui.miniTitle.SetText(ui.localization.GetText(KeyNoTrack))
	ui.setSeekValue(0)
	ui.clockLabel.SetText(playback.FormatClock(0) + ClockSeparator + playback.FormatClock(0))
	ui.trackList.Refresh()
}

// setSeekValue moves the seek slider without triggering the drag handlers
func (ui *RootUI) setSeekValue(value float64) {
	ui.seekProgrammatic = true
	ui.seekSlider.SetValue(value)
	ui.seekProgrammatic = false
}

// showNotice displays a transient message in the notice panel and hides it
// again after NoticeAutoHide.
func (ui *RootUI) showNotice(message string) {
	ui.noticeLabel.SetText(message)
	ui.noticeContainer.Show()
	ui.noticeContainer.Refresh()

	if ui.noticeTimer != nil {
		ui.noticeTimer.Stop()
	}
	ui.noticeTimer = time.AfterFunc(NoticeAutoHide, func() {
		fyne.Do(func() {
			ui.noticeContainer.Hide()
		})
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.showNotice(ui.localization.GetText(KeySettingsSaved))
	})
}

// onToggleMini flips between the full and the mini view
func (ui *RootUI) onToggleMini() {
	ui.miniMode = !ui.miniMode
	if ui.miniMode {
		ui.window.SetContent(ui.miniView)
		ui.window.Resize(fyne.NewSize(MiniViewWidth, MiniViewHeight))
		return
	}
	ui.window.SetContent(ui.fullView)
	ui.window.Resize(fyne.NewSize(FullViewWidth, FullViewHeight))
	ui.trackList.Refresh()
}
